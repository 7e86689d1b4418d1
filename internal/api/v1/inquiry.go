package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/service"
	"github.com/veloralabs/agencydesk/internal/types"
)

type InquiryHandler struct {
	service service.InquiryService
	log     *logger.Logger
}

func NewInquiryHandler(
	service service.InquiryService,
	log *logger.Logger,
) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log,
	}
}

// @Summary Submit an inquiry
// @Description Submit a contact form inquiry from the marketing site
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param inquiry body dto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} dto.InquiryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an inquiry
// @Description Get an inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.InquiryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetInquiry(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List inquiries
// @Description List inquiries, optionally filtered by status
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Inquiry status"
// @Success 200 {object} dto.ListInquiriesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /inquiries [get]
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	status := types.InquiryStatus(c.Query("status"))

	resp, err := h.service.ListInquiries(c.Request.Context(), status)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an inquiry
// @Description Update an inquiry's triage status
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Inquiry ID"
// @Param inquiry body dto.UpdateInquiryRequest true "Inquiry"
// @Success 200 {object} dto.InquiryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /inquiries/{id} [put]
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateInquiry(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Convert an inquiry
// @Description Convert an inquiry into an onboarded client
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Inquiry ID"
// @Param conversion body dto.ConvertInquiryRequest true "Conversion"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /inquiries/{id}/convert [post]
func (h *InquiryHandler) ConvertInquiry(c *gin.Context) {
	id := c.Param("id")

	var req dto.ConvertInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ConvertInquiry(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
