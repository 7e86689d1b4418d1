package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/service"
)

type QuotationHandler struct {
	service service.QuotationService
	log     *logger.Logger
}

func NewQuotationHandler(
	service service.QuotationService,
	log *logger.Logger,
) *QuotationHandler {
	return &QuotationHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a quotation
// @Description Create a quotation and allocate its identifier
// @Tags Quotations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quotation body dto.CreateQuotationRequest true "Quotation"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateQuotation(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a quotation
// @Description Get a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetQuotation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List quotations
// @Description List quotations, optionally filtered by client
// @Tags Quotations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param client_id query string false "Client internal ID"
// @Success 200 {object} dto.ListQuotationsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	clientID := c.Query("client_id")

	resp, err := h.service.ListQuotations(c.Request.Context(), clientID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a quotation
// @Description Update a draft quotation or transition its status
// @Tags Quotations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quotation ID"
// @Param quotation body dto.UpdateQuotationRequest true "Quotation"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateQuotation(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Send a quotation
// @Description Email a draft quotation to the client and mark it sent
// @Tags Quotations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations/{id}/send [post]
func (h *QuotationHandler) SendQuotation(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.SendQuotation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
