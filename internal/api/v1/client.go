package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/service"
)

type ClientHandler struct {
	service service.ClientService
	log     *logger.Logger
}

func NewClientHandler(
	service service.ClientService,
	log *logger.Logger,
) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a client
// @Description Onboard a client and allocate its identifier
// @Tags Clients
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param client body dto.CreateClientRequest true "Client"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateClient(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a client
// @Description Get a client by internal ID or generated identifier
// @Tags Clients
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		if !ierr.IsNotFound(err) {
			c.Error(err)
			return
		}
		// fall back to the generated identifier, e.g. EA701-IND-253
		resp, err = h.service.GetClientByClientID(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List clients
// @Description List clients
// @Tags Clients
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListClientsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	resp, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a client
// @Description Update a client's contact details
// @Tags Clients
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Client"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
