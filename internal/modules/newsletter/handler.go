package newsletter

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebirth/internal/pkg/response"
	"nurturebirth/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter/subscribe", h.Subscribe)
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe godoc
// @Summary      Join the newsletter audience
// @Tags         Newsletter
// @Accept       json
// @Produce      json
// @Param        body body SubscribeRequest true "Subscriber email"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Failure      502 {object} map[string]any
// @Router       /newsletter/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email is required", details)
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusBadGateway, "INTEGRATION_ERROR", "Could not subscribe right now, please try again later")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscribed": true})
}
