package availability

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebirth/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.GetAvailability)
}

// GetAvailability godoc
// @Summary      Query bookable slots for a service
// @Description  Returns a map of ISO date to slot list for the date range
// @Tags         Availability
// @Produce      json
// @Param        serviceSlug query string true "Service slug"
// @Param        startDate query string true "Range start, YYYY-MM-DD"
// @Param        endDate query string true "Range end, YYYY-MM-DD"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	serviceSlug := c.Query("serviceSlug")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if serviceSlug == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "serviceSlug is required")
		return
	}
	if startDate == "" || endDate == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startDate and endDate are required")
		return
	}

	slots, err := h.service.GetServiceAvailability(c.Request.Context(), serviceSlug, startDate, endDate)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startDate and endDate must be YYYY-MM-DD and in order")
		case ErrServiceNotFound:
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "No service with that slug")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"availability": slots})
}
