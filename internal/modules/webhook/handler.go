package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"nurturebirth/internal/pkg/response"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/stripe", h.HandleStripeWebhook)
}

// HandleStripeWebhook godoc
// @Summary      Stripe webhook receiver
// @Description  Verifies and processes payment events; acknowledges even on partial fulfillment failure
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Failure      500 {object} map[string]any
// @Router       /webhooks/stripe [post]
func (h *Handler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read request body")
		return
	}

	event, signatureValid, err := h.service.ParseEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.loggerf("level=error msg=webhook rejected err=%v", err)
		if errors.Is(err, ErrInvalidSignature) {
			response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Webhook signature verification failed")
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook payload")
		return
	}

	if err := h.service.ProcessEvent(c.Request.Context(), event, signatureValid); err != nil {
		h.loggerf("level=error msg=webhook processing failed event_id=%s err=%v", event.ID, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Webhook processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
