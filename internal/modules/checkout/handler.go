package checkout

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
	rg.POST("/checkout/session", h.CreateSession)
	rg.GET("/checkout/verify", h.VerifySession)
}

// CreateSession godoc
// @Summary      Start an embedded checkout session
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        body body CreateSessionRequest true "Service and optional slot"
// @Success      200 {object} CreateSessionResponse
// @Failure      400 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Failure      500 {object} map[string]any
// @Router       /checkout/session [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrServiceNotFound:
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "No service with that id")
		default:
			c.Error(err) //nolint:errcheck
			response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Could not start checkout, please try again or contact us")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// VerifySession godoc
// @Summary      Verify a completed checkout session
// @Tags         Checkout
// @Produce      json
// @Param        session_id query string true "Checkout session id"
// @Success      200 {object} VerifiedOrder
// @Failure      400 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /checkout/verify [get]
func (h *Handler) VerifySession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "session_id is required")
		return
	}

	order := h.service.VerifySession(c.Request.Context(), sessionID)
	if order == nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_VERIFIED", "Payment could not be verified")
		return
	}

	response.Success(c, http.StatusOK, order)
}
