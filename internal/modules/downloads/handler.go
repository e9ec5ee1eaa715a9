package downloads

import (
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
	rg.POST("/downloads/request", h.RequestDownload)
	rg.GET("/downloads/:resourceId", h.Download)
}

type RequestDownloadBody struct {
	Email      string `json:"email" binding:"required,email"`
	ResourceID string `json:"resource_id" binding:"required"`
}

// RequestDownload godoc
// @Summary      Email a tokenized link for a free resource
// @Tags         Downloads
// @Accept       json
// @Produce      json
// @Param        body body RequestDownloadBody true "Email and resource id"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Failure      403 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /downloads/request [post]
func (h *Handler) RequestDownload(c *gin.Context) {
	var body RequestDownloadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email and resource_id are required")
		return
	}

	err := h.service.RequestDownload(c.Request.Context(), body.Email, body.ResourceID)
	if err != nil {
		switch err {
		case ErrResourceNotFound:
			response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "No resource with that id")
		case ErrResourceNotFree:
			response.Error(c, http.StatusForbidden, "CREDENTIAL_INVALID", "This resource requires purchase")
		default:
			h.loggerf("level=error msg=download request failed resource_id=%s err=%v", body.ResourceID, err)
			response.Error(c, http.StatusInternalServerError, "INTEGRATION_ERROR", "Could not send the download email, please try again or contact us")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

// Download godoc
// @Summary      Redirect to a time-limited download URL
// @Description  Free resources are gated by token, paid ones by checkout session
// @Tags         Downloads
// @Produce      json
// @Param        resourceId path string true "Resource id"
// @Param        token query string false "Signed download token"
// @Param        session query string false "Checkout session id"
// @Success      302 {string} string "redirect"
// @Failure      401 {object} map[string]any
// @Failure      403 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /downloads/{resourceId} [get]
func (h *Handler) Download(c *gin.Context) {
	resourceID := c.Param("resourceId")
	token := c.Query("token")
	sessionID := c.Query("session")

	link, err := h.service.ResolveDownload(c.Request.Context(), resourceID, token, sessionID)
	if err != nil {
		switch err {
		case ErrResourceNotFound:
			response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "No resource with that id")
		case ErrCredentialMissing:
			response.Error(c, http.StatusUnauthorized, "CREDENTIAL_REQUIRED", "A download token or checkout session is required")
		case ErrCredentialInvalid:
			response.Error(c, http.StatusForbidden, "CREDENTIAL_INVALID", "The download credential is invalid or expired")
		default:
			h.loggerf("level=error msg=download resolve failed resource_id=%s err=%v", resourceID, err)
			response.Error(c, http.StatusInternalServerError, "INTEGRATION_ERROR", "Could not prepare the download, please try again or contact us")
		}
		return
	}

	c.Redirect(http.StatusFound, link)
}
