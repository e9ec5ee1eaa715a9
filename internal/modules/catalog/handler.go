// Package catalog (module) exposes the static service catalog over HTTP.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	svccatalog "nurturebirth/internal/catalog"
	"nurturebirth/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:slug", h.GetService)
}

// ListServices godoc
// @Summary      List bookable services
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"services": svccatalog.Services()})
}

// GetService godoc
// @Summary      Get one service by slug
// @Tags         Catalog
// @Produce      json
// @Param        slug path string true "Service slug"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /services/{slug} [get]
func (h *Handler) GetService(c *gin.Context) {
	svc := svccatalog.ServiceBySlug(c.Param("slug"))
	if svc == nil {
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "No service with that slug")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}
