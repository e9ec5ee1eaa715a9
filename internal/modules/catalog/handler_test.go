package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestListServices(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"initial-consultation"`)
	assert.Contains(t, w.Body.String(), `"hypnobirthing-guide"`)
}

func TestGetService(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/birth-preparation", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Birth Preparation Session"`)
}

func TestGetService_Unknown(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/reiki-healing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_NOT_FOUND")
}
