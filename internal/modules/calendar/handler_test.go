package calendar

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestDownloadICS_ReturnsAttachment(t *testing.T) {
	r := newCalendarRouter()

	q := url.Values{}
	q.Set("title", "Initial Consultation - Nurture Birth Midwifery")
	q.Set("start", "2026-09-10T09:00:00Z")
	q.Set("end", "2026-09-10T10:00:00Z")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/ics?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Initial-Consultation-Nurture-Birth-Midwifery.ics"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "DTSTART:20260910T090000Z")
	assert.Contains(t, w.Body.String(), "SUMMARY:Initial Consultation - Nurture Birth Midwifery")
}

func TestDownloadICS_RequiresParams(t *testing.T) {
	r := newCalendarRouter()

	cases := []struct {
		name  string
		query string
	}{
		{"missing title", "start=2026-09-10T09:00:00Z&end=2026-09-10T10:00:00Z"},
		{"missing start", "title=X&end=2026-09-10T10:00:00Z"},
		{"missing end", "title=X&start=2026-09-10T09:00:00Z"},
		{"bad start", "title=X&start=tomorrow&end=2026-09-10T10:00:00Z"},
		{"bad end", "title=X&start=2026-09-10T09:00:00Z&end=late"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/ics?"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		})
	}
}
