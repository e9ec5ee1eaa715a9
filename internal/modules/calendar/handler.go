package calendar

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"nurturebirth/internal/domain"
	"nurturebirth/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar/ics", h.DownloadICS)
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// DownloadICS godoc
// @Summary      Download an ICS calendar file
// @Description  Builds a single-event ICS attachment from query parameters
// @Tags         Calendar
// @Produce      plain
// @Param        title query string true "Event title"
// @Param        start query string true "Start time, RFC3339"
// @Param        end query string true "End time, RFC3339"
// @Param        location query string false "Location"
// @Param        description query string false "Description"
// @Success      200 {string} string "text/calendar"
// @Failure      400 {object} map[string]any
// @Router       /calendar/ics [get]
func (h *Handler) DownloadICS(c *gin.Context) {
	title := c.Query("title")
	startStr := c.Query("start")
	endStr := c.Query("end")
	if title == "" || startStr == "" || endStr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title, start and end are required")
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start must be an RFC3339 timestamp")
		return
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end must be an RFC3339 timestamp")
		return
	}

	location := c.Query("location")
	if location == "" {
		location = "Online"
	}

	ev := domain.CalendarEvent{
		Title:       title,
		Description: c.Query("description"),
		Start:       start,
		End:         end,
		Location:    location,
	}

	filename := filenameSanitizer.ReplaceAllString(title, "-")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ICSContent(ev)))
}
