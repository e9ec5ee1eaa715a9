// Package scheduler wraps the Cal.com v2 API: slot queries and booking
// creation. Cal.com owns the authoritative booking record; this service
// keeps no local copy.
package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"nurturebirth/internal/domain"
)

const apiVersion = "2024-08-13"

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	loc        *time.Location
}

// NewClient reads CALCOM_API_KEY and CALCOM_API_URL. An unconfigured
// client is a supported degraded mode: Configured reports false and the
// availability service falls back to mock data.
func NewClient() *Client {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.UTC
	}
	return &Client{
		httpClient: &http.Client{},
		apiKey:     os.Getenv("CALCOM_API_KEY"),
		baseURL:    envOrDefault("CALCOM_API_URL", "https://api.cal.com/v2"),
		loc:        loc,
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func (c *Client) Configured() bool { return c.apiKey != "" }

type slotsResponse struct {
	Status string                `json:"status"`
	Data   map[string][]slotItem `json:"data"`
}

type slotItem struct {
	Time string `json:"time"`
}

// GetAvailability fetches slots for one event type and normalizes them
// into the per-day slot map used across the service. Slots whose start
// has already passed are dropped.
func (c *Client) GetAvailability(ctx context.Context, schedulingID string, start, end time.Time) (map[string][]domain.Slot, error) {
	q := url.Values{}
	q.Set("eventTypeId", schedulingID)
	q.Set("start", start.UTC().Format(time.RFC3339))
	q.Set("end", end.UTC().Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/slots?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cal.com slots request failed: status=%d body=%s", resp.StatusCode, truncate(body, 256))
	}

	var out slotsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("cal.com slots decode failed: %w", err)
	}

	now := time.Now()
	result := make(map[string][]domain.Slot, len(out.Data))
	for date, items := range out.Data {
		slots := make([]domain.Slot, 0, len(items))
		for _, it := range items {
			t, err := time.Parse(time.RFC3339, it.Time)
			if err != nil {
				continue
			}
			if !t.After(now) {
				continue
			}
			slots = append(slots, domain.Slot{
				Time:      t.In(c.loc).Format("15:04"),
				Datetime:  it.Time,
				Available: true,
			})
		}
		if len(slots) > 0 {
			result[date] = slots
		}
	}
	return result, nil
}

type CreateBookingRequest struct {
	SchedulingID  string
	Start         time.Time
	AttendeeName  string
	AttendeeEmail string
	Notes         string
}

type Booking struct {
	UID          string
	VideoCallURL string
}

type bookingResponse struct {
	Status string `json:"status"`
	Data   struct {
		UID        string `json:"uid"`
		MeetingURL string `json:"meetingUrl"`
		Location   string `json:"location"`
	} `json:"data"`
}

// CreateBooking asks Cal.com to create the authoritative booking. The
// returned video call link, if any, is forwarded into the confirmation
// email; failures here are tolerated by the caller.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	eventTypeID, err := strconv.Atoi(req.SchedulingID)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduling id %q: %w", req.SchedulingID, err)
	}

	payload := map[string]interface{}{
		"eventTypeId": eventTypeID,
		"start":       req.Start.UTC().Format(time.RFC3339),
		"attendee": map[string]string{
			"name":     req.AttendeeName,
			"email":    req.AttendeeEmail,
			"timeZone": c.loc.String(),
		},
	}
	if req.Notes != "" {
		payload["metadata"] = map[string]string{"notes": req.Notes}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cal.com booking request failed: status=%d body=%s", resp.StatusCode, truncate(body, 256))
	}

	var out bookingResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("cal.com booking decode failed: %w", err)
	}

	b := &Booking{UID: out.Data.UID, VideoCallURL: out.Data.MeetingURL}
	if b.VideoCallURL == "" && len(out.Data.Location) > 4 && out.Data.Location[:4] == "http" {
		b.VideoCallURL = out.Data.Location
	}
	return b, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("cal-api-version", apiVersion)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
