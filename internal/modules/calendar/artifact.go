// Package calendar builds add-to-calendar artifacts (Google and Outlook
// links, ICS files) from a calendar event value. Everything here is pure
// and deterministic; the same input always yields the same bytes.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"nurturebirth/internal/domain"
)

const utcBasicFormat = "20060102T150405Z"

// NewSessionEvent derives the calendar event for a booked session. End
// time is start plus the service duration; the description carries the
// video call link when one exists.
func NewSessionEvent(serviceTitle string, start time.Time, durationMinutes int, videoLink string) domain.CalendarEvent {
	desc := fmt.Sprintf("Your %s with Nurture Birth Midwifery.", serviceTitle)
	location := "Online"
	if videoLink != "" {
		desc += "\nJoin here: " + videoLink
		location = videoLink
	} else {
		desc += "\nA video call link will be shared with you before the session."
	}
	return domain.CalendarEvent{
		Title:       serviceTitle + " - Nurture Birth Midwifery",
		Description: desc,
		Start:       start,
		End:         start.Add(time.Duration(durationMinutes) * time.Minute),
		Location:    location,
	}
}

func GoogleCalendarURL(e domain.CalendarEvent) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", e.Start.UTC().Format(utcBasicFormat)+"/"+e.End.UTC().Format(utcBasicFormat))
	q.Set("details", e.Description)
	q.Set("location", e.Location)
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

func OutlookCalendarURL(e domain.CalendarEvent) string {
	q := url.Values{}
	q.Set("path", "/calendar/action/compose")
	q.Set("rru", "addevent")
	q.Set("startdt", e.Start.UTC().Format(time.RFC3339))
	q.Set("enddt", e.End.UTC().Format(time.RFC3339))
	q.Set("subject", e.Title)
	q.Set("body", e.Description)
	q.Set("location", e.Location)
	return "https://outlook.live.com/calendar/0/deeplink/compose?" + q.Encode()
}

// ICSContent emits a single-event VCALENDAR block. Text values are
// escaped per RFC 5545 section 3.3.11.
func ICSContent(e domain.CalendarEvent) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Nurture Birth Midwifery//Booking//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"DTSTART:" + e.Start.UTC().Format(utcBasicFormat),
		"DTEND:" + e.End.UTC().Format(utcBasicFormat),
		"SUMMARY:" + escapeICSText(e.Title),
		"DESCRIPTION:" + escapeICSText(e.Description),
		"LOCATION:" + escapeICSText(e.Location),
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func escapeICSText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
