// Package mailer sends the transactional email for the booking and
// download flows through Resend, and manages the newsletter audience.
package mailer

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"nurturebirth/internal/modules/calendar"
)

type Mailer struct {
	client     *resend.Client
	from       string
	audienceID string
	baseURL    string
	loggerf    func(format string, args ...interface{})
}

// New reads RESEND_API_KEY, RESEND_AUDIENCE_ID, MAIL_FROM and BASE_URL.
func New(loggerf func(format string, args ...interface{})) *Mailer {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Mailer{
		client:     resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:       envOrDefault("MAIL_FROM", "Nurture Birth Midwifery <hello@nurturebirth.co.uk>"),
		audienceID: os.Getenv("RESEND_AUDIENCE_ID"),
		baseURL:    envOrDefault("BASE_URL", "http://localhost:8080"),
		loggerf:    loggerf,
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

type BookingConfirmation struct {
	To           string
	Name         string
	ServiceTitle string
	Date         string // human-readable, e.g. "Friday, 12 September 2026"
	Time         string // "14:00"
	Duration     string
	Start        time.Time
	DurationMins int
	VideoLink    string
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, p BookingConfirmation) error {
	ev := calendar.NewSessionEvent(p.ServiceTitle, p.Start, p.DurationMins, p.VideoLink)

	videoRow := ""
	if p.VideoLink != "" {
		videoRow = fmt.Sprintf(`<p><strong>Video call:</strong> <a href="%s">%s</a></p>`, p.VideoLink, p.VideoLink)
	} else {
		videoRow = `<p>A video call link will be shared with you before the session.</p>`
	}

	icsQuery := url.Values{}
	icsQuery.Set("title", ev.Title)
	icsQuery.Set("start", ev.Start.UTC().Format(time.RFC3339))
	icsQuery.Set("end", ev.End.UTC().Format(time.RFC3339))
	icsQuery.Set("location", ev.Location)
	icsQuery.Set("description", ev.Description)

	html := fmt.Sprintf(`
<h2>Your booking is confirmed</h2>
<p>Hi %s,</p>
<p>Thank you for booking with Nurture Birth Midwifery. Here are your session details:</p>
<p><strong>%s</strong><br/>%s at %s<br/>Duration: %s</p>
%s
<p>Add this session to your calendar:</p>
<p>
  <a href="%s">Google Calendar</a> &middot;
  <a href="%s">Outlook</a> &middot;
  <a href="%s/api/v1/calendar/ics?%s">Download .ics</a>
</p>
<p>If you need to reschedule, just reply to this email.</p>
<p>Warmly,<br/>Nurture Birth Midwifery</p>`,
		displayName(p.Name),
		p.ServiceTitle, p.Date, p.Time, p.Duration,
		videoRow,
		calendar.GoogleCalendarURL(ev),
		calendar.OutlookCalendarURL(ev),
		m.baseURL, icsQuery.Encode(),
	)

	return m.send(ctx, p.To, "Your booking is confirmed - "+p.ServiceTitle, html)
}

type PurchaseConfirmation struct {
	To           string
	Name         string
	ServiceTitle string
	DownloadRef  string
	DownloadURL  string
}

func (m *Mailer) SendPurchaseConfirmation(ctx context.Context, p PurchaseConfirmation) error {
	html := fmt.Sprintf(`
<h2>Thank you for your purchase</h2>
<p>Hi %s,</p>
<p>Your copy of <strong>%s</strong> is ready.</p>
<p><a href="%s">Download it here</a></p>
<p>Order reference: %s</p>
<p>Warmly,<br/>Nurture Birth Midwifery</p>`,
		displayName(p.Name), p.ServiceTitle, p.DownloadURL, p.DownloadRef,
	)
	return m.send(ctx, p.To, "Your download is ready - "+p.ServiceTitle, html)
}

func (m *Mailer) SendDownloadLink(ctx context.Context, to, resourceTitle, link string) error {
	html := fmt.Sprintf(`
<h2>Here's your free resource</h2>
<p>Thank you for your interest in <strong>%s</strong>.</p>
<p><a href="%s">Download it here</a> (the link is valid for 24 hours).</p>
<p>Warmly,<br/>Nurture Birth Midwifery</p>`,
		resourceTitle, link,
	)
	return m.send(ctx, to, "Your free resource: "+resourceTitle, html)
}

func (m *Mailer) SendWelcome(ctx context.Context, to string) error {
	html := `
<h2>Welcome</h2>
<p>Thank you for joining the Nurture Birth Midwifery community. You'll
receive occasional articles and updates on birth preparation and
postnatal support.</p>
<p>Warmly,<br/>Nurture Birth Midwifery</p>`
	return m.send(ctx, to, "Welcome to Nurture Birth Midwifery", html)
}

// AddContact subscribes an email to the marketing audience. Duplicate
// adds are tolerated and treated as already-subscribed.
func (m *Mailer) AddContact(ctx context.Context, email string) error {
	if m.audienceID == "" {
		m.loggerf("level=warn msg=resend audience not configured, skipping contact add email=%s", email)
		return nil
	}
	_, err := m.client.Contacts.CreateWithContext(ctx, &resend.CreateContactRequest{
		Email:      email,
		AudienceId: m.audienceID,
	})
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "already") {
		m.loggerf("level=info msg=contact already subscribed email=%s", email)
		return nil
	}
	return err
}

func (m *Mailer) send(ctx context.Context, to, subject, html string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}
