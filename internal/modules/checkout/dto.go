package checkout

import "nurturebirth/internal/domain"

type BookingSlot struct {
	Date     string `json:"date" binding:"required"`     // YYYY-MM-DD
	Time     string `json:"time" binding:"required"`     // HH:mm
	Datetime string `json:"datetime" binding:"required"` // RFC3339
}

type CreateSessionRequest struct {
	ServiceID string       `json:"service_id" binding:"required"`
	Booking   *BookingSlot `json:"booking"`
}

type CreateSessionResponse struct {
	SessionID    string `json:"session_id"`
	ClientSecret string `json:"client_secret"`
}

// VerifiedOrder is the confirmation-page view of a paid session.
type VerifiedOrder struct {
	Service         *domain.Service `json:"service"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	BookingDate     string          `json:"booking_date,omitempty"`
	BookingTime     string          `json:"booking_time,omitempty"`
	BookingDatetime string          `json:"booking_datetime,omitempty"`
}
