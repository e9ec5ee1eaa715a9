package availability

import (
	"context"
	"time"

	"nurturebirth/internal/catalog"
	"nurturebirth/internal/domain"
)

type Service struct {
	slots   SlotSource
	mock    *MockGenerator
	loggerf func(format string, args ...interface{})
}

func NewService(slots SlotSource, mock *MockGenerator, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{slots: slots, mock: mock, loggerf: loggerf}
}

// GetServiceAvailability returns the per-day slot map for a service over
// [startDate, endDate]. The real adapter is used only when the scheduling
// integration is configured and the service carries a scheduling id; any
// adapter failure is logged and silently downgraded to mock data, so this
// never surfaces an upstream error to the caller.
func (s *Service) GetServiceAvailability(ctx context.Context, serviceSlug, startDate, endDate string) (map[string][]domain.Slot, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}

	svc := catalog.ServiceBySlug(serviceSlug)
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if s.slots != nil && s.slots.Configured() && svc.SchedulingID != "" {
		m, err := s.slots.GetAvailability(ctx, svc.SchedulingID, start, end.AddDate(0, 0, 1))
		if err == nil {
			return m, nil
		}
		s.loggerf("level=error msg=scheduler availability failed, using mock data service=%s err=%v", serviceSlug, err)
	}

	return s.mock.Generate(start, end, svc.DurationMinutes), nil
}
