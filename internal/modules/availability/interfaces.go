package availability

import (
	"context"
	"time"

	"nurturebirth/internal/domain"
)

// SlotSource is the scheduling provider's slot query. The Cal.com client
// in internal/scheduler implements it.
type SlotSource interface {
	Configured() bool
	GetAvailability(ctx context.Context, schedulingID string, start, end time.Time) (map[string][]domain.Slot, error)
}
