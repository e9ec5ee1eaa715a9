package availability

import (
	"math/rand"
	"time"

	"nurturebirth/internal/domain"
)

// Clinic hours for mock availability: closed Sundays, short Saturdays.
const (
	openHour          = 9
	closeHourWeekday  = 18
	closeHourSaturday = 14
)

// MockGenerator produces a plausible schedule when the scheduling
// integration is unconfigured or down. Availability flags are random --
// a cosmetic simulation of scarcity, not a reservation system.
type MockGenerator struct {
	rnd *rand.Rand
	now func() time.Time
	loc *time.Location
}

func NewMockGenerator(seed int64) *MockGenerator {
	return newMockGenerator(rand.New(rand.NewSource(seed)), time.Now)
}

func newMockGenerator(rnd *rand.Rand, now func() time.Time) *MockGenerator {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.UTC
	}
	return &MockGenerator{rnd: rnd, now: now, loc: loc}
}

// Generate builds the per-day slot map for [startDate, endDate]
// inclusive. Sundays are omitted entirely; slots whose start has already
// passed are excluded.
func (g *MockGenerator) Generate(startDate, endDate time.Time, durationMinutes int) map[string][]domain.Slot {
	step := 60 * time.Minute
	if durationMinutes >= 90 {
		step = 120 * time.Minute
	}

	now := g.now()
	out := make(map[string][]domain.Slot)

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, g.loc)
		if d.Weekday() == time.Sunday {
			continue
		}

		closeHour := closeHourWeekday
		if d.Weekday() == time.Saturday {
			closeHour = closeHourSaturday
		}

		open := d.Add(openHour * time.Hour)
		close := d.Add(time.Duration(closeHour) * time.Hour)

		slots := make([]domain.Slot, 0)
		for t := open; t.Before(close); t = t.Add(step) {
			if !t.After(now) {
				continue
			}
			slots = append(slots, domain.Slot{
				Time:      t.Format("15:04"),
				Datetime:  t.Format(time.RFC3339),
				Available: g.rnd.Float64() > 0.3,
			})
		}
		out[d.Format("2006-01-02")] = slots
	}
	return out
}
