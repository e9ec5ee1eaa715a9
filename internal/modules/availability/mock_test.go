package availability

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMockGenerator_NoSundaySlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	gen := newMockGenerator(rand.New(rand.NewSource(1)), fixedClock(now))

	// 2026-09-06 is a Sunday.
	start := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	out := gen.Generate(start, end, 60)

	_, hasSunday := out["2026-09-06"]
	assert.False(t, hasSunday, "Sunday must be omitted entirely")
	assert.NotEmpty(t, out["2026-09-03"])
}

func TestMockGenerator_WorkingHourWindows(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	gen := newMockGenerator(rand.New(rand.NewSource(2)), fixedClock(now))

	start := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	out := gen.Generate(start, end, 60)

	// 2026-09-05 is a Saturday: 09:00 up to (not including) 14:00.
	for _, s := range out["2026-09-05"] {
		dt, err := time.Parse(time.RFC3339, s.Datetime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, dt.Hour(), 9, "saturday slot %s before opening", s.Time)
		assert.Less(t, dt.Hour(), 14, "saturday slot %s after closing", s.Time)
	}

	// Weekday: 09:00 up to (not including) 18:00.
	for _, s := range out["2026-09-03"] {
		dt, err := time.Parse(time.RFC3339, s.Datetime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, dt.Hour(), 9)
		assert.Less(t, dt.Hour(), 18)
	}
}

func TestMockGenerator_NoPastSlots(t *testing.T) {
	// Midday: the morning slots for the same day must be excluded.
	now := time.Date(2026, 9, 3, 12, 30, 0, 0, time.UTC)
	gen := newMockGenerator(rand.New(rand.NewSource(3)), fixedClock(now))

	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	out := gen.Generate(day, day, 60)

	slots := out["2026-09-03"]
	require.NotEmpty(t, slots)
	for _, s := range slots {
		dt, err := time.Parse(time.RFC3339, s.Datetime)
		require.NoError(t, err)
		assert.True(t, dt.After(now), "slot %s is not after generation time", s.Datetime)
	}
}

func TestMockGenerator_GranularityFollowsDuration(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	gen := newMockGenerator(rand.New(rand.NewSource(4)), fixedClock(now))

	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	hourly := gen.Generate(day, day, 60)["2026-09-03"]
	assert.Len(t, hourly, 9) // 09:00 .. 17:00

	twoHourly := gen.Generate(day, day, 90)["2026-09-03"]
	assert.Len(t, twoHourly, 5) // 09:00, 11:00, 13:00, 15:00, 17:00
	for i := 1; i < len(twoHourly); i++ {
		prev, _ := time.Parse(time.RFC3339, twoHourly[i-1].Datetime)
		cur, _ := time.Parse(time.RFC3339, twoHourly[i].Datetime)
		assert.Equal(t, 2*time.Hour, cur.Sub(prev))
	}
}

func TestMockGenerator_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	a := newMockGenerator(rand.New(rand.NewSource(7)), fixedClock(now)).Generate(day, day, 60)
	b := newMockGenerator(rand.New(rand.NewSource(7)), fixedClock(now)).Generate(day, day, 60)

	assert.Equal(t, a, b)
}
