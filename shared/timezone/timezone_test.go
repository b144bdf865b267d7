package timezone_test

import (
	"resto/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestSet(t *testing.T) {
	original := timezone.GetLocation()
	t.Cleanup(func() { require.NoError(t, timezone.Set(original.String())) })

	require.NoError(t, timezone.Set("Asia/Jakarta"))

	at := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02 03:00", timezone.Format(at, "2006-01-02 15:04"))

	start, _ := timezone.DayRange(at)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, timezone.GetLocation()), start)
}

func TestSet_Unknown(t *testing.T) {
	before := timezone.GetLocation()

	err := timezone.Set("Mars/Olympus_Mons")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown timezone")
	assert.Equal(t, before, timezone.GetLocation())
}

func TestDayRange(t *testing.T) {
	loc := timezone.GetLocation()

	tests := []struct {
		name string
		at   time.Time
	}{
		{
			name: "midday",
			at:   time.Date(2026, 10, 19, 12, 30, 0, 0, loc),
		},
		{
			name: "one minute before midnight",
			at:   time.Date(2026, 10, 19, 23, 59, 0, 0, loc),
		},
		{
			name: "exactly midnight",
			at:   time.Date(2026, 10, 19, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := timezone.DayRange(tt.at)

			assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, loc), start)
			assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, loc), end)
			assert.False(t, tt.at.Before(start))
			assert.True(t, tt.at.Before(end))
		})
	}
}

func TestDayRange_NextDayExcluded(t *testing.T) {
	loc := timezone.GetLocation()
	lateAssign := time.Date(2026, 10, 19, 23, 59, 0, 0, loc)
	nextMorning := time.Date(2026, 10, 20, 0, 1, 0, 0, loc)

	start, end := timezone.DayRange(nextMorning)

	assert.True(t, lateAssign.Before(start), "a row written before midnight is not part of the next day")
	assert.True(t, nextMorning.Before(end))
}
