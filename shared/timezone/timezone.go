package timezone

import (
	"fmt"
	"resto/config"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var location atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = fallbackZone
	}

	if err := Set(name); err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Asia/Jakarta' or 'UTC'")
		location.Store(time.UTC)
	}
}

// Set switches the application timezone to the named IANA location.
func Set(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	location.Store(loc)
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return nil
}

// GetLocation returns the application timezone, UTC until one is set.
func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DayRange returns the half-open interval [start, end) of the calendar day that
// contains t, measured in the application timezone.
func DayRange(t time.Time) (time.Time, time.Time) {
	local := ToAppTime(t)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())

	return start, start.AddDate(0, 0, 1)
}
