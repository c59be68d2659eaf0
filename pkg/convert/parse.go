package convert

import (
	"fmt"
	"time"
)

// LocalTimeLayout is the wall-clock layout used by the t query parameter
// and the CLI --time flag.
const LocalTimeLayout = "2006-01-02T15:04"

// ParseLocalTime interprets s as a wall-clock time in the named zone and
// returns the absolute instant. A wall time that does not exist in the
// zone (spring-forward gap) normalizes forward per the platform database,
// so "02:30" on a skip-to-03:00 night resolves to a defined instant
// deterministically rather than failing. Malformed or out-of-range input
// fails with ErrBadInstant; callers substitute the current instant.
func (e *Engine) ParseLocalTime(s, zone string) (time.Time, error) {
	loc, err := e.resolver.Resolve(zone)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(LocalTimeLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadInstant, s)
	}
	if err := checkInstant(t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}
