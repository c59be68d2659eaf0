// Package convert projects absolute instants into target zones' wall-clock
// time and computes UTC offsets and day-rollover deltas relative to an
// anchor zone. Conversions are pure: same inputs, same outputs, no caching
// across instants.
package convert

import (
	"errors"
	"fmt"
	"time"

	"github.com/zonegrid/zonegrid/pkg/tz"
)

// WallTime is a local calendar projection of an instant: the date and
// time-of-day a local observer would read off a clock.
type WallTime struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Hour   int        `json:"hour"`
	Minute int        `json:"minute"`
}

// Result is the projection of one instant into one target zone.
// Derived fresh on every call, never persisted.
type Result struct {
	Zone             string   `json:"zone"`
	Local            WallTime `json:"local"`
	Abbrev           string   `json:"abbrev"`
	UTCOffsetMinutes int      `json:"utc_offset_minutes"`
	// DayDelta is the signed count of calendar-day boundaries between the
	// target zone's local date and the anchor zone's local date for the
	// same instant. Can exceed 1 in magnitude across the antimeridian.
	DayDelta int `json:"day_delta"`
	// Night marks a projected local hour in [22,24) or [0,6).
	Night bool `json:"night"`
}

// Engine performs zone conversions. It holds no mutable state beyond the
// resolver's location cache; every method is safe for concurrent use.
type Engine struct {
	resolver *tz.Resolver
}

// New returns an Engine backed by the given resolver.
func New(resolver *tz.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Convert projects instant into each of zones, in input order, computing
// wall time, UTC offset, and the day delta relative to anchor. The output
// has the same order and cardinality as zones. An unrecognized zone (in
// zones or as anchor) fails with tz.ErrUnknownZone identifying the name;
// callers filter the offending entry and convert the remainder.
func (e *Engine) Convert(instant time.Time, anchor string, zones []string) ([]Result, error) {
	if err := checkInstant(instant); err != nil {
		return nil, err
	}
	anchorLoc, err := e.resolver.Resolve(anchor)
	if err != nil {
		return nil, err
	}
	anchorDay := civilDay(instant.In(anchorLoc))

	results := make([]Result, 0, len(zones))
	for _, zone := range zones {
		loc, err := e.resolver.Resolve(zone)
		if err != nil {
			return nil, err
		}
		local := instant.In(loc)
		results = append(results, Result{
			Zone: zone,
			Local: WallTime{
				Year:   local.Year(),
				Month:  local.Month(),
				Day:    local.Day(),
				Hour:   local.Hour(),
				Minute: local.Minute(),
			},
			Abbrev:           tz.Abbreviation(instant, loc),
			UTCOffsetMinutes: tz.OffsetMinutes(instant, loc),
			DayDelta:         civilDay(local) - anchorDay,
			Night:            isNight(local.Hour()),
		})
	}
	return results, nil
}

// civilDay maps a local calendar date to a day count by anchoring that
// date's midnight in UTC and dividing out the day length. Differencing two
// civilDay values counts calendar-day boundaries exactly, which a naive
// hour-of-day comparison gets wrong for 30/45-minute offsets and for zone
// pairs more than 24 hours apart.
func civilDay(local time.Time) int {
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / 86400)
}

func isNight(hour int) bool {
	return hour >= 22 || hour < 6
}

// Instants outside this range are rejected rather than projected into
// nonsense dates.
const (
	minYear = 1
	maxYear = 9999
)

// ErrBadInstant reports an instant outside the representable range.
var ErrBadInstant = errors.New("instant outside supported range")

func checkInstant(instant time.Time) error {
	year := instant.UTC().Year()
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: year %d", ErrBadInstant, year)
	}
	return nil
}
