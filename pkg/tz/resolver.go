// Package tz provides zone identifier validation, cached location loading,
// and enumeration of the zone database for search UIs.
//
// All identifiers are IANA time zone database keys (e.g. "Europe/Stockholm")
// or the literal "UTC". Offset rules and DST transitions come from the
// platform database; nothing here recomputes them.
package tz

import (
	"errors"
	"fmt"
	"time"

	// Guarantees zone data is available even on hosts without a zoneinfo tree.
	_ "time/tzdata"

	"github.com/maypok86/otter/v2"
)

// ErrUnknownZone reports an identifier the zone database does not recognize.
var ErrUnknownZone = errors.New("unknown time zone")

// Resolver validates zone identifiers and loads their Locations.
// time.LoadLocation re-reads zone data on every call, so resolved Locations
// are kept in an otter cache keyed by identifier. The cache holds static
// data for the life of the process; no TTL.
type Resolver struct {
	cache *otter.Cache[string, *time.Location]
}

// NewResolver returns a Resolver with an empty location cache.
func NewResolver() *Resolver {
	cache := otter.Must(&otter.Options[string, *time.Location]{
		MaximumSize:     2_000,
		InitialCapacity: 64,
	})
	return &Resolver{cache: cache}
}

// Resolve returns the Location for an IANA zone identifier or "UTC".
// Unrecognized identifiers return ErrUnknownZone wrapped with the name;
// a wrong Location is never substituted.
func (r *Resolver) Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknownZone)
	}
	if loc, ok := r.cache.GetIfPresent(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	r.cache.Set(name, loc)
	return loc, nil
}

// Valid reports whether name is a recognized zone identifier.
func (r *Resolver) Valid(name string) bool {
	_, err := r.Resolve(name)
	return err == nil
}
