// Package zonelist maintains the ordered set of zones a view compares,
// together with the anchor zone whose midnight defines the day grid.
// The anchor is an explicit field rather than "whichever zone is first",
// so reordering the list never silently changes grid semantics.
package zonelist

import (
	"errors"
	"fmt"

	"github.com/zonegrid/zonegrid/pkg/tz"
)

// ErrNotInList reports an operation on a zone the list does not contain.
var ErrNotInList = errors.New("zone not in list")

// List is an ordered set of zone identifiers. Order is user-significant
// (it drives column order); duplicates are rejected on insertion. A List
// is never empty: removing the last zone resets it to tz.DefaultZones.
type List struct {
	resolver *tz.Resolver
	anchor   string
	zones    []string
}

// New returns a List seeded with tz.DefaultZones, anchored on its first entry.
func New(resolver *tz.Resolver) *List {
	l := &List{resolver: resolver}
	l.reset()
	return l
}

// FromZones builds a List from decoded state: invalid identifiers are
// silently dropped, duplicates collapse to their first occurrence, and an
// empty result falls back to the defaults. anchor is honored when it
// survives filtering, else the first remaining zone anchors.
func FromZones(resolver *tz.Resolver, zones []string, anchor string) *List {
	l := &List{resolver: resolver}
	seen := make(map[string]struct{}, len(zones))
	for _, zone := range zones {
		if _, dup := seen[zone]; dup || !resolver.Valid(zone) {
			continue
		}
		seen[zone] = struct{}{}
		l.zones = append(l.zones, zone)
	}
	if len(l.zones) == 0 {
		l.reset()
		return l
	}
	l.anchor = l.zones[0]
	if _, ok := seen[anchor]; ok {
		l.anchor = anchor
	}
	return l
}

func (l *List) reset() {
	l.zones = append([]string(nil), tz.DefaultZones...)
	l.anchor = l.zones[0]
}

// Zones returns a copy of the identifiers in display order.
func (l *List) Zones() []string {
	return append([]string(nil), l.zones...)
}

// Anchor returns the zone whose midnight defines row 0 of the day grid.
func (l *List) Anchor() string { return l.anchor }

// Len returns the number of zones in the list.
func (l *List) Len() int { return len(l.zones) }

// Contains reports membership.
func (l *List) Contains(zone string) bool {
	for _, z := range l.zones {
		if z == zone {
			return true
		}
	}
	return false
}

// Add appends zone. Adding a zone already present is a no-op; an
// unrecognized identifier is rejected with the resolver's error.
func (l *List) Add(zone string) error {
	if l.Contains(zone) {
		return nil
	}
	if _, err := l.resolver.Resolve(zone); err != nil {
		return err
	}
	l.zones = append(l.zones, zone)
	return nil
}

// Remove deletes zone from the list. Removing the last remaining zone
// substitutes the default set instead of leaving the list empty. When the
// anchor is removed, the first remaining zone becomes the anchor.
func (l *List) Remove(zone string) error {
	idx := -1
	for i, z := range l.zones {
		if z == zone {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotInList, zone)
	}
	l.zones = append(l.zones[:idx], l.zones[idx+1:]...)
	if len(l.zones) == 0 {
		l.reset()
		return nil
	}
	if l.anchor == zone {
		l.anchor = l.zones[0]
	}
	return nil
}

// Move places zone at index, clamped to the list bounds, preserving the
// relative order of the others. The anchor does not change.
func (l *List) Move(zone string, index int) error {
	idx := -1
	for i, z := range l.zones {
		if z == zone {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotInList, zone)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(l.zones) {
		index = len(l.zones) - 1
	}
	l.zones = append(l.zones[:idx], l.zones[idx+1:]...)
	l.zones = append(l.zones[:index], append([]string{zone}, l.zones[index:]...)...)
	return nil
}

// SetAnchor makes zone the grid anchor. The zone must already be in the list.
func (l *List) SetAnchor(zone string) error {
	if !l.Contains(zone) {
		return fmt.Errorf("%w: %q", ErrNotInList, zone)
	}
	l.anchor = zone
	return nil
}
