// Package state encodes view state to and from URL query parameters, the
// only persistence surface the application has. Encode and Decode are pure;
// the view object itself is owned by the UI layer and never touched by the
// conversion engine.
//
// Parameters:
//
//	zones  comma-separated zone identifiers, anchor first
//	anchor anchor zone, when not the first list entry
//	h12    "1" for 12-hour display, absent otherwise
//	src    source zone for the edited time
//	t      edited wall-clock time in src ("2006-01-02T15:04"); absent when
//	       the view tracks the live clock
//
// Decoding never fails: invalid zone entries are dropped, a fully invalid
// list falls back to the defaults, an invalid src falls back to the anchor,
// and an unparseable t falls back to tracking "now".
package state

import (
	"net/url"
	"strings"
	"time"

	"github.com/zonegrid/zonegrid/pkg/convert"
	"github.com/zonegrid/zonegrid/pkg/tz"
	"github.com/zonegrid/zonegrid/pkg/zonelist"
)

// View is the complete shareable state of one comparison view.
type View struct {
	List       *zonelist.List
	TwelveHour bool
	// SourceZone is the zone the user edited the time in. Always a member
	// of List after Decode.
	SourceZone string
	// SourceTime is the edited wall time in SourceZone, empty when the
	// view follows the live clock.
	SourceTime string
}

// Encode mirrors the view into query parameters. Only non-default state is
// written, keeping shared URLs short.
func Encode(v View) url.Values {
	q := url.Values{}
	q.Set("zones", strings.Join(v.List.Zones(), ","))
	if anchor := v.List.Anchor(); anchor != v.List.Zones()[0] {
		q.Set("anchor", anchor)
	}
	if v.TwelveHour {
		q.Set("h12", "1")
	}
	if v.SourceZone != "" && v.SourceZone != v.List.Anchor() {
		q.Set("src", v.SourceZone)
	}
	if v.SourceTime != "" {
		q.Set("t", v.SourceTime)
	}
	return q
}

// Decode rebuilds a View from query parameters, applying the documented
// fallbacks. The resolver filters zone identifiers; the returned view is
// always renderable.
func Decode(q url.Values, resolver *tz.Resolver) View {
	var zones []string
	for _, part := range strings.Split(q.Get("zones"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			zones = append(zones, part)
		}
	}
	list := zonelist.FromZones(resolver, zones, q.Get("anchor"))

	v := View{
		List:       list,
		TwelveHour: q.Get("h12") == "1",
		SourceZone: list.Anchor(),
	}
	if src := q.Get("src"); src != "" && list.Contains(src) {
		v.SourceZone = src
	}
	if t := q.Get("t"); t != "" {
		if _, err := time.Parse(convert.LocalTimeLayout, t); err == nil {
			v.SourceTime = t
		}
	}
	return v
}

// Instant resolves the view's reference instant: the edited wall time in
// the source zone when one is set, otherwise now.
func (v View) Instant(engine *convert.Engine, now time.Time) time.Time {
	if v.SourceTime == "" {
		return now
	}
	t, err := engine.ParseLocalTime(v.SourceTime, v.SourceZone)
	if err != nil {
		// Malformed or out-of-range edits degrade to the live clock.
		return now
	}
	return t
}

// Live reports whether the view tracks the live clock.
func (v View) Live() bool { return v.SourceTime == "" }
