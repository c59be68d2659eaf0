package tz

import (
	"fmt"
	"time"
)

// OffsetMinutes returns the signed UTC offset, in minutes east of UTC,
// effective for t in loc. DST is already folded in by the zone lookup.
func OffsetMinutes(t time.Time, loc *time.Location) int {
	_, secs := t.In(loc).Zone()
	return secs / 60
}

// Abbreviation returns the zone abbreviation (e.g. "CEST") effective for t in loc.
func Abbreviation(t time.Time, loc *time.Location) string {
	name, _ := t.In(loc).Zone()
	return name
}

// FormatOffset renders a signed minute offset as "+2", "-8" or "+5:30".
// Minutes are printed only for zones that are not on a whole hour.
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%s%d", sign, h)
	}
	return fmt.Sprintf("%s%d:%02d", sign, h, m)
}
