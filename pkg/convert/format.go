package convert

import (
	"fmt"
	"time"
)

// Clock renders the time of day, 24-hour ("08:30") or 12-hour ("8:30 am").
func (w WallTime) Clock(twelveHour bool) string {
	if !twelveHour {
		return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
	}
	h := w.Hour % 12
	if h == 0 {
		h = 12
	}
	meridiem := "am"
	if w.Hour >= 12 {
		meridiem = "pm"
	}
	return fmt.Sprintf("%d:%02d %s", h, w.Minute, meridiem)
}

// HourLabel renders just the hour, for grid cells: "08" or "8am".
func (w WallTime) HourLabel(twelveHour bool) string {
	if !twelveHour {
		return fmt.Sprintf("%02d", w.Hour)
	}
	h := w.Hour % 12
	if h == 0 {
		h = 12
	}
	meridiem := "am"
	if w.Hour >= 12 {
		meridiem = "pm"
	}
	return fmt.Sprintf("%d%s", h, meridiem)
}

// Date renders the calendar date as "Mon, Jan 2".
func (w WallTime) Date() string {
	return time.Date(w.Year, w.Month, w.Day, 0, 0, 0, 0, time.UTC).Format("Mon, Jan 2")
}

// DeltaBadge renders a day delta as a short badge ("+1d", "-1d"); zero is
// empty so same-day cells stay unadorned.
func DeltaBadge(delta int) string {
	if delta == 0 {
		return ""
	}
	return fmt.Sprintf("%+dd", delta)
}
