package convert

import (
	"testing"
	"time"
)

func TestWallTimeClock(t *testing.T) {
	tests := []struct {
		hour, minute int
		twelve       bool
		want         string
	}{
		{0, 5, false, "00:05"},
		{0, 5, true, "12:05 am"},
		{9, 30, true, "9:30 am"},
		{12, 0, true, "12:00 pm"},
		{15, 45, true, "3:45 pm"},
		{23, 59, false, "23:59"},
	}
	for _, tt := range tests {
		w := WallTime{Year: 2024, Month: time.June, Day: 1, Hour: tt.hour, Minute: tt.minute}
		if got := w.Clock(tt.twelve); got != tt.want {
			t.Errorf("Clock(%02d:%02d, twelve=%v) = %q, want %q", tt.hour, tt.minute, tt.twelve, got, tt.want)
		}
	}
}

func TestWallTimeHourLabel(t *testing.T) {
	w := WallTime{Year: 2024, Month: time.June, Day: 1, Hour: 13}
	if got := w.HourLabel(false); got != "13" {
		t.Errorf("HourLabel(24h) = %q", got)
	}
	if got := w.HourLabel(true); got != "1pm" {
		t.Errorf("HourLabel(12h) = %q", got)
	}
}

func TestDeltaBadge(t *testing.T) {
	tests := []struct {
		delta int
		want  string
	}{
		{0, ""},
		{1, "+1d"},
		{-1, "-1d"},
		{2, "+2d"},
	}
	for _, tt := range tests {
		if got := DeltaBadge(tt.delta); got != tt.want {
			t.Errorf("DeltaBadge(%d) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}
