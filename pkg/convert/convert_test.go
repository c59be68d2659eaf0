package convert

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/zonegrid/zonegrid/pkg/tz"
)

func newEngine() *Engine {
	return New(tz.NewResolver())
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q): %v", name, err)
	}
	return loc
}

func TestConvertOffsetMatchesPlatform(t *testing.T) {
	e := newEngine()
	instant := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	for _, zone := range []string{"UTC", "America/New_York", "Asia/Kolkata", "Asia/Kathmandu", "Pacific/Kiritimati"} {
		results, err := e.Convert(instant, "UTC", []string{zone})
		if err != nil {
			t.Fatalf("Convert(%q): %v", zone, err)
		}
		loc := mustLoad(t, zone)
		_, wantSecs := instant.In(loc).Zone()
		if got := results[0].UTCOffsetMinutes; got != wantSecs/60 {
			t.Errorf("%s offset = %d minutes, want %d", zone, got, wantSecs/60)
		}
	}
}

func TestConvertDayDelta(t *testing.T) {
	e := newEngine()
	midway := mustLoad(t, "Pacific/Midway")

	tests := []struct {
		name      string
		instant   time.Time
		anchor    string
		zone      string
		wantLocal WallTime
		wantDelta int
	}{
		{
			name:      "UTC evening rolls into Tokyo morning",
			instant:   time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
			anchor:    "UTC",
			zone:      "Asia/Tokyo",
			wantLocal: WallTime{2024, time.January, 2, 8, 30},
			wantDelta: 1,
		},
		{
			name:      "UTC early morning rolls back in Los Angeles",
			instant:   time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC),
			anchor:    "UTC",
			zone:      "America/Los_Angeles",
			wantLocal: WallTime{2023, time.December, 31, 16, 30},
			wantDelta: -1,
		},
		{
			name:      "45-minute offset same day",
			instant:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			anchor:    "UTC",
			zone:      "Asia/Kathmandu",
			wantLocal: WallTime{2024, time.January, 1, 17, 45},
			wantDelta: 0,
		},
		{
			name:      "antimeridian pair one day apart",
			instant:   time.Date(2024, 1, 1, 0, 30, 0, 0, midway),
			anchor:    "Pacific/Midway",
			zone:      "Pacific/Kiritimati",
			wantLocal: WallTime{2024, time.January, 2, 1, 30},
			wantDelta: 1,
		},
		{
			// 25 hours between UTC-11 and UTC+14: just before Midway
			// midnight, Kiritimati is already two calendar days ahead.
			name:      "antimeridian pair two days apart",
			instant:   time.Date(2024, 1, 1, 23, 30, 0, 0, midway),
			anchor:    "Pacific/Midway",
			zone:      "Pacific/Kiritimati",
			wantLocal: WallTime{2024, time.January, 3, 0, 30},
			wantDelta: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := e.Convert(tt.instant, tt.anchor, []string{tt.zone})
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			got := results[0]
			if got.Local != tt.wantLocal {
				t.Errorf("local = %+v, want %+v", got.Local, tt.wantLocal)
			}
			if got.DayDelta != tt.wantDelta {
				t.Errorf("day delta = %d, want %d", got.DayDelta, tt.wantDelta)
			}
		})
	}
}

func TestConvertAnchorDeltaAlwaysZero(t *testing.T) {
	e := newEngine()
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 12, 30, 0, 0, time.UTC),
	}
	for _, zone := range []string{"UTC", "Asia/Tokyo", "Pacific/Kiritimati", "America/St_Johns"} {
		for _, instant := range instants {
			results, err := e.Convert(instant, zone, []string{zone})
			if err != nil {
				t.Fatalf("Convert(%q): %v", zone, err)
			}
			if results[0].DayDelta != 0 {
				t.Errorf("%s at %v: anchor day delta = %d, want 0", zone, instant, results[0].DayDelta)
			}
		}
	}
}

func TestConvertNightClassification(t *testing.T) {
	e := newEngine()

	tests := []struct {
		hour  int
		night bool
	}{
		{0, true}, {5, true}, {6, false}, {12, false}, {21, false}, {22, true}, {23, true},
	}
	for _, tt := range tests {
		instant := time.Date(2024, 3, 15, tt.hour, 0, 0, 0, time.UTC)
		results, err := e.Convert(instant, "UTC", []string{"UTC"})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if results[0].Night != tt.night {
			t.Errorf("hour %d: night = %v, want %v", tt.hour, results[0].Night, tt.night)
		}
	}
}

func TestConvertPreservesOrderAndCardinality(t *testing.T) {
	e := newEngine()
	zones := []string{"Asia/Tokyo", "UTC", "Europe/Stockholm", "America/New_York"}
	results, err := e.Convert(time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC), "UTC", zones)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(results) != len(zones) {
		t.Fatalf("got %d results, want %d", len(results), len(zones))
	}
	for i, zone := range zones {
		if results[i].Zone != zone {
			t.Errorf("results[%d].Zone = %q, want %q", i, results[i].Zone, zone)
		}
	}
}

func TestConvertUnknownZone(t *testing.T) {
	e := newEngine()
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := e.Convert(instant, "UTC", []string{"Mars/Olympus_Mons"}); !errors.Is(err, tz.ErrUnknownZone) {
		t.Errorf("target zone error = %v, want tz.ErrUnknownZone", err)
	}
	if _, err := e.Convert(instant, "Nope/Nowhere", []string{"UTC"}); !errors.Is(err, tz.ErrUnknownZone) {
		t.Errorf("anchor zone error = %v, want tz.ErrUnknownZone", err)
	}
}

func TestConvertRejectsOutOfRangeInstant(t *testing.T) {
	e := newEngine()
	instant := time.Date(10001, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := e.Convert(instant, "UTC", []string{"UTC"}); !errors.Is(err, ErrBadInstant) {
		t.Errorf("error = %v, want ErrBadInstant", err)
	}
}

func TestConvertIdempotent(t *testing.T) {
	e := newEngine()
	instant := time.Date(2024, 11, 3, 1, 30, 0, 0, time.UTC) // US fall-back morning
	zones := []string{"America/New_York", "Europe/Stockholm", "Asia/Kolkata"}

	first, err := e.Convert(instant, "UTC", zones)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	second, err := e.Convert(instant, "UTC", zones)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated conversion differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
