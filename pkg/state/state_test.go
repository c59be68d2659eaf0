package state

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonegrid/zonegrid/pkg/convert"
	"github.com/zonegrid/zonegrid/pkg/tz"
	"github.com/zonegrid/zonegrid/pkg/zonelist"
)

func TestEncodeDefaultsAreMinimal(t *testing.T) {
	r := tz.NewResolver()
	v := View{List: zonelist.New(r)}

	q := Encode(v)
	assert.Equal(t, "UTC,America/New_York,Europe/Stockholm,Asia/Tokyo", q.Get("zones"))
	assert.Empty(t, q.Get("anchor"))
	assert.Empty(t, q.Get("h12"))
	assert.Empty(t, q.Get("src"))
	assert.Empty(t, q.Get("t"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := tz.NewResolver()
	list := zonelist.FromZones(r, []string{"Europe/London", "Asia/Tokyo", "UTC"}, "Asia/Tokyo")
	v := View{
		List:       list,
		TwelveHour: true,
		SourceZone: "Europe/London",
		SourceTime: "2024-01-01T23:30",
	}

	got := Decode(Encode(v), r)
	assert.Equal(t, v.List.Zones(), got.List.Zones())
	assert.Equal(t, "Asia/Tokyo", got.List.Anchor())
	assert.True(t, got.TwelveHour)
	assert.Equal(t, "Europe/London", got.SourceZone)
	assert.Equal(t, "2024-01-01T23:30", got.SourceTime)
}

func TestDecodeFallbacks(t *testing.T) {
	r := tz.NewResolver()

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, v View)
	}{
		{
			name:  "empty query yields defaults tracking now",
			query: "",
			check: func(t *testing.T, v View) {
				assert.Equal(t, tz.DefaultZones, v.List.Zones())
				assert.Equal(t, "UTC", v.SourceZone)
				assert.True(t, v.Live())
			},
		},
		{
			name:  "invalid zone entries are dropped silently",
			query: "zones=Asia/Tokyo,Narnia/Lantern,UTC",
			check: func(t *testing.T, v View) {
				assert.Equal(t, []string{"Asia/Tokyo", "UTC"}, v.List.Zones())
			},
		},
		{
			name:  "src outside the list falls back to the anchor",
			query: "zones=UTC,Asia/Tokyo&src=Europe/Paris",
			check: func(t *testing.T, v View) {
				assert.Equal(t, "UTC", v.SourceZone)
			},
		},
		{
			name:  "unparseable t falls back to the live clock",
			query: "zones=UTC&t=31-12-2024",
			check: func(t *testing.T, v View) {
				assert.True(t, v.Live())
			},
		},
		{
			name:  "h12 anything but 1 is off",
			query: "zones=UTC&h12=true",
			check: func(t *testing.T, v View) {
				assert.False(t, v.TwelveHour)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			tt.check(t, Decode(q, r))
		})
	}
}

func TestViewInstant(t *testing.T) {
	r := tz.NewResolver()
	engine := convert.New(r)
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)

	live := View{List: zonelist.New(r), SourceZone: "UTC"}
	assert.Equal(t, now, live.Instant(engine, now))

	edited := View{List: zonelist.New(r), SourceZone: "Asia/Tokyo", SourceTime: "2024-01-02T08:30"}
	got := edited.Instant(engine, now)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC), got.UTC())

	// A source time that stopped parsing degrades to now.
	broken := View{List: zonelist.New(r), SourceZone: "UTC", SourceTime: "garbage"}
	assert.Equal(t, now, broken.Instant(engine, now))
}
