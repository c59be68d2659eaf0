package convert

import "time"

// GridRows is fixed: one row per hour offset from the anchor's midnight.
const GridRows = 24

// Row is one hour of the day grid: the absolute instant "midnight + Hour"
// in the anchor zone, projected into every target zone.
type Row struct {
	// Hour is the offset from the anchor zone's midnight, 0..23. During a
	// DST transition in the anchor zone the projected anchor wall hour can
	// differ from this index; the index counts absolute hours.
	Hour int `json:"hour"`
	// Current is set on at most one row: the one holding "now", and only
	// when the grid's anchor date is today in the anchor zone.
	Current bool     `json:"current"`
	Instant int64    `json:"instant_ms"` // epoch milliseconds, for clients
	Cells   []Result `json:"cells"`
}

// Grid is the 24-hour comparison view: rows are hours of the anchor
// zone's day, columns are target zones. Night and day-delta state is per
// cell, since each column classifies against its own projected wall time.
type Grid struct {
	AnchorZone string   `json:"anchor_zone"`
	AnchorDate WallTime `json:"anchor_date"` // midnight defining row 0
	Rows       []Row    `json:"rows"`
}

// DayGrid builds the grid for the anchor zone's calendar day containing
// anchorInstant. Row i is the absolute instant midnight+i hours, converted
// against zones; now determines which row, if any, is flagged Current.
// Always exactly GridRows rows.
func (e *Engine) DayGrid(anchorZone string, anchorInstant time.Time, zones []string, now time.Time) (*Grid, error) {
	if err := checkInstant(anchorInstant); err != nil {
		return nil, err
	}
	loc, err := e.resolver.Resolve(anchorZone)
	if err != nil {
		return nil, err
	}

	local := anchorInstant.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	nowLocal := now.In(loc)
	sameDay := nowLocal.Year() == local.Year() &&
		nowLocal.Month() == local.Month() &&
		nowLocal.Day() == local.Day()

	grid := &Grid{
		AnchorZone: anchorZone,
		AnchorDate: WallTime{
			Year:  local.Year(),
			Month: local.Month(),
			Day:   local.Day(),
		},
		Rows: make([]Row, 0, GridRows),
	}
	for i := range GridRows {
		instant := midnight.Add(time.Duration(i) * time.Hour)
		cells, err := e.Convert(instant, anchorZone, zones)
		if err != nil {
			return nil, err
		}
		grid.Rows = append(grid.Rows, Row{
			Hour:    i,
			Current: sameDay && nowLocal.Hour() == i,
			Instant: instant.UnixMilli(),
			Cells:   cells,
		})
	}
	return grid, nil
}
