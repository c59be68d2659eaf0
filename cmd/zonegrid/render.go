package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/zonegrid/zonegrid/pkg/convert"
	"github.com/zonegrid/zonegrid/pkg/tz"
	"github.com/zonegrid/zonegrid/pkg/zonelist"
)

// render draws the comparison grid transposed for the terminal: one row
// per zone, 24 hour columns of the anchor zone's day, night hours dimmed
// and the current hour highlighted.
func render(engine *convert.Engine, list *zonelist.List, now time.Time) error {
	color.NoColor = !colorEnabled

	anchor := list.Anchor()
	instant := now
	if atFlag != "" {
		parsed, err := engine.ParseLocalTime(atFlag, anchor)
		if err != nil {
			// Malformed or out-of-range input degrades to the live clock.
			logger.Debug("Falling back to current time", "at", atFlag, "error", err)
		} else {
			instant = parsed
		}
	}

	grid, err := engine.DayGrid(anchor, instant, list.Zones(), now)
	if err != nil {
		return err
	}
	strip, err := engine.Convert(instant, anchor, list.Zones())
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateColumns = false
	t.Style().Title.Align = text.AlignCenter
	t.Style().Color.IndexColumn = text.Colors{text.FgHiYellow, text.Bold}

	if atFlag == "" {
		t.SetTitle("Now: %s", now.Format("Monday, January 2, 2006 15:04:05 MST"))
		for _, row := range grid.Rows {
			if row.Current {
				// +2: column 1 is the zone label, hour columns count from 0.
				t.SetIndexColumn(row.Hour + 2)
			}
		}
	} else {
		t.SetTitle("Day in %s: %s", anchor, grid.AnchorDate.Date())
	}

	night := color.New(color.FgHiBlack)
	rollover := color.New(color.FgCyan)

	for i, res := range strip {
		cells := make([]any, 0, convert.GridRows+1)
		cells = append(cells, zoneLabel(res, anchor))
		for _, row := range grid.Rows {
			cell := row.Cells[i]
			label := cell.Local.HourLabel(twelveHour)
			switch {
			case cell.Local.Hour == 0 && cell.Local.Minute == 0:
				// Midnight marks the day boundary: show the weekday.
				label = rollover.Sprint(weekday(cell.Local))
			case cell.Night:
				label = night.Sprint(label)
			}
			cells = append(cells, label)
		}
		t.AppendRow(cells)
	}

	t.Render()
	return nil
}

// zoneLabel formats the strip entry used as the row label:
// zone [abbrev, offset], converted local time, and a day badge when the
// zone's date differs from the anchor's.
func zoneLabel(res convert.Result, anchor string) string {
	label := fmt.Sprintf("%s [%s,%s]", res.Zone, res.Abbrev, tz.FormatOffset(res.UTCOffsetMinutes))
	if res.Zone == anchor {
		label = "*" + label
	}
	clock := res.Local.Clock(twelveHour)
	if badge := convert.DeltaBadge(res.DayDelta); badge != "" {
		clock += " " + badge
	}
	return fmt.Sprintf("%s\n%s, %s", label, res.Local.Date(), clock)
}

func weekday(w convert.WallTime) string {
	return time.Date(w.Year, w.Month, w.Day, 0, 0, 0, 0, time.UTC).Format("Mon")
}
