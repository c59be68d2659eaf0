package main

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zonegrid/zonegrid/pkg/convert"
	"github.com/zonegrid/zonegrid/pkg/state"
	"github.com/zonegrid/zonegrid/pkg/tz"
)

// stripEntry is one zone in the comparison strip at the top of the page.
type stripEntry struct {
	Zone   string
	City   string
	Abbrev string
	Offset string
	Clock  string
	Date   string
	Delta  string
	Night  bool
	Anchor bool
	Source bool
}

type gridCell struct {
	Label string
	Delta string
	Night bool
}

type gridRow struct {
	Label   string
	Current bool
	Cells   []gridCell
}

type homePage struct {
	Strip      []stripEntry
	Columns    []string
	Rows       []gridRow
	AnchorZone string
	AnchorDate string
	SourceZone string
	SourceTime string
	TwelveHour bool
	Live       bool
	// ShareQuery is an already-encoded query string; template.URL keeps
	// html/template from escaping its separators a second time.
	ShareQuery template.URL
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	requestID := w.Header().Get("X-Request-ID")

	view := state.Decode(r.URL.Query(), s.resolver)
	now := s.now()
	instant := view.Instant(s.engine, now)

	page, err := s.buildPage(view, instant, now)
	if err != nil {
		// Decode guarantees a valid zone list, so this is unexpected.
		s.logger.Error("Page build failed", "request_id", requestID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := s.tmpl.Execute(w, page); err != nil {
		s.logger.Error("Template execution failed", "request_id", requestID, "error", err)
	}
}

func (s *server) buildPage(view state.View, instant, now time.Time) (*homePage, error) {
	anchor := view.List.Anchor()
	zones := view.List.Zones()

	results, err := s.engine.Convert(instant, anchor, zones)
	if err != nil {
		return nil, err
	}
	grid, err := s.engine.DayGrid(anchor, instant, zones, now)
	if err != nil {
		return nil, err
	}

	page := &homePage{
		Columns:    make([]string, 0, len(zones)),
		AnchorZone: anchor,
		AnchorDate: grid.AnchorDate.Date(),
		SourceZone: view.SourceZone,
		SourceTime: view.SourceTime,
		TwelveHour: view.TwelveHour,
		Live:       view.Live(),
		ShareQuery: template.URL(state.Encode(view).Encode()),
	}
	if page.SourceTime == "" {
		// Prefill the time editor with the current wall time in the
		// source zone so editing starts from what the user sees.
		for _, res := range results {
			if res.Zone == view.SourceZone {
				page.SourceTime = formatEditValue(res.Local)
			}
		}
	}

	for _, res := range results {
		page.Strip = append(page.Strip, stripEntry{
			Zone:   res.Zone,
			City:   cityName(res.Zone),
			Abbrev: res.Abbrev,
			Offset: "UTC" + offsetLabel(res.UTCOffsetMinutes),
			Clock:  res.Local.Clock(view.TwelveHour),
			Date:   res.Local.Date(),
			Delta:  convert.DeltaBadge(res.DayDelta),
			Night:  res.Night,
			Anchor: res.Zone == anchor,
			Source: res.Zone == view.SourceZone,
		})
		page.Columns = append(page.Columns, cityName(res.Zone))
	}

	for _, row := range grid.Rows {
		gr := gridRow{
			Label:   strconv.Itoa(row.Hour),
			Current: row.Current,
			Cells:   make([]gridCell, 0, len(row.Cells)),
		}
		for _, cell := range row.Cells {
			gr.Cells = append(gr.Cells, gridCell{
				Label: cell.Local.HourLabel(view.TwelveHour),
				Delta: convert.DeltaBadge(cell.DayDelta),
				Night: cell.Night,
			})
		}
		page.Rows = append(page.Rows, gr)
	}
	return page, nil
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	view := state.Decode(r.URL.Query(), s.resolver)
	now := s.now()

	results, err := s.engine.Convert(view.Instant(s.engine, now), view.List.Anchor(), view.List.Zones())
	if err != nil {
		s.logger.Error("Conversion failed", "error", err)
		http.Error(w, "Conversion failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.logger, results)
}

func (s *server) handleGrid(w http.ResponseWriter, r *http.Request) {
	view := state.Decode(r.URL.Query(), s.resolver)
	now := s.now()

	grid, err := s.engine.DayGrid(view.List.Anchor(), view.Instant(s.engine, now), view.List.Zones(), now)
	if err != nil {
		s.logger.Error("Grid build failed", "error", err)
		http.Error(w, "Grid build failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.logger, grid)
}

const zoneSearchLimit = 25

// handleZones serves the add-zone search box. The catalog is immutable per
// process, so responses are cached by query.
func (s *server) handleZones(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	cacheKey := "zones:" + strings.ToLower(q)
	if data, ok := s.cache.GetIfPresent(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		if _, err := w.Write(data); err != nil {
			s.logger.Error("Failed to write cached response", "error", err)
		}
		return
	}

	matches := s.catalog.Search(q, zoneSearchLimit)
	if matches == nil {
		matches = []string{}
	}
	data, err := json.Marshal(matches)
	if err != nil {
		s.logger.Error("Zone search encoding failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	s.cache.Set(cacheKey, data)

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// cityName shortens a zone identifier for display: the last path segment
// with underscores spaced ("America/Los_Angeles" -> "Los Angeles").
func cityName(zone string) string {
	if i := strings.LastIndex(zone, "/"); i >= 0 {
		zone = zone[i+1:]
	}
	return strings.ReplaceAll(zone, "_", " ")
}

// offsetLabel matches the strip's compact style: "+2", "-8", "+5:30", "±0".
func offsetLabel(minutes int) string {
	if minutes == 0 {
		return "±0"
	}
	return tz.FormatOffset(minutes)
}

func formatEditValue(w convert.WallTime) string {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, 0, 0, time.UTC).Format(convert.LocalTimeLayout)
}
