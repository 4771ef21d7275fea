// Package render implements the two rendering pipelines: the projected
// route map and the 24-hour duty-status log sheet. Both are pure functions
// of (trip data, target canvas, style); they hold no state between calls
// and fully clear the canvas on every invocation.
package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eldview.openfreight.org/internal/models"
)

// MarkerKind categorizes route map markers. The kind→color mapping is a
// contract consumers rely on for legend and accessibility matching.
type MarkerKind string

const (
	MarkerCurrent  MarkerKind = "current"
	MarkerPickup   MarkerKind = "pickup"
	MarkerDropoff  MarkerKind = "dropoff"
	MarkerRestStop MarkerKind = "rest_stop"
)

// statusRows fixes the vertical grid row per duty status, top to bottom.
// This is the regulatory sheet order and is deliberately not configurable.
var statusRows = map[models.DutyStatus]int{
	models.StatusOffDuty:      0,
	models.StatusSleeperBerth: 1,
	models.StatusDriving:      2,
	models.StatusOnDuty:       3,
}

// StatusRow returns the log sheet grid row for a duty status. The second
// return value is false for statuses outside the regulatory set; entries
// with such statuses draw no segment.
func StatusRow(s models.DutyStatus) (int, bool) {
	row, ok := statusRows[s]
	return row, ok
}

// MapStyle controls the route map surface.
type MapStyle struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	Background   string  `yaml:"background"`
	RouteColor   string  `yaml:"route_color"`
	RouteWidth   float64 `yaml:"route_width"`
	MarkerRadius float64 `yaml:"marker_radius"`
	InnerRadius  float64 `yaml:"inner_radius"`
	FontSize     float64 `yaml:"font_size"`
	TextColor    string  `yaml:"text_color"`
}

// SheetStyle controls the log sheet surface and grid metrics.
type SheetStyle struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Background    string  `yaml:"background"`
	GridColor     string  `yaml:"grid_color"`
	TextColor     string  `yaml:"text_color"`
	FontSize      float64 `yaml:"font_size"`
	GridLeft      float64 `yaml:"grid_left"`
	GridTop       float64 `yaml:"grid_top"`
	GridWidth     float64 `yaml:"grid_width"`
	RowHeight     float64 `yaml:"row_height"`
	SegmentWidth  float64 `yaml:"segment_width"`
	MinLabelWidth float64 `yaml:"min_label_width"`
}

// Style bundles everything the renderers need beyond the trip itself.
// The color maps are explicit enumerated lookup tables so the legend and
// grid-row contracts live in one place and are testable independently.
type Style struct {
	Map          MapStyle                     `yaml:"map"`
	Sheet        SheetStyle                   `yaml:"sheet"`
	MarkerColors map[MarkerKind]string        `yaml:"marker_colors"`
	StatusColors map[models.DutyStatus]string `yaml:"status_colors"`
}

// DefaultStyle returns the compiled-in style. Each call returns fresh maps
// so callers can overlay without sharing state.
func DefaultStyle() Style {
	return Style{
		Map: MapStyle{
			Width:        1000,
			Height:       600,
			Padding:      50,
			Background:   "#ffffff",
			RouteColor:   "#2563eb",
			RouteWidth:   3,
			MarkerRadius: 10,
			InnerRadius:  4,
			FontSize:     12,
			TextColor:    "#1f2937",
		},
		Sheet: SheetStyle{
			Width:         1000,
			Height:        700,
			Background:    "#ffffff",
			GridColor:     "#94a3b8",
			TextColor:     "#1f2937",
			FontSize:      12,
			GridLeft:      110,
			GridTop:       130,
			GridWidth:     850,
			RowHeight:     40,
			SegmentWidth:  6,
			MinLabelWidth: 40,
		},
		MarkerColors: map[MarkerKind]string{
			MarkerCurrent:  "#22c55e", // green
			MarkerPickup:   "#f59e0b", // amber
			MarkerDropoff:  "#ef4444", // red
			MarkerRestStop: "#8b5cf6", // purple
		},
		StatusColors: map[models.DutyStatus]string{
			models.StatusDriving:      "#ef4444", // red
			models.StatusOnDuty:       "#f59e0b", // amber
			models.StatusOffDuty:      "#22c55e", // green
			models.StatusSleeperBerth: "#3b82f6", // blue
		},
	}
}

// LoadStyle reads a YAML style file and overlays it on the defaults.
// An empty path returns the defaults unchanged. Values absent from the file
// keep their default; color maps merge key by key.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("parsing style file: %w", err)
	}
	if err := style.validate(); err != nil {
		return Style{}, fmt.Errorf("invalid style file %s: %w", path, err)
	}
	return style, nil
}

func (s Style) validate() error {
	for status := range s.StatusColors {
		if !status.Known() {
			return fmt.Errorf("unknown duty status %q in status_colors", status)
		}
	}
	for kind := range s.MarkerColors {
		switch kind {
		case MarkerCurrent, MarkerPickup, MarkerDropoff, MarkerRestStop:
		default:
			return fmt.Errorf("unknown marker kind %q in marker_colors", kind)
		}
	}
	if s.Map.Width <= 0 || s.Map.Height <= 0 {
		return fmt.Errorf("map surface dimensions must be positive")
	}
	if s.Sheet.Width <= 0 || s.Sheet.Height <= 0 {
		return fmt.Errorf("sheet surface dimensions must be positive")
	}
	return nil
}

// MarkerColor returns the fill color for a marker category.
func (s Style) MarkerColor(kind MarkerKind) string {
	return s.MarkerColors[kind]
}

// StatusColor returns the segment color for a duty status.
func (s Style) StatusColor(status models.DutyStatus) string {
	return s.StatusColors[status]
}

// Legend is the machine-readable form of the color and row contracts,
// served to consumers that build map legends or sheet keys.
type Legend struct {
	MarkerColors map[MarkerKind]string        `json:"markerColors"`
	StatusColors map[models.DutyStatus]string `json:"statusColors"`
	StatusRows   map[models.DutyStatus]int    `json:"statusRows"`
}

// Legend returns the style's color tables together with the fixed
// status→row table.
func (s Style) Legend() Legend {
	rows := make(map[models.DutyStatus]int, len(statusRows))
	for status, row := range statusRows {
		rows[status] = row
	}
	markers := make(map[MarkerKind]string, len(s.MarkerColors))
	for kind, color := range s.MarkerColors {
		markers[kind] = color
	}
	statuses := make(map[models.DutyStatus]string, len(s.StatusColors))
	for status, color := range s.StatusColors {
		statuses[status] = color
	}
	return Legend{MarkerColors: markers, StatusColors: statuses, StatusRows: rows}
}
