package models

import "math"

// GeoPoint is a WGS84 coordinate pair as supplied by the planning backend.
// Values outside the valid lat/lng ranges are passed through untouched:
// the renderers degrade visually on bad input instead of rejecting it.
type GeoPoint struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Finite reports whether both coordinates are real numbers.
// Markers backed by NaN or infinite coordinates are skipped during rendering.
func (p GeoPoint) Finite() bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lng) && !math.IsInf(p.Lng, 0)
}
