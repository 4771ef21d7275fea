// Package geo implements the bounds-fit linear projection from geographic
// coordinates onto a drawing surface. It is the leaf component shared by the
// route map renderer and anything else that needs to place lat/lng pairs in
// pixel space.
package geo

import (
	"eldview.openfreight.org/internal/models"
)

// Bounds is the axis-aligned bounding box of a set of geographic points.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBounds computes the bounding box over points. The second return value
// is false when points is empty; callers must not build a projector from an
// empty set and should render a placeholder instead.
func NewBounds(points []models.GeoPoint) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lng < b.MinLng {
			b.MinLng = p.Lng
		}
		if p.Lng > b.MaxLng {
			b.MaxLng = p.Lng
		}
	}
	return b, true
}

// LatRange returns the latitude span of the box. A zero span is substituted
// with 1 so that degenerate single-point or straight-line routes still
// project at a fixed offset instead of dividing by zero.
func (b Bounds) LatRange() float64 {
	if r := b.MaxLat - b.MinLat; r != 0 {
		return r
	}
	return 1
}

// LngRange returns the longitude span of the box, with the same zero-span
// substitution as LatRange.
func (b Bounds) LngRange() float64 {
	if r := b.MaxLng - b.MinLng; r != 0 {
		return r
	}
	return 1
}

// Projector maps (lat, lng) pairs onto a width×height surface, leaving
// padding pixels of margin on every side. It is a pure value: the same
// projector always maps the same input to the same output.
type Projector struct {
	bounds  Bounds
	width   float64
	height  float64
	padding float64
}

// NewProjector builds a projector that fits bounds into the padded surface.
func NewProjector(bounds Bounds, width, height, padding float64) Projector {
	return Projector{bounds: bounds, width: width, height: height, padding: padding}
}

// Project maps a geographic coordinate to surface coordinates. Latitude is
// inverted: surface Y grows downward while geographic north grows latitude.
func (p Projector) Project(lat, lng float64) (x, y float64) {
	x = p.padding + (lng-p.bounds.MinLng)/p.bounds.LngRange()*(p.width-2*p.padding)
	y = p.padding + (p.bounds.MaxLat-lat)/p.bounds.LatRange()*(p.height-2*p.padding)
	return x, y
}

// ProjectPoint is Project for a GeoPoint value.
func (p Projector) ProjectPoint(pt models.GeoPoint) (x, y float64) {
	return p.Project(pt.Lat, pt.Lng)
}
