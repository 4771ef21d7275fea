package render

import (
	"errors"
	"strconv"

	"eldview.openfreight.org/internal/geo"
	"eldview.openfreight.org/internal/models"
	"eldview.openfreight.org/internal/svg"
)

// ErrNoSurface is returned when a renderer is invoked without a drawing
// surface. It is the only fatal precondition in this package; every other
// input problem degrades to placeholder or skipped output.
var ErrNoSurface = errors.New("render: drawing surface is required")

// RouteMap draws the trip's route polyline and category markers onto the
// canvas. The canvas is fully cleared first, so rendering the same trip
// twice produces byte-identical documents.
//
// A nil trip or a trip without route data clears the canvas and draws a
// placeholder message only, with no polyline and no markers.
func RouteMap(trip *models.Trip, c *svg.Canvas, style Style) error {
	if c == nil {
		return ErrNoSurface
	}
	c.Clear(style.Map.Background)

	points := trip.RoutePoints()
	if trip == nil || len(points) == 0 {
		drawCenteredNote(c, "No route data available", style.Map.TextColor, style.Map.FontSize+2)
		return nil
	}

	// Bounds cover every element that will be drawn so markers can never
	// land outside the padded surface.
	boundsInput := make([]models.GeoPoint, 0, len(points)+3+len(trip.RestStops))
	boundsInput = append(boundsInput, points...)
	for _, p := range []models.GeoPoint{trip.CurrentLocation, trip.PickupLocation, trip.DropoffLocation} {
		if p.Finite() {
			boundsInput = append(boundsInput, p)
		}
	}
	for _, stop := range trip.RestStops {
		if stop.Location != nil && stop.Location.Finite() {
			boundsInput = append(boundsInput, *stop.Location)
		}
	}

	bounds, ok := geo.NewBounds(boundsInput)
	if !ok {
		drawCenteredNote(c, "No route data available", style.Map.TextColor, style.Map.FontSize+2)
		return nil
	}
	proj := geo.NewProjector(bounds, float64(style.Map.Width), float64(style.Map.Height), style.Map.Padding)

	line := make([][2]float64, 0, len(points))
	for _, p := range points {
		x, y := proj.ProjectPoint(p)
		line = append(line, [2]float64{x, y})
	}
	c.Polyline(line, style.Map.RouteColor, style.Map.RouteWidth)

	drawMarker(c, proj, trip.CurrentLocation, "Current", MarkerCurrent, style)
	drawMarker(c, proj, trip.PickupLocation, "Pickup", MarkerPickup, style)
	drawMarker(c, proj, trip.DropoffLocation, "Dropoff", MarkerDropoff, style)

	for i, stop := range trip.RestStops {
		if stop.Location == nil {
			continue
		}
		drawMarker(c, proj, *stop.Location, strconv.Itoa(i+1), MarkerRestStop, style)
	}

	return nil
}

// drawMarker draws one labeled category marker: a filled circle in the
// category color, a smaller contrasting inner circle, and the label above.
// Markers with non-finite locations are skipped, not errored.
func drawMarker(c *svg.Canvas, proj geo.Projector, at models.GeoPoint, label string, kind MarkerKind, style Style) {
	if !at.Finite() {
		return
	}
	x, y := proj.ProjectPoint(at)
	c.Circle(x, y, style.Map.MarkerRadius, style.MarkerColor(kind))
	c.Circle(x, y, style.Map.InnerRadius, "#ffffff")
	c.Text(x, y-style.Map.MarkerRadius-6, label, svg.TextStyle{
		Size:   style.Map.FontSize,
		Color:  style.Map.TextColor,
		Weight: "bold",
		Anchor: "middle",
	})
}

// drawCenteredNote paints a single placeholder line in the middle of the
// canvas. Used for the empty-data cases of both renderers.
func drawCenteredNote(c *svg.Canvas, message, color string, size float64) {
	c.Text(float64(c.Width())/2, float64(c.Height())/2, message, svg.TextStyle{
		Size:   size,
		Color:  color,
		Anchor: "middle",
	})
}
