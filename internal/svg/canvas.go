// Package svg provides an imperative 2D drawing surface that serializes to
// an SVG document. Renderers issue move/line/circle/text style commands;
// the canvas records them in order and emits deterministic markup, so two
// identical command sequences always produce byte-identical documents.
package svg

import (
	"fmt"
	"strings"
)

// FontFamily is the font stack applied to all text elements.
const FontFamily = "Arial, sans-serif"

// TextStyle controls how a Text command is drawn. Zero values fall back to
// a 12px normal-weight black label anchored at its start.
type TextStyle struct {
	Size   float64
	Color  string
	Weight string // "normal" (default) or "bold"
	Anchor string // "start" (default), "middle", or "end"
}

// Canvas is a fixed-size drawing surface. It is not safe for concurrent
// use; each render call targets its own canvas or fully re-clears a shared
// one.
type Canvas struct {
	width      int
	height     int
	background string
	ops        []string
}

// New returns a width×height canvas cleared to white.
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height, background: "#ffffff"}
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear discards every recorded drawing command and repaints the background.
// Renderers call it first so that re-rendering with the same input yields a
// pixel-identical document regardless of what was on the canvas before.
func (c *Canvas) Clear(color string) {
	c.ops = c.ops[:0]
	c.background = color
}

// Line draws a straight stroke from (x1,y1) to (x2,y2).
func (c *Canvas) Line(x1, y1, x2, y2 float64, color string, width float64) {
	c.ops = append(c.ops, fmt.Sprintf(
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
		coord(x1), coord(y1), coord(x2), coord(y2), color, coord(width)))
}

// Polyline draws a connected open path through points in order. Fewer than
// two points draw nothing.
func (c *Canvas) Polyline(points [][2]float64, color string, width float64) {
	if len(points) < 2 {
		return
	}
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(coord(p[0]))
		b.WriteByte(',')
		b.WriteString(coord(p[1]))
	}
	c.ops = append(c.ops, fmt.Sprintf(
		`<polyline points="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round"/>`,
		b.String(), color, coord(width)))
}

// Rect draws a stroked, unfilled rectangle when fill is empty, otherwise a
// filled one.
func (c *Canvas) Rect(x, y, w, h float64, stroke string, strokeWidth float64, fill string) {
	if fill == "" {
		fill = "none"
	}
	c.ops = append(c.ops, fmt.Sprintf(
		`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`,
		coord(x), coord(y), coord(w), coord(h), fill, stroke, coord(strokeWidth)))
}

// Circle draws a filled circle centered on (cx,cy).
func (c *Canvas) Circle(cx, cy, r float64, fill string) {
	c.ops = append(c.ops, fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		coord(cx), coord(cy), coord(r), fill))
}

// Text draws s with its baseline at (x,y).
func (c *Canvas) Text(x, y float64, s string, style TextStyle) {
	if style.Size == 0 {
		style.Size = 12
	}
	if style.Color == "" {
		style.Color = "#000000"
	}
	if style.Weight == "" {
		style.Weight = "normal"
	}
	if style.Anchor == "" {
		style.Anchor = "start"
	}
	c.ops = append(c.ops, fmt.Sprintf(
		`<text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%s" fill="%s" text-anchor="%s">%s</text>`,
		coord(x), coord(y), FontFamily, coord(style.Size), style.Weight, style.Color, style.Anchor, escapeText(s)))
}

// OpCount returns the number of drawing commands recorded since the last
// Clear. Tests use it to assert placeholder-only output.
func (c *Canvas) OpCount() int { return len(c.ops) }

// String serializes the canvas to a complete SVG document.
func (c *Canvas) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", c.width, c.height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.background)
	for _, op := range c.ops {
		b.WriteString(op)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// EstimateTextWidth estimates rendered text width in pixels. Average glyph
// width is taken as 0.6 of the font size, which is close enough for label
// collision decisions without measuring real font metrics.
func EstimateTextWidth(s string, fontSize float64) float64 {
	return float64(len(s)) * fontSize * 0.6
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// coord formats a pixel coordinate with two decimal places, trimming
// trailing zeros so output stays stable and compact.
func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
