package renderer

import "fmt"

// The rainbow gradient is a declarative list of color stops handed to
// the SVG linearGradient primitive, not a per-point computation: the
// drawing surface interpolates between stops natively. ColorAt exists
// for legends and tests, and mirrors exactly what the surface does.

// Anchor is one fixed stop of the gradient: a normalized horizontal
// position and its color.
type Anchor struct {
	Pos     float64
	R, G, B uint8
}

// Hex returns the anchor color as "#rrggbb".
func (a Anchor) Hex() string { return fmt.Sprintf("#%02x%02x%02x", a.R, a.G, a.B) }

// Anchors spans red to purple across the x axis. Positions are fixed;
// the chart looks the same whatever the number of data points.
var Anchors = []Anchor{
	{0.00, 0xff, 0x00, 0x00}, // red
	{0.17, 0xff, 0x7f, 0x00}, // orange
	{0.33, 0xff, 0xff, 0x00}, // yellow
	{0.50, 0x00, 0xff, 0x00}, // green
	{0.67, 0x00, 0xbf, 0xff}, // light blue
	{0.83, 0x00, 0x00, 0xff}, // blue
	{1.00, 0x8b, 0x00, 0xff}, // purple
}

// ColorAt returns the gradient color at normalized position p, by
// linear interpolation in each channel between the two anchors
// bracketing p. Positions outside [0,1] clamp to the end anchors.
func ColorAt(p float64) (r, g, b uint8) {
	first, last := Anchors[0], Anchors[len(Anchors)-1]
	if p <= first.Pos {
		return first.R, first.G, first.B
	}
	if p >= last.Pos {
		return last.R, last.G, last.B
	}
	for i := 1; i < len(Anchors); i++ {
		lo, hi := Anchors[i-1], Anchors[i]
		if p > hi.Pos {
			continue
		}
		t := (p - lo.Pos) / (hi.Pos - lo.Pos)
		return lerp(lo.R, hi.R, t), lerp(lo.G, hi.G, t), lerp(lo.B, hi.B, t)
	}
	return last.R, last.G, last.B
}

// HexAt returns the gradient color at p as "#rrggbb".
func HexAt(p float64) string {
	r, g, b := ColorAt(p)
	return Anchor{R: r, G: g, B: b}.Hex()
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
