// Package theme models color schemes for the style tree: color ramps,
// elevation layers, style sets, and player colors. A ColorScheme is
// built deterministically from ramp control points and handed to the
// style-tree resolver as read-only input.
package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp is an ordered run of control colors sampled by position in
// [0, 1]. Samples between control points blend in Lab space, which
// keeps perceived lightness monotonic across the run.
type Ramp struct {
	controls []colorful.Color
}

// NewRamp builds a ramp from hex control colors, ordered dark-to-light
// for neutrals and low-to-high saturation for chromatic ramps.
func NewRamp(hexes ...string) (Ramp, error) {
	if len(hexes) == 0 {
		return Ramp{}, fmt.Errorf("ramp needs at least one control color")
	}
	controls := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Ramp{}, fmt.Errorf("control color %q: %w", h, err)
		}
		controls[i] = c
	}
	return Ramp{controls: controls}, nil
}

// MustRamp is NewRamp for compile-time control points; panics on a
// malformed hex string.
func MustRamp(hexes ...string) Ramp {
	r, err := NewRamp(hexes...)
	if err != nil {
		panic(err)
	}
	return r
}

// Value samples the ramp at position t, clamped to [0, 1].
func (r Ramp) Value(t float64) colorful.Color {
	if len(r.controls) == 0 {
		return colorful.Color{}
	}
	if len(r.controls) == 1 {
		return r.controls[0]
	}
	if t <= 0 {
		return r.controls[0]
	}
	if t >= 1 {
		return r.controls[len(r.controls)-1]
	}
	scaled := t * float64(len(r.controls)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return r.controls[i].BlendLab(r.controls[i+1], frac).Clamped()
}

// Hex samples the ramp at t and formats the result as "#rrggbb".
func (r Ramp) Hex(t float64) string {
	return r.Value(t).Clamped().Hex()
}

// Invert returns the ramp with its control points reversed. Light
// schemes invert the neutral ramp so elevation still darkens away
// from the surface.
func (r Ramp) Invert() Ramp {
	controls := make([]colorful.Color, len(r.controls))
	for i, c := range r.controls {
		controls[len(r.controls)-1-i] = c
	}
	return Ramp{controls: controls}
}

// RampSet holds the neutral ramp plus the eight chromatic ramps every
// scheme provides.
type RampSet struct {
	Neutral Ramp
	Red     Ramp
	Orange  Ramp
	Yellow  Ramp
	Green   Ramp
	Cyan    Ramp
	Blue    Ramp
	Violet  Ramp
	Magenta Ramp
}

// Chromatic returns the named chromatic ramp, or false for a name the
// set does not carry.
func (rs RampSet) Chromatic(name string) (Ramp, bool) {
	switch name {
	case "red":
		return rs.Red, true
	case "orange":
		return rs.Orange, true
	case "yellow":
		return rs.Yellow, true
	case "green":
		return rs.Green, true
	case "cyan":
		return rs.Cyan, true
	case "blue":
		return rs.Blue, true
	case "violet":
		return rs.Violet, true
	case "magenta":
		return rs.Magenta, true
	}
	return Ramp{}, false
}
