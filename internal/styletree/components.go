// Package styletree assembles the resolved style tree for every UI
// panel. Panel builders are pure data: they sample colors through the
// token helpers below and compose state variants with the style
// package's combinators. Nothing in this package branches on runtime
// state; the renderer picks variants out of the returned bundles.
package styletree

import (
	"github.com/calegray/lacquer/internal/style"
	"github.com/calegray/lacquer/internal/theme"
)

// Local tag aliases keep the panel builders close to prose.
const (
	base     = theme.SetBase
	variant  = theme.SetVariant
	on       = theme.SetOn
	accent   = theme.SetAccent
	positive = theme.SetPositive
	negative = theme.SetNegative
	warning  = theme.SetWarning

	def      = theme.StateDefault
	hovered  = theme.StateHovered
	pressed  = theme.StatePressed
	active   = theme.StateActive
	disabled = theme.StateDisabled
	inverted = theme.StateInverted
)

// Fonts carries the font configuration the resolver stamps into text
// fragments.
type Fonts struct {
	UI         string
	Buffer     string
	UISize     float64
	BufferSize float64
}

// DefaultFonts returns the stock font configuration.
func DefaultFonts() Fonts {
	return Fonts{
		UI:         "Zed Sans",
		Buffer:     "Zed Mono",
		UISize:     14,
		BufferSize: 15,
	}
}

// Resolver resolves color and text tokens against one ColorScheme.
// It is stateless and deterministic: the same scheme and fonts always
// produce the same fragments. Panel builders receive it explicitly;
// there is no package-level scheme.
type Resolver struct {
	scheme *theme.ColorScheme
	fonts  Fonts
}

// NewResolver wraps a scheme for panel building. The scheme is
// treated as read-only.
func NewResolver(scheme *theme.ColorScheme, fonts Fonts) *Resolver {
	return &Resolver{scheme: scheme, fonts: fonts}
}

// Scheme exposes the underlying color scheme to builders that sample
// players or the popover shadow directly.
func (r *Resolver) Scheme() *theme.ColorScheme { return r.scheme }

// Background samples a background color token.
func (r *Resolver) Background(layer *theme.Layer, set theme.SetTag, state theme.StateTag) string {
	return layer.Set(set).Colors(state).Background
}

// Foreground samples a foreground color token.
func (r *Resolver) Foreground(layer *theme.Layer, set theme.SetTag, state theme.StateTag) string {
	return layer.Set(set).Colors(state).Foreground
}

// Edges flags which sides of an element a border is drawn on.
type Edges struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// AllEdges draws the border on every side.
var AllEdges = Edges{Top: true, Right: true, Bottom: true, Left: true}

// Border builds a border fragment from a border color token.
func (r *Resolver) Border(layer *theme.Layer, set theme.SetTag, state theme.StateTag, width float64, edges Edges) style.Style {
	return style.Style{
		"color":  layer.Set(set).Colors(state).Border,
		"width":  width,
		"top":    edges.Top,
		"right":  edges.Right,
		"bottom": edges.Bottom,
		"left":   edges.Left,
	}
}

// Text builds a text fragment from a foreground color token and the
// resolver's font configuration. family is "ui" or "buffer".
func (r *Resolver) Text(layer *theme.Layer, family string, set theme.SetTag, state theme.StateTag, size float64) style.Style {
	name := r.fonts.UI
	if family == "buffer" {
		name = r.fonts.Buffer
	}
	if size == 0 {
		size = r.fonts.UISize
		if family == "buffer" {
			size = r.fonts.BufferSize
		}
	}
	return style.Style{
		"family": name,
		"color":  layer.Set(set).Colors(state).Foreground,
		"size":   size,
	}
}

// edges builds a per-side spacing fragment for padding and margin.
func edges(top, right, bottom, left float64) style.Style {
	return style.Style{"top": top, "right": right, "bottom": bottom, "left": left}
}

// uniform builds an equal spacing fragment for all four sides.
func uniform(v float64) style.Style {
	return edges(v, v, v, v)
}
