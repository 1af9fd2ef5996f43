package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// layerStep is the sampling-window shift between elevation tiers and
// between interaction states within a style set.
const layerStep = 0.08

// ColorRamp derives a full ramp from a single chroma. The endpoints
// pull toward black and white so low samples read as tinted washes
// and high samples as bright accents.
func ColorRamp(hex string) (Ramp, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Ramp{}, fmt.Errorf("chroma %q: %w", hex, err)
	}
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Ramp{controls: []colorful.Color{
		black.BlendLab(c, 0.2),
		c,
		white.BlendLab(c, 0.2),
	}}, nil
}

// MustColorRamp is ColorRamp for compile-time chroma values.
func MustColorRamp(hex string) Ramp {
	r, err := ColorRamp(hex)
	if err != nil {
		panic(err)
	}
	return r
}

// Build constructs a complete ColorScheme from ramp control points.
// Construction is a pure function of its arguments: the three
// elevation layers sample progressively shifted windows of the
// neutral ramp, and light schemes invert the neutral ramp first so
// elevation still contrasts away from the surface.
func Build(name string, isLight bool, ramps RampSet) *ColorScheme {
	if isLight {
		ramps.Neutral = ramps.Neutral.Invert()
	}
	return &ColorScheme{
		Name:    name,
		IsLight: isLight,
		Lowest:  buildLayer(ramps, 0),
		Middle:  buildLayer(ramps, layerStep),
		Highest: buildLayer(ramps, 2*layerStep),
		Players: buildPlayers(ramps),
		PopoverShadow: Shadow{
			Blur:   4,
			Color:  ramps.Neutral.Hex(0) + "33",
			Offset: [2]float64{1, 2},
		},
	}
}

func buildLayer(ramps RampSet, offset float64) Layer {
	return Layer{
		Base:     buildStyleSet(ramps.Neutral, offset, 1.0),
		Variant:  buildStyleSet(ramps.Neutral, offset, 0.7),
		On:       buildStyleSet(ramps.Neutral, offset+layerStep, 1.0),
		Accent:   buildStyleSet(ramps.Blue, 0.12+offset, 0.55),
		Positive: buildStyleSet(ramps.Green, 0.12+offset, 0.55),
		Negative: buildStyleSet(ramps.Red, 0.12+offset, 0.55),
		Warning:  buildStyleSet(ramps.Yellow, 0.12+offset, 0.55),
	}
}

// buildStyleSet samples one ramp into the closed per-state table.
// bg anchors the resting background, fg the resting foreground;
// hovered, pressed, and active step the background further along the
// ramp, disabled pulls the foreground back toward the background.
func buildStyleSet(r Ramp, bg, fg float64) StyleSet {
	return StyleSet{
		Default: ColorSet{
			Background: r.Hex(bg),
			Border:     r.Hex(bg + layerStep),
			Foreground: r.Hex(fg),
		},
		Hovered: ColorSet{
			Background: r.Hex(bg + layerStep),
			Border:     r.Hex(bg + layerStep),
			Foreground: r.Hex(fg),
		},
		Pressed: ColorSet{
			Background: r.Hex(bg + 1.5*layerStep),
			Border:     r.Hex(bg + layerStep),
			Foreground: r.Hex(fg),
		},
		Active: ColorSet{
			Background: r.Hex(bg + 2.2*layerStep),
			Border:     r.Hex(bg + 3*layerStep),
			Foreground: r.Hex(fg),
		},
		Disabled: ColorSet{
			Background: r.Hex(bg),
			Border:     r.Hex(bg + layerStep),
			Foreground: r.Hex(fg - 0.35),
		},
		Inverted: ColorSet{
			Background: r.Hex(fg),
			Border:     r.Hex(bg),
			Foreground: r.Hex(bg),
		},
	}
}

// buildPlayers assigns the eight collaborator slots from the
// chromatic ramps in a fixed order. Selections are the cursor color
// with a translucency suffix; the renderer composites them over the
// buffer background.
func buildPlayers(ramps RampSet) [PlayerCount]Player {
	order := [PlayerCount]Ramp{
		ramps.Blue,
		ramps.Green,
		ramps.Magenta,
		ramps.Orange,
		ramps.Violet,
		ramps.Cyan,
		ramps.Red,
		ramps.Yellow,
	}
	var players [PlayerCount]Player
	for i, r := range order {
		cursor := r.Hex(0.5)
		players[i] = Player{
			Cursor:    cursor,
			Selection: cursor + "3d",
		}
	}
	return players
}
