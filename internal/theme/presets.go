package theme

import "sort"

// Preset pairs a scheme name with the ramp control points it is built
// from. Presets construct a fresh ColorScheme on every call to Scheme;
// nothing is cached or shared.
type Preset struct {
	Name        string
	Description string
	IsLight     bool
	Ramps       RampSet
}

// Scheme builds the preset's ColorScheme.
func (p Preset) Scheme() *ColorScheme {
	return Build(p.Name, p.IsLight, p.Ramps)
}

// Presets contains all built-in color schemes.
var Presets = map[string]Preset{
	"one-dark":  OneDark,
	"one-light": OneLight,
	"andromeda": Andromeda,
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OneDark is the default dark scheme.
var OneDark = Preset{
	Name:        "one-dark",
	Description: "Dark scheme with muted blue-grey neutrals",
	IsLight:     false,
	Ramps: RampSet{
		Neutral: MustRamp(
			"#282c34", "#353b45", "#3e4451", "#545862",
			"#565c64", "#abb2bf", "#b6bdca", "#c8ccd4",
		),
		Red:     MustColorRamp("#e06c75"),
		Orange:  MustColorRamp("#d19a66"),
		Yellow:  MustColorRamp("#e5c07b"),
		Green:   MustColorRamp("#98c379"),
		Cyan:    MustColorRamp("#56b6c2"),
		Blue:    MustColorRamp("#61afef"),
		Violet:  MustColorRamp("#c678dd"),
		Magenta: MustColorRamp("#be5046"),
	},
}

// OneLight is the light counterpart of OneDark.
var OneLight = Preset{
	Name:        "one-light",
	Description: "Light scheme with warm grey neutrals",
	IsLight:     true,
	Ramps: RampSet{
		Neutral: MustRamp(
			"#090a0b", "#202227", "#383a42", "#696c77",
			"#a0a1a7", "#e5e5e6", "#f0f0f1", "#fafafa",
		),
		Red:     MustColorRamp("#ca1243"),
		Orange:  MustColorRamp("#d75f00"),
		Yellow:  MustColorRamp("#c18401"),
		Green:   MustColorRamp("#50a14f"),
		Cyan:    MustColorRamp("#0184bc"),
		Blue:    MustColorRamp("#4078f2"),
		Violet:  MustColorRamp("#a626a4"),
		Magenta: MustColorRamp("#986801"),
	},
}

// Andromeda is a saturated dark scheme.
var Andromeda = Preset{
	Name:        "andromeda",
	Description: "Dark scheme with vivid accents",
	IsLight:     false,
	Ramps: RampSet{
		Neutral: MustRamp(
			"#1e2025", "#23262e", "#292e38", "#2e323c",
			"#aca8ae", "#cbc9cf", "#e1dde4", "#f7f7f8",
		),
		Red:     MustColorRamp("#f92672"),
		Orange:  MustColorRamp("#f39c12"),
		Yellow:  MustColorRamp("#ffe66d"),
		Green:   MustColorRamp("#96e072"),
		Cyan:    MustColorRamp("#00e8c6"),
		Blue:    MustColorRamp("#10a793"),
		Violet:  MustColorRamp("#c74ded"),
		Magenta: MustColorRamp("#ff00aa"),
	},
}
