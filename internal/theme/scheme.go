package theme

// SetTag selects a style set within a layer: the semantic role of the
// element being painted.
type SetTag string

const (
	SetBase     SetTag = "base"
	SetVariant  SetTag = "variant"
	SetOn       SetTag = "on"
	SetAccent   SetTag = "accent"
	SetPositive SetTag = "positive"
	SetNegative SetTag = "negative"
	SetWarning  SetTag = "warning"
)

// StateTag selects one state's colors within a style set.
type StateTag string

const (
	StateDefault  StateTag = "default"
	StateHovered  StateTag = "hovered"
	StatePressed  StateTag = "pressed"
	StateActive   StateTag = "active"
	StateDisabled StateTag = "disabled"
	StateInverted StateTag = "inverted"
)

// ColorSet is one state's concrete colors.
type ColorSet struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Foreground string `json:"foreground"`
}

// StyleSet carries a ColorSet for every state a style set can be
// painted in. The table is closed: there is exactly one field per
// StateTag, so panel authors get compile-time checking when they
// address a state directly.
type StyleSet struct {
	Default  ColorSet `json:"default"`
	Hovered  ColorSet `json:"hovered"`
	Pressed  ColorSet `json:"pressed"`
	Active   ColorSet `json:"active"`
	Disabled ColorSet `json:"disabled"`
	Inverted ColorSet `json:"inverted"`
}

// Colors returns the ColorSet for state. The zero tag selects Default.
func (s *StyleSet) Colors(state StateTag) ColorSet {
	switch state {
	case StateHovered:
		return s.Hovered
	case StatePressed:
		return s.Pressed
	case StateActive:
		return s.Active
	case StateDisabled:
		return s.Disabled
	case StateInverted:
		return s.Inverted
	default:
		return s.Default
	}
}

// Layer is one elevation tier of the UI. Each tier carries the full
// complement of style sets so a panel never reaches across tiers for
// a semantic role.
type Layer struct {
	Base     StyleSet `json:"base"`
	Variant  StyleSet `json:"variant"`
	On       StyleSet `json:"on"`
	Accent   StyleSet `json:"accent"`
	Positive StyleSet `json:"positive"`
	Negative StyleSet `json:"negative"`
	Warning  StyleSet `json:"warning"`
}

// Set returns the style set for tag. The zero tag selects Base.
func (l *Layer) Set(tag SetTag) *StyleSet {
	switch tag {
	case SetVariant:
		return &l.Variant
	case SetOn:
		return &l.On
	case SetAccent:
		return &l.Accent
	case SetPositive:
		return &l.Positive
	case SetNegative:
		return &l.Negative
	case SetWarning:
		return &l.Warning
	default:
		return &l.Base
	}
}

// Player holds the cursor and selection colors for one collaborator.
type Player struct {
	Cursor    string `json:"cursor"`
	Selection string `json:"selection"`
}

// Shadow describes the popover drop shadow.
type Shadow struct {
	Blur   float64    `json:"blur"`
	Color  string     `json:"color"`
	Offset [2]float64 `json:"offset"`
}

// PlayerCount is the number of collaborator slots every scheme fills.
const PlayerCount = 8

// ColorScheme is the complete, immutable color source for a theme.
// Lowest sits against the window background, Middle hosts panels, and
// Highest hosts popovers and modals.
type ColorScheme struct {
	Name    string `json:"name"`
	IsLight bool   `json:"isLight"`

	Lowest  Layer `json:"lowest"`
	Middle  Layer `json:"middle"`
	Highest Layer `json:"highest"`

	Players       [PlayerCount]Player `json:"players"`
	PopoverShadow Shadow              `json:"popoverShadow"`
}
