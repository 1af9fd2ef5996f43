package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_Deterministic(t *testing.T) {
	a := Build("one-dark", false, OneDark.Ramps)
	b := Build("one-dark", false, OneDark.Ramps)

	require.Equal(t, a, b)
}

func TestBuild_LayersAreDistinct(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)

	lowest := scheme.Lowest.Base.Default.Background
	middle := scheme.Middle.Base.Default.Background
	highest := scheme.Highest.Base.Default.Background

	require.NotEqual(t, lowest, middle)
	require.NotEqual(t, middle, highest)
}

func TestBuild_LightSchemeInvertsNeutral(t *testing.T) {
	dark := Build("test", false, OneDark.Ramps)
	light := Build("test", true, OneDark.Ramps)

	require.NotEqual(t,
		dark.Lowest.Base.Default.Background,
		light.Lowest.Base.Default.Background)
	// The light surface starts at the bright end of the ramp.
	require.Equal(t, OneDark.Ramps.Neutral.Hex(1), light.Lowest.Base.Default.Background)
	require.Equal(t, OneDark.Ramps.Neutral.Hex(0), dark.Lowest.Base.Default.Background)
}

func TestBuild_StatesStepTheBackground(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)
	set := scheme.Middle.Base

	require.NotEqual(t, set.Default.Background, set.Hovered.Background)
	require.NotEqual(t, set.Hovered.Background, set.Pressed.Background)
	require.NotEqual(t, set.Pressed.Background, set.Active.Background)
	// Disabled keeps the resting background but dims the foreground.
	require.Equal(t, set.Default.Background, set.Disabled.Background)
	require.NotEqual(t, set.Default.Foreground, set.Disabled.Foreground)
}

func TestBuild_InvertedSwapsGround(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)
	set := scheme.Middle.Base

	require.Equal(t, set.Default.Foreground, set.Inverted.Background)
	require.Equal(t, set.Default.Background, set.Inverted.Foreground)
}

func TestBuild_FillsAllPlayers(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)

	seen := make(map[string]bool)
	for i, p := range scheme.Players {
		require.NotEmpty(t, p.Cursor, "player %d cursor", i)
		require.NotEmpty(t, p.Selection, "player %d selection", i)
		seen[p.Cursor] = true
	}
	// Slots draw from different chromatic ramps.
	require.Greater(t, len(seen), 4)
}

func TestBuild_PopoverShadow(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)

	require.Equal(t, 4.0, scheme.PopoverShadow.Blur)
	require.Len(t, scheme.PopoverShadow.Color, 9) // #rrggbbaa
	require.Equal(t, [2]float64{1, 2}, scheme.PopoverShadow.Offset)
}

func TestStyleSet_ColorsAccessor(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)
	set := scheme.Middle.Accent

	require.Equal(t, set.Default, set.Colors(StateDefault))
	require.Equal(t, set.Default, set.Colors(""))
	require.Equal(t, set.Hovered, set.Colors(StateHovered))
	require.Equal(t, set.Pressed, set.Colors(StatePressed))
	require.Equal(t, set.Active, set.Colors(StateActive))
	require.Equal(t, set.Disabled, set.Colors(StateDisabled))
	require.Equal(t, set.Inverted, set.Colors(StateInverted))
}

func TestLayer_SetAccessor(t *testing.T) {
	scheme := Build("one-dark", false, OneDark.Ramps)
	layer := &scheme.Middle

	require.Equal(t, &layer.Base, layer.Set(SetBase))
	require.Equal(t, &layer.Base, layer.Set(""))
	require.Equal(t, &layer.Variant, layer.Set(SetVariant))
	require.Equal(t, &layer.On, layer.Set(SetOn))
	require.Equal(t, &layer.Accent, layer.Set(SetAccent))
	require.Equal(t, &layer.Positive, layer.Set(SetPositive))
	require.Equal(t, &layer.Negative, layer.Set(SetNegative))
	require.Equal(t, &layer.Warning, layer.Set(SetWarning))
}

func TestPresets_AllBuild(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			scheme := preset.Scheme()
			require.Equal(t, name, scheme.Name)
			require.Equal(t, preset.IsLight, scheme.IsLight)
			require.NotEmpty(t, scheme.Middle.Base.Default.Background)
		})
	}
}

func TestNames_Sorted(t *testing.T) {
	require.Equal(t, []string{"andromeda", "one-dark", "one-light"}, Names())
}
