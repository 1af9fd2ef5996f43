package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInteractive_DefaultPassthrough(t *testing.T) {
	base := Style{"background": "#1e2025", "cornerRadius": 4.0}

	bundle := Interactive(base, States{})

	require.Len(t, bundle, 1)
	require.Equal(t, base, bundle[StateDefault])
}

func TestInteractive_MergesEachDeclaredState(t *testing.T) {
	base := Style{"background": "#1e2025", "color": "#cbc9cf"}

	bundle := Interactive(base, States{
		StateHovered: {"background": "#23262e"},
		StateClicked: {"background": "#292e38"},
	})

	require.Equal(t, base, bundle[StateDefault])
	require.Equal(t, Style{"background": "#23262e", "color": "#cbc9cf"}, bundle[StateHovered])
	require.Equal(t, Style{"background": "#292e38", "color": "#cbc9cf"}, bundle[StateClicked])
}

func TestInteractive_UndeclaredStatesAbsent(t *testing.T) {
	bundle := Interactive(Style{"color": "#fff"}, States{
		StateHovered: {"color": "#aaa"},
	})

	_, ok := bundle[StateDisabled]
	require.False(t, ok)
	_, ok = bundle[StateClicked]
	require.False(t, ok)
}

func TestInteractive_StateIsolation(t *testing.T) {
	base := Style{"background": "#000", "color": "#fff", "weight": "normal"}

	bundle := Interactive(base, States{
		StateHovered:  {"background": "#111"},
		StateDisabled: {"color": "#666"},
	})

	// Hovered carries only its own override on top of base.
	require.Equal(t, "#fff", bundle[StateHovered]["color"])
	require.Equal(t, "#111", bundle[StateHovered]["background"])
	// Disabled likewise.
	require.Equal(t, "#000", bundle[StateDisabled]["background"])
	require.Equal(t, "#666", bundle[StateDisabled]["color"])
}

func TestInteractive_DeepOverrides(t *testing.T) {
	base := Style{
		"text": Style{"color": "#ccc", "size": 14.0},
	}

	bundle := Interactive(base, States{
		StateHovered: {"text": Style{"color": "#fff"}},
	})

	require.Equal(t, Style{"color": "#fff", "size": 14.0}, bundle[StateHovered]["text"])
	require.Equal(t, Style{"color": "#ccc", "size": 14.0}, bundle[StateDefault]["text"])
}

func TestInteractive_DoesNotAliasBase(t *testing.T) {
	base := Style{"padding": Style{"top": 2.0}}

	bundle := Interactive(base, States{})
	bundle[StateDefault]["padding"].(Style)["top"] = 9.0

	require.Equal(t, 2.0, base["padding"].(Style)["top"])
}

func TestBundleResolve_FallsBackToDefault(t *testing.T) {
	base := Style{"color": "#aaa"}
	bundle := Interactive(base, States{StateHovered: {"color": "#fff"}})

	require.Equal(t, bundle[StateHovered], bundle.Resolve(StateHovered))
	require.Equal(t, base, bundle.Resolve(StateClicked))
	require.Equal(t, base, bundle.Resolve(StateDisabled))
}
