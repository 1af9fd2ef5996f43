package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawStyle generates an arbitrary partial style with bounded nesting.
func drawStyle(t *rapid.T, label string, depth int) Style {
	n := rapid.IntRange(0, 4).Draw(t, label+".len")
	s := make(Style, n)
	for i := 0; i < n; i++ {
		key := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, fmt.Sprintf("%s.key%d", label, i))
		if depth > 0 && rapid.Bool().Draw(t, fmt.Sprintf("%s.nest%d", label, i)) {
			s[key] = drawStyle(t, fmt.Sprintf("%s.%s", label, key), depth-1)
		} else {
			s[key] = drawLeaf(t, fmt.Sprintf("%s.leaf%d", label, i))
		}
	}
	return s
}

func drawLeaf(t *rapid.T, label string) any {
	return rapid.OneOf(
		rapid.StringMatching(`#[0-9a-f]{6}`).AsAny(),
		rapid.Float64Range(0, 64).AsAny(),
		rapid.Bool().AsAny(),
	).Draw(t, label)
}

// checkMergeOracle verifies the merge contract field by field.
func checkMergeOracle(t *rapid.T, base, override, merged Style) {
	for k, bv := range base {
		ov, inOverride := override[k]
		if !inOverride {
			require.Equal(t, bv, merged[k], "field %q only in base must be retained", k)
			continue
		}
		bs, baseNested := bv.(Style)
		os, overrideNested := ov.(Style)
		if baseNested && overrideNested {
			checkMergeOracle(t, bs, os, merged[k].(Style))
		} else {
			require.Equal(t, ov, merged[k], "field %q set in override must win", k)
		}
	}
	for k, ov := range override {
		if _, inBase := base[k]; !inBase {
			require.Equal(t, ov, merged[k], "field %q only in override must be added", k)
		}
	}
	for k := range merged {
		_, inBase := base[k]
		_, inOverride := override[k]
		require.True(t, inBase || inOverride, "field %q appeared from nowhere", k)
	}
}

func TestMerge_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawStyle(t, "base", 3)
		override := drawStyle(t, "override", 3)

		merged := Merge(base, override)
		checkMergeOracle(t, base, override, merged)
	})
}

func TestMerge_Identity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawStyle(t, "base", 3)
		require.Equal(t, base, Merge(base, Style{}))
	})
}

func TestMerge_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawStyle(t, "base", 3)
		override := drawStyle(t, "override", 3)

		require.Equal(t, Merge(base, override), Merge(base, override))
	})
}

func TestMerge_InputsUntouched(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawStyle(t, "base", 3)
		override := drawStyle(t, "override", 3)
		baseSnapshot := Clone(base)
		overrideSnapshot := Clone(override)

		_ = Merge(base, override)

		require.Equal(t, baseSnapshot, base)
		require.Equal(t, overrideSnapshot, override)
	})
}

func TestInteractive_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawStyle(t, "base", 2)
		states := States{}
		for _, state := range []InteractionState{StateHovered, StateClicked, StateDisabled} {
			if rapid.Bool().Draw(t, "has."+string(state)) {
				states[state] = drawStyle(t, "state."+string(state), 2)
			}
		}

		bundle := Interactive(base, states)

		require.Equal(t, base, bundle[StateDefault])
		require.Len(t, bundle, len(states)+1)
		for state, override := range states {
			require.Equal(t, Merge(base, override), bundle[state])
		}
	})
}

func TestToggleableInteractive_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := Interactive(drawStyle(t, "base", 2), States{
			StateHovered: drawStyle(t, "hovered", 2),
		})
		overrides := States{}
		for _, state := range []InteractionState{StateDefault, StateHovered} {
			if rapid.Bool().Draw(t, "has."+string(state)) {
				overrides[state] = drawStyle(t, "active."+string(state), 2)
			}
		}

		bundle := ToggleableInteractive(base, map[ToggleState]States{
			ToggleActive: overrides,
		})

		require.Equal(t, base, bundle[ToggleInactive])
		for state, baseStyle := range base {
			if override, ok := overrides[state]; ok {
				require.Equal(t, Merge(baseStyle, override), bundle[ToggleActive][state])
			} else {
				require.Equal(t, baseStyle, bundle[ToggleActive][state])
			}
		}
	})
}
