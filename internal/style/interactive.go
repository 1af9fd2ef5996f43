package style

// InteractionState names a transient input condition on an element.
type InteractionState string

// The closed set of interaction states a panel may declare.
const (
	StateDefault  InteractionState = "default"
	StateHovered  InteractionState = "hovered"
	StateClicked  InteractionState = "clicked"
	StateDisabled InteractionState = "disabled"
)

// States maps interaction states to partial style overrides.
type States map[InteractionState]Style

// Bundle holds one resolved style per declared interaction state.
// A bundle built by Interactive always carries a StateDefault entry;
// consumers asking for an undeclared state fall back to it through
// Resolve rather than re-merging anything themselves.
type Bundle map[InteractionState]Style

// Interactive expands base into a bundle of resolved per-state styles.
// The StateDefault entry equals base unmodified, and every state
// declared in states maps to base deep-merged with that state's
// override. States absent from states are absent from the bundle.
func Interactive(base Style, states States) Bundle {
	bundle := make(Bundle, len(states)+1)
	bundle[StateDefault] = Clone(base)
	for state, override := range states {
		bundle[state] = Merge(base, override)
	}
	return bundle
}

// Resolve returns the style for state, falling back to the default
// variant when state was never declared.
func (b Bundle) Resolve(state InteractionState) Style {
	if s, ok := b[state]; ok {
		return s
	}
	return b[StateDefault]
}

func cloneBundle(b Bundle) Bundle {
	copied := make(Bundle, len(b))
	for state, s := range b {
		copied[state] = Clone(s)
	}
	return copied
}
