package style

// ToggleState names a persistent selection condition, orthogonal to
// InteractionState: an element stays active until deselected, while
// hover and click come and go underneath it.
type ToggleState string

// The closed set of toggle states.
const (
	ToggleInactive ToggleState = "inactive"
	ToggleActive   ToggleState = "active"
)

// Variant constrains the shapes a toggle branch can mirror: a plain
// resolved style, or a full interactive bundle.
type Variant interface {
	Style | Bundle
}

// ToggleBundle indexes resolved variants by toggle state. The type
// parameter mirrors the shape of the base the bundle was built from,
// so a toggleable-over-interactive element keeps its per-interaction
// variants visible to the compiler.
type ToggleBundle[V Variant] map[ToggleState]V

// Toggleable expands a plain base into per-toggle-state styles. The
// ToggleInactive branch always equals base; every declared toggle
// state maps to base deep-merged with its override.
func Toggleable(base Style, states map[ToggleState]Style) ToggleBundle[Style] {
	bundle := make(ToggleBundle[Style], len(states)+1)
	bundle[ToggleInactive] = Clone(base)
	for state, override := range states {
		bundle[state] = Merge(base, override)
	}
	return bundle
}

// ToggleableInteractive composes the two state axes. Toggle state is
// the outer selector and interaction state the inner one: the renderer
// knows whether an element is active before it needs an interaction
// variant, so each toggle branch carries its own complete interactive
// bundle.
//
// For a declared toggle state, every interaction state of base is
// merged with that branch's override for the same interaction state;
// a branch that overrides only some interaction states leaves the
// rest passing through unchanged. An override for an interaction
// state base never declared is grafted onto base's default variant.
func ToggleableInteractive(base Bundle, states map[ToggleState]States) ToggleBundle[Bundle] {
	bundle := make(ToggleBundle[Bundle], len(states)+1)
	bundle[ToggleInactive] = cloneBundle(base)
	for toggle, overrides := range states {
		branch := make(Bundle, len(base))
		for state, baseStyle := range base {
			if override, ok := overrides[state]; ok {
				branch[state] = Merge(baseStyle, override)
			} else {
				branch[state] = Clone(baseStyle)
			}
		}
		for state, override := range overrides {
			if _, ok := base[state]; !ok {
				branch[state] = Merge(base[StateDefault], override)
			}
		}
		bundle[toggle] = branch
	}
	return bundle
}

// Resolve returns the branch for toggle state, falling back to the
// inactive branch when toggle was never declared.
func (tb ToggleBundle[V]) Resolve(toggle ToggleState) V {
	if v, ok := tb[toggle]; ok {
		return v
	}
	return tb[ToggleInactive]
}
