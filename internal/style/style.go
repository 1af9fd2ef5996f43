// Package style implements the style composition engine: deep merge of
// partial style fragments plus the interactive and toggleable state
// combinators that expand a base style into one resolved style per
// reachable state combination.
package style

// Style is a possibly nested mapping of style properties. Leaves are
// plain values: hex color strings, numbers, booleans, font names.
// Nested Style values merge recursively; every other value (including
// slices and bundles embedded in a tree) is opaque and replaces
// wholesale on merge.
type Style map[string]any

// Merge applies override on top of base and returns a fresh Style.
// Fields present only in base are retained, fields present only in
// override are added, and where both sides carry a nested Style the
// merge recurses. In every other case the override value wins at the
// field it sets. Neither input is mutated.
func Merge(base, override Style) Style {
	merged := make(Style, len(base)+len(override))
	for k, v := range base {
		merged[k] = cloneValue(v)
	}
	for k, v := range override {
		if baseChild, ok := merged[k].(Style); ok {
			if overrideChild, ok := v.(Style); ok {
				merged[k] = Merge(baseChild, overrideChild)
				continue
			}
		}
		merged[k] = cloneValue(v)
	}
	return merged
}

// Clone returns a deep copy of s. Nested Style values are copied,
// opaque leaves are shared.
func Clone(s Style) Style {
	if s == nil {
		return Style{}
	}
	copied := make(Style, len(s))
	for k, v := range s {
		copied[k] = cloneValue(v)
	}
	return copied
}

func cloneValue(v any) any {
	if child, ok := v.(Style); ok {
		return Clone(child)
	}
	return v
}
