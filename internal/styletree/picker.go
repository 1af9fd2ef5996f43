package styletree

import (
	"github.com/calegray/lacquer/internal/style"
)

// Picker styles the fuzzy-finder overlay shared by file finders and
// selectors: the query editor, the result rows, and the empty state.
func Picker(r *Resolver) style.Style {
	layer := &r.Scheme().Highest

	item := style.Style{
		"padding":      edges(4, 12, 4, 12),
		"cornerRadius": 8.0,
		"margin":       edges(1, 4, 0, 4),
		"text":         r.Text(layer, "ui", base, def, 0),
		"highlightText": style.Style{
			"color":  r.Foreground(layer, accent, def),
			"weight": "bold",
		},
	}
	itemBundle := style.ToggleableInteractive(
		style.Interactive(item, style.States{
			style.StateHovered: {"background": r.Background(layer, base, hovered)},
			style.StateClicked: {"background": r.Background(layer, base, pressed)},
		}),
		map[style.ToggleState]style.States{
			style.ToggleActive: {
				style.StateDefault: {"background": r.Background(layer, base, active)},
				style.StateHovered: {"background": r.Background(layer, base, hovered)},
			},
		},
	)

	return style.Style{
		"background":   r.Background(layer, base, def),
		"cornerRadius": 12.0,
		"padding":      uniform(4),
		"shadow":       shadowStyle(r.Scheme().PopoverShadow),
		"border":       r.Border(layer, base, def, 1, AllEdges),
		"inputEditor": style.Style{
			"background":   r.Background(layer, on, def),
			"cornerRadius": 8.0,
			"padding":      edges(6, 12, 6, 12),
			"margin":       edges(0, 0, 4, 0),
			"text":         r.Text(layer, "ui", on, def, 0),
			"placeholderText": style.Style{
				"color": r.Foreground(layer, on, disabled),
			},
			"selection": style.Style{
				"cursor":    r.Scheme().Players[0].Cursor,
				"selection": r.Scheme().Players[0].Selection,
			},
		},
		"emptyInputEditor": style.Style{
			"text": r.Text(layer, "ui", variant, def, 0),
		},
		"noMatches": style.Style{
			"text":    r.Text(layer, "ui", variant, def, 0),
			"padding": uniform(8),
		},
		"item": itemBundle,
	}
}
