package styletree

import (
	"github.com/calegray/lacquer/internal/style"
)

// ContactList styles the collaboration contacts panel: the filter
// editor, section headers, and one row bundle shared by every contact
// entry. Rows toggle on selection and react to hover and click inside
// each toggle branch.
func ContactList(r *Resolver) style.Style {
	layer := &r.Scheme().Middle

	nameText := r.Text(layer, "ui", base, def, 0)

	row := style.Style{
		"padding":      edges(2, 8, 2, 8),
		"cornerRadius": 4.0,
		"name":         nameText,
		"avatar": style.Style{
			"width":        16.0,
			"cornerRadius": 8.0,
		},
	}
	rowBundle := style.ToggleableInteractive(
		style.Interactive(row, style.States{
			style.StateHovered: {"background": r.Background(layer, base, hovered)},
			style.StateClicked: {"background": r.Background(layer, base, pressed)},
		}),
		map[style.ToggleState]style.States{
			style.ToggleActive: {
				style.StateDefault: {
					"background": r.Background(layer, base, active),
					"name":       style.Style{"color": r.Foreground(layer, base, active)},
				},
			},
		},
	)

	callButton := style.Interactive(style.Style{
		"color":        r.Foreground(layer, variant, def),
		"iconWidth":    8.0,
		"buttonWidth":  16.0,
		"cornerRadius": 8.0,
	}, style.States{
		style.StateHovered: {
			"background": r.Background(layer, variant, hovered),
			"color":      r.Foreground(layer, variant, hovered),
		},
	})

	return style.Style{
		"background": r.Background(layer, base, def),
		"padding":    edges(6, 0, 6, 0),
		"userQueryEditor": style.Style{
			"background":   r.Background(layer, on, def),
			"cornerRadius": 6.0,
			"padding":      edges(4, 8, 4, 8),
			"margin":       edges(0, 8, 8, 8),
			"text":         r.Text(layer, "ui", on, def, 0),
			"placeholderText": style.Style{
				"color": r.Foreground(layer, on, disabled),
			},
			"border": r.Border(layer, on, def, 1, AllEdges),
		},
		"sectionHeader": style.Style{
			"text":    r.Text(layer, "ui", variant, def, 0),
			"margin":  edges(8, 8, 4, 8),
			"chevron": style.Style{"color": r.Foreground(layer, variant, def), "width": 8.0},
		},
		"row":        rowBundle,
		"callButton": callButton,
		"offlineIcon": style.Style{
			"color":   r.Foreground(layer, variant, disabled),
			"width":   8.0,
			"padding": edges(0, 4, 0, 0),
		},
	}
}
