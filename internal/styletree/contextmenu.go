package styletree

import (
	"github.com/calegray/lacquer/internal/style"
	"github.com/calegray/lacquer/internal/theme"
)

// ContextMenu styles right-click menus on the highest elevation.
// Items are toggleable (the checked entry) and interactive inside
// each branch; the keystroke hint dims independently of the label.
func ContextMenu(r *Resolver) style.Style {
	layer := &r.Scheme().Highest

	item := style.Style{
		"padding":      edges(2, 12, 2, 12),
		"cornerRadius": 4.0,
		"label":        r.Text(layer, "ui", base, def, 0),
		"keystroke": style.Style{
			"text":   r.Text(layer, "ui", variant, def, 0),
			"margin": edges(0, 0, 0, 24),
		},
	}
	itemBundle := style.ToggleableInteractive(
		style.Interactive(item, style.States{
			style.StateHovered: {
				"background": r.Background(layer, base, hovered),
				"label":      style.Style{"color": r.Foreground(layer, base, hovered)},
			},
			style.StateClicked: {
				"background": r.Background(layer, base, pressed),
			},
		}),
		map[style.ToggleState]style.States{
			style.ToggleActive: {
				style.StateDefault: {
					"background": r.Background(layer, base, active),
				},
				style.StateHovered: {
					"background": r.Background(layer, base, hovered),
				},
			},
		},
	)

	return style.Style{
		"background":   r.Background(layer, base, def),
		"cornerRadius": 10.0,
		"padding":      uniform(4),
		"border":       r.Border(layer, base, def, 1, AllEdges),
		"shadow":       shadowStyle(r.Scheme().PopoverShadow),
		"item":         itemBundle,
		"separator": style.Style{
			"background": r.Background(layer, base, disabled),
			"margin":     edges(2, 0, 2, 0),
		},
	}
}

func shadowStyle(s theme.Shadow) style.Style {
	return style.Style{
		"blur":   s.Blur,
		"color":  s.Color,
		"offset": []float64{s.Offset[0], s.Offset[1]},
	}
}
