package styletree

import (
	"github.com/calegray/lacquer/internal/style"
)

// TabBar styles the editor tab strip. The active tab lifts onto the
// editor's ground; inactive tabs stay on the bar's and brighten on
// hover. Close buttons only react inside their own tab's branch.
func TabBar(r *Resolver) style.Style {
	scheme := r.Scheme()
	bar := &scheme.Middle
	surface := &scheme.Highest

	tab := style.Style{
		"height":  32.0,
		"padding": edges(0, 12, 0, 12),
		"spacing": 8.0,
		"text":    r.Text(bar, "ui", variant, def, 0),
		"border":  r.Border(bar, base, def, 1, Edges{Right: true, Bottom: true}),
		"closeIcon": style.Style{
			"color": r.Foreground(bar, variant, def),
			"width": 8.0,
		},
		"modifiedIcon": style.Style{
			"color": r.Foreground(bar, warning, def),
			"width": 8.0,
		},
	}
	tabBundle := style.ToggleableInteractive(
		style.Interactive(tab, style.States{
			style.StateHovered: {
				"background": r.Background(bar, base, hovered),
				"text":       style.Style{"color": r.Foreground(bar, variant, hovered)},
			},
		}),
		map[style.ToggleState]style.States{
			style.ToggleActive: {
				style.StateDefault: {
					"background": r.Background(surface, base, def),
					"text":       r.Text(surface, "ui", base, def, 0),
					"border":     style.Style{"bottom": false},
				},
				style.StateHovered: {
					"background": r.Background(surface, base, def),
				},
			},
		},
	)

	return style.Style{
		"background": r.Background(bar, base, def),
		"height":     32.0,
		"tab":        tabBundle,
		"paneButton": style.Interactive(style.Style{
			"color":       r.Foreground(bar, variant, def),
			"iconWidth":   12.0,
			"buttonWidth": 32.0,
		}, style.States{
			style.StateHovered: {"color": r.Foreground(bar, variant, hovered)},
			style.StateClicked: {"color": r.Foreground(bar, variant, pressed)},
		}),
		"dropTargetOverlay": scheme.Players[0].Selection,
	}
}
