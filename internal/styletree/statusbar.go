package styletree

import (
	"github.com/calegray/lacquer/internal/style"
)

// StatusBar styles the bar under the workspace: cursor position,
// language selector, and the diagnostic summary that highlights when
// the panel it opens is active.
func StatusBar(r *Resolver) style.Style {
	layer := &r.Scheme().Lowest

	diagnosticSummary := style.Style{
		"height":           20.0,
		"cornerRadius":     6.0,
		"padding":          edges(0, 6, 0, 6),
		"text":             r.Text(layer, "ui", base, def, 12),
		"iconColorOk":      r.Foreground(layer, positive, def),
		"iconColorError":   r.Foreground(layer, negative, def),
		"iconColorWarning": r.Foreground(layer, warning, def),
	}

	return style.Style{
		"background":  r.Background(layer, base, def),
		"height":      30.0,
		"padding":     edges(0, 6, 0, 6),
		"itemSpacing": 8.0,
		"cursorPosition": style.Style{
			"text": r.Text(layer, "ui", variant, def, 12),
		},
		"activeLanguage": style.Interactive(style.Style{
			"text":    r.Text(layer, "ui", variant, def, 12),
			"padding": edges(0, 6, 0, 6),
		}, style.States{
			style.StateHovered: {
				"text": style.Style{"color": r.Foreground(layer, variant, hovered)},
			},
		}),
		"diagnosticSummary": style.ToggleableInteractive(
			style.Interactive(diagnosticSummary, style.States{
				style.StateHovered: {"background": r.Background(layer, base, hovered)},
				style.StateClicked: {"background": r.Background(layer, base, pressed)},
			}),
			map[style.ToggleState]style.States{
				style.ToggleActive: {
					style.StateDefault: {"background": r.Background(layer, base, active)},
				},
			},
		),
	}
}
