package styletree

import (
	"github.com/calegray/lacquer/internal/style"
)

// CommandPalette styles the command palette overlay. Keystroke hint
// chips toggle with the focused row so they stay legible against the
// active background.
func CommandPalette(r *Resolver) style.Style {
	layer := &r.Scheme().Highest

	key := style.Style{
		"text":         r.Text(layer, "ui", on, def, 12),
		"cornerRadius": 2.0,
		"background":   r.Background(layer, on, def),
		"padding":      edges(1, 6, 1, 6),
		"margin":       edges(0, 0, 0, 2),
	}

	return style.Style{
		"keystrokeSpacing": 8.0,
		"key": style.Toggleable(key, map[style.ToggleState]style.Style{
			style.ToggleActive: {
				"text":       style.Style{"color": r.Foreground(layer, on, active)},
				"background": r.Background(layer, on, active),
			},
		}),
	}
}
