package styletree

import (
	"github.com/calegray/lacquer/internal/style"
	"github.com/calegray/lacquer/internal/theme"
)

// Editor styles the text-editing surface: buffer text, gutter,
// selections per collaborator, diagnostics, and the scrollbar. The
// editor sits on the highest elevation so popovers anchored to it
// share its ground.
func Editor(r *Resolver) style.Style {
	scheme := r.Scheme()
	layer := &scheme.Highest

	selections := make([]any, 0, len(scheme.Players))
	for _, p := range scheme.Players {
		selections = append(selections, style.Style{
			"cursor":    p.Cursor,
			"selection": p.Selection,
		})
	}

	return style.Style{
		"background":                r.Background(layer, base, def),
		"text":                      r.Text(layer, "buffer", base, def, 0),
		"activeLineBackground":      r.Background(layer, on, def),
		"highlightedLineBackground": r.Background(layer, on, hovered),
		"gutter": style.Style{
			"width":   48.0,
			"padding": edges(0, 12, 0, 4),
			"lineNumber": style.Style{
				"text": r.Text(layer, "buffer", variant, def, 0),
			},
			"lineNumberActive": style.Style{
				"text": r.Text(layer, "buffer", base, active, 0),
			},
		},
		"selections":  selections,
		"diagnostics": diagnostics(r),
		"scrollbar":   scrollbar(r),
		"documentHighlight": style.Style{
			"readBackground":  r.Background(layer, accent, def),
			"writeBackground": r.Background(layer, warning, def),
		},
	}
}

// diagnostics styles the in-buffer diagnostic blocks by severity.
// Headers are interactive: hovering reveals the jump affordance.
func diagnostics(r *Resolver) style.Style {
	layer := &r.Scheme().Middle

	severity := func(set theme.SetTag) style.Style {
		header := style.Style{
			"background":   r.Background(layer, set, def),
			"border":       r.Border(layer, set, def, 1, Edges{Left: true}),
			"cornerRadius": 4.0,
			"padding":      edges(4, 8, 4, 8),
			"message": style.Style{
				"text":      r.Text(layer, "ui", set, def, 0),
				"highlight": r.Foreground(layer, set, active),
			},
		}
		return style.Style{
			"header": style.Interactive(header, style.States{
				style.StateHovered: {
					"background": r.Background(layer, set, hovered),
				},
			}),
			"message": style.Style{
				"text": r.Text(layer, "ui", set, def, 0),
			},
		}
	}

	return style.Style{
		"error":   severity(negative),
		"warning": severity(warning),
		"info":    severity(accent),
		"hint":    severity(variant),
	}
}

// scrollbar styles the editor scrollbar: track, thumb, and the
// diagnostic/search markers painted onto the track.
func scrollbar(r *Resolver) style.Style {
	layer := &r.Scheme().Highest

	thumb := style.Style{
		"background":   r.Background(layer, on, def),
		"cornerRadius": 4.0,
		"border":       r.Border(layer, on, def, 1, Edges{Left: true}),
	}

	return style.Style{
		"width":           12.0,
		"minHeightFactor": 1.0,
		"track": style.Style{
			"background": r.Background(layer, base, def),
			"border":     r.Border(layer, base, def, 1, Edges{Left: true}),
		},
		"thumb": style.Interactive(thumb, style.States{
			style.StateHovered: {"background": r.Background(layer, on, hovered)},
			style.StateClicked: {"background": r.Background(layer, on, pressed)},
		}),
		"markers": style.Style{
			"error":     r.Background(layer, negative, active),
			"warning":   r.Background(layer, warning, active),
			"selection": r.Scheme().Players[0].Selection,
		},
	}
}
