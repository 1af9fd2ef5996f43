package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calegray/lacquer/internal/style"
)

var (
	keyNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
)

// renderNode writes one node of the style tree at the given indent.
// Bundles are collapsed to the variant selected by the simulated
// interaction and toggle states before rendering.
func renderNode(b *strings.Builder, node any, indent int, interaction style.InteractionState, toggle style.ToggleState) {
	switch v := node.(type) {
	case style.Style:
		renderStyle(b, v, indent, interaction, toggle)
	case style.Bundle:
		renderStyle(b, v.Resolve(interaction), indent, interaction, toggle)
	case style.ToggleBundle[style.Style]:
		renderStyle(b, v.Resolve(toggle), indent, interaction, toggle)
	case style.ToggleBundle[style.Bundle]:
		renderStyle(b, v.Resolve(toggle).Resolve(interaction), indent, interaction, toggle)
	default:
		writeIndent(b, indent)
		b.WriteString(renderLeaf(v))
		b.WriteString("\n")
	}
}

func renderStyle(b *strings.Builder, s style.Style, indent int, interaction style.InteractionState, toggle style.ToggleState) {
	for _, k := range sortedKeys(s) {
		v := s[k]
		switch v.(type) {
		case style.Style, style.Bundle, style.ToggleBundle[style.Style], style.ToggleBundle[style.Bundle]:
			writeIndent(b, indent)
			b.WriteString(keyNameStyle.Render(k))
			b.WriteString("\n")
			renderNode(b, v, indent+1, interaction, toggle)
		default:
			writeIndent(b, indent)
			b.WriteString(keyNameStyle.Render(k))
			b.WriteString(": ")
			b.WriteString(renderLeaf(v))
			b.WriteString("\n")
		}
	}
}

// renderLeaf renders a terminal value, with a colored swatch for hex
// color strings.
func renderLeaf(v any) string {
	if s, ok := v.(string); ok && isHexColor(s) {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s[:7])).Render("██")
		return swatch + " " + valueStyle.Render(s)
	}
	return valueStyle.Render(fmt.Sprintf("%v", v))
}

// isHexColor reports whether s looks like #rrggbb or #rrggbbaa.
func isHexColor(s string) bool {
	if len(s) != 7 && len(s) != 9 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// sortedKeys keeps rendering deterministic across frames.
func sortedKeys(s style.Style) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeIndent(b *strings.Builder, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
}
