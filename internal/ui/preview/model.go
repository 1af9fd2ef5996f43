// Package preview contains the interactive style tree preview.
//
// The left pane lists the panels of the assembled tree; the right pane
// renders the selected panel's resolved fragments as color swatches.
// Interaction and toggle states are simulated with keyboard toggles so
// every variant in a bundle can be inspected without a real editor.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/calegray/lacquer/internal/keys"
	"github.com/calegray/lacquer/internal/log"
	"github.com/calegray/lacquer/internal/style"
	"github.com/calegray/lacquer/internal/styletree"
	"github.com/calegray/lacquer/internal/theme"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1)

	listStyle = lipgloss.NewStyle().
			MarginRight(3)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// SchemeReloadedMsg replaces the previewed scheme, typically after the
// watcher reports a scheme file change.
type SchemeReloadedMsg struct {
	Scheme *theme.ColorScheme
}

// Model holds the preview state.
type Model struct {
	resolver *styletree.Resolver
	fonts    styletree.Fonts
	panels   []string
	cursor   int

	interaction style.InteractionState
	toggle      style.ToggleState

	keys     keys.KeyMap
	showHelp bool
	width    int
	height   int
}

// New creates a preview over one color scheme.
func New(scheme *theme.ColorScheme, fonts styletree.Fonts) Model {
	return Model{
		resolver:    styletree.NewResolver(scheme, fonts),
		fonts:       fonts,
		panels:      styletree.PanelNames(),
		interaction: style.StateDefault,
		toggle:      style.ToggleInactive,
		keys:        keys.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SchemeReloadedMsg:
		log.Info(log.CatUI, "scheme reloaded", "name", msg.Scheme.Name)
		m.resolver = styletree.NewResolver(msg.Scheme, m.fonts)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.panels)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Hover):
			m.interaction = flipInteraction(m.interaction, style.StateHovered)
			return m, nil
		case key.Matches(msg, m.keys.Press):
			m.interaction = flipInteraction(m.interaction, style.StateClicked)
			return m, nil
		case key.Matches(msg, m.keys.Disable):
			m.interaction = flipInteraction(m.interaction, style.StateDisabled)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if m.toggle == style.ToggleActive {
				m.toggle = style.ToggleInactive
			} else {
				m.toggle = style.ToggleActive
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.interaction = style.StateDefault
			m.toggle = style.ToggleInactive
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	return m, nil
}

// Selected returns the currently selected panel name.
func (m Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.panels) {
		return ""
	}
	return m.panels[m.cursor]
}

// States reports the simulated interaction and toggle states.
func (m Model) States() (style.InteractionState, style.ToggleState) {
	return m.interaction, m.toggle
}

// View implements tea.Model.
func (m Model) View() string {
	scheme := m.resolver.Scheme()

	appearance := "dark"
	if scheme.IsLight {
		appearance = "light"
	}
	header := titleStyle.Render(fmt.Sprintf("%s (%s)", scheme.Name, appearance))
	states := stateStyle.Render(fmt.Sprintf("interaction: %s  toggle: %s", m.interaction, m.toggle))

	var list strings.Builder
	for i, name := range m.panels {
		if i == m.cursor {
			list.WriteString(cursorStyle.Render("> " + name))
		} else {
			list.WriteString(dimStyle.Render("  " + name))
		}
		list.WriteString("\n")
	}

	detail := m.renderDetail()

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(list.String()),
		detail,
	)

	out := header + "\n" + states + "\n\n" + body
	if m.showHelp {
		out += "\n" + m.renderHelp()
	} else {
		out += "\n" + footerStyle.Render("? for help")
	}
	return out
}

// renderDetail renders the selected panel's fragments.
func (m Model) renderDetail() string {
	panel, ok := styletree.Panel(m.resolver, m.Selected())
	if !ok {
		return dimStyle.Render("no panel selected")
	}

	var b strings.Builder
	renderNode(&b, panel, 0, m.interaction, m.toggle)
	return b.String()
}

// renderHelp renders the full keybinding reference.
func (m Model) renderHelp() string {
	var parts []string
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	text := strings.Join(parts, "  •  ")
	width := m.width
	if width <= 0 {
		width = 80
	}
	return footerStyle.Render(wordwrap.String(text, width))
}

func flipInteraction(current, target style.InteractionState) style.InteractionState {
	if current == target {
		return style.StateDefault
	}
	return target
}
