package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegray/lacquer/internal/style"
	"github.com/calegray/lacquer/internal/styletree"
	"github.com/calegray/lacquer/internal/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(theme.OneDark.Scheme(), styletree.DefaultFonts())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_StartsAtRestingStates(t *testing.T) {
	m := newTestModel(t)

	interaction, toggle := m.States()
	assert.Equal(t, style.StateDefault, interaction)
	assert.Equal(t, style.ToggleInactive, toggle)
	assert.Equal(t, "contactList", m.Selected())
}

func TestUpdate_CursorMovesWithinBounds(t *testing.T) {
	m := newTestModel(t)

	// Up at the top stays put
	updated, _ := m.Update(keyPress('k'))
	m = updated.(Model)
	assert.Equal(t, "contactList", m.Selected())

	updated, _ = m.Update(keyPress('j'))
	m = updated.(Model)
	assert.Equal(t, "contextMenu", m.Selected())

	// Down past the last panel stays on the last panel
	for i := 0; i < 20; i++ {
		updated, _ = m.Update(keyPress('j'))
		m = updated.(Model)
	}
	assert.Equal(t, "tabBar", m.Selected())
}

func TestUpdate_InteractionStatesFlip(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('h'))
	m = updated.(Model)
	interaction, _ := m.States()
	assert.Equal(t, style.StateHovered, interaction)

	// Pressing the same key again returns to default
	updated, _ = m.Update(keyPress('h'))
	m = updated.(Model)
	interaction, _ = m.States()
	assert.Equal(t, style.StateDefault, interaction)

	// Switching directly between states works
	updated, _ = m.Update(keyPress('p'))
	m = updated.(Model)
	updated, _ = m.Update(keyPress('d'))
	m = updated.(Model)
	interaction, _ = m.States()
	assert.Equal(t, style.StateDisabled, interaction)
}

func TestUpdate_ToggleAndReset(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('a'))
	m = updated.(Model)
	updated, _ = m.Update(keyPress('h'))
	m = updated.(Model)

	interaction, toggle := m.States()
	assert.Equal(t, style.StateHovered, interaction)
	assert.Equal(t, style.ToggleActive, toggle)

	updated, _ = m.Update(keyPress('r'))
	m = updated.(Model)
	interaction, toggle = m.States()
	assert.Equal(t, style.StateDefault, interaction)
	assert.Equal(t, style.ToggleInactive, toggle)
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_SchemeReloadSwapsResolver(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(SchemeReloadedMsg{Scheme: theme.OneLight.Scheme()})
	m = updated.(Model)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "one-light")
	assert.Contains(t, view, "(light)")
}

func TestView_ListsAllPanels(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	view := ansi.Strip(m.View())
	for _, name := range styletree.PanelNames() {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "one-dark")
	assert.Contains(t, view, "interaction: default")
}

func TestView_ShowsSelectedPanelDetail(t *testing.T) {
	m := newTestModel(t)

	view := ansi.Strip(m.View())
	// The contact list detail includes its query editor fragment.
	assert.Contains(t, view, "userQueryEditor")
	assert.Contains(t, view, "background")
}

func TestView_HelpToggle(t *testing.T) {
	m := newTestModel(t)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "? for help")
	assert.NotContains(t, view, "toggle active")

	updated, _ := m.Update(keyPress('?'))
	m = updated.(Model)
	view = ansi.Strip(m.View())
	assert.Contains(t, view, "toggle active")
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, isHexColor("#282c34"))
	assert.True(t, isHexColor("#282c34ff"))
	assert.False(t, isHexColor("282c34"))
	assert.False(t, isHexColor("#28"))
	assert.False(t, isHexColor("#zzzzzz"))
}
