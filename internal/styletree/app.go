package styletree

import (
	"github.com/calegray/lacquer/internal/style"
)

// App assembles the complete style tree for one scheme. Every entry is
// built fresh on each call; the returned tree is the renderer's to
// consume and discard.
func App(r *Resolver) style.Style {
	scheme := r.Scheme()
	return style.Style{
		"meta": style.Style{
			"name":    scheme.Name,
			"isLight": scheme.IsLight,
		},
		"contactList":    ContactList(r),
		"contextMenu":    ContextMenu(r),
		"editor":         Editor(r),
		"commandPalette": CommandPalette(r),
		"picker":         Picker(r),
		"statusBar":      StatusBar(r),
		"tabBar":         TabBar(r),
	}
}

// PanelNames lists the panels App assembles, in display order.
func PanelNames() []string {
	return []string{
		"contactList",
		"contextMenu",
		"editor",
		"commandPalette",
		"picker",
		"statusBar",
		"tabBar",
	}
}

// Panel builds a single named panel, or false for a name App does not
// assemble.
func Panel(r *Resolver, name string) (style.Style, bool) {
	switch name {
	case "contactList":
		return ContactList(r), true
	case "contextMenu":
		return ContextMenu(r), true
	case "editor":
		return Editor(r), true
	case "commandPalette":
		return CommandPalette(r), true
	case "picker":
		return Picker(r), true
	case "statusBar":
		return StatusBar(r), true
	case "tabBar":
		return TabBar(r), true
	}
	return nil, false
}
