package gridview

import "github.com/xqrs/gridview/keybind"

// KeyMap holds the key bindings of a GridList.
type KeyMap struct {
	Up    keybind.Keybind
	Down  keybind.Keybind
	Left  keybind.Keybind
	Right keybind.Keybind

	ExtendUp    keybind.Keybind
	ExtendDown  keybind.Keybind
	ExtendLeft  keybind.Keybind
	ExtendRight keybind.Keybind

	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Home     keybind.Keybind
	End      keybind.Keybind

	SelectAll keybind.Keybind
	Copy      keybind.Keybind
}

// DefaultKeyMap returns arrow key navigation with shift to extend, page
// keys, home/end, ctrl+a and ctrl+c.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    keybind.New(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:  keybind.New(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		Left:  keybind.New(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "left")),
		Right: keybind.New(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "right")),

		ExtendUp:    keybind.New(keybind.WithKeys("shift+up", "K"), keybind.WithHelp("shift+↑", "extend up")),
		ExtendDown:  keybind.New(keybind.WithKeys("shift+down", "J"), keybind.WithHelp("shift+↓", "extend down")),
		ExtendLeft:  keybind.New(keybind.WithKeys("shift+left", "H"), keybind.WithHelp("shift+←", "extend left")),
		ExtendRight: keybind.New(keybind.WithKeys("shift+right", "L"), keybind.WithHelp("shift+→", "extend right")),

		PageUp:   keybind.New(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.New(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page down")),
		Home:     keybind.New(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first")),
		End:      keybind.New(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last")),

		SelectAll: keybind.New(keybind.WithKeys("ctrl+a"), keybind.WithHelp("ctrl+a", "select all")),
		Copy:      keybind.New(keybind.WithKeys("ctrl+c"), keybind.WithHelp("ctrl+c", "copy")),
	}
}

// ShortHelp returns the bindings shown in a one-line help bar.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.Left, k.Right, k.Copy}
}

// FullHelp returns the bindings grouped into columns.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ExtendUp, k.ExtendDown, k.ExtendLeft, k.ExtendRight},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.SelectAll, k.Copy},
	}
}
