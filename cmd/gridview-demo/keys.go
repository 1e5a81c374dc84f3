package main

import "github.com/xqrs/gridview/keybind"

type keyMap struct {
	Quit      keybind.Keybind
	Help      keybind.Keybind
	MoreRows  keybind.Keybind
	FewerRows keybind.Keybind
	MoreCols  keybind.Keybind
	FewerCols keybind.Keybind
	Append    keybind.Keybind
	Remove    keybind.Keybind
	Reuse     keybind.Keybind
	Scrollbar keybind.Keybind
	Follow    keybind.Keybind
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      keybind.New(keybind.WithKeys("q", "esc"), keybind.WithHelp("q", "quit")),
		Help:      keybind.New(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		MoreRows:  keybind.New(keybind.WithKeys("+"), keybind.WithHelp("+", "add row")),
		FewerRows: keybind.New(keybind.WithKeys("-"), keybind.WithHelp("-", "remove row")),
		MoreCols:  keybind.New(keybind.WithKeys("]"), keybind.WithHelp("]", "add column")),
		FewerCols: keybind.New(keybind.WithKeys("["), keybind.WithHelp("[", "remove column")),
		Append:    keybind.New(keybind.WithKeys("a"), keybind.WithHelp("a", "append 10")),
		Remove:    keybind.New(keybind.WithKeys("x"), keybind.WithHelp("x", "remove selected")),
		Reuse:     keybind.New(keybind.WithKeys("r"), keybind.WithHelp("r", "toggle reuse")),
		Scrollbar: keybind.New(keybind.WithKeys("s"), keybind.WithHelp("s", "toggle scrollbar")),
		Follow:    keybind.New(keybind.WithKeys("f"), keybind.WithHelp("f", "toggle follow")),
	}
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Quit, k.Help, k.Append, k.Remove},
		{k.MoreRows, k.FewerRows, k.MoreCols, k.FewerCols},
		{k.Reuse, k.Scrollbar, k.Follow},
	}
}
