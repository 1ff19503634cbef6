package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor shortcuts.
type KeyMap struct {
	Mode        key.Binding
	Type        key.Binding
	Preview     key.Binding
	Hex         key.Binding
	Angle       key.Binding
	AngleDown   key.Binding
	AngleUp     key.Binding
	Opacity     key.Binding
	OpacityDown key.Binding
	OpacityUp   key.Binding
	PosLeft     key.Binding
	PosRight    key.Binding
	PrevStop    key.Binding
	NextStop    key.Binding
	AddStop     key.Binding
	RemoveStop  key.Binding
	Fullscreen  key.Binding
	Copy        key.Binding
	Theme       key.Binding
	Help        key.Binding
	Escape      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mode:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "single/gradient")),
		Type:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "linear/radial")),
		Preview:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview mode")),
		Hex:         key.NewBinding(key.WithKeys("e", "#"), key.WithHelp("e", "edit hex")),
		Angle:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "set angle")),
		AngleDown:   key.NewBinding(key.WithKeys(","), key.WithHelp(",", "angle -15°")),
		AngleUp:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "angle +15°")),
		Opacity:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "set opacity")),
		OpacityDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "opacity -5")),
		OpacityUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "opacity +5")),
		PosLeft:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move stop")),
		PosRight:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move stop")),
		PrevStop:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev stop")),
		NextStop:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next stop")),
		AddStop:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add stop")),
		RemoveStop:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove stop")),
		Fullscreen:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Copy:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy css")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Preview, k.Hex, k.AddStop, k.Copy, k.Fullscreen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Type, k.Preview, k.Theme},
		{k.Hex, k.Angle, k.AngleDown, k.AngleUp, k.Opacity, k.OpacityDown, k.OpacityUp},
		{k.PrevStop, k.NextStop, k.PosLeft, k.PosRight, k.AddStop, k.RemoveStop},
		{k.Copy, k.Fullscreen, k.Help, k.Escape, k.Quit},
	}
}
