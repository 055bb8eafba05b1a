package tui

import "github.com/charmbracelet/bubbles/key"

// Key builds a binding whose help text shows the first key.
func Key(help string, keyboardKey ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keyboardKey...), key.WithHelp(keyboardKey[0], help))
}

type keymap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Section     key.Binding
	Stroke      key.Binding
	StrokeBack  key.Binding
	Level       key.Binding
	Singles     key.Binding
	Consecutive key.Binding
	Shuffle     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keymap{
	Up:          Key("previous", "up", "k"),
	Down:        Key("next", "down", "j"),
	Top:         Key("first", "home", "g"),
	Bottom:      Key("last", "end", "G"),
	Section:     Key("taught/transcribed", "tab"),
	Stroke:      Key("next stroke", "s"),
	StrokeBack:  Key("previous stroke", "S"),
	Level:       Key("beat level", "l"),
	Singles:     Key("remove singles", "1"),
	Consecutive: Key("remove pairs", "2"),
	Shuffle:     Key("shuffle", "r"),
	Help:        Key("help", "?", "f1"),
	Quit:        Key("quit", "q", "ctrl+c"),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Section, k.Stroke, k.Level, k.Shuffle, k.Help, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Section},
		{k.Stroke, k.StrokeBack, k.Level},
		{k.Singles, k.Consecutive, k.Shuffle},
		{k.Help, k.Quit},
	}
}
