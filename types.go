package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type model struct {
	width          int
	height         int
	grid           Grid
	session        *Session
	canvas         *Canvas
	surface        *surface
	config         *Config
	logger         *Logger
	keys           keyMap
	help           help.Model
	showHelp       bool
	mode           Mode
	fileOp         FileOperation
	filename       string
	pendingPath    string
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
}

// surface is the Display the session writes to. It outlives the model
// copies bubbletea passes around.
type surface struct {
	text      string
	results   []string
	clipboard bool
	copy      func(string) error
	logger    *Logger
	notice    string
	err       error
}

type keyMap struct {
	Type      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	ExportPNG key.Binding
	ExportTXT key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Type:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "type selected")),
		Left:      key.NewBinding(key.WithKeys("left", "h", "shift+left", "H"), key.WithHelp("←/h", "stick left")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "shift+right", "L"), key.WithHelp("→/l", "stick right")),
		Up:        key.NewBinding(key.WithKeys("up", "k", "shift+up", "K"), key.WithHelp("↑/k", "stick up")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "shift+down", "J"), key.WithHelp("↓/j", "stick down")),
		ExportPNG: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "export PNG")),
		ExportTXT: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "export text")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Type, k.Left, k.Right, k.Up, k.Down},
		{k.ExportPNG, k.ExportTXT, k.Help, k.Quit},
	}
}
