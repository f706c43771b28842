package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if m.showHelp || m.mode != ModeNormal {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			default:
				m.showHelp = false
			}
			return m, nil
		}
		switch m.mode {
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.canvas.WorldAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.Press(p.X, p.Y)
		}
	case tea.MouseActionMotion:
		m.session.Move(p.X, p.Y)
	case tea.MouseActionRelease:
		m.session.Release(p.X, p.Y)
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.config.Confirmations && m.session.Buffer() != "" {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Type):
		m.surface.clearNotice()
		m.session.Apply()
		if m.surface.err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", m.surface.err)
		} else {
			m.successMessage = m.surface.notice
		}
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down):
		m.handleNavigation(msg.String())
	case key.Matches(msg, m.keys.ExportPNG):
		m.startFileInput(FileOpSavePNG)
	case key.Matches(msg, m.keys.ExportTXT):
		m.startFileInput(FileOpSaveVisualTXT)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
	m.errorMessage = ""
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.errorMessage = ""
	case tea.KeyEnter:
		if m.filename == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		path, err := m.config.GetSavePath(m.exportFilename())
		if err != nil {
			m.logger.Errorf("export: %v", err)
			m.errorMessage = err.Error()
			return m, nil
		}
		if m.config.Confirmations {
			if _, err := os.Stat(path); err == nil {
				m.pendingPath = path
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				return m, nil
			}
		}
		m.runExport(path)
	case tea.KeyBackspace:
		if runes := []rune(m.filename); len(runes) > 0 {
			m.filename = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.filename += " "
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m *model) runExport(path string) {
	var err error
	switch m.fileOp {
	case FileOpSavePNG:
		err = m.exportPNG(path)
	case FileOpSaveVisualTXT:
		err = m.exportVisualTXT(path)
	}
	if err != nil {
		m.logger.Errorf("export %s: %v", path, err)
		m.errorMessage = err.Error()
		m.mode = ModeFileInput
		return
	}
	m.logger.Infof("exported %s", path)
	m.mode = ModeNormal
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Saved %s", path)
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.runExport(m.pendingPath)
			m.pendingPath = ""
		}
	case "n", "N", "esc":
		switch m.confirmAction {
		case ConfirmQuit:
			m.mode = ModeNormal
		case ConfirmOverwriteFile:
			m.pendingPath = ""
			m.mode = ModeFileInput
		}
	}
	return m, nil
}
