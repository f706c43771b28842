package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bufferStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	placeholderStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	resultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

func (m model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(strings.Join(m.canvas.Lines(), "\n"))
	result.WriteString("\n")

	if m.surface.text == bufferPlaceholder {
		result.WriteString(placeholderStyle.Render(m.surface.text))
	} else {
		result.WriteString(bufferStyle.Render(m.surface.text))
	}
	result.WriteString("\n")

	if last, ok := m.surface.lastResult(); ok {
		result.WriteString(fit(resultStyle, "Typed: "+last, m.width))
	}
	result.WriteString("\n")

	status := m.statusLine()
	if m.errorMessage != "" {
		result.WriteString(fit(errorStyle, status, m.width))
	} else {
		result.WriteString(fit(statusStyle, status, m.width))
	}
	return result.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		opStr := "Export PNG"
		if m.fileOp == FileOpSaveVisualTXT {
			opStr = "Export text"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s█ | Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", opStr, m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit with unsent text? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.pendingPath)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	}

	stick := m.session.Stick()
	status := fmt.Sprintf("Mode: %s | Stick: (%.0f,%.0f)", m.modeString(), stick.X, stick.Y)
	if sym, ok := m.session.Pending(); ok {
		status += fmt.Sprintf(" | Selected: %s", describeGlyph(sym.Glyph))
	}
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		status += fmt.Sprintf(" | ERROR: %s", m.errorMessage)
	} else if m.successMessage == "" {
		status += " | " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return status
}

func (m model) modeString() string {
	if m.session.Dragging() {
		return "DRAG"
	}
	return "NORMAL"
}

func describeGlyph(g Glyph) string {
	switch g.Kind() {
	case KindDeleteLast:
		return "delete"
	case KindCommit:
		return "send"
	}
	if g == ' ' {
		return "space"
	}
	return fmt.Sprintf("%q", g.String())
}

func (m model) helpView() string {
	lines := []string{
		helpTitleStyle.Render("railtype"),
		"",
		"Drag the stick (●) along the tracks with the mouse and let go on a",
		"symbol to select it. Type the selection to add it to the text; the",
		"symbols are shuffled after every round.",
		"",
		"  red ←   deletes the last character",
		"  green ↵ sends the text and starts over",
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		"Press any key to close.",
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func fit(style lipgloss.Style, s string, width int) string {
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(s)
}
