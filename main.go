package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()

	logger := NewLogger(io.Discard, LevelNone)
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "railtype")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = NewLogger(f, config.LogLevel)
	}

	m, err := newModel(config, logger)
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
