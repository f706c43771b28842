package main

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
)

func newModel(config *Config, logger *Logger) (model, error) {
	grid := DefaultGrid()
	canvas := NewCanvas(grid.Bounds(), config.CellWidth, config.CellHeight)
	surf := &surface{
		clipboard: config.Clipboard,
		copy:      clipboard.WriteAll,
		logger:    logger,
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Infof("layout seed %d", seed)

	session, err := NewSession(SessionConfig{
		Grid:     grid,
		Catalog:  DefaultCatalog(),
		Renderer: canvas,
		Display:  surf,
		Rand:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		Logger:   logger,
	})
	if err != nil {
		return model{}, err
	}

	return model{
		grid:    grid,
		session: session,
		canvas:  canvas,
		surface: surf,
		config:  config,
		logger:  logger,
		keys:    newKeyMap(),
		help:    help.New(),
		mode:    ModeNormal,
	}, nil
}

func (s *surface) ShowBuffer(text string) {
	s.text = text
}

func (s *surface) Surface(result string) {
	s.results = append(s.results, result)
	if len(s.results) > maxResults {
		s.results = s.results[len(s.results)-maxResults:]
	}
	if !s.clipboard || result == "" || s.copy == nil {
		return
	}
	if err := s.copy(result); err != nil {
		s.logger.Errorf("clipboard: %v", err)
		s.err = err
		return
	}
	s.notice = "Copied to clipboard"
}

func (s *surface) lastResult() (string, bool) {
	if len(s.results) == 0 {
		return "", false
	}
	return s.results[len(s.results)-1], true
}

func (s *surface) clearNotice() {
	s.notice = ""
	s.err = nil
}

func (m *model) exportFilename() string {
	ext := ".png"
	if m.fileOp == FileOpSaveVisualTXT {
		ext = ".txt"
	}
	name := strings.TrimSpace(m.filename)
	if !strings.EqualFold(filepath.Ext(name), ext) {
		name += ext
	}
	return name
}
