package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

const bufferPlaceholder = "Type here whatever you want!"

// Display receives the text typed so far and every finalized result.
type Display interface {
	ShowBuffer(text string)
	Surface(result string)
}

type SessionConfig struct {
	Grid     Grid
	Catalog  []Glyph
	Renderer Renderer
	Display  Display
	Rand     *rand.Rand
	Logger   *Logger
}

// Session owns all mutable keyboard state: stick, layout, pending selection
// and output buffer. Every event handler runs to completion; events that
// arrive from inside a handler are dropped.
type Session struct {
	network *Network
	slots   []Slot
	catalog []Glyph
	symbols []Symbol

	stick   Stick
	pending *Symbol
	buffer  []Glyph

	renderer   Renderer
	display    Display
	blank      Frame
	background Frame

	rng    *rand.Rand
	logger *Logger
	busy   bool
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Renderer == nil || cfg.Display == nil {
		return nil, fmt.Errorf("session needs a renderer and a display")
	}
	network, slots, err := BuildKeyboard(cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("build keyboard: %w", err)
	}
	if len(cfg.Catalog) != len(slots) {
		return nil, fmt.Errorf("catalog has %d glyphs, grid has %d cells", len(cfg.Catalog), len(slots))
	}
	s := &Session{
		network:  network,
		slots:    slots,
		catalog:  append([]Glyph(nil), cfg.Catalog...),
		renderer: cfg.Renderer,
		display:  cfg.Display,
		rng:      cfg.Rand,
		logger:   cfg.Logger,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = NewLogger(io.Discard, LevelNone)
	}

	s.blank = s.renderer.SnapshotFrame()
	if err := s.reshuffle(); err != nil {
		return nil, err
	}
	s.stick.Pos, _ = network.Project(slots[0].Anchor.X, slots[0].Anchor.Y)
	s.redrawBackground()
	s.pending = s.symbolAt(s.stick.Pos)
	s.display.ShowBuffer(s.bufferText())
	s.logger.Infof("session ready: %d tracks, %d symbols", network.Len(), len(s.symbols))
	return s, nil
}

func (s *Session) enter() bool {
	if s.busy {
		s.logger.Warnf("dropping re-entrant event")
		return false
	}
	s.busy = true
	return true
}

func (s *Session) leave() {
	s.busy = false
}

// Press starts a drag when (x, y) is on the stick.
func (s *Session) Press(x, y float64) bool {
	if !s.enter() {
		return false
	}
	defer s.leave()

	if s.stick.Dragging || !s.stick.Grabs(Point{X: x, Y: y}) {
		return false
	}
	s.stick.Dragging = true
	s.logger.Debugf("drag start at (%.1f,%.1f)", x, y)
	s.moveStick(x, y)
	return true
}

// Move drags the stick along the tracks. It reports whether the stick was
// redrawn.
func (s *Session) Move(x, y float64) bool {
	if !s.enter() {
		return false
	}
	defer s.leave()

	if !s.stick.Dragging || !s.stick.Reaches(Point{X: x, Y: y}) {
		return false
	}
	return s.moveStick(x, y)
}

// Release ends a drag and selects the symbol under the stick, if any.
func (s *Session) Release(x, y float64) {
	if !s.enter() {
		return
	}
	defer s.leave()

	if !s.stick.Dragging {
		return
	}
	s.stick.Dragging = false
	s.pending = s.symbolAt(s.stick.Pos)
	if s.pending != nil {
		s.logger.Debugf("drag end at (%.1f,%.1f), pending %q", s.stick.Pos.X, s.stick.Pos.Y, s.pending.Glyph.String())
	} else {
		s.logger.Debugf("drag end at (%.1f,%.1f), nothing pending", s.stick.Pos.X, s.stick.Pos.Y)
	}
}

// Apply types the pending selection and starts a new round with a fresh
// layout. It does nothing while a drag is in progress.
func (s *Session) Apply() {
	if !s.enter() {
		return
	}
	defer s.leave()

	if s.stick.Dragging {
		s.logger.Debugf("apply ignored while dragging")
		return
	}
	pending := s.pending
	s.pending = nil

	if err := s.reshuffle(); err != nil {
		// Catalog and slots are validated in NewSession.
		s.logger.Errorf("reshuffle: %v", err)
	}
	s.redrawBackground()

	if pending == nil {
		s.logger.Infof("empty round")
		s.display.ShowBuffer(s.bufferText())
		return
	}

	switch pending.Glyph.Kind() {
	case KindDeleteLast:
		if len(s.buffer) > 0 {
			s.buffer = s.buffer[:len(s.buffer)-1]
		}
	case KindCommit:
		result := s.Buffer()
		s.buffer = nil
		s.logger.Infof("commit %q", result)
		s.display.Surface(result)
	default:
		s.buffer = append(s.buffer, pending.Glyph)
	}
	s.display.ShowBuffer(s.bufferText())
}

// Paint draws the whole scene, stick included, on r.
func (s *Session) Paint(r Renderer) {
	s.drawScene(r)
	r.DrawStick(s.stick.Pos)
}

func (s *Session) Stick() Point {
	return s.stick.Pos
}

func (s *Session) Dragging() bool {
	return s.stick.Dragging
}

func (s *Session) Pending() (Symbol, bool) {
	if s.pending == nil {
		return Symbol{}, false
	}
	return *s.pending, true
}

func (s *Session) Buffer() string {
	var b strings.Builder
	for _, g := range s.buffer {
		b.WriteRune(rune(g))
	}
	return b.String()
}

func (s *Session) Symbols() []Symbol {
	return append([]Symbol(nil), s.symbols...)
}

func (s *Session) Network() *Network {
	return s.network
}

func (s *Session) bufferText() string {
	if len(s.buffer) == 0 {
		return bufferPlaceholder
	}
	return s.Buffer()
}

func (s *Session) moveStick(x, y float64) bool {
	if !s.stick.MoveTo(s.network, x, y) {
		return false
	}
	s.renderer.RestoreFrame(s.background)
	s.renderer.DrawStick(s.stick.Pos)
	return true
}

func (s *Session) symbolAt(p Point) *Symbol {
	for i := range s.symbols {
		if s.symbols[i].Anchor.Dist(p) < commitRadius {
			sym := s.symbols[i]
			return &sym
		}
	}
	return nil
}

func (s *Session) reshuffle() error {
	symbols, err := Layout(Shuffle(s.catalog, s.rng), s.slots)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	s.symbols = symbols
	return nil
}

func (s *Session) drawScene(r Renderer) {
	tracks := s.network.Tracks()
	for _, t := range tracks {
		r.DrawTrackOutline(t)
	}
	for _, t := range tracks {
		r.DrawTrackFill(t)
	}
	for _, sym := range s.symbols {
		r.DrawSymbol(sym)
	}
}

func (s *Session) redrawBackground() {
	s.renderer.RestoreFrame(s.blank)
	s.drawScene(s.renderer)
	s.background = s.renderer.SnapshotFrame()
	s.renderer.DrawStick(s.stick.Pos)
}
