package main

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"
)

// recordingRenderer keeps the drawn frame as a list of operations.
type recordingRenderer struct {
	frame    []string
	restores int
	sticks   int
}

func (r *recordingRenderer) DrawTrackOutline(t Track) {
	r.frame = append(r.frame, fmt.Sprintf("outline %v", t))
}

func (r *recordingRenderer) DrawTrackFill(t Track) {
	r.frame = append(r.frame, fmt.Sprintf("fill %v", t))
}

func (r *recordingRenderer) DrawSymbol(sym Symbol) {
	r.frame = append(r.frame, fmt.Sprintf("symbol %s %v", sym.Glyph.String(), sym.Anchor))
}

func (r *recordingRenderer) DrawStick(p Point) {
	r.sticks++
	r.frame = append(r.frame, fmt.Sprintf("stick %v", p))
}

func (r *recordingRenderer) SnapshotFrame() Frame {
	return append([]string(nil), r.frame...)
}

func (r *recordingRenderer) RestoreFrame(f Frame) {
	r.restores++
	r.frame = append([]string(nil), f.([]string)...)
}

type recordingDisplay struct {
	shown    []string
	surfaced []string
}

func (d *recordingDisplay) ShowBuffer(text string) { d.shown = append(d.shown, text) }
func (d *recordingDisplay) Surface(result string)  { d.surfaced = append(d.surfaced, result) }

func newTestSession(t *testing.T) (*Session, *recordingRenderer, *recordingDisplay) {
	t.Helper()
	r := &recordingRenderer{}
	d := &recordingDisplay{}
	s, err := NewSession(SessionConfig{
		Grid:     DefaultGrid(),
		Catalog:  DefaultCatalog(),
		Renderer: r,
		Display:  d,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Logger:   testLogger,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, r, d
}

// selectGlyph puts the stick on g's anchor and releases it there.
func selectGlyph(t *testing.T, s *Session, g Glyph) {
	t.Helper()
	for _, sym := range s.Symbols() {
		if sym.Glyph != g {
			continue
		}
		s.stick.Pos = sym.Anchor
		if !s.Press(sym.Anchor.X, sym.Anchor.Y) {
			t.Fatalf("press on %v did not grab the stick", sym.Anchor)
		}
		s.Release(sym.Anchor.X, sym.Anchor.Y)
		if got, ok := s.Pending(); !ok || got.Glyph != g {
			t.Fatalf("pending = %v, %v; want %q", got, ok, g.String())
		}
		return
	}
	t.Fatalf("glyph %q is not placed", g.String())
}

// dragAway moves the stick down the first stub, away from every anchor.
func dragAway(t *testing.T, s *Session) {
	t.Helper()
	s.stick.Pos = Point{40, 40}
	s.Press(40, 40)
	s.Move(40, 60)
	s.Move(40, 80)
	s.Release(40, 80)
	if s.Stick() != (Point{40, 80}) {
		t.Fatalf("stick at %v, want (40,80)", s.Stick())
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("pending selection not cleared")
	}
}

func glyphOrder(symbols []Symbol) []Glyph {
	out := make([]Glyph, len(symbols))
	for i, sym := range symbols {
		out[i] = sym.Glyph
	}
	return out
}

func TestSessionStartsOnFirstSlot(t *testing.T) {
	s, r, d := newTestSession(t)
	if s.Stick() != (Point{40, 40}) {
		t.Fatalf("stick starts at %v", s.Stick())
	}
	if s.Dragging() {
		t.Fatalf("session starts dragging")
	}
	sym, ok := s.Pending()
	if !ok || sym.Anchor != (Point{40, 40}) {
		t.Fatalf("pending = %+v, %v; want the symbol under the stick", sym, ok)
	}
	if len(d.shown) != 1 || d.shown[0] != bufferPlaceholder {
		t.Fatalf("display shown %q", d.shown)
	}
	if r.sticks != 1 {
		t.Fatalf("stick drawn %d times", r.sticks)
	}
}

func TestPressOutsideStickIsNoop(t *testing.T) {
	s, _, _ := newTestSession(t)
	if s.Press(40+stickRadius, 40) {
		t.Fatalf("press at the radius grabbed the stick")
	}
	if s.Press(300, 300) {
		t.Fatalf("far press grabbed the stick")
	}
	if s.Dragging() {
		t.Fatalf("stick is dragging")
	}
}

func TestPressGrabsStickAndSnaps(t *testing.T) {
	s, _, _ := newTestSession(t)
	if !s.Press(45, 45) {
		t.Fatalf("press near the stick was ignored")
	}
	if !s.Dragging() {
		t.Fatalf("expected dragging")
	}
	if s.Stick() != (Point{40, 45}) {
		t.Fatalf("stick at %v, want (40,45)", s.Stick())
	}
	if s.Press(40, 45) {
		t.Fatalf("second press while dragging reported a grab")
	}
}

func TestMoveBeyondReachIsIgnored(t *testing.T) {
	s, r, _ := newTestSession(t)
	s.Press(40, 40)
	restores := r.restores

	if s.Move(40, 40+stickRadius+dragMargin) {
		t.Fatalf("move at the reach limit was accepted")
	}
	if s.Move(700, 450) {
		t.Fatalf("far move was accepted")
	}
	if s.Stick() != (Point{40, 40}) {
		t.Fatalf("stick moved to %v", s.Stick())
	}
	if r.restores != restores {
		t.Fatalf("ignored moves redrew the frame")
	}
}

func TestMoveProjectsOntoTrack(t *testing.T) {
	s, r, _ := newTestSession(t)
	s.Press(40, 40)
	restores := r.restores

	if !s.Move(48, 60) {
		t.Fatalf("move within reach was ignored")
	}
	if s.Stick() != (Point{40, 60}) {
		t.Fatalf("stick at %v, want (40,60)", s.Stick())
	}
	if r.restores != restores+1 {
		t.Fatalf("restores = %d, want %d", r.restores, restores+1)
	}
	if last := r.frame[len(r.frame)-1]; last != fmt.Sprintf("stick %v", Point{40, 60}) {
		t.Fatalf("last drawn %q", last)
	}
	if !reflect.DeepEqual(r.frame[:len(r.frame)-1], s.background) {
		t.Fatalf("stick was not drawn over the background")
	}
}

func TestMoveToSamePointSkipsRedraw(t *testing.T) {
	s, r, _ := newTestSession(t)
	s.Press(40, 40)
	restores := r.restores
	if s.Move(45, 40) {
		t.Fatalf("move projecting onto the current point redrew")
	}
	if r.restores != restores {
		t.Fatalf("frame restored for a no-op move")
	}
}

func TestMoveWhileIdleIsInert(t *testing.T) {
	s, _, _ := newTestSession(t)
	if s.Move(40, 50) {
		t.Fatalf("idle move was accepted")
	}
	if s.Stick() != (Point{40, 40}) {
		t.Fatalf("stick moved to %v", s.Stick())
	}
}

func TestReleaseSelectsNearbySymbol(t *testing.T) {
	s, _, _ := newTestSession(t)
	dragAway(t, s)

	s.Press(40, 80)
	s.Move(40, 60)
	s.Move(40, 49)
	s.Release(40, 49)
	sym, ok := s.Pending()
	if !ok || sym.Anchor != (Point{40, 40}) {
		t.Fatalf("pending = %+v, %v; want symbol at (40,40)", sym, ok)
	}
	if s.Dragging() {
		t.Fatalf("still dragging after release")
	}
}

func TestReleaseFarFromAnchorsClears(t *testing.T) {
	s, _, _ := newTestSession(t)
	if _, ok := s.Pending(); !ok {
		t.Fatalf("expected initial selection")
	}
	dragAway(t, s)
}

func TestReleaseWhileIdleIsNoop(t *testing.T) {
	s, _, _ := newTestSession(t)
	before, _ := s.Pending()
	s.stick.Pos = Point{40, 80}
	s.Release(40, 80)
	after, ok := s.Pending()
	if !ok || after != before {
		t.Fatalf("idle release changed pending from %+v to %+v", before, after)
	}
}

func TestTypingEndToEnd(t *testing.T) {
	s, _, d := newTestSession(t)

	selectGlyph(t, s, 'h')
	s.Apply()
	selectGlyph(t, s, 'i')
	s.Apply()
	if s.Buffer() != "hi" {
		t.Fatalf("buffer = %q, want %q", s.Buffer(), "hi")
	}
	if d.shown[len(d.shown)-1] != "hi" {
		t.Fatalf("display shows %q", d.shown[len(d.shown)-1])
	}

	selectGlyph(t, s, GlyphDeleteLast)
	s.Apply()
	if s.Buffer() != "h" {
		t.Fatalf("buffer after delete = %q, want %q", s.Buffer(), "h")
	}

	selectGlyph(t, s, GlyphCommit)
	s.Apply()
	if s.Buffer() != "" {
		t.Fatalf("buffer after commit = %q, want empty", s.Buffer())
	}
	if !reflect.DeepEqual(d.surfaced, []string{"h"}) {
		t.Fatalf("surfaced %q, want [h]", d.surfaced)
	}
	if d.shown[len(d.shown)-1] != bufferPlaceholder {
		t.Fatalf("display shows %q after commit", d.shown[len(d.shown)-1])
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("pending survived the commit")
	}
}

func TestDeleteOnEmptyBufferIsNoop(t *testing.T) {
	s, _, d := newTestSession(t)
	selectGlyph(t, s, GlyphDeleteLast)
	s.Apply()
	if s.Buffer() != "" {
		t.Fatalf("buffer = %q", s.Buffer())
	}
	if d.shown[len(d.shown)-1] != bufferPlaceholder {
		t.Fatalf("display shows %q", d.shown[len(d.shown)-1])
	}
}

func TestApplyWithNothingPendingStillReshuffles(t *testing.T) {
	s, _, d := newTestSession(t)
	selectGlyph(t, s, 'x')
	s.Apply()
	dragAway(t, s)

	for i := 0; i < 2; i++ {
		before := glyphOrder(s.Symbols())
		s.Apply()
		if s.Buffer() != "x" {
			t.Fatalf("round %d: buffer = %q, want %q", i, s.Buffer(), "x")
		}
		if reflect.DeepEqual(before, glyphOrder(s.Symbols())) {
			t.Fatalf("round %d: layout did not change", i)
		}
	}
	if len(d.surfaced) != 0 {
		t.Fatalf("empty rounds surfaced %q", d.surfaced)
	}
}

func TestApplyRedrawsBackgroundFromBlank(t *testing.T) {
	s, r, _ := newTestSession(t)
	s.Apply()

	tracks := s.Network().Len()
	want := 2*tracks + len(s.Symbols())
	if len(s.background.([]string)) != want {
		t.Fatalf("background has %d operations, want %d", len(s.background.([]string)), want)
	}
	if len(r.frame) != want+1 {
		t.Fatalf("frame has %d operations, want %d", len(r.frame), want+1)
	}
}

func TestApplyIgnoredWhileDragging(t *testing.T) {
	s, _, _ := newTestSession(t)
	selectGlyph(t, s, 'q')
	before := glyphOrder(s.Symbols())

	s.Press(s.Stick().X, s.Stick().Y)
	s.Apply()
	if !s.Dragging() {
		t.Fatalf("apply ended the drag")
	}
	if !reflect.DeepEqual(before, glyphOrder(s.Symbols())) {
		t.Fatalf("apply reshuffled mid-drag")
	}
	if s.Buffer() != "" {
		t.Fatalf("apply typed mid-drag: %q", s.Buffer())
	}
}

type reentrantDisplay struct {
	session *Session
	calls   int
}

func (d *reentrantDisplay) ShowBuffer(string) {
	d.calls++
	if d.session != nil {
		d.session.Apply()
	}
}

func (d *reentrantDisplay) Surface(string) {}

func TestReentrantEventsAreDropped(t *testing.T) {
	d := &reentrantDisplay{}
	s, err := NewSession(SessionConfig{
		Grid:     DefaultGrid(),
		Catalog:  DefaultCatalog(),
		Renderer: &recordingRenderer{},
		Display:  d,
		Rand:     rand.New(rand.NewPCG(5, 6)),
		Logger:   testLogger,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	d.session = s

	s.Apply()
	if d.calls != 2 {
		t.Fatalf("display called %d times, want 2", d.calls)
	}
}

func TestNewSessionRejectsBadCatalog(t *testing.T) {
	_, err := NewSession(SessionConfig{
		Grid:     DefaultGrid(),
		Catalog:  DefaultCatalog()[:70],
		Renderer: &recordingRenderer{},
		Display:  &recordingDisplay{},
		Logger:   testLogger,
	})
	if err == nil {
		t.Fatalf("expected error for short catalog")
	}
}

func TestPaintReplaysScene(t *testing.T) {
	s, r, _ := newTestSession(t)
	other := &recordingRenderer{}
	s.Paint(other)
	if !reflect.DeepEqual(other.frame, r.frame) {
		t.Fatalf("Paint drew %d operations, session frame has %d", len(other.frame), len(r.frame))
	}
}
