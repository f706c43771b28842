package main

import "fmt"

// Grid is the fixed keyboard geometry. Rows come in pairs: each pair is a
// shaft with one rail, symbols hanging above it and below it.
type Grid struct {
	Columns     int
	Rows        int
	Origin      Point
	ColumnPitch float64
	ShaftPitch  float64
	SpineGap    float64
	StubLength  float64
}

func DefaultGrid() Grid {
	return Grid{
		Columns:     12,
		Rows:        6,
		Origin:      Point{X: 40, Y: 40},
		ColumnPitch: 80,
		ShaftPitch:  180,
		SpineGap:    40,
		StubLength:  50,
	}
}

func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

func (g Grid) shafts() int {
	return (g.Rows + 1) / 2
}

func (g Grid) columnX(col int) float64 {
	x := g.Origin.X + g.ColumnPitch*float64(col)
	if col >= g.Columns/2 {
		x += g.SpineGap
	}
	return x
}

func (g Grid) railY(shaft int) float64 {
	return g.Origin.Y + g.ShaftPitch*float64(shaft) + g.StubLength
}

func (g Grid) spineX() float64 {
	return (g.columnX(g.Columns/2-1) + g.columnX(g.Columns/2)) / 2
}

// Anchor returns where cell i sits and whether it hangs below its rail.
func (g Grid) Anchor(i int) (Point, bool) {
	col, row := i%g.Columns, i/g.Columns
	shaft := row / 2
	below := row%2 == 1
	y := g.Origin.Y + g.ShaftPitch*float64(shaft)
	if below {
		y += 2 * g.StubLength
	}
	return Point{X: g.columnX(col), Y: y}, below
}

// Bounds is the size of the surface the grid is drawn on.
func (g Grid) Bounds() Point {
	last, _ := g.Anchor(g.Cells() - 1)
	return Point{X: last.X + g.Origin.X, Y: last.Y + g.Origin.Y}
}

// Slot is a fixed place for a symbol, tied to the stub track that leads
// from its anchor to the rail.
type Slot struct {
	Anchor Point
	Below  bool
	Track  int
}

type Symbol struct {
	Glyph  Glyph
	Anchor Point
	Below  bool
	Track  int
}

// BuildKeyboard builds the track network for g: rails first, then the spine,
// then one stub per cell. The returned slots index into the network.
func BuildKeyboard(g Grid) (*Network, []Slot, error) {
	if g.Columns < 2 || g.Rows < 1 {
		return nil, nil, fmt.Errorf("grid %dx%d is too small", g.Columns, g.Rows)
	}

	var tracks []Track
	add := func(x1, y1, x2, y2 float64) error {
		t, err := NewTrack(x1, y1, x2, y2)
		if err != nil {
			return err
		}
		tracks = append(tracks, t)
		return nil
	}

	left, right := g.columnX(0), g.columnX(g.Columns-1)
	for s := 0; s < g.shafts(); s++ {
		if err := add(left, g.railY(s), right, g.railY(s)); err != nil {
			return nil, nil, fmt.Errorf("rail %d: %w", s, err)
		}
	}
	if g.shafts() > 1 {
		if err := add(g.spineX(), g.railY(0), g.spineX(), g.railY(g.shafts()-1)); err != nil {
			return nil, nil, fmt.Errorf("spine: %w", err)
		}
	}

	slots := make([]Slot, g.Cells())
	for i := range slots {
		anchor, below := g.Anchor(i)
		end := anchor.Y + g.StubLength
		if below {
			end = anchor.Y - g.StubLength
		}
		slots[i] = Slot{Anchor: anchor, Below: below, Track: len(tracks)}
		if err := add(anchor.X, anchor.Y, anchor.X, end); err != nil {
			return nil, nil, fmt.Errorf("stub %d: %w", i, err)
		}
	}

	network, err := NewNetwork(tracks...)
	if err != nil {
		return nil, nil, err
	}
	return network, slots, nil
}

func Layout(order []Glyph, slots []Slot) ([]Symbol, error) {
	if len(order) != len(slots) {
		return nil, fmt.Errorf("catalog has %d glyphs for %d slots", len(order), len(slots))
	}
	symbols := make([]Symbol, len(slots))
	for i, slot := range slots {
		symbols[i] = Symbol{
			Glyph:  order[i],
			Anchor: slot.Anchor,
			Below:  slot.Below,
			Track:  slot.Track,
		}
	}
	return symbols, nil
}
