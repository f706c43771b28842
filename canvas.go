package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellStyle int

const (
	styleBlank cellStyle = iota
	styleTrack
	styleTrackFill
	styleSymbol
	styleDeleteLast
	styleCommit
	styleStick
)

var cellStyles = map[cellStyle]lipgloss.Style{
	styleBlank:      lipgloss.NewStyle(),
	styleTrack:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	styleTrackFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
	styleSymbol:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	styleDeleteLast: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#CC0000")).Bold(true),
	styleCommit:     lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#00CC00")).Bold(true),
	styleStick:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

type cell struct {
	r     rune
	style cellStyle
}

// Canvas is a terminal Renderer. World coordinates are mapped onto a grid of
// cells, cellW by cellH world units each.
type Canvas struct {
	width  int
	height int
	cellW  float64
	cellH  float64
	cells  [][]cell
}

type canvasFrame [][]cell

func NewCanvas(bounds Point, cellW, cellH float64) *Canvas {
	c := &Canvas{
		width:  int(math.Floor(bounds.X/cellW)) + 1,
		height: int(math.Floor(bounds.Y/cellH)) + 1,
		cellW:  cellW,
		cellH:  cellH,
	}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.width)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// CellAt maps a world point to the cell containing it.
func (c *Canvas) CellAt(p Point) (int, int) {
	return int(math.Floor(p.X / c.cellW)), int(math.Floor(p.Y / c.cellH))
}

// WorldAt maps a cell to the world point at its centre.
func (c *Canvas) WorldAt(x, y int) Point {
	return Point{X: (float64(x) + 0.5) * c.cellW, Y: (float64(y) + 0.5) * c.cellH}
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *Canvas) set(x, y int, r rune, style cellStyle) {
	if c.isValidPos(x, y) {
		c.cells[y][x] = cell{r: r, style: style}
	}
}

func (c *Canvas) trackCells(t Track) (x1, y1, x2, y2 int) {
	x1, y1 = c.CellAt(Point{X: t.X1, Y: t.Y1})
	x2, y2 = c.CellAt(Point{X: t.X2, Y: t.Y2})
	return
}

func (c *Canvas) DrawTrackOutline(t Track) {
	x1, y1, x2, y2 := c.trackCells(t)
	if t.Vertical() {
		for y := y1; y <= y2; y++ {
			r := '│'
			if c.isValidPos(x1, y) && c.cells[y][x1].r == '─' {
				switch y {
				case y1:
					r = '┬'
				case y2:
					r = '┴'
				default:
					r = '┼'
				}
			}
			c.set(x1, y, r, styleTrack)
		}
		return
	}
	for x := x1; x <= x2; x++ {
		r := '─'
		if c.isValidPos(x, y1) && c.cells[y1][x].r == '│' {
			switch x {
			case x1:
				r = '├'
			case x2:
				r = '┤'
			default:
				r = '┼'
			}
		}
		c.set(x, y1, r, styleTrack)
	}
}

func (c *Canvas) DrawTrackFill(t Track) {
	x1, y1, x2, y2 := c.trackCells(t)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if c.isValidPos(x, y) {
				c.cells[y][x].style = styleTrackFill
			}
		}
	}
}

func (c *Canvas) DrawSymbol(sym Symbol) {
	x, y := c.CellAt(sym.Anchor)
	switch sym.Glyph.Kind() {
	case KindDeleteLast:
		c.set(x, y, rune(sym.Glyph), styleDeleteLast)
	case KindCommit:
		c.set(x, y, rune(sym.Glyph), styleCommit)
	default:
		r := rune(sym.Glyph)
		if r == ' ' {
			r = '␣'
		}
		c.set(x, y, r, styleSymbol)
	}
}

func (c *Canvas) DrawStick(p Point) {
	x, y := c.CellAt(p)
	c.set(x, y, '●', styleStick)
}

func (c *Canvas) SnapshotFrame() Frame {
	frame := make(canvasFrame, c.height)
	for y := range c.cells {
		frame[y] = append([]cell(nil), c.cells[y]...)
	}
	return frame
}

func (c *Canvas) RestoreFrame(f Frame) {
	frame, ok := f.(canvasFrame)
	if !ok || len(frame) != c.height {
		return
	}
	for y := range frame {
		copy(c.cells[y], frame[y])
	}
}

// PlainLines returns the canvas without styling.
func (c *Canvas) PlainLines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Lines renders the canvas with one lipgloss call per run of equally styled
// cells.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b, run strings.Builder
		current := styleBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyles[current].Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}
