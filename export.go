package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	pngBackground  = color.White
	pngOutline     = color.Black
	pngTrackFill   = color.RGBA{0xEE, 0xEE, 0xEE, 0xFF}
	pngDeleteLast  = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	pngCommit      = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	pngStick       = color.NRGBA{0x80, 0x80, 0x80, 0x99}
	pngTrackMargin = 5.0
)

// PNGRenderer draws the keyboard into an in-memory image in world
// coordinates, one pixel per unit.
type PNGRenderer struct {
	dc *gg.Context
}

func NewPNGRenderer(bounds Point) (*PNGRenderer, error) {
	width := int(math.Ceil(bounds.X))
	height := int(math.Ceil(bounds.Y))
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContext(width, height)
	dc.SetColor(pngBackground)
	dc.Clear()
	dc.SetFontFace(face)
	return &PNGRenderer{dc: dc}, nil
}

func (r *PNGRenderer) DrawTrackOutline(t Track) {
	m := pngTrackMargin + 0.5
	r.dc.SetLineWidth(1.0)
	r.dc.SetColor(pngOutline)
	r.dc.DrawRectangle(t.X1-m, t.Y1-m, t.X2-t.X1+2*m, t.Y2-t.Y1+2*m)
	r.dc.Stroke()
}

func (r *PNGRenderer) DrawTrackFill(t Track) {
	m := pngTrackMargin
	r.dc.SetColor(pngTrackFill)
	r.dc.DrawRectangle(t.X1-m, t.Y1-m, t.X2-t.X1+2*m, t.Y2-t.Y1+2*m)
	r.dc.Fill()
}

func (r *PNGRenderer) DrawSymbol(sym Symbol) {
	switch sym.Glyph.Kind() {
	case KindDeleteLast:
		r.dc.SetColor(pngDeleteLast)
	case KindCommit:
		r.dc.SetColor(pngCommit)
	default:
		r.dc.SetColor(pngTrackFill)
	}
	r.dc.DrawCircle(sym.Anchor.X, sym.Anchor.Y, symbolRadius)
	r.dc.FillPreserve()
	r.dc.SetColor(pngOutline)
	r.dc.SetLineWidth(1.0)
	r.dc.Stroke()
	r.dc.DrawStringAnchored(sym.Glyph.String(), sym.Anchor.X, sym.Anchor.Y, 0.5, 0.5)
}

func (r *PNGRenderer) DrawStick(p Point) {
	r.dc.SetColor(pngStick)
	r.dc.DrawCircle(p.X, p.Y, stickRadius)
	r.dc.Fill()
}

func (r *PNGRenderer) SnapshotFrame() Frame {
	src := r.dc.Image()
	frame := image.NewRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	return frame
}

func (r *PNGRenderer) RestoreFrame(f Frame) {
	frame, ok := f.(*image.RGBA)
	if !ok {
		return
	}
	dst, ok := r.dc.Image().(*image.RGBA)
	if !ok || dst.Bounds() != frame.Bounds() {
		return
	}
	draw.Draw(dst, dst.Bounds(), frame, frame.Bounds().Min, draw.Src)
}

func (r *PNGRenderer) Image() image.Image {
	return r.dc.Image()
}

func (r *PNGRenderer) SavePNG(filename string) error {
	return r.dc.SavePNG(filename)
}

// exportPNG paints the current scene on a fresh image and writes it out.
func (m *model) exportPNG(filename string) error {
	r, err := NewPNGRenderer(m.grid.Bounds())
	if err != nil {
		return err
	}
	m.session.Paint(r)
	if err := r.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// exportVisualTXT writes the terminal frame as plain text.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := m.writeVisualTXT(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return file.Close()
}

func (m *model) writeVisualTXT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range m.canvas.PlainLines() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	bw.WriteString(m.surface.text)
	bw.WriteByte('\n')
	return bw.Flush()
}
