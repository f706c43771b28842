package main

import "math/rand/v2"

// Glyph is a selectable symbol. Two glyphs are actions rather than text.
type Glyph rune

const (
	GlyphDeleteLast Glyph = '←'
	GlyphCommit     Glyph = '↵'
)

type SymbolKind int

const (
	KindChar SymbolKind = iota
	KindDeleteLast
	KindCommit
)

func (g Glyph) Kind() SymbolKind {
	switch g {
	case GlyphDeleteLast:
		return KindDeleteLast
	case GlyphCommit:
		return KindCommit
	default:
		return KindChar
	}
}

func (g Glyph) String() string {
	return string(rune(g))
}

const catalogChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ,.?!_-'"

func DefaultCatalog() []Glyph {
	glyphs := make([]Glyph, 0, len(catalogChars)+2)
	for _, r := range catalogChars {
		glyphs = append(glyphs, Glyph(r))
	}
	return append(glyphs, GlyphDeleteLast, GlyphCommit)
}

// Shuffle returns a uniformly random permutation of glyphs. The input slice
// is left untouched.
func Shuffle(glyphs []Glyph, rng *rand.Rand) []Glyph {
	out := append([]Glyph(nil), glyphs...)
	for i := 0; i < len(out)-1; i++ {
		j := i + rng.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
