package render

import (
	"github.com/lixenwraith/flatsouls/parameter"
)

// Glyph locates one character in the font atlas and describes its metrics at the
// table's base size
type Glyph struct {
	X0, Y0, X1, Y1 int // atlas pixel rect
	OffsetX        float64
	OffsetY        float64
	Advance        float64
}

// GlyphTable covers the contiguous character range [FirstChar, LastChar)
type GlyphTable struct {
	FirstChar rune
	LastChar  rune
	BaseSize  float64
	AtlasW    int
	AtlasH    int
	Glyphs    []Glyph
}

// Glyph returns the glyph for r; ok is false outside the table
func (t *GlyphTable) Glyph(r rune) (Glyph, bool) {
	if r < t.FirstChar || r >= t.LastChar {
		return Glyph{}, false
	}
	i := int(r - t.FirstChar)
	if i >= len(t.Glyphs) {
		return Glyph{}, false
	}
	return t.Glyphs[i], true
}

// CalcStringWidth sums advances at base size; unknown characters contribute nothing
func (t *GlyphTable) CalcStringWidth(s string) float64 {
	var w float64
	for _, r := range s {
		if g, ok := t.Glyph(r); ok {
			w += g.Advance
		}
	}
	return w
}

// renderable counts the characters of s that produce quads
func (t *GlyphTable) renderable(s string) int {
	n := 0
	for _, r := range s {
		if _, ok := t.Glyph(r); ok {
			n++
		}
	}
	return n
}

// MonospaceGlyphs builds a table of fixed-width cells laid out row-major in a square atlas
// It stands in when no font file is configured
func MonospaceGlyphs(size float64) *GlyphTable {
	first, last := rune(parameter.FontFirstChar), rune(parameter.FontLastChar)
	cellW := max(int(size*0.6), 1)
	cellH := max(int(size), 1)
	cols := max(parameter.FontAtlasSize/cellW, 1)

	t := &GlyphTable{
		FirstChar: first,
		LastChar:  last,
		BaseSize:  size,
		AtlasW:    parameter.FontAtlasSize,
		AtlasH:    parameter.FontAtlasSize,
		Glyphs:    make([]Glyph, last-first),
	}
	for i := range t.Glyphs {
		x := (i % cols) * cellW
		y := (i / cols) * cellH
		t.Glyphs[i] = Glyph{
			X0: x, Y0: y, X1: x + cellW, Y1: y + cellH,
			OffsetY: -size * 0.8,
			Advance: float64(cellW),
		}
	}
	return t
}
