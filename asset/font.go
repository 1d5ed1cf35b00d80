// Package asset loads fonts and sprite sheets and holds the embedded defaults
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/render"
)

// ErrAtlasFull is returned when the glyph range does not fit the atlas at the requested size
var ErrAtlasFull = errors.New("asset: font atlas full")

// Font is a baked glyph range: metrics for layout plus the coverage atlas for sampling
type Font struct {
	Glyphs *render.GlyphTable
	Atlas  *image.Alpha
}

// LoadFont bakes the TTF/OTF file at path
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := BakeFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// DefaultFont bakes the embedded Go Mono face
func DefaultFont(size float64) (*Font, error) {
	return BakeFont(gomono.TTF, size)
}

// BakeFont rasterizes characters [FontFirstChar, FontLastChar) into a square atlas,
// packing rows left to right with one pixel of padding
func BakeFont(data []byte, size float64) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	first, last := rune(parameter.FontFirstChar), rune(parameter.FontLastChar)
	atlasSize := parameter.FontAtlasSize
	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	table := &render.GlyphTable{
		FirstChar: first,
		LastChar:  last,
		BaseSize:  size,
		AtlasW:    atlasSize,
		AtlasH:    atlasSize,
		Glyphs:    make([]render.Glyph, last-first),
	}

	rowHeight := face.Metrics().Height.Ceil()
	x, y := 0, 0
	for r := first; r < last; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		g := &table.Glyphs[r-first]
		g.Advance = fixed26ToFloat(advance)
		if !ok || dr.Empty() {
			continue
		}

		w, h := dr.Dx(), dr.Dy()
		if x+w > atlasSize {
			x = 0
			y += rowHeight + 1
		}
		if y+h > atlasSize || w > atlasSize {
			return nil, fmt.Errorf("%w: size %v at %q", ErrAtlasFull, size, r)
		}

		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), mask, maskp, draw.Src)
		g.X0, g.Y0, g.X1, g.Y1 = x, y, x+w, y+h
		g.OffsetX = float64(dr.Min.X)
		g.OffsetY = float64(dr.Min.Y)
		x += w + 1
	}

	return &Font{Glyphs: table, Atlas: atlas}, nil
}

func fixed26ToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
