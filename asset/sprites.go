package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
)

// SpriteSheetCells is the number of cells per row and column in the sheet layout the
// animation table expects
const SpriteSheetCells = 4

// LoadSpriteSheet decodes a PNG sprite sheet
func LoadSpriteSheet(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", path, err)
	}
	return img, nil
}

// DefaultSpriteSheet draws a placeholder sheet: each cell a solid tint with a darker
// border so frames are distinguishable
func DefaultSpriteSheet(cellSize int) *image.RGBA {
	size := cellSize * SpriteSheetCells
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for cy := range SpriteSheetCells {
		for cx := range SpriteSheetCells {
			fill := color.RGBA{
				R: uint8(80 + 40*cx),
				G: uint8(80 + 40*cy),
				B: 160,
				A: 255,
			}
			border := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}
			for y := 0; y < cellSize; y++ {
				for x := 0; x < cellSize; x++ {
					c := fill
					if x == 0 || y == 0 || x == cellSize-1 || y == cellSize-1 {
						c = border
					}
					img.SetRGBA(cx*cellSize+x, cy*cellSize+y, c)
				}
			}
		}
	}
	return img
}
