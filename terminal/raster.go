package terminal

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/flatsouls/arena"
	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/render"
	"github.com/lixenwraith/flatsouls/vmath"
)

const blockRune = '█'

// light is the direction faces are lit from; it leans toward the viewer so tops stay bright
var light = vmath.V3(0.3, 0.4, 0.87).Normalize()

type cell struct {
	depth float64
	r     rune
	style tcell.Style
}

// Rasterizer draws frames into a tcell screen
// Sprite triangles are filled per cell with a depth test and colored from the sprite
// sheet; text quads are mapped back to their characters and printed on top
type Rasterizer struct {
	screen tcell.Screen
	sheet  image.Image

	mem    *arena.Arena[cell]
	cells  []cell
	width  int
	height int

	tris []render.ScreenTriangle

	glyphRunes map[[2]int]rune // atlas origin → character
	glyphs     *render.GlyphTable
}

var _ render.Submitter = (*Rasterizer)(nil)

// NewRasterizer creates a rasterizer; sheet may be nil for flat gray sprites and glyphs
// nil to skip text
func NewRasterizer(screen tcell.Screen, sheet image.Image, glyphs *render.GlyphTable) *Rasterizer {
	r := &Rasterizer{
		screen:     screen,
		sheet:      sheet,
		glyphs:     glyphs,
		glyphRunes: make(map[[2]int]rune),
	}
	if glyphs != nil {
		for i, g := range glyphs.Glyphs {
			if g.X1 == g.X0 {
				continue
			}
			r.glyphRunes[[2]int{g.X0, g.Y0}] = glyphs.FirstChar + rune(i)
		}
	}
	return r
}

// Submit rasterizes f and shows it
func (r *Rasterizer) Submit(f render.Frame) error {
	w, h := r.screen.Size()
	if err := r.resize(w, h); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		r.screen.Show()
		return nil
	}

	aspect := float64(w) / (float64(h) * parameter.TerminalCellAspect)
	vp := f.Camera.ViewProjection(aspect)

	r.tris = render.ProjectTriangles(r.tris[:0], vp, f.Sprites, float64(w), float64(h))
	for i := range r.tris {
		r.fill(&r.tris[i])
	}
	r.text(vp, f.Text)
	r.flush()
	return nil
}

// resize reallocates the cell arena only if capacity is insufficient
func (r *Rasterizer) resize(w, h int) error {
	size := w * h
	if r.mem == nil || r.mem.Cap() < size {
		r.mem = arena.New[cell](size)
	} else {
		r.mem.Reset()
	}
	cells, err := r.mem.Push(size)
	if err != nil {
		return err
	}
	r.cells = cells
	r.width, r.height = w, h
	r.clear()
	return nil
}

// clear resets all cells using exponential copy
func (r *Rasterizer) clear() {
	if len(r.cells) == 0 {
		return
	}
	r.cells[0] = cell{depth: math.Inf(1), r: ' ', style: tcell.StyleDefault}
	for filled := 1; filled < len(r.cells); filled *= 2 {
		copy(r.cells[filled:], r.cells[:filled])
	}
}

func edge(a, b render.ScreenVertex, cx, cy float64) float64 {
	return (b.X-a.X)*(cy-a.Y) - (b.Y-a.Y)*(cx-a.X)
}

// fill covers the cells whose centers fall inside t
func (r *Rasterizer) fill(t *render.ScreenTriangle) {
	p := &t.V
	area := edge(p[0], p[1], p[2].X, p[2].Y)
	if math.Abs(area) < 1e-12 {
		return
	}

	x0 := max(int(math.Floor(min(p[0].X, p[1].X, p[2].X))), 0)
	x1 := min(int(math.Ceil(max(p[0].X, p[1].X, p[2].X))), r.width-1)
	y0 := max(int(math.Floor(min(p[0].Y, p[1].Y, p[2].Y))), 0)
	y1 := min(int(math.Ceil(max(p[0].Y, p[1].Y, p[2].Y))), r.height-1)

	for y := y0; y <= y1; y++ {
		cy := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			cx := float64(x) + 0.5
			w0 := edge(p[1], p[2], cx, cy) / area
			w1 := edge(p[2], p[0], cx, cy) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*p[0].Depth + w1*p[1].Depth + w2*p[2].Depth
			idx := y*r.width + x
			if depth >= r.cells[idx].depth {
				continue
			}

			u := w0*p[0].U + w1*p[1].U + w2*p[2].U
			v := w0*p[0].V + w1*p[1].V + w2*p[2].V
			color, opaque := r.sample(u, v, t.Normal)
			if !opaque {
				continue
			}
			r.cells[idx] = cell{depth: depth, r: blockRune, style: tcell.StyleDefault.Foreground(color)}
		}
	}
}

// sample reads the sprite sheet at (u, v), v down from the top row, and applies
// Lambert shading for normal n
func (r *Rasterizer) sample(u, v float64, n vmath.Vec3) (tcell.Color, bool) {
	cr, cg, cb := 200.0, 200.0, 200.0
	if r.sheet != nil {
		b := r.sheet.Bounds()
		px := b.Min.X + min(max(int(u*float64(b.Dx())), 0), b.Dx()-1)
		py := b.Min.Y + min(max(int(v*float64(b.Dy())), 0), b.Dy()-1)
		sr, sg, sb, sa := r.sheet.At(px, py).RGBA()
		if sa < 0x8000 {
			return tcell.ColorDefault, false
		}
		cr, cg, cb = float64(sr>>8), float64(sg>>8), float64(sb>>8)
	}

	shade := 0.5 + 0.5*max(n.Normalize().Dot(light), 0)
	return tcell.NewRGBColor(int32(cr*shade), int32(cg*shade), int32(cb*shade)), true
}

// text prints one character per glyph quad at the projected quad center
// Glyphs are usually narrower than a cell, so a character landing on or left of the
// previous one in the same row is pushed one column right
func (r *Rasterizer) text(vp mgl32.Mat4, verts []render.Vertex) {
	if r.glyphs == nil {
		return
	}
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	prevRow, prevCol := -1, -1
	for i := 0; i+render.VerticesPerQuad <= len(verts); i += render.VerticesPerQuad {
		quad := verts[i : i+render.VerticesPerQuad]

		var center vmath.Vec3
		minU, minV := math.Inf(1), math.Inf(1)
		maxU := math.Inf(-1)
		for _, v := range quad {
			center = center.Add(v.Pos)
			minU, minV = min(minU, v.Tex.X), min(minV, v.Tex.Y)
			maxU = max(maxU, v.Tex.X)
		}
		center = center.Div(float64(len(quad)))

		x, y, _, ok := render.Project(vp, center, float64(r.width), float64(r.height))
		if !ok {
			continue
		}
		col, row := int(x), int(y)
		if row == prevRow && col <= prevCol {
			col = prevCol + 1
		}
		prevRow, prevCol = row, col

		if maxU == minU {
			continue
		}
		key := [2]int{
			int(math.Round(minU * float64(r.glyphs.AtlasW))),
			int(math.Round(minV * float64(r.glyphs.AtlasH))),
		}
		ch, found := r.glyphRunes[key]
		if !found || col < 0 || col >= r.width || row < 0 || row >= r.height {
			continue
		}

		idx := row*r.width + col
		style := textStyle
		if r.cells[idx].r == blockRune {
			fg, _, _ := r.cells[idx].style.Decompose()
			style = style.Background(fg)
		}
		r.cells[idx] = cell{depth: math.Inf(-1), r: ch, style: style}
	}
}

func (r *Rasterizer) flush() {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := &r.cells[y*r.width+x]
			r.screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
	r.screen.Show()
}
