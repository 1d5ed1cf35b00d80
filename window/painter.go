package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/flatsouls/render"
	"github.com/lixenwraith/flatsouls/vmath"
)

var light = vmath.V3(0.3, 0.4, 0.87).Normalize()

// Painter draws frames onto Target
// ebiten has no depth buffer, so sprite triangles are sorted farthest first; text is
// drawn afterwards from the font atlas
type Painter struct {
	Target *ebiten.Image

	sheet *ebiten.Image
	atlas *ebiten.Image

	tris     []render.ScreenTriangle
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Submitter = (*Painter)(nil)

// NewPainter uploads the sprite sheet and font atlas; atlas may be nil to skip text
func NewPainter(sheet image.Image, atlas image.Image) *Painter {
	p := &Painter{sheet: ebiten.NewImageFromImage(sheet)}
	if atlas != nil {
		p.atlas = ebiten.NewImageFromImage(atlas)
	}
	return p
}

func (p *Painter) Submit(f render.Frame) error {
	if p.Target == nil {
		return nil
	}
	b := p.Target.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return nil
	}
	vp := f.Camera.ViewProjection(w / h)

	p.tris = render.ProjectTriangles(p.tris[:0], vp, f.Sprites, w, h)
	render.SortBackToFront(p.tris)
	p.draw(p.sheet, true)

	if p.atlas != nil {
		p.tris = render.ProjectTriangles(p.tris[:0], vp, f.Text, w, h)
		p.draw(p.atlas, false)
	}
	return nil
}

// draw submits p.tris in batches that fit 16-bit indices
func (p *Painter) draw(src *ebiten.Image, shaded bool) {
	const maxTris = 65535 / 3
	sw, sh := float32(src.Bounds().Dx()), float32(src.Bounds().Dy())

	for start := 0; start < len(p.tris); start += maxTris {
		end := min(start+maxTris, len(p.tris))
		p.vertices = p.vertices[:0]
		p.indices = p.indices[:0]

		for _, t := range p.tris[start:end] {
			shade := float32(1)
			if shaded {
				shade = float32(0.5 + 0.5*max(t.Normal.Normalize().Dot(light), 0))
			}
			for _, v := range t.V {
				p.indices = append(p.indices, uint16(len(p.vertices)))
				p.vertices = append(p.vertices, ebiten.Vertex{
					DstX:   float32(v.X),
					DstY:   float32(v.Y),
					SrcX:   float32(v.U) * sw,
					SrcY:   float32(v.V) * sh,
					ColorR: shade,
					ColorG: shade,
					ColorB: shade,
					ColorA: 1,
				})
			}
		}

		p.Target.DrawTriangles(p.vertices, p.indices, src, &ebiten.DrawTrianglesOptions{
			Filter: ebiten.FilterNearest,
		})
	}
}
