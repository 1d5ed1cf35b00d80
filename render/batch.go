package render

import (
	"fmt"

	"github.com/lixenwraith/flatsouls/arena"
	"github.com/lixenwraith/flatsouls/vmath"
)

// Batch accumulates one frame of geometry in two bounded vertex buffers: sprites (which
// also holds cubes and quads) and text
// A push that does not fit is dropped whole, counted, and reported as false; partial
// primitives are never written
type Batch struct {
	sprites    []Vertex
	numSprites int
	text       []Vertex
	numText    int
	glyphs     *GlyphTable
	dropped    int
}

// NewBatch carves both buffers out of mem
func NewBatch(mem *arena.Arena[Vertex], spriteCap, textCap int, glyphs *GlyphTable) (*Batch, error) {
	sprites, err := mem.Push(spriteCap)
	if err != nil {
		return nil, fmt.Errorf("sprite buffer: %w", err)
	}
	text, err := mem.Push(textCap)
	if err != nil {
		return nil, fmt.Errorf("text buffer: %w", err)
	}
	return &Batch{sprites: sprites, text: text, glyphs: glyphs}, nil
}

// Clear empties both buffers and the drop counter
func (b *Batch) Clear() {
	b.numSprites = 0
	b.numText = 0
	b.dropped = 0
}

// Sprites returns this frame's sprite vertices; valid until the next Clear
func (b *Batch) Sprites() []Vertex { return b.sprites[:b.numSprites] }

// Text returns this frame's glyph vertices; valid until the next Clear
func (b *Batch) Text() []Vertex { return b.text[:b.numText] }

// Dropped counts pushes rejected since the last Clear
func (b *Batch) Dropped() int { return b.dropped }

func (b *Batch) Glyphs() *GlyphTable { return b.glyphs }

func (b *Batch) reserveSprites(n int) []Vertex {
	if b.numSprites+n > len(b.sprites) {
		b.dropped++
		return nil
	}
	v := b.sprites[b.numSprites : b.numSprites+n]
	b.numSprites += n
	return v
}

func (b *Batch) reserveText(n int) []Vertex {
	if b.numText+n > len(b.text) {
		b.dropped++
		return nil
	}
	v := b.text[b.numText : b.numText+n]
	b.numText += n
	return v
}

// writeRect fills two triangles of an axis-aligned rect in the z plane
// Vertex order (x,y) (x+w,y) (x,y+h) (x,y+h) (x+w,y) (x+w,y+h)
func writeRect(v []Vertex, x, y, z, w, h float64, tex vmath.Rect) {
	v[0] = Vertex{vmath.V3(x, y, z), vmath.V2(tex.X0, tex.Y0), upNormal}
	v[1] = Vertex{vmath.V3(x+w, y, z), vmath.V2(tex.X1, tex.Y0), upNormal}
	v[2] = Vertex{vmath.V3(x, y+h, z), vmath.V2(tex.X0, tex.Y1), upNormal}
	v[3] = v[2]
	v[4] = v[1]
	v[5] = Vertex{vmath.V3(x+w, y+h, z), vmath.V2(tex.X1, tex.Y1), upNormal}
}

// PushSprite adds a textured rect at pos; centered places pos at the rect's middle
func (b *Batch) PushSprite(pos vmath.Vec3, size vmath.Vec2, tex vmath.Rect, centered bool) bool {
	v := b.reserveSprites(VerticesPerQuad)
	if v == nil {
		return false
	}
	x, y := pos.X, pos.Y
	if centered {
		x -= size.X / 2
		y -= size.Y / 2
	}
	writeRect(v, x, y, pos.Z, size.X, size.Y, tex)
	return true
}

// PushQuad adds the quad a,b,c,d as triangles (a,b,c) (a,c,d)
// Each corner's normal leans outward from the face normal along the quad edges so
// lighting rounds the corners
func (b *Batch) PushQuad(a, bb, c, d vmath.Vec3, ta, tb, tc, td vmath.Vec2) bool {
	v := b.reserveSprites(VerticesPerQuad)
	if v == nil {
		return false
	}
	writeQuad(v, a, bb, c, d, ta, tb, tc, td)
	return true
}

func writeQuad(v []Vertex, a, b, c, d vmath.Vec3, ta, tb, tc, td vmath.Vec2) {
	da := b.Sub(a).Normalize()
	db := d.Sub(a).Normalize()
	n := da.Cross(db).Normalize()

	v[0] = Vertex{a, ta, n.Sub(da).Normalize()}
	v[1] = Vertex{b, tb, n.Sub(db).Normalize()}
	v[2] = Vertex{c, tc, n.Add(da).Normalize()}
	v[3] = Vertex{a, ta, n.Sub(da).Normalize()}
	v[4] = Vertex{c, tc, n.Add(da).Normalize()}
	v[5] = Vertex{d, td, n.Add(db).Normalize()}
}

// PushCube adds the six faces of box placed at pos, all or nothing
func (b *Batch) PushCube(pos vmath.Vec3, box vmath.Cube) bool {
	v := b.reserveSprites(VerticesPerCube)
	if v == nil {
		return false
	}

	origin := pos.Add(box.Min())
	dx := box.Size()

	pa := origin
	pb := vmath.V3(origin.X+dx.X, origin.Y, origin.Z)
	pc := vmath.V3(origin.X+dx.X, origin.Y+dx.Y, origin.Z)
	pd := vmath.V3(origin.X, origin.Y+dx.Y, origin.Z)
	top := origin.Z + dx.Z
	pe := vmath.V3(pa.X, pa.Y, top)
	pf := vmath.V3(pb.X, pb.Y, top)
	pg := vmath.V3(pc.X, pc.Y, top)
	ph := vmath.V3(pd.X, pd.Y, top)

	var t vmath.Vec2
	faces := [6][4]vmath.Vec3{
		{pa, pb, pc, pd},
		{pa, pb, pf, pe},
		{pa, pe, ph, pd},
		{pe, pf, pg, ph},
		{pb, pc, pg, pf},
		{pc, pd, ph, pg},
	}
	for i, f := range faces {
		writeQuad(v[i*VerticesPerQuad:], f[0], f[1], f[2], f[3], t, t, t, t)
	}
	return true
}

// PushAnimSprite adds a w×h quad centered on pos textured with the current frame of state
func (b *Batch) PushAnimSprite(pos vmath.Vec3, w, h float64, state AnimationState, time float64) bool {
	tex := AnimTex(state, time)

	x := pos.X - w/2
	y := pos.Y - h/2
	a := vmath.V3(x, y, pos.Z)
	bb := vmath.V3(x+w, y, pos.Z)
	c := vmath.V3(x+w, y+h, pos.Z)
	d := vmath.V3(x, y+h, pos.Z)

	return b.PushQuad(a, bb, c, d,
		vmath.V2(tex.X0, tex.Y0), vmath.V2(tex.X1, tex.Y0),
		vmath.V2(tex.X1, tex.Y1), vmath.V2(tex.X0, tex.Y1))
}

// PushText lays out s starting at pos with glyphs scaled to height world units
// The whole string is dropped when it does not fit; characters outside the glyph table
// are skipped
func (b *Batch) PushText(s string, pos vmath.Vec3, height float64, centered bool) bool {
	if b.glyphs == nil {
		b.dropped++
		return false
	}
	g := b.glyphs
	n := g.renderable(s)
	if n == 0 {
		return true
	}
	v := b.reserveText(n * VerticesPerQuad)
	if v == nil {
		return false
	}

	scale := height / g.BaseSize
	ipw := 1 / float64(g.AtlasW)
	iph := 1 / float64(g.AtlasH)

	penX := pos.X
	if centered {
		penX -= g.CalcStringWidth(s) * scale / 2
	}

	i := 0
	for _, r := range s {
		gl, ok := g.Glyph(r)
		if !ok {
			continue
		}
		x := penX + gl.OffsetX*scale
		y := pos.Y - gl.OffsetY*scale
		w := float64(gl.X1-gl.X0) * scale
		h := float64(gl.Y0-gl.Y1) * scale
		tex := vmath.NewRect(float64(gl.X0)*ipw, float64(gl.Y0)*iph, float64(gl.X1)*ipw, float64(gl.Y1)*iph)

		writeRect(v[i*VerticesPerQuad:], x, y, pos.Z, w, h, tex)
		i++
		penX += gl.Advance * scale
	}
	return true
}
