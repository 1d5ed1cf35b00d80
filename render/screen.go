package render

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/flatsouls/vmath"
)

// ScreenVertex is a vertex projected into a viewport, y down
type ScreenVertex struct {
	X, Y  float64
	Depth float64 // 0 at the near plane, 1 at the far plane
	U, V  float64
}

// ScreenTriangle is one projected triangle; Depth is the mean of its vertex depths
type ScreenTriangle struct {
	V      [3]ScreenVertex
	Normal vmath.Vec3
	Depth  float64
}

// ProjectTriangles appends the triangles of verts to dst, projected through vp into a
// w×h viewport; triangles with any vertex outside the depth range are dropped
func ProjectTriangles(dst []ScreenTriangle, vp mgl32.Mat4, verts []Vertex, w, h float64) []ScreenTriangle {
	for i := 0; i+3 <= len(verts); i += 3 {
		var t ScreenTriangle
		visible := true
		for k := range 3 {
			v := &verts[i+k]
			x, y, d, ok := Project(vp, v.Pos, w, h)
			if !ok {
				visible = false
				break
			}
			t.V[k] = ScreenVertex{X: x, Y: y, Depth: d, U: v.Tex.X, V: v.Tex.Y}
			t.Depth += d / 3
		}
		if !visible {
			continue
		}
		t.Normal = verts[i].Normal
		dst = append(dst, t)
	}
	return dst
}

// SortBackToFront orders triangles farthest first for painter's-algorithm devices
// The sort is stable so coplanar sprites keep submission order
func SortBackToFront(tris []ScreenTriangle) {
	slices.SortStableFunc(tris, func(a, b ScreenTriangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}
