// Package render collects per-frame geometry into fixed-capacity vertex batches
// Submission to a device is left to platform Submitters
package render

import "github.com/lixenwraith/flatsouls/vmath"

// Vertex is one corner of a batched triangle
type Vertex struct {
	Pos    vmath.Vec3
	Tex    vmath.Vec2
	Normal vmath.Vec3
}

// VerticesPerQuad is two triangles
const VerticesPerQuad = 6

// VerticesPerCube is six quads
const VerticesPerCube = 6 * VerticesPerQuad

var upNormal = vmath.V3(0, 0, 1)
