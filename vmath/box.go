package vmath

// Rect is a 2D axis-aligned box given by its min and max corners
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a Rect from min and max corners
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{x0, y0, x1, y1}
}

func (r Rect) Min() Vec2 { return Vec2{r.X0, r.Y0} }
func (r Rect) Max() Vec2 { return Vec2{r.X1, r.Y1} }

func (r Rect) Size() Vec2 {
	return Vec2{r.X1 - r.X0, r.Y1 - r.Y0}
}

// Mid returns the center point
func (r Rect) Mid() Vec2 {
	return Vec2{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}
}

// Offset translates the rect by v
func (r Rect) Offset(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

// Expand grows the rect by half on every side
func (r Rect) Expand(half Vec2) Rect {
	return Rect{r.X0 - half.X, r.Y0 - half.Y, r.X1 + half.X, r.Y1 + half.Y}
}

// Valid reports whether min <= max on both axes
func (r Rect) Valid() bool {
	return r.X0 <= r.X1 && r.Y0 <= r.Y1
}

// Overlaps reports whether two rects touch or intersect
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X1 < o.X0 || r.X0 > o.X1 || r.Y1 < o.Y0 || r.Y0 > o.Y1)
}

// Cube is a 3D axis-aligned box given by its min and max corners
// As an entity hitbox it is expressed in entity-local space
type Cube struct {
	X0, Y0, Z0, X1, Y1, Z1 float64
}

// NewCube builds a Cube from min and max corners
func NewCube(x0, y0, z0, x1, y1, z1 float64) Cube {
	return Cube{x0, y0, z0, x1, y1, z1}
}

// CubeFromRect lifts a 2D rect into a cube spanning [z0, z1]
func CubeFromRect(r Rect, z0, z1 float64) Cube {
	return Cube{r.X0, r.Y0, z0, r.X1, r.Y1, z1}
}

func (c Cube) Min() Vec3 { return Vec3{c.X0, c.Y0, c.Z0} }
func (c Cube) Max() Vec3 { return Vec3{c.X1, c.Y1, c.Z1} }

func (c Cube) Size() Vec3 {
	return Vec3{c.X1 - c.X0, c.Y1 - c.Y0, c.Z1 - c.Z0}
}

// HalfExtent returns half the size on each axis
func (c Cube) HalfExtent() Vec3 {
	return c.Size().Scale(0.5)
}

func (c Cube) Center() Vec3 {
	return c.Min().Add(c.HalfExtent())
}

// Offset translates the cube by v
func (c Cube) Offset(v Vec3) Cube {
	return Cube{c.X0 + v.X, c.Y0 + v.Y, c.Z0 + v.Z, c.X1 + v.X, c.Y1 + v.Y, c.Z1 + v.Z}
}

// Expand grows the cube by half on every side (Minkowski sum with a box of extent half)
func (c Cube) Expand(half Vec3) Cube {
	return Cube{
		c.X0 - half.X, c.Y0 - half.Y, c.Z0 - half.Z,
		c.X1 + half.X, c.Y1 + half.Y, c.Z1 + half.Z,
	}
}

// XY projects the cube onto the XY plane
func (c Cube) XY() Rect {
	return Rect{c.X0, c.Y0, c.X1, c.Y1}
}

// Valid reports whether min <= max on all axes
func (c Cube) Valid() bool {
	return c.X0 <= c.X1 && c.Y0 <= c.Y1 && c.Z0 <= c.Z1
}

// Contains reports whether p lies inside or on the cube
func (c Cube) Contains(p Vec3) bool {
	return p.X >= c.X0 && p.X <= c.X1 &&
		p.Y >= c.Y0 && p.Y <= c.Y1 &&
		p.Z >= c.Z0 && p.Z <= c.Z1
}
