package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flatsouls/vmath"
)

func TestCameraFollow(t *testing.T) {
	c := NewCamera(5)
	c.Follow(vmath.V3(1, 2, 0.5))
	assert.Equal(t, vmath.V3(1, 2, 5.5), c.Pos)
}

func TestProjectOrientation(t *testing.T) {
	c := NewCamera(5)
	c.Follow(vmath.V3(0, 0, 0))
	vp := c.ViewProjection(2)

	x, y, depth, ok := Project(vp, vmath.V3(0, 0, 0), 200, 100)
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
	assert.Greater(t, depth, 0.0)
	assert.Less(t, depth, 1.0)

	rx, _, _, ok := Project(vp, vmath.V3(1, 0, 0), 200, 100)
	require.True(t, ok)
	assert.Greater(t, rx, x, "+X is screen right")

	_, uy, _, ok := Project(vp, vmath.V3(0, 1, 0), 200, 100)
	require.True(t, ok)
	assert.Less(t, uy, y, "+Y is screen up")

	_, _, nearDepth, ok := Project(vp, vmath.V3(0, 0, 1), 200, 100)
	require.True(t, ok)
	assert.Less(t, nearDepth, depth, "closer to the camera is shallower")
}

func TestProjectRejectsBehindCamera(t *testing.T) {
	c := NewCamera(5)
	c.Follow(vmath.V3(0, 0, 0))
	_, _, _, ok := Project(c.ViewProjection(1), vmath.V3(0, 0, 10), 100, 100)
	assert.False(t, ok)
}

func TestBatchFrame(t *testing.T) {
	b := newTestBatch(t, 6, 6)
	require.True(t, b.PushSprite(vmath.Vec3{}, vmath.V2(1, 1), vmath.Rect{}, false))
	f := b.Frame(NewCamera(5))
	assert.Len(t, f.Sprites, 6)
	assert.Empty(t, f.Text)
	assert.Equal(t, 5.0, f.Camera.Height)
}

func TestProjectTrianglesAndSort(t *testing.T) {
	b := newTestBatch(t, 64, 6)
	require.True(t, b.PushSprite(vmath.V3(0, 0, 0), vmath.V2(1, 1), vmath.NewRect(0, 0, 1, 1), true))
	require.True(t, b.PushSprite(vmath.V3(0, 0, 1), vmath.V2(1, 1), vmath.NewRect(0, 0, 1, 1), true))
	require.True(t, b.PushSprite(vmath.V3(0, 0, 10), vmath.V2(1, 1), vmath.NewRect(0, 0, 1, 1), true))

	cam := NewCamera(5)
	vp := cam.ViewProjection(1)
	tris := ProjectTriangles(nil, vp, b.Sprites(), 100, 100)
	require.Len(t, tris, 4, "the sprite above the camera is dropped")

	nearer := tris[2].Depth
	SortBackToFront(tris)
	assert.Greater(t, tris[0].Depth, nearer)
	assert.Equal(t, nearer, tris[2].Depth)
	for i := 1; i < len(tris); i++ {
		assert.GreaterOrEqual(t, tris[i-1].Depth, tris[i].Depth)
	}

	v := tris[3].V[0]
	assert.Equal(t, upNormal, tris[3].Normal)
	assert.GreaterOrEqual(t, v.U, 0.0)
	assert.LessOrEqual(t, v.U, 1.0)
}
