package parameter

// Batch Buffer Capacities, in vertices
const (
	// SpriteVertexCapacity holds the sprite and cube quads of one frame
	// 256 entities * 6 faces * 6 vertices
	SpriteVertexCapacity = 256 * 36

	// TextVertexCapacity holds glyph quads of one frame
	TextVertexCapacity = 1024
)

// Font Atlas
const (
	FontFirstChar = 32
	FontLastChar  = 128
	FontSize      = 32

	// FontAtlasSize is the square atlas edge in pixels
	FontAtlasSize = 512
)
