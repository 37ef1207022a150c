package geometry

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the layout shared by every batch handed to the presentation layer:
// a homogeneous position followed by an RGBA color, both float4.
type Vertex struct {
	Pos mgl32.Vec4
	Col mgl32.Vec4
}

// VertexSize is the byte stride of a Vertex.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// NewVertex builds a vertex at pos (w = 1) with the given color.
func NewVertex(pos mgl32.Vec3, col mgl32.Vec4) Vertex {
	return Vertex{Pos: pos.Vec4(1), Col: col}
}

// Position drops the w component.
func (v Vertex) Position() mgl32.Vec3 {
	return v.Pos.Vec3()
}

// Palette
var (
	Red          = mgl32.Vec4{1, 0, 0, 1}
	HalfAlphaRed = mgl32.Vec4{1, 0, 0, 0.2}
	Green        = mgl32.Vec4{0, 1, 0, 1}
	Blue         = mgl32.Vec4{0, 0, 1, 1}
	White        = mgl32.Vec4{1, 1, 1, 1}
	Transparent  = mgl32.Vec4{0, 0, 0, 0}
)
