package meshing

import (
	"voxedit/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMeshCount is the default number of cells along each grid axis.
const DefaultMeshCount = 16

// debugNear is where the debug ray starts when the near point is unknown.
var debugNear = mgl32.Vec3{0.5, 0.5, 0.5}

// GridLines builds the reference lattice as a line list: the three axes
// (X red, Y green, Z blue) and white lines on the back (z=0), left (x=0) and
// bottom (y=0) walls. With debugRay set, two transparent vertices are appended
// as a placeholder for SetDebugRay.
func GridLines(meshCount int, debugRay bool) Batch {
	n := float32(meshCount)
	b := Batch{Topology: Lines}

	line := func(from, to mgl32.Vec3, col mgl32.Vec4) {
		b.push(from, col)
		b.push(to, col)
	}

	line(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{n, 0, 0}, geometry.Red)
	line(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, n, 0}, geometry.Green)
	line(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, n}, geometry.Blue)

	for i := 1; i <= meshCount; i++ {
		f := float32(i)

		// back
		line(mgl32.Vec3{0, f, 0}, mgl32.Vec3{n, f, 0}, geometry.White)
		line(mgl32.Vec3{f, 0, 0}, mgl32.Vec3{f, n, 0}, geometry.White)

		// left
		line(mgl32.Vec3{0, f, 0}, mgl32.Vec3{0, f, n}, geometry.White)
		line(mgl32.Vec3{0, 0, f}, mgl32.Vec3{0, n, f}, geometry.White)

		// bottom
		line(mgl32.Vec3{f, 0, 0}, mgl32.Vec3{f, 0, n}, geometry.White)
		line(mgl32.Vec3{0, 0, f}, mgl32.Vec3{n, 0, f}, geometry.White)
	}

	if debugRay {
		line(mgl32.Vec3{}, mgl32.Vec3{}, geometry.Transparent)
	}
	return b
}

// GridLineCount is the number of vertices GridLines emits.
func GridLineCount(meshCount int, debugRay bool) int {
	n := 6 + 12*meshCount
	if debugRay {
		n += 2
	}
	return n
}

// SetDebugRay replaces the trailing placeholder of a batch built with
// debugRay by a line from near (red) to far (blue). A nil near starts the
// line at the center of the first cell.
func SetDebugRay(b *Batch, near *mgl32.Vec3, far mgl32.Vec3) {
	if len(b.Vertices) < 2 {
		return
	}
	from := debugNear
	if near != nil {
		from = *near
	}
	last := len(b.Vertices)
	b.Vertices[last-2] = geometry.NewVertex(from, geometry.Red)
	b.Vertices[last-1] = geometry.NewVertex(far, geometry.Blue)
}

func (b *Batch) push(pos mgl32.Vec3, col mgl32.Vec4) {
	b.Vertices = append(b.Vertices, geometry.NewVertex(pos, col))
	b.Indices = append(b.Indices, uint32(len(b.Vertices)-1))
}
