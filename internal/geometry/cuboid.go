package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// CornerCount is the number of corner points of a cuboid
	CornerCount = 8
	// VerticesPerCuboid is the number of vertices emitted per cuboid (6 faces x 4 corners)
	VerticesPerCuboid = 24
	// TriangleIndicesPerCuboid is the number of triangle-list indices per cuboid
	TriangleIndicesPerCuboid = 36
	// LineIndicesPerCuboid is the number of line-list indices per cuboid
	LineIndicesPerCuboid = 48
)

// cornerMask selects, per axis, whether corner k sits at origin (0) or at
// origin+extents (1). Corners 0-3 walk the z=0 ring, 4-7 sit above them.
var cornerMask = [CornerCount][3]float32{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// faceCorners maps each face to the corners it is drawn from. Triangulation
// and face culling depend on this exact order.
var faceCorners = [6][4]int{
	{0, 1, 2, 3},
	{1, 0, 4, 5},
	{2, 1, 5, 6},
	{3, 2, 6, 7},
	{3, 0, 4, 7},
	{4, 5, 6, 7},
}

// FaceTriangles is the index pattern of one face relative to its four vertices.
var FaceTriangles = [6]uint32{0, 1, 2, 2, 3, 0}

// FaceOutline is the line-list pattern of one face relative to its four vertices.
var FaceOutline = [8]uint32{0, 1, 1, 2, 2, 3, 3, 0}

// Cuboid is an axis-aligned box spanning Extents from Origin. Negative extents
// components span in the negative direction on that axis.
type Cuboid struct {
	Origin  mgl32.Vec3
	Extents mgl32.Vec3
	Color   mgl32.Vec4
}

// NewCuboid creates a cuboid
func NewCuboid(origin, extents mgl32.Vec3, color mgl32.Vec4) Cuboid {
	return Cuboid{Origin: origin, Extents: extents, Color: color}
}

// CornerPoints returns the eight corners in the fixed enumeration order.
func (c Cuboid) CornerPoints() [CornerCount]mgl32.Vec3 {
	var pts [CornerCount]mgl32.Vec3
	for k, mask := range cornerMask {
		pts[k] = mgl32.Vec3{
			c.Origin[0] + c.Extents[0]*mask[0],
			c.Origin[1] + c.Extents[1]*mask[1],
			c.Origin[2] + c.Extents[2]*mask[2],
		}
	}
	return pts
}

// Vertices returns the 24 render vertices, four per face, all in the cuboid's color.
func (c Cuboid) Vertices() []Vertex {
	return c.AppendVertices(make([]Vertex, 0, VerticesPerCuboid))
}

// AppendVertices appends the 24 render vertices to dst.
func (c Cuboid) AppendVertices(dst []Vertex) []Vertex {
	pts := c.CornerPoints()
	for _, face := range faceCorners {
		for _, k := range face {
			dst = append(dst, NewVertex(pts[k], c.Color))
		}
	}
	return dst
}

// TriangleIndices returns the triangle-list indices for the vertices of
// count consecutive cuboids.
func TriangleIndices(count int) []uint32 {
	return appendFaceIndices(make([]uint32, 0, count*TriangleIndicesPerCuboid), count, FaceTriangles[:])
}

// LineIndices returns the line-list indices outlining every face of count
// consecutive cuboids.
func LineIndices(count int) []uint32 {
	return appendFaceIndices(make([]uint32, 0, count*LineIndicesPerCuboid), count, FaceOutline[:])
}

func appendFaceIndices(dst []uint32, count int, pattern []uint32) []uint32 {
	for box := 0; box < count; box++ {
		for face := 0; face < len(faceCorners); face++ {
			base := uint32(box*VerticesPerCuboid + face*4)
			for _, i := range pattern {
				dst = append(dst, base+i)
			}
		}
	}
	return dst
}

// Bounds returns the componentwise minimum and maximum corner.
func (c Cuboid) Bounds() (min, max mgl32.Vec3) {
	far := c.Origin.Add(c.Extents)
	for i := 0; i < 3; i++ {
		min[i] = math32.Min(c.Origin[i], far[i])
		max[i] = math32.Max(c.Origin[i], far[i])
	}
	return min, max
}

// Containing returns the smallest axis-aligned cuboid enclosing every corner of
// c and other. The result has non-negative extents and c's color.
func (c Cuboid) Containing(other Cuboid) Cuboid {
	min := mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	max := mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}

	a, b := c.CornerPoints(), other.CornerPoints()
	for _, pts := range [][CornerCount]mgl32.Vec3{a, b} {
		for _, p := range pts {
			for i := 0; i < 3; i++ {
				min[i] = math32.Min(min[i], p[i])
				max[i] = math32.Max(max[i], p[i])
			}
		}
	}

	return Cuboid{Origin: min, Extents: max.Sub(min), Color: c.Color}
}

// IsDegenerate reports whether any extents component is zero. Degenerate
// cuboids still render, as a flat quad or a line.
func (c Cuboid) IsDegenerate() bool {
	return c.Extents[0] == 0 || c.Extents[1] == 0 || c.Extents[2] == 0
}

// CellRange returns the half-open range [lo, hi) of integer cells covered by
// the cuboid's bounds, rounding corners to the nearest lattice point.
func (c Cuboid) CellRange() (lo, hi Cell) {
	min, max := c.Bounds()
	for i := 0; i < 3; i++ {
		lo[i] = int(math32.Floor(min[i] + 0.5))
		hi[i] = int(math32.Floor(max[i] + 0.5))
	}
	return lo, hi
}
