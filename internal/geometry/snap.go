package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cell is an integer grid coordinate.
type Cell [3]int

// Vec3 converts the cell to a world-space point.
func (c Cell) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])}
}

// Add returns the componentwise sum.
func (c Cell) Add(o Cell) Cell {
	return Cell{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

// GridPos snaps a world-space hit to a grid corner: floor on X, ceiling on Y
// and Z. The rounding does not depend on which face was hit; the face's Plane
// picks the cell next to that corner.
func GridPos(worldPos mgl32.Vec3) Cell {
	return Cell{
		int(math32.Floor(worldPos[0])),
		int(math32.Ceil(worldPos[1])),
		int(math32.Ceil(worldPos[2])),
	}
}

// CellBox returns the unit cuboid selected by a hit on the face described by plane.
func CellBox(worldPos mgl32.Vec3, plane Plane, color mgl32.Vec4) Cuboid {
	return NewCuboid(GridPos(worldPos).Vec3(), plane.Octant(), color)
}
