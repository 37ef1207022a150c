package geometry

import "github.com/go-gl/mathgl/mgl32"

// Plane describes one face of a grid cell: the outward normal and two in-plane
// axes. Left+Down+Normal points into the octant of the cell the face belongs to,
// given a corner produced by GridPos.
type Plane struct {
	Normal mgl32.Vec3
	Left   mgl32.Vec3
	Down   mgl32.Vec3
}

// Face identifies one of the six axis-aligned cell faces by its outward normal.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// GridPos floors X and ceils Y and Z, so the in-plane axes point towards
// +X, -Y and -Z from the snapped corner.
var facePlanes = [...]Plane{
	FacePosX: {Normal: mgl32.Vec3{1, 0, 0}, Left: mgl32.Vec3{0, 0, -1}, Down: mgl32.Vec3{0, -1, 0}},
	FaceNegX: {Normal: mgl32.Vec3{-1, 0, 0}, Left: mgl32.Vec3{0, 0, -1}, Down: mgl32.Vec3{0, -1, 0}},
	FacePosY: {Normal: mgl32.Vec3{0, 1, 0}, Left: mgl32.Vec3{1, 0, 0}, Down: mgl32.Vec3{0, 0, -1}},
	FaceNegY: {Normal: mgl32.Vec3{0, -1, 0}, Left: mgl32.Vec3{1, 0, 0}, Down: mgl32.Vec3{0, 0, -1}},
	FacePosZ: {Normal: mgl32.Vec3{0, 0, 1}, Left: mgl32.Vec3{1, 0, 0}, Down: mgl32.Vec3{0, -1, 0}},
	FaceNegZ: {Normal: mgl32.Vec3{0, 0, -1}, Left: mgl32.Vec3{1, 0, 0}, Down: mgl32.Vec3{0, -1, 0}},
}

// The three walls of the editing volume, facing into it.
var (
	YZPlane = facePlanes[FacePosX]
	XZPlane = facePlanes[FacePosY]
	XYPlane = facePlanes[FacePosZ]
)

// Plane returns the basis of the face.
func (f Face) Plane() Plane {
	return facePlanes[f]
}

// Axis returns 0, 1 or 2 for X, Y or Z.
func (f Face) Axis() int {
	return int(f) / 2
}

// Sign returns +1 for outward normals pointing along the positive axis, -1 otherwise.
func (f Face) Sign() int {
	if f%2 == 0 {
		return 1
	}
	return -1
}

func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	}
	return "?"
}

// FaceFor returns the face whose normal lies along axis with the given sign.
func FaceFor(axis, sign int) Face {
	f := Face(axis * 2)
	if sign < 0 {
		f++
	}
	return f
}

// Octant is the sum of the basis vectors; used as the extents of the unit
// cuboid the face selects.
func (p Plane) Octant() mgl32.Vec3 {
	return p.Left.Add(p.Down).Add(p.Normal)
}
