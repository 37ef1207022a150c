package camera

import (
	"voxedit/internal/geometry"
	"voxedit/internal/profiling"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Grid is what the raycast needs to know about the voxel volume.
type Grid interface {
	Extent() int
	Occupied(x, y, z int) bool
}

// Hit is a raycast result: the world-space point on the face that was hit,
// the face's basis and the ray parameter.
type Hit struct {
	Position mgl32.Vec3
	Face     geometry.Face
	Plane    geometry.Plane
	Distance float32
}

// Raycast walks the ray through the grid cell by cell and reports the first
// face of an occupied voxel it enters. A ray that reaches no voxel is tested
// against the back (z=0), left (x=0) and bottom (y=0) walls.
//
// The coordinate of Position along the face normal is set exactly to the face
// plane, so snapping never lands on the wrong side of it.
func Raycast(origin, dir mgl32.Vec3, grid Grid) (Hit, bool) {
	defer profiling.Track("camera.Raycast")()
	if dir.Len() == 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()
	if hit, ok := traverse(origin, dir, grid); ok {
		return hit, true
	}
	return hitWalls(origin, dir, float32(grid.Extent()))
}

// slab clips the ray to the box [0, n]³. axis is the axis whose plane the ray
// enters through, or -1 when the origin is inside.
func slab(origin, dir mgl32.Vec3, n float32) (tEnter, tExit float32, axis int, ok bool) {
	tEnter, tExit, axis = math32.Inf(-1), math32.Inf(1), -1
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < 0 || origin[i] > n {
				return 0, 0, -1, false
			}
			continue
		}
		t1 := (0 - origin[i]) / dir[i]
		t2 := (n - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter, axis = t1, i
		}
		if t2 < tExit {
			tExit = t2
		}
	}
	if tExit < 0 || tEnter > tExit {
		return 0, 0, -1, false
	}
	if tEnter < 0 {
		tEnter, axis = 0, -1
	}
	return tEnter, tExit, axis, true
}

func traverse(origin, dir mgl32.Vec3, grid Grid) (Hit, bool) {
	extent := grid.Extent()
	t, tExit, axis, ok := slab(origin, dir, float32(extent))
	if !ok {
		return Hit{}, false
	}

	p := origin.Add(dir.Mul(t))
	var (
		cell  [3]int
		step  [3]int
		next  [3]float32
		delta [3]float32
	)
	for i := 0; i < 3; i++ {
		cell[i] = min(max(int(math32.Floor(p[i])), 0), extent-1)
		switch {
		case dir[i] > 0:
			step[i] = 1
			delta[i] = 1 / dir[i]
			next[i] = (float32(cell[i]+1) - origin[i]) / dir[i]
		case dir[i] < 0:
			step[i] = -1
			delta[i] = -1 / dir[i]
			next[i] = (float32(cell[i]) - origin[i]) / dir[i]
		default:
			delta[i] = math32.Inf(1)
			next[i] = math32.Inf(1)
		}
	}

	for {
		// A voxel enclosing the ray origin has no entry face; walk out of it.
		if axis >= 0 && grid.Occupied(cell[0], cell[1], cell[2]) {
			return faceHit(origin, dir, t, cell, axis, step[axis]), true
		}

		axis = 0
		if next[1] < next[axis] {
			axis = 1
		}
		if next[2] < next[axis] {
			axis = 2
		}
		t = next[axis]
		if t > tExit {
			return Hit{}, false
		}
		next[axis] += delta[axis]
		cell[axis] += step[axis]
		if cell[axis] < 0 || cell[axis] >= extent {
			return Hit{}, false
		}
	}
}

// faceHit builds the hit for a ray entering cell across the given axis while
// stepping in direction step.
func faceHit(origin, dir mgl32.Vec3, t float32, cell [3]int, axis, step int) Hit {
	face := geometry.FaceFor(axis, -step)
	pos := origin.Add(dir.Mul(t))
	if step > 0 {
		pos[axis] = float32(cell[axis])
	} else {
		pos[axis] = float32(cell[axis] + 1)
	}
	return Hit{Position: pos, Face: face, Plane: face.Plane(), Distance: t}
}

// hitWalls intersects the ray with the three inner walls of the volume.
func hitWalls(origin, dir mgl32.Vec3, n float32) (Hit, bool) {
	best := Hit{Distance: math32.Inf(1)}
	found := false
	for axis := 0; axis < 3; axis++ {
		// Walls face +axis; only rays travelling towards -axis can hit them.
		if dir[axis] >= 0 || origin[axis] < 0 {
			continue
		}
		t := -origin[axis] / dir[axis]
		if t >= best.Distance {
			continue
		}
		pos := origin.Add(dir.Mul(t))
		pos[axis] = 0
		inside := true
		for j := 0; j < 3; j++ {
			if j != axis && (pos[j] < 0 || pos[j] > n) {
				inside = false
			}
		}
		if !inside {
			continue
		}
		face := geometry.FaceFor(axis, 1)
		best = Hit{Position: pos, Face: face, Plane: face.Plane(), Distance: t}
		found = true
	}
	return best, found
}
