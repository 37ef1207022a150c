package camera_test

import (
	"testing"

	"voxedit/internal/camera"
	"voxedit/internal/geometry"
	"voxedit/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

func newGrid(t *testing.T, extent int, cells ...geometry.Cell) *voxel.Manager {
	t.Helper()
	m, err := voxel.NewManager(extent)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	for _, c := range cells {
		if err := m.Set(c[0], c[1], c[2], geometry.Red); err != nil {
			t.Fatalf("Set(%v): %v", c, err)
		}
	}
	return m
}

func TestRaycastHitsFloorWhenEmpty(t *testing.T) {
	grid := newGrid(t, 4)
	hit, ok := camera.Raycast(mgl32.Vec3{2.5, 10, 3.5}, mgl32.Vec3{0, -1, 0}, grid)
	if !ok {
		t.Fatal("expected floor hit")
	}
	if hit.Face != geometry.FacePosY {
		t.Errorf("face = %v, want +Y", hit.Face)
	}
	if hit.Position != (mgl32.Vec3{2.5, 0, 3.5}) {
		t.Errorf("position = %v, want {2.5 0 3.5}", hit.Position)
	}
	if hit.Plane != geometry.XZPlane {
		t.Errorf("plane = %+v, want XZ plane", hit.Plane)
	}
}

func TestRaycastHitsVoxelTop(t *testing.T) {
	grid := newGrid(t, 4, geometry.Cell{2, 1, 3})
	hit, ok := camera.Raycast(mgl32.Vec3{2.5, 10, 3.5}, mgl32.Vec3{0, -1, 0}, grid)
	if !ok {
		t.Fatal("expected voxel hit")
	}
	if hit.Face != geometry.FacePosY || hit.Position != (mgl32.Vec3{2.5, 2, 3.5}) {
		t.Fatalf("hit %v at %v, want +Y at {2.5 2 3.5}", hit.Face, hit.Position)
	}
	if hit.Distance < 7.99 || hit.Distance > 8.01 {
		t.Errorf("distance = %v, want 8", hit.Distance)
	}

	lo, _ := geometry.CellBox(hit.Position, hit.Plane, geometry.HalfAlphaRed).CellRange()
	if lo != (geometry.Cell{2, 2, 3}) {
		t.Errorf("cursor cell = %v, want the cell above the voxel {2 2 3}", lo)
	}
}

func TestRaycastHitsVoxelSide(t *testing.T) {
	grid := newGrid(t, 4, geometry.Cell{2, 1, 3})
	hit, ok := camera.Raycast(mgl32.Vec3{-5, 1.5, 3.5}, mgl32.Vec3{1, 0, 0}, grid)
	if !ok {
		t.Fatal("expected voxel hit")
	}
	if hit.Face != geometry.FaceNegX || hit.Position != (mgl32.Vec3{2, 1.5, 3.5}) {
		t.Fatalf("hit %v at %v, want -X at {2 1.5 3.5}", hit.Face, hit.Position)
	}
	lo, _ := geometry.CellBox(hit.Position, hit.Plane, geometry.HalfAlphaRed).CellRange()
	if lo != (geometry.Cell{1, 1, 3}) {
		t.Errorf("cursor cell = %v, want {1 1 3}", lo)
	}
}

func TestRaycastDiagonalFindsFirstVoxel(t *testing.T) {
	grid := newGrid(t, 8, geometry.Cell{3, 3, 3}, geometry.Cell{5, 5, 5})
	hit, ok := camera.Raycast(mgl32.Vec3{10, 10.2, 10.4}, mgl32.Vec3{-1, -1, -1}, grid)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Position[0] < 5 || hit.Position[1] < 5 || hit.Position[2] < 5 {
		t.Errorf("hit %v passed through the nearer voxel", hit.Position)
	}
}

func TestRaycastMisses(t *testing.T) {
	grid := newGrid(t, 4, geometry.Cell{0, 0, 0})
	tests := []struct {
		name        string
		origin, dir mgl32.Vec3
	}{
		{"pointing away", mgl32.Vec3{10, 10, 10}, mgl32.Vec3{1, 1, 1}},
		{"behind the walls", mgl32.Vec3{-1, 2, 2}, mgl32.Vec3{-1, 0, 0}},
		{"beside the grid", mgl32.Vec3{10, 2, 2}, mgl32.Vec3{0, 0, -1}},
		{"zero direction", mgl32.Vec3{2, 2, 2}, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := camera.Raycast(tt.origin, tt.dir, grid); ok {
				t.Errorf("unexpected hit %+v", hit)
			}
		})
	}
}

func TestOrbitRayThroughCenterLooksAtTarget(t *testing.T) {
	o := camera.NewOrbit(900, 600, 16)
	origin, dir, err := o.Ray(450, 300)
	if err != nil {
		t.Fatalf("Ray: %v", err)
	}
	want := o.Target.Sub(o.Eye()).Normalize()
	if !dir.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("center ray dir = %v, want %v", dir, want)
	}
	if d := origin.Sub(o.Eye()).Len(); d > 1 {
		t.Errorf("ray origin %v is %v from the eye", origin, d)
	}

	// The default framing sees the grid: the center ray hits something.
	grid := newGrid(t, 16)
	if _, ok := camera.Raycast(origin, dir, grid); !ok {
		t.Error("center ray missed the grid walls")
	}
}

func TestOrbitControlsClamp(t *testing.T) {
	o := camera.NewOrbit(900, 600, 16)
	o.Rotate(0, 10000)
	if o.Pitch != 89 {
		t.Errorf("pitch = %v, want clamped to 89", o.Pitch)
	}
	o.Rotate(0, -100000)
	if o.Pitch != -89 {
		t.Errorf("pitch = %v, want clamped to -89", o.Pitch)
	}

	d := o.Distance
	o.Zoom(1)
	if o.Distance >= d {
		t.Errorf("zoom in did not reduce distance: %v -> %v", d, o.Distance)
	}
	o.Zoom(-1000)
	if o.Distance > 16*8 {
		t.Errorf("distance %v exceeds the limit", o.Distance)
	}
	if l := o.Eye().Sub(o.Target).Len(); l < o.Distance-1e-2 || l > o.Distance+1e-2 {
		t.Errorf("eye is %v from target, want %v", l, o.Distance)
	}

	o.SetViewport(0, 10)
	if o.Width != 900 {
		t.Errorf("zero viewport accepted")
	}
}
