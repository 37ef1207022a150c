package meshing

import (
	"testing"

	"voxedit/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGridLinesCounts(t *testing.T) {
	tests := []struct {
		meshCount int
		debugRay  bool
	}{
		{16, false},
		{16, true},
		{1, false},
		{0, false},
	}
	for _, tt := range tests {
		b := GridLines(tt.meshCount, tt.debugRay)
		want := GridLineCount(tt.meshCount, tt.debugRay)
		if len(b.Vertices) != want || len(b.Indices) != want {
			t.Errorf("GridLines(%d, %v): %d vertices / %d indices, want %d", tt.meshCount, tt.debugRay, len(b.Vertices), len(b.Indices), want)
		}
		if b.Topology != Lines {
			t.Errorf("GridLines topology = %v, want Lines", b.Topology)
		}
		for i, idx := range b.Indices {
			if int(idx) != i {
				t.Fatalf("index %d = %d, want sequential", i, idx)
			}
		}
	}
}

func TestGridLinesAxes(t *testing.T) {
	b := GridLines(4, false)
	axes := []struct {
		to  mgl32.Vec3
		col mgl32.Vec4
	}{
		{mgl32.Vec3{4, 0, 0}, geometry.Red},
		{mgl32.Vec3{0, 4, 0}, geometry.Green},
		{mgl32.Vec3{0, 0, 4}, geometry.Blue},
	}
	for i, a := range axes {
		from, to := b.Vertices[2*i], b.Vertices[2*i+1]
		if from.Position() != (mgl32.Vec3{}) || to.Position() != a.to {
			t.Errorf("axis %d runs %v -> %v, want origin -> %v", i, from.Position(), to.Position(), a.to)
		}
		if from.Col != a.col || to.Col != a.col {
			t.Errorf("axis %d color %v, want %v", i, from.Col, a.col)
		}
	}
	for i, v := range b.Vertices[6:] {
		if v.Col != geometry.White {
			t.Fatalf("lattice vertex %d color %v, want white", i, v.Col)
		}
		p := v.Position()
		if p[0] != 0 && p[1] != 0 && p[2] != 0 {
			t.Fatalf("lattice vertex %d at %v is off the walls", i, p)
		}
	}
}

func TestSetDebugRay(t *testing.T) {
	b := GridLines(2, true)
	last := len(b.Vertices)
	if b.Vertices[last-1].Col != geometry.Transparent {
		t.Fatalf("placeholder not transparent")
	}

	SetDebugRay(&b, nil, mgl32.Vec3{9, 9, 9})
	if got := b.Vertices[last-2].Position(); got != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("default near = %v", got)
	}
	if b.Vertices[last-2].Col != geometry.Red || b.Vertices[last-1].Col != geometry.Blue {
		t.Errorf("debug ray colors = %v, %v", b.Vertices[last-2].Col, b.Vertices[last-1].Col)
	}

	near := mgl32.Vec3{1, 2, 3}
	SetDebugRay(&b, &near, mgl32.Vec3{4, 5, 6})
	if got := b.Vertices[last-2].Position(); got != near {
		t.Errorf("near = %v, want %v", got, near)
	}
	if len(b.Vertices) != last {
		t.Errorf("SetDebugRay changed the vertex count")
	}
}

func TestCursorBatch(t *testing.T) {
	b := CursorBatch(geometry.NewCuboid(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, -1, 1}, geometry.HalfAlphaRed))
	if len(b.Vertices) != 24 || len(b.Indices) != 36 || b.Topology != Triangles {
		t.Fatalf("cursor batch: %d vertices, %d indices, topology %v", len(b.Vertices), len(b.Indices), b.Topology)
	}
}

func TestVoxelBatchModes(t *testing.T) {
	var verts []geometry.Vertex
	for i := 0; i < 3; i++ {
		verts = geometry.NewCuboid(mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{1, 1, 1}, geometry.Red).AppendVertices(verts)
	}

	filled := VoxelBatch(verts, Filled)
	if filled.Topology != Triangles || len(filled.Indices) != 3*36 {
		t.Errorf("filled: topology %v, %d indices", filled.Topology, len(filled.Indices))
	}
	wire := VoxelBatch(verts, Wire)
	if wire.Topology != Lines || len(wire.Indices) != 3*48 {
		t.Errorf("wire: topology %v, %d indices", wire.Topology, len(wire.Indices))
	}
	if empty := VoxelBatch(nil, Filled); !empty.IsEmpty() {
		t.Errorf("empty grid produced %d indices", empty.IndexCount())
	}
}

func TestChecksumDetectsChanges(t *testing.T) {
	a := CursorBatch(geometry.NewCuboid(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, geometry.HalfAlphaRed))
	b := CursorBatch(geometry.NewCuboid(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, geometry.HalfAlphaRed))
	if a.Checksum() != b.Checksum() {
		t.Error("identical batches hash differently")
	}
	c := CursorBatch(geometry.NewCuboid(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}, geometry.HalfAlphaRed))
	if a.Checksum() == c.Checksum() {
		t.Error("moved cursor kept the same checksum")
	}
	if len(a.VertexBytes()) != 24*geometry.VertexSize || geometry.VertexSize != 32 {
		t.Errorf("vertex bytes = %d, stride %d", len(a.VertexBytes()), geometry.VertexSize)
	}
}

func TestParseRenderMode(t *testing.T) {
	for in, want := range map[string]RenderMode{"wire": Wire, "Filled": Filled, " solid ": Filled, "lines": Wire} {
		got, err := ParseRenderMode(in)
		if err != nil || got != want {
			t.Errorf("ParseRenderMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseRenderMode("points"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
