package meshing

import (
	"fmt"
	"strings"
	"unsafe"

	"voxedit/internal/geometry"

	"github.com/cespare/xxhash/v2"
)

// Topology tells the presentation layer how to assemble a batch's indices.
type Topology int

const (
	Lines Topology = iota
	Triangles
)

// RenderMode selects how voxels are drawn.
type RenderMode int

const (
	// Wire outlines every voxel face with a line list
	Wire RenderMode = iota
	// Filled draws every voxel face as two triangles
	Filled
)

func (m RenderMode) String() string {
	if m == Filled {
		return "filled"
	}
	return "wire"
}

// ParseRenderMode accepts "wire" or "filled".
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wire", "wireframe", "lines":
		return Wire, nil
	case "filled", "fill", "solid":
		return Filled, nil
	}
	return Wire, fmt.Errorf("unknown render mode %q", s)
}

// Batch is one vertex/index buffer pair handed to the presentation layer.
type Batch struct {
	Vertices []geometry.Vertex
	Indices  []uint32
	Topology Topology
}

// IndexCount returns the number of indices to draw.
func (b *Batch) IndexCount() int {
	return len(b.Indices)
}

// IsEmpty reports whether there is nothing to draw.
func (b *Batch) IsEmpty() bool {
	return len(b.Indices) == 0
}

// VertexBytes views the vertex slice as raw bytes for upload.
func (b *Batch) VertexBytes() []byte {
	if len(b.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.Vertices[0])), len(b.Vertices)*geometry.VertexSize)
}

// IndexBytes views the index slice as raw bytes for upload.
func (b *Batch) IndexBytes() []byte {
	if len(b.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.Indices[0])), len(b.Indices)*4)
}

// Checksum hashes the vertex and index contents. Equal checksums mean the GPU
// copy is still current and the upload can be skipped.
func (b *Batch) Checksum() uint64 {
	d := xxhash.New()
	_, _ = d.Write(b.VertexBytes())
	_, _ = d.Write(b.IndexBytes())
	_, _ = d.Write([]byte{byte(b.Topology)})
	return d.Sum64()
}

// CursorBatch builds the alpha-blended triangle list for a cursor or drag box.
func CursorBatch(c geometry.Cuboid) Batch {
	return Batch{
		Vertices: c.Vertices(),
		Indices:  geometry.TriangleIndices(1),
		Topology: Triangles,
	}
}

// VoxelBatch wraps the vertices produced by a full grid scan (24 per voxel)
// with indices for the requested mode.
func VoxelBatch(vertices []geometry.Vertex, mode RenderMode) Batch {
	boxes := len(vertices) / geometry.VerticesPerCuboid
	if mode == Filled {
		return Batch{Vertices: vertices, Indices: geometry.TriangleIndices(boxes), Topology: Triangles}
	}
	return Batch{Vertices: vertices, Indices: geometry.LineIndices(boxes), Topology: Lines}
}
