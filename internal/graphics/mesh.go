package graphics

import (
	"voxedit/internal/geometry"
	"voxedit/internal/meshing"
	"voxedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is the GPU copy of a meshing.Batch: one VAO with a vertex buffer of
// {vec4 position, vec4 color} and a uint32 index buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	checksum      uint64
	uploaded      bool
}

// NewMesh allocates the GL objects and sets up the vertex layout.
func NewMesh() *Mesh {
	m := &Mesh{mode: gl.LINES}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	stride := int32(geometry.VertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 16)

	gl.BindVertexArray(0)
	return m
}

// Upload replaces the buffer contents with b. It returns false without
// touching the GPU when b hashes the same as the last upload.
func (m *Mesh) Upload(b meshing.Batch) bool {
	sum := b.Checksum()
	if m.uploaded && sum == m.checksum {
		return false
	}
	defer profiling.Track("graphics.Mesh.Upload")()

	m.mode = gl.LINES
	if b.Topology == meshing.Triangles {
		m.mode = gl.TRIANGLES
	}
	m.count = int32(b.IndexCount())
	m.checksum = sum
	m.uploaded = true
	if b.IsEmpty() {
		return true
	}

	gl.BindVertexArray(m.vao)
	vertices := b.VertexBytes()
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	indices := b.IndexBytes()
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices), gl.Ptr(indices), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)
	return true
}

// Draw issues one indexed draw call for the uploaded batch.
func (m *Mesh) Draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(m.mode, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Dispose releases the GL objects.
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
