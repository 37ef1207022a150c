package scene

import (
	"voxedit/internal/graphics"
	renderer "voxedit/internal/graphics/renderer"
	"voxedit/internal/profiling"
)

// Scene draws the opaque part of the frame: the reference grid lines and the
// voxel geometry.
type Scene struct {
	shader *graphics.Shader
	grid   *graphics.Mesh
	voxels *graphics.Mesh
}

// NewScene creates a new scene renderable
func NewScene() *Scene {
	return &Scene{}
}

// Init compiles the shader and allocates the two meshes
func (s *Scene) Init() error {
	var err error
	s.shader, err = graphics.NewBatchShader()
	if err != nil {
		return err
	}
	s.grid = graphics.NewMesh()
	s.voxels = graphics.NewMesh()
	return nil
}

// Render uploads changed batches and draws them
func (s *Scene) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.scene")()

	s.grid.Upload(ctx.Session.GridBatch())
	s.voxels.Upload(ctx.Session.VoxelBatch())

	s.shader.Use()
	s.shader.SetMatrix4("mvp", &ctx.MVP[0])
	s.grid.Draw()
	s.voxels.Draw()
}

// Dispose cleans up OpenGL resources
func (s *Scene) Dispose() {
	if s.voxels != nil {
		s.voxels.Dispose()
	}
	if s.grid != nil {
		s.grid.Dispose()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// SetViewport is a no-op; the scene only depends on the MVP matrix
func (s *Scene) SetViewport(width, height int) {}
