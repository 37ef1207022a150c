package cursor

import (
	"voxedit/internal/graphics"
	renderer "voxedit/internal/graphics/renderer"
	"voxedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cursor draws the translucent hover cursor or drag rectangle on top of the
// scene. It must be registered after the scene renderable.
type Cursor struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
}

// NewCursor creates a new cursor renderable
func NewCursor() *Cursor {
	return &Cursor{}
}

// Init compiles the shader and allocates the mesh
func (c *Cursor) Init() error {
	var err error
	c.shader, err = graphics.NewBatchShader()
	if err != nil {
		return err
	}
	c.mesh = graphics.NewMesh()
	return nil
}

// Render draws the preview box when the session shows one
func (c *Cursor) Render(ctx renderer.RenderContext) {
	batch, visible := ctx.Session.CursorBatch()
	if !visible {
		return
	}
	defer profiling.Track("renderer.cursor")()
	c.mesh.Upload(batch)

	c.shader.Use()
	c.shader.SetMatrix4("mvp", &ctx.MVP[0])

	// Translucent faces are depth tested against the scene but do not write depth.
	gl.DepthMask(false)
	c.mesh.Draw()
	gl.DepthMask(true)
}

// Dispose cleans up OpenGL resources
func (c *Cursor) Dispose() {
	if c.mesh != nil {
		c.mesh.Dispose()
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

// SetViewport is a no-op for the cursor
func (c *Cursor) SetViewport(width, height int) {}
