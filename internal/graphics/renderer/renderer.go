package renderer

import (
	"fmt"

	"voxedit/internal/camera"
	"voxedit/internal/editor"
	"voxedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Orbit
}

// NewRenderer configures GL state and initializes the renderables in order.
// Renderables that initialized before a failure are disposed.
func NewRenderer(cam *camera.Orbit, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{camera: cam}
	for _, rb := range rs {
		if err := rb.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init renderable %T: %w", rb, err)
		}
		r.renderables = append(r.renderables, rb)
	}
	r.SetViewport(cam.Width, cam.Height)
	return r, nil
}

// Render clears the frame and draws every renderable in order
func (r *Renderer) Render(s *editor.Session) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.08, 0.08, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:  r.camera,
		Session: s,
		MVP:     r.camera.MVP(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// SetViewport updates the GL viewport, the camera and every renderable
func (r *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
