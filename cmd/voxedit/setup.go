package main

import (
	"fmt"

	"voxedit/internal/camera"
	"voxedit/internal/config"
	"voxedit/internal/editor"
	"voxedit/internal/graphics/renderables/cursor"
	"voxedit/internal/graphics/renderables/scene"
	renderer "voxedit/internal/graphics/renderer"
	"voxedit/internal/input"
	"voxedit/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func setupWindow(cfg config.Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, "voxedit", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	// Disable V-Sync; the frame limiter paces the loop
	glfw.SwapInterval(0)
	return window, nil
}

// EditorComponents holds everything the frame loop drives
type EditorComponents struct {
	Camera   *camera.Orbit
	Session  *editor.Session
	Renderer *renderer.Renderer
	Input    *input.InputManager
}

func setupEditor(window *glfw.Window, cfg config.Config) (*EditorComponents, error) {
	session, err := editor.NewSession(cfg.MeshCount, config.GetDebugRay())
	if err != nil {
		return nil, err
	}
	session.SetPaintColor(config.GetPaintColor())
	if mode, err := meshing.ParseRenderMode(config.GetRenderMode()); err == nil {
		session.SetRenderMode(mode)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	cam := camera.NewOrbit(fbWidth, fbHeight, float32(cfg.MeshCount))

	r, err := renderer.NewRenderer(cam,
		scene.NewScene(),
		cursor.NewCursor(),
	)
	if err != nil {
		return nil, err
	}

	im := input.NewInputManager()
	im.Attach(window)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		r.SetViewport(width, height)
	})

	return &EditorComponents{
		Camera:   cam,
		Session:  session,
		Renderer: r,
		Input:    im,
	}, nil
}

// pickRay converts a cursor position in window coordinates to a world ray,
// accounting for framebuffers larger than the window on HiDPI displays.
func pickRay(window *glfw.Window, cam *camera.Orbit, x, y float64) (origin, dir mgl32.Vec3, err error) {
	winWidth, winHeight := window.GetSize()
	if winWidth > 0 && winHeight > 0 {
		x *= float64(cam.Width) / float64(winWidth)
		y *= float64(cam.Height) / float64(winHeight)
	}
	return cam.Ray(x, y)
}
