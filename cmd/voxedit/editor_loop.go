package main

import (
	"log/slog"
	"time"

	"voxedit/internal/camera"
	"voxedit/internal/config"
	"voxedit/internal/editor"
	"voxedit/internal/frame"
	renderer "voxedit/internal/graphics/renderer"
	"voxedit/internal/input"
	"voxedit/internal/meshing"
	"voxedit/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

// EditorLoop manages the main loop state
type EditorLoop struct {
	window       *glfw.Window
	camera       *camera.Orbit
	session      *editor.Session
	renderer     *renderer.Renderer
	inputManager *input.InputManager
	reloads      <-chan config.Config
	limiter      *frame.Limiter

	// pointerDirty is set when the pick ray must be recast: the cursor or
	// camera moved, or the grid changed under the cursor.
	pointerDirty bool
	meshCount    int
}

// NewEditorLoop creates the loop over already initialized components
func NewEditorLoop(window *glfw.Window, c *EditorComponents, reloads <-chan config.Config) *EditorLoop {
	return &EditorLoop{
		window:       window,
		camera:       c.Camera,
		session:      c.Session,
		renderer:     c.Renderer,
		inputManager: c.Input,
		reloads:      reloads,
		limiter:      frame.NewLimiter(),
		pointerDirty: true,
		meshCount:    c.Session.Grid().Extent(),
	}
}

// Run ticks until the window is closed
func (l *EditorLoop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *EditorLoop) tick() {
	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	l.applyReloads()
	l.handleCamera()
	l.updatePointer()
	l.handleActions()

	l.renderer.Render(l.session)
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	l.inputManager.PostUpdate()

	if d := time.Since(start); d > slowFrame {
		slog.Debug("slow frame", "took", d, "top", profiling.TopN(5))
	}

	l.limiter.Wait()
}

// applyReloads takes the newest config from the watcher, if any. Runs on the
// frame loop so the session has a single writer.
func (l *EditorLoop) applyReloads() {
	select {
	case cfg, ok := <-l.reloads:
		if !ok {
			l.reloads = nil
			return
		}
		config.Apply(cfg)
		l.session.SetPaintColor(config.GetPaintColor())
		l.session.SetDebugRay(config.GetDebugRay())
		if mode, err := meshing.ParseRenderMode(config.GetRenderMode()); err == nil {
			l.session.SetRenderMode(mode)
		}
		if cfg.MeshCount != l.meshCount {
			slog.Info("mesh_count change takes effect on restart", "current", l.meshCount, "configured", cfg.MeshCount)
		}
		slog.Info("config applied", "render_mode", cfg.RenderMode, "fps_limit", cfg.FPSLimit, "debug_ray", cfg.DebugRay)
	default:
	}
}

func (l *EditorLoop) handleCamera() {
	dx, dy := l.inputManager.CursorDelta()
	if dx != 0 || dy != 0 {
		l.pointerDirty = true
		if l.inputManager.IsActive(input.ActionOrbit) {
			l.camera.Rotate(dx, dy)
		}
	}
	if s := l.inputManager.Scroll(); s != 0 {
		l.camera.Zoom(s)
		l.pointerDirty = true
	}
}

// updatePointer recasts the pick ray and feeds the hit to the session.
func (l *EditorLoop) updatePointer() {
	if !l.pointerDirty {
		return
	}
	x, y, ok := l.inputManager.Cursor()
	if !ok {
		return
	}
	l.pointerDirty = false

	origin, dir, err := pickRay(l.window, l.camera, x, y)
	if err != nil {
		slog.Debug("pick ray", "err", err)
		l.session.Pointer(nil)
		return
	}
	hit, found := camera.Raycast(origin, dir, l.session.Grid())
	if !found {
		l.session.Pointer(nil)
		l.session.TraceRay(origin, origin.Add(dir.Mul(l.camera.FarPlane)))
		return
	}
	l.session.Pointer(&hit)
	l.session.TraceRay(origin, hit.Position)
}

func (l *EditorLoop) handleActions() {
	im := l.inputManager

	if im.JustPressed(input.ActionPaint) {
		l.session.Press()
	}
	if im.JustReleased(input.ActionPaint) {
		mode := editor.ModePaint
		if im.IsActive(input.ActionErase) {
			mode = editor.ModeErase
		}
		if _, changed, ok := l.session.Release(mode); ok {
			slog.Info("selection applied", "mode", mode, "changed", changed, "voxels", l.session.Grid().Count())
			l.pointerDirty = true
		}
	}

	if im.JustPressed(input.ActionToggleRender) {
		mode := l.session.ToggleRenderMode()
		config.SetRenderMode(mode.String())
		slog.Info("render mode", "mode", mode)
	}
	if im.JustPressed(input.ActionToggleDebugRay) {
		enabled := !l.session.DebugRay()
		l.session.SetDebugRay(enabled)
		config.SetDebugRay(enabled)
		l.pointerDirty = true
	}
	if im.JustPressed(input.ActionClear) {
		l.session.Cancel()
		l.session.Clear()
		l.pointerDirty = true
		slog.Info("grid cleared")
	}
	if im.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}
}
