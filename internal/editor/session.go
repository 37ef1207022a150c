package editor

import (
	"fmt"
	"log/slog"

	"voxedit/internal/camera"
	"voxedit/internal/geometry"
	"voxedit/internal/meshing"
	"voxedit/internal/profiling"
	"voxedit/internal/selection"
	"voxedit/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode is what a released drag does to the grid.
type Mode int

const (
	ModePaint Mode = iota
	ModeErase
)

func (m Mode) String() string {
	if m == ModeErase {
		return "erase"
	}
	return "paint"
}

// Session owns the voxel grid, the selection controller and the batches
// derived from them. It is driven from the frame loop and is not safe for
// concurrent use.
type Session struct {
	grid       *voxel.Manager
	selection  *selection.Controller
	paintColor mgl32.Vec4
	renderMode meshing.RenderMode

	voxels      meshing.Batch
	vertices    []geometry.Vertex
	voxelsBuilt uint64
	built       bool

	gridLines meshing.Batch
	debugRay  bool
}

// NewSession creates an empty grid of meshCount cells per axis.
func NewSession(meshCount int, debugRay bool) (*Session, error) {
	grid, err := voxel.NewManager(meshCount)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := &Session{
		grid:       grid,
		selection:  selection.NewController(),
		paintColor: geometry.Green,
		renderMode: meshing.Wire,
		gridLines:  meshing.GridLines(meshCount, debugRay),
		debugRay:   debugRay,
	}
	s.rebuild()
	return s, nil
}

// Grid returns the voxel grid.
func (s *Session) Grid() *voxel.Manager { return s.grid }

// Selection returns the selection controller.
func (s *Session) Selection() *selection.Controller { return s.selection }

// PaintColor returns the color applied by paint releases.
func (s *Session) PaintColor() mgl32.Vec4 { return s.paintColor }

// SetPaintColor changes the color of subsequent paint releases.
func (s *Session) SetPaintColor(c mgl32.Vec4) { s.paintColor = c }

// RenderMode returns how voxels are drawn.
func (s *Session) RenderMode() meshing.RenderMode { return s.renderMode }

// SetRenderMode switches between wire and filled voxels. Only the index list
// changes; vertices are reused.
func (s *Session) SetRenderMode(m meshing.RenderMode) {
	if m == s.renderMode {
		return
	}
	s.renderMode = m
	s.voxels = meshing.VoxelBatch(s.vertices, m)
}

// ToggleRenderMode flips between wire and filled and returns the new mode.
func (s *Session) ToggleRenderMode() meshing.RenderMode {
	if s.renderMode == meshing.Wire {
		s.SetRenderMode(meshing.Filled)
	} else {
		s.SetRenderMode(meshing.Wire)
	}
	return s.renderMode
}

// Pointer routes a raycast result to the selection controller. A nil hit
// hides the cursor and abandons any drag.
func (s *Session) Pointer(hit *camera.Hit) {
	if hit == nil {
		s.selection.Update(mgl32.Vec3{}, nil)
		return
	}
	plane := hit.Plane
	s.selection.Update(hit.Position, &plane)
}

// Press starts a drag at the cursor. It reports false when nothing is hovered.
func (s *Session) Press() bool {
	return s.selection.BeginDrag()
}

// Release ends the drag and applies the selected box to the grid: Fill with
// the paint color or Erase, depending on mode. It returns the box and the
// number of voxels that changed. The voxel batch is rebuilt before returning.
func (s *Session) Release(mode Mode) (geometry.Cuboid, int, bool) {
	box, ok := s.selection.Release()
	if !ok {
		return geometry.Cuboid{}, 0, false
	}
	var changed int
	switch mode {
	case ModeErase:
		changed = s.grid.Erase(box)
	default:
		changed = s.grid.Fill(box, s.paintColor)
	}
	lo, hi := box.CellRange()
	slog.Debug("selection applied", "mode", mode, "from", lo, "to", hi, "changed", changed)
	s.rebuild()
	return box, changed, true
}

// Cancel abandons the current drag.
func (s *Session) Cancel() { s.selection.Cancel() }

// Clear empties the grid.
func (s *Session) Clear() {
	s.grid.Reset()
	s.rebuild()
}

// rebuild regenerates the voxel batch from a full scan when the grid changed.
func (s *Session) rebuild() {
	if s.built && s.voxelsBuilt == s.grid.Version() {
		return
	}
	defer profiling.Track("editor.rebuild")()
	s.vertices = s.grid.Vertices()
	s.voxels = meshing.VoxelBatch(s.vertices, s.renderMode)
	s.voxelsBuilt = s.grid.Version()
	s.built = true
}

// VoxelBatch returns the current voxel geometry.
func (s *Session) VoxelBatch() meshing.Batch {
	s.rebuild()
	return s.voxels
}

// CursorVisible reports whether the cursor batch should be drawn.
func (s *Session) CursorVisible() bool { return s.selection.Visible() }

// CursorBatch returns the cursor or drag preview, and false when hidden.
func (s *Session) CursorBatch() (meshing.Batch, bool) {
	if !s.selection.Visible() {
		return meshing.Batch{}, false
	}
	return meshing.CursorBatch(s.selection.Preview()), true
}

// GridBatch returns the reference lines, including the debug ray segment
// when it is enabled.
func (s *Session) GridBatch() meshing.Batch {
	return s.gridLines
}

// SetDebugRay enables or disables the debug ray segment.
func (s *Session) SetDebugRay(enabled bool) {
	if enabled == s.debugRay {
		return
	}
	s.debugRay = enabled
	s.gridLines = meshing.GridLines(s.grid.Extent(), enabled)
}

// DebugRay reports whether the debug ray segment is drawn.
func (s *Session) DebugRay() bool { return s.debugRay }

// TraceRay moves the debug ray to the given segment. It does nothing while
// the debug ray is disabled.
func (s *Session) TraceRay(near, far mgl32.Vec3) {
	if !s.debugRay {
		return
	}
	meshing.SetDebugRay(&s.gridLines, &near, far)
}
