package selection

import (
	"voxedit/internal/geometry"
	"voxedit/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// State of the selection controller
type State int

const (
	Idle State = iota
	Hover
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hover:
		return "hover"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// CursorColor is the translucent fill of the cursor and the drag rectangle.
var CursorColor = geometry.HalfAlphaRed

// Controller tracks the hover cursor and the drag rectangle from raycast results.
type Controller struct {
	state     State
	visible   bool
	cursor    geometry.Cuboid
	dragEnd   *geometry.Cuboid
	committed *geometry.Cuboid
	version   uint64
}

// NewController returns an idle controller. The hidden cursor starts at the
// origin of the back wall.
func NewController() *Controller {
	return &Controller{
		cursor: geometry.NewCuboid(mgl32.Vec3{}, geometry.XYPlane.Octant(), CursorColor),
	}
}

// State returns the current state
func (c *Controller) State() State { return c.state }

// Visible reports whether the preview should be drawn.
func (c *Controller) Visible() bool { return c.visible }

// Cursor returns the last hover cursor box, visible or not.
func (c *Controller) Cursor() geometry.Cuboid { return c.cursor }

// Version increases whenever the preview geometry or its visibility changes.
func (c *Controller) Version() uint64 { return c.version }

// DragEnd returns the box under the pointer during a drag.
func (c *Controller) DragEnd() (geometry.Cuboid, bool) {
	if c.dragEnd == nil {
		return geometry.Cuboid{}, false
	}
	return *c.dragEnd, true
}

// Committed returns the bounding box of the cursor and the drag end.
func (c *Controller) Committed() (geometry.Cuboid, bool) {
	if c.committed == nil {
		return geometry.Cuboid{}, false
	}
	return *c.committed, true
}

// Preview is the box the cursor batch should show: the drag rectangle while
// one exists, otherwise the cursor.
func (c *Controller) Preview() geometry.Cuboid {
	if c.state == Dragging && c.committed != nil {
		return *c.committed
	}
	return c.cursor
}

// Update feeds one raycast result. A nil plane means the ray hit nothing.
func (c *Controller) Update(pos mgl32.Vec3, plane *geometry.Plane) {
	if c.state == Dragging {
		c.UpdateDrag(pos, plane)
		return
	}
	c.UpdateCursor(pos, plane)
}

// UpdateCursor moves the hover cursor to the cell selected by the hit.
func (c *Controller) UpdateCursor(pos mgl32.Vec3, plane *geometry.Plane) {
	if plane == nil {
		c.reset()
		return
	}
	defer profiling.Track("selection.UpdateCursor")()
	c.cursor = geometry.CellBox(pos, *plane, CursorColor)
	c.state = Hover
	c.visible = true
	c.version++
}

// UpdateDrag extends the drag rectangle from the cursor to the cell selected
// by the hit.
func (c *Controller) UpdateDrag(pos mgl32.Vec3, plane *geometry.Plane) {
	if plane == nil {
		c.reset()
		return
	}
	if c.state != Dragging {
		return
	}
	defer profiling.Track("selection.UpdateDrag")()
	end := geometry.CellBox(pos, *plane, CursorColor)
	committed := c.cursor.Containing(end)
	c.dragEnd = &end
	c.committed = &committed
	c.visible = true
	c.version++
}

// BeginDrag anchors a drag at the current cursor. It only succeeds while hovering.
func (c *Controller) BeginDrag() bool {
	if c.state != Hover {
		return false
	}
	c.state = Dragging
	c.dragEnd = nil
	c.committed = nil
	return true
}

// Release ends a drag and returns the box to apply. A drag that never moved
// commits the cursor cell alone. The controller returns to Idle.
func (c *Controller) Release() (geometry.Cuboid, bool) {
	if c.state != Dragging {
		return geometry.Cuboid{}, false
	}
	var out geometry.Cuboid
	if c.committed != nil {
		out = *c.committed
	} else {
		out = c.cursor.Containing(c.cursor)
	}
	c.state = Idle
	c.dragEnd = nil
	c.committed = nil
	c.version++
	return out, true
}

// Cancel abandons a drag without committing, keeping the cursor where it is.
func (c *Controller) Cancel() {
	if c.state != Dragging {
		return
	}
	c.state = Hover
	c.dragEnd = nil
	c.committed = nil
	c.version++
}

// reset hides the preview and drops any drag in progress. The cursor box is kept.
func (c *Controller) reset() {
	if c.state == Idle && !c.visible {
		return
	}
	c.state = Idle
	c.visible = false
	c.dragEnd = nil
	c.committed = nil
	c.version++
}
