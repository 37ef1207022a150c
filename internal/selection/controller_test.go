package selection

import (
	"testing"

	"voxedit/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plane(f geometry.Face) *geometry.Plane {
	p := f.Plane()
	return &p
}

func TestStartsIdleAndHidden(t *testing.T) {
	c := NewController()
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Visible())
	_, ok := c.Committed()
	assert.False(t, ok)
}

func TestHoverBuildsCursorFromFaceBasis(t *testing.T) {
	c := NewController()
	c.Update(mgl32.Vec3{2.4, 1.1, 0}, plane(geometry.FacePosZ))

	require.Equal(t, Hover, c.State())
	assert.True(t, c.Visible())

	cur := c.Cursor()
	assert.Equal(t, mgl32.Vec3{2, 2, 0}, cur.Origin)
	assert.Equal(t, mgl32.Vec3{1, -1, 1}, cur.Extents)
	assert.Equal(t, CursorColor, cur.Color)
	assert.Equal(t, cur, c.Preview())
}

func TestMissHidesCursorButKeepsIt(t *testing.T) {
	c := NewController()
	c.Update(mgl32.Vec3{2.4, 1.1, 0}, plane(geometry.FacePosZ))
	cur := c.Cursor()

	c.Update(mgl32.Vec3{}, nil)
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Visible())
	assert.Equal(t, cur, c.Cursor())
}

func TestDragCommitsContainingBox(t *testing.T) {
	c := NewController()
	// Floor hit selecting cell (0,0,0).
	c.Update(mgl32.Vec3{0.5, 0, 0.5}, plane(geometry.FacePosY))
	require.True(t, c.BeginDrag())
	assert.Equal(t, Dragging, c.State())

	// Floor hit selecting cell (2,0,2).
	c.Update(mgl32.Vec3{2.5, 0, 2.5}, plane(geometry.FacePosY))

	end, ok := c.DragEnd()
	require.True(t, ok)
	lo, _ := end.CellRange()
	assert.Equal(t, geometry.Cell{2, 0, 2}, lo)

	committed, ok := c.Committed()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, committed.Origin)
	assert.Equal(t, mgl32.Vec3{3, 1, 3}, committed.Extents)
	assert.Equal(t, committed, c.Preview())
	assert.Equal(t, c.Cursor().Containing(end), committed)

	box, ok := c.Release()
	require.True(t, ok)
	assert.Equal(t, committed, box)
	assert.Equal(t, Idle, c.State())
	_, ok = c.Committed()
	assert.False(t, ok)
}

func TestReleaseWithoutMovementCommitsCursorCell(t *testing.T) {
	c := NewController()
	c.Update(mgl32.Vec3{2.4, 1.1, 0}, plane(geometry.FacePosZ))
	require.True(t, c.BeginDrag())

	box, ok := c.Release()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{2, 1, 0}, box.Origin)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, box.Extents)
}

func TestMissDuringDragAbandonsIt(t *testing.T) {
	c := NewController()
	c.Update(mgl32.Vec3{0.5, 0, 0.5}, plane(geometry.FacePosY))
	require.True(t, c.BeginDrag())
	c.Update(mgl32.Vec3{2.5, 0, 2.5}, plane(geometry.FacePosY))

	c.Update(mgl32.Vec3{}, nil)
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Visible())

	_, ok := c.Release()
	assert.False(t, ok, "release after a miss must not commit")
}

func TestBeginDragRequiresHover(t *testing.T) {
	c := NewController()
	assert.False(t, c.BeginDrag())

	c.Update(mgl32.Vec3{0.5, 0, 0.5}, plane(geometry.FacePosY))
	require.True(t, c.BeginDrag())
	assert.False(t, c.BeginDrag(), "already dragging")
}

func TestCancelReturnsToHover(t *testing.T) {
	c := NewController()
	c.Update(mgl32.Vec3{0.5, 0, 0.5}, plane(geometry.FacePosY))
	cur := c.Cursor()
	require.True(t, c.BeginDrag())
	c.Update(mgl32.Vec3{3.5, 0, 1.5}, plane(geometry.FacePosY))

	c.Cancel()
	assert.Equal(t, Hover, c.State())
	assert.Equal(t, cur, c.Preview())
	_, ok := c.Release()
	assert.False(t, ok)
}

func TestVersionTracksChanges(t *testing.T) {
	c := NewController()
	v0 := c.Version()
	c.Update(mgl32.Vec3{}, nil)
	assert.Equal(t, v0, c.Version(), "miss while already idle is not a change")

	c.Update(mgl32.Vec3{0.5, 0, 0.5}, plane(geometry.FacePosY))
	assert.Greater(t, c.Version(), v0)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "hover", Hover.String())
	assert.Equal(t, "dragging", Dragging.String())
}
