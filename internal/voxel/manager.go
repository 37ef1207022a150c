package voxel

import (
	"errors"
	"fmt"

	"voxedit/internal/geometry"
	"voxedit/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrOutOfBounds is returned when a grid index falls outside [0, extent) on any axis.
var ErrOutOfBounds = errors.New("voxel: index out of bounds")

// ErrInvalidExtent is returned by NewManager for a non-positive extent.
var ErrInvalidExtent = errors.New("voxel: extent must be positive")

// Voxel is one slot of the grid
type Voxel struct {
	Present bool
	Color   mgl32.Vec4
}

// Manager is a dense extent³ cube of voxels stored in one flat slice.
// The slot count is fixed at construction.
type Manager struct {
	extent  int
	cubes   []Voxel
	count   int
	version uint64
}

// NewManager allocates an empty grid of side extent.
func NewManager(extent int) (*Manager, error) {
	if extent <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExtent, extent)
	}
	return &Manager{
		extent: extent,
		cubes:  make([]Voxel, extent*extent*extent),
	}, nil
}

// index converts (x, y, z) → flat index
func (m *Manager) index(x, y, z int) int {
	return (x*m.extent+y)*m.extent + z
}

// Extent returns the side length of the cube.
func (m *Manager) Extent() int {
	return m.extent
}

// Count returns the number of present voxels.
func (m *Manager) Count() int {
	return m.count
}

// Version increases on every mutation that changed a slot. A consumer holding
// vertices built at an older version must rebuild them.
func (m *Manager) Version() uint64 {
	return m.version
}

// InBounds reports whether (x, y, z) addresses a slot.
func (m *Manager) InBounds(x, y, z int) bool {
	return x >= 0 && x < m.extent && y >= 0 && y < m.extent && z >= 0 && z < m.extent
}

func (m *Manager) checkBounds(x, y, z int) error {
	if !m.InBounds(x, y, z) {
		return fmt.Errorf("%w: (%d, %d, %d) not in [0, %d)", ErrOutOfBounds, x, y, z, m.extent)
	}
	return nil
}

// Set stores a voxel of the given color at (x, y, z).
func (m *Manager) Set(x, y, z int, color mgl32.Vec4) error {
	if err := m.checkBounds(x, y, z); err != nil {
		return err
	}
	m.set(m.index(x, y, z), color)
	return nil
}

// Clear removes the voxel at (x, y, z), if any.
func (m *Manager) Clear(x, y, z int) error {
	if err := m.checkBounds(x, y, z); err != nil {
		return err
	}
	m.clear(m.index(x, y, z))
	return nil
}

// Get returns the color at (x, y, z) and whether a voxel is present there.
// Out-of-range indices report no voxel.
func (m *Manager) Get(x, y, z int) (mgl32.Vec4, bool) {
	if !m.InBounds(x, y, z) {
		return mgl32.Vec4{}, false
	}
	v := m.cubes[m.index(x, y, z)]
	return v.Color, v.Present
}

// Occupied reports whether a voxel is present at (x, y, z).
func (m *Manager) Occupied(x, y, z int) bool {
	_, ok := m.Get(x, y, z)
	return ok
}

func (m *Manager) set(idx int, color mgl32.Vec4) bool {
	slot := &m.cubes[idx]
	if slot.Present && slot.Color == color {
		return false
	}
	if !slot.Present {
		m.count++
	}
	slot.Present = true
	slot.Color = color
	m.version++
	return true
}

func (m *Manager) clear(idx int) bool {
	slot := &m.cubes[idx]
	if !slot.Present {
		return false
	}
	*slot = Voxel{}
	m.count--
	m.version++
	return true
}

// clip intersects the cells covered by box with the grid.
func (m *Manager) clip(box geometry.Cuboid) (lo, hi geometry.Cell) {
	lo, hi = box.CellRange()
	for i := 0; i < 3; i++ {
		lo[i] = max(lo[i], 0)
		hi[i] = min(hi[i], m.extent)
	}
	return lo, hi
}

// Fill sets every cell covered by box to color and returns how many slots
// changed. Cells outside the grid are skipped.
func (m *Manager) Fill(box geometry.Cuboid, color mgl32.Vec4) int {
	defer profiling.Track("voxel.Fill")()
	lo, hi := m.clip(box)
	changed := 0
	for x := lo[0]; x < hi[0]; x++ {
		for y := lo[1]; y < hi[1]; y++ {
			for z := lo[2]; z < hi[2]; z++ {
				if m.set(m.index(x, y, z), color) {
					changed++
				}
			}
		}
	}
	return changed
}

// Erase clears every cell covered by box and returns how many voxels were removed.
func (m *Manager) Erase(box geometry.Cuboid) int {
	defer profiling.Track("voxel.Erase")()
	lo, hi := m.clip(box)
	changed := 0
	for x := lo[0]; x < hi[0]; x++ {
		for y := lo[1]; y < hi[1]; y++ {
			for z := lo[2]; z < hi[2]; z++ {
				if m.clear(m.index(x, y, z)) {
					changed++
				}
			}
		}
	}
	return changed
}

// Reset clears the whole grid in place.
func (m *Manager) Reset() {
	if m.count == 0 {
		return
	}
	clear(m.cubes)
	m.count = 0
	m.version++
}

// Vertices scans every slot and emits the 24 vertices of a unit cuboid for
// each present voxel, in x, y, z order. This is a full rebuild: O(extent³).
func (m *Manager) Vertices() []geometry.Vertex {
	defer profiling.Track("voxel.Vertices")()
	vertices := make([]geometry.Vertex, 0, m.count*geometry.VerticesPerCuboid)
	unit := mgl32.Vec3{1, 1, 1}
	for x := 0; x < m.extent; x++ {
		for y := 0; y < m.extent; y++ {
			for z := 0; z < m.extent; z++ {
				v := m.cubes[m.index(x, y, z)]
				if !v.Present {
					continue
				}
				cube := geometry.NewCuboid(mgl32.Vec3{float32(x), float32(y), float32(z)}, unit, v.Color)
				vertices = cube.AppendVertices(vertices)
			}
		}
	}
	return vertices
}
