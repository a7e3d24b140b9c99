package d1ca

import (
	"fmt"

	"d1ca/internal/core"
)

// Universe is a cyclic row of binary cells evolved by a five-cell sum rule.
// It keeps a square lattice holding the last Width generations.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	width     uint32
	order     uint32
	direction uint8

	cells []uint8
	old   []uint8
	hist  *lattice

	src   core.BitSource
	alloc core.Allocator
}

// New creates a universe of the given width whose cells are drawn from src.
// A nil src uses a wall-clock seeded RNG. The lattice starts empty.
func New(width, order uint32, src core.BitSource) (*Universe, error) {
	return NewWithAllocator(width, order, src, nil)
}

// NewWithAllocator is New with buffers obtained from alloc.
func NewWithAllocator(width, order uint32, src core.BitSource, alloc core.Allocator) (*Universe, error) {
	if width == 0 {
		return nil, fmt.Errorf("new universe: width must be positive: %w", ErrInvalidConfiguration)
	}
	if src == nil {
		src = core.NewTimeRNG()
	}
	u := &Universe{order: order, direction: 1, src: src, alloc: alloc}
	u.allocate(width)
	for i := range u.cells {
		u.cells[i] = u.src.Bit()
	}
	return u, nil
}

// Renew resizes the universe, replaces its rule and draws a fresh random row.
// Unlike New, the first lattice row is seeded with that row. The scan
// direction is kept.
func (u *Universe) Renew(width, order uint32) error {
	if width == 0 {
		return fmt.Errorf("renew universe: width must be positive: %w", ErrInvalidConfiguration)
	}
	u.order = order
	u.allocate(width)
	for i := range u.cells {
		u.cells[i] = u.src.Bit()
	}
	u.hist.seed(u.cells)
	return nil
}

func (u *Universe) allocate(width uint32) {
	w := int(width)
	u.width = width
	u.cells = u.alloc.Alloc(w)
	u.old = u.alloc.Alloc(w)
	u.hist = newLattice(w, u.alloc)
}

// Tick advances the row by one generation.
func (u *Universe) Tick() {
	rule := RuleTable(u.order)
	copy(u.old, u.cells)

	w := int(u.width)
	// Window for cell i starts at i-1-direction. Reducing the offset first
	// keeps every index non-negative for any width.
	base := w - (1+int(u.direction))%w
	for i := 0; i < w; i++ {
		var sum uint8
		for j := 0; j < Neighborhood; j++ {
			sum += u.old[(base+i+j)%w]
		}
		u.cells[i] = rule[sum]
	}
}

// TickLattice advances the row and records it as the newest lattice row,
// pushing older generations down and dropping the oldest.
func (u *Universe) TickLattice() {
	u.Tick()
	u.hist.push(u.cells)
}

// ChangeDirection cycles the scan direction through 0, 1 and 2.
func (u *Universe) ChangeDirection() {
	u.direction = (u.direction + 1) % 3
}

// SetDirection sets the scan direction explicitly.
func (u *Universe) SetDirection(d uint8) error {
	if d > 2 || uint32(d) >= u.width {
		return fmt.Errorf("set direction %d with width %d: %w", d, u.width, ErrInvalidDirection)
	}
	u.direction = d
	return nil
}

// SetCells replaces the current row. The lattice is left untouched.
func (u *Universe) SetCells(row []uint8) error {
	if len(row) != int(u.width) {
		return fmt.Errorf("set cells: got %d cells, width is %d: %w", len(row), u.width, ErrInvalidConfiguration)
	}
	for i, v := range row {
		if v > 1 {
			return fmt.Errorf("set cells: cell %d has value %d: %w", i, v, ErrInvalidConfiguration)
		}
	}
	copy(u.cells, row)
	return nil
}

// Width returns the number of cells in the row.
func (u *Universe) Width() uint32 { return u.width }

// Order returns the rule number.
func (u *Universe) Order() uint32 { return u.order }

// Direction returns the current scan direction.
func (u *Universe) Direction() uint8 { return u.direction }

// Cells exposes the current row. The slice is owned by the universe, must not
// be modified, and is only valid until the next mutating call.
func (u *Universe) Cells() []uint8 { return u.cells }

// Lattice exposes the history, row-major, newest generation first. Like
// Cells, the slice is a borrowed view valid until the next mutating call.
func (u *Universe) Lattice() []uint8 { return u.hist.rows() }
