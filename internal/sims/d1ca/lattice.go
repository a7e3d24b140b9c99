package d1ca

import "d1ca/internal/core"

// lattice keeps the last H generations as a ring of rows. head is the slot
// holding the newest generation; view is the row-ordered copy handed out to
// readers and is rebuilt lazily after a push.
type lattice struct {
	ring  *core.ByteGrid
	head  int
	view  []uint8
	dirty bool
}

func newLattice(width int, alloc core.Allocator) *lattice {
	return &lattice{
		ring: core.NewByteGridWith(width, width, alloc),
		view: alloc.Alloc(width * width),
	}
}

// newest returns the slot holding logical row 0.
func (l *lattice) newest() []uint8 { return l.ring.Row(l.head) }

// push makes row the newest generation, dropping the oldest one.
func (l *lattice) push(row []uint8) {
	_, l.head = l.ring.Wrap(0, l.head-1)
	copy(l.ring.Row(l.head), row)
	l.dirty = true
}

// rows returns the history with row 0 newest.
func (l *lattice) rows() []uint8 {
	if !l.dirty {
		return l.view
	}
	w := l.ring.W
	for r := 0; r < l.ring.H; r++ {
		_, slot := l.ring.Wrap(0, l.head+r)
		copy(l.view[r*w:(r+1)*w], l.ring.Row(slot))
	}
	l.dirty = false
	return l.view
}

// seed overwrites logical row 0 without scrolling.
func (l *lattice) seed(row []uint8) {
	copy(l.newest(), row)
	l.dirty = true
}
