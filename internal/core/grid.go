package core

// Allocator returns a byte buffer of length n. Embedders running in a
// constrained sandbox can supply their own, for example backed by a pool, to
// control how cell buffers are obtained; a nil Allocator means plain make.
type Allocator func(n int) []uint8

// Alloc obtains a buffer of length n from a, falling back to make. The buffer
// is always zeroed, even when a hands back reused memory.
func (a Allocator) Alloc(n int) []uint8 {
	if a == nil {
		return make([]uint8, n)
	}
	buf := a(n)
	if len(buf) != n {
		return make([]uint8, n)
	}
	clear(buf)
	return buf
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGridWith allocates a grid using the provided allocator.
func NewByteGridWith(w, h int, alloc Allocator) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: alloc.Alloc(w * h)}
}

// Row returns the slice backing row y.
func (g *ByteGrid) Row(y int) []uint8 {
	start := g.Index(0, y)
	return g.data[start : start+g.W]
}

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

