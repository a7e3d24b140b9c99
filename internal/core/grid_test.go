package core

import "testing"

func TestByteGridRowAndWrap(t *testing.T) {
	g := NewByteGridWith(3, 4, nil)
	for y := 0; y < 4; y++ {
		if len(g.Row(y)) != 3 {
			t.Fatalf("len(row %d) = %d, want 3", y, len(g.Row(y)))
		}
	}
	g.Row(2)[1] = 1
	if g.data[g.Index(1, 2)] != 1 {
		t.Fatal("Row does not alias the backing slice")
	}
	if x, y := g.Wrap(-1, 4); x != 2 || y != 0 {
		t.Fatalf("Wrap(-1, 4) = (%d, %d), want (2, 0)", x, y)
	}
}

func TestAllocatorFallback(t *testing.T) {
	calls := 0
	alloc := Allocator(func(n int) []uint8 {
		calls++
		return make([]uint8, n)
	})
	g := NewByteGridWith(4, 4, alloc)
	if calls != 1 || len(g.data) != 16 {
		t.Fatalf("allocator calls = %d, len = %d", calls, len(g.data))
	}

	short := Allocator(func(n int) []uint8 { return nil })
	if got := short.Alloc(5); len(got) != 5 {
		t.Fatalf("short allocator len = %d, want 5", len(got))
	}
	var none Allocator
	if got := none.Alloc(3); len(got) != 3 {
		t.Fatalf("nil allocator len = %d, want 3", len(got))
	}
}

func TestAllocatorClearsReusedBuffers(t *testing.T) {
	dirty := Allocator(func(n int) []uint8 {
		buf := make([]uint8, n)
		for i := range buf {
			buf[i] = 7
		}
		return buf
	})
	for i, v := range dirty.Alloc(6) {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, v)
		}
	}
}
