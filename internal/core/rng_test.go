package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	var ga, gb []uint8
	for i := 0; i < 256; i++ {
		ga = append(ga, a.Bit())
		gb = append(gb, b.Bit())
	}
	if !slices.Equal(ga, gb) {
		t.Fatal("equal seeds produced different bit streams")
	}
	ones := 0
	for _, v := range ga {
		if v > 1 {
			t.Fatalf("Bit returned %d", v)
		}
		ones += int(v)
	}
	if ones == 0 || ones == len(ga) {
		t.Fatalf("bit stream is constant: %d ones of %d", ones, len(ga))
	}
}
