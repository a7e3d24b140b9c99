package d1ca

import (
	"fmt"
	"testing"
)

func TestRenderEmptyLattice(t *testing.T) {
	u := mustNew(t, 3, 6, &seqBits{bits: []uint8{1}})
	want := "□□□\n□□□\n□□□\n"
	if got := u.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderAfterRenew(t *testing.T) {
	u := mustNew(t, 3, 6, &seqBits{bits: []uint8{1, 0, 1}})
	if err := u.Renew(3, 6); err != nil {
		t.Fatalf("Renew: %v", err)
	}
	want := "■□■\n□□□\n□□□\n"
	if got := u.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	if got := fmt.Sprint(u); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := RenderRow(u.Cells()); got != "■□■" {
		t.Fatalf("RenderRow = %q", got)
	}
}
