package d1ca

import "testing"

func TestFromMap(t *testing.T) {
	def := DefaultConfig()
	if got := FromMap(nil); got != def {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
	got := FromMap(map[string]string{"w": "64", "rule": "30", "seed": "-9"})
	if got.Width != 64 || got.Order != 30 || got.Seed != -9 {
		t.Fatalf("FromMap = %+v", got)
	}
	bad := FromMap(map[string]string{"w": "0", "rule": "x", "seed": "1.5"})
	if bad != def {
		t.Fatalf("invalid values must keep defaults, got %+v", bad)
	}
}
