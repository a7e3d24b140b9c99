package ui

import (
	"testing"

	"d1ca/internal/core"
)

func TestControlsAdjustWithinBounds(t *testing.T) {
	controls := []core.ParameterControl{
		{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 63, HasMax: true},
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 8, Min: 8, HasMin: true},
	}
	states := newControlStates(controls, 200)
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{
			{Key: "rule", Type: core.ParamTypeInt, Value: "63"},
			{Key: "w", Type: core.ParamTypeInt, Value: "12"},
		},
	}}}
	refreshControls(states, snap)

	if _, ok := nextValue(&states[0], 1); ok {
		t.Fatal("rule must not step above its max")
	}
	if got, ok := nextValue(&states[0], -1); !ok || got != 62 {
		t.Fatalf("rule minus = %d, %v", got, ok)
	}
	if got, ok := nextValue(&states[1], -1); !ok || got != 8 {
		t.Fatalf("width minus = %d, %v; want clamp to 8", got, ok)
	}
	if got, ok := nextValue(&states[1], 1); !ok || got != 20 {
		t.Fatalf("width plus = %d, %v", got, ok)
	}
}

func TestControlsMissingValue(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{Key: "dir", Type: core.ParamTypeInt}}, 200)
	refreshControls(states, core.ParameterSnapshot{})
	if states[0].hasValue || states[0].value != "--" {
		t.Fatalf("state = %+v, want placeholder", states[0])
	}
	if _, ok := nextValue(&states[0], 1); ok {
		t.Fatal("control without a value must not adjust")
	}
}

func TestHitControl(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{Key: "dir", Type: core.ParamTypeInt, Step: 1}}, 200)
	states[0].hasValue = true
	plus := states[0].plusRect
	idx, dir, ok := hitControl(states, plus.Min.X+1, plus.Min.Y+1)
	if !ok || idx != 0 || dir != 1 {
		t.Fatalf("hit plus = (%d, %d, %v)", idx, dir, ok)
	}
	minus := states[0].minusRect
	if _, dir, ok := hitControl(states, minus.Min.X, minus.Min.Y); !ok || dir != -1 {
		t.Fatalf("hit minus = (%d, %v)", dir, ok)
	}
	if _, _, ok := hitControl(states, 0, 0); ok {
		t.Fatal("hit outside buttons")
	}
}

func TestControlsNeverMoveAgainstDirection(t *testing.T) {
	controls := []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 8, Min: 8, HasMin: true, Max: 1024, HasMax: true},
	}
	states := newControlStates(controls, 200)
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{{Key: "w", Type: core.ParamTypeInt, Value: "4"}},
	}}}
	refreshControls(states, snap)

	if got, ok := nextValue(&states[0], -1); ok {
		t.Fatalf("width 4 minus = %d, must not grow past the minimum", got)
	}
	if got, ok := nextValue(&states[0], 1); !ok || got != 12 {
		t.Fatalf("width 4 plus = %d, %v; want 12", got, ok)
	}
}
