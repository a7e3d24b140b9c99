package ui

import (
	"image"
	"strconv"

	"d1ca/internal/core"
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// refreshControls copies current values from snap into the control states.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

// nextValue returns the value one step away from the current one in the given
// direction, and whether that move stays inside the control bounds. A value
// already outside the bounds is never pulled back against direction.
func nextValue(state *controlState, direction int) (int, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	if (target-state.intValue)*direction <= 0 {
		return state.intValue, false
	}
	return target, true
}

// hitControl finds the control button under (x, y) in panel coordinates.
func hitControl(states []controlState, x, y int) (int, int, bool) {
	for i := range states {
		if !states[i].hasValue {
			continue
		}
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1, true
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
