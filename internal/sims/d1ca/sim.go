package d1ca

import (
	"math"
	"strconv"

	"d1ca/internal/core"
)

// MaxOrder is the largest rule number whose bits all reach the rule table.
const MaxOrder = 1<<(Neighborhood+1) - 1

// Automaton adapts a Universe to core.Sim. Each Step records into the
// lattice, which doubles as the render buffer.
type Automaton struct {
	cfg        Config
	u          *Universe
	generation int
}

// NewAutomaton builds an automaton from cfg, seeding the first row from
// cfg.Seed.
func NewAutomaton(cfg Config) (*Automaton, error) {
	u, err := New(cfg.Width, cfg.Order, core.NewRNG(cfg.Seed))
	if err != nil {
		return nil, err
	}
	return &Automaton{cfg: cfg, u: u}, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "d1ca" }

// Size reports the lattice dimensions.
func (a *Automaton) Size() core.Size {
	w := int(a.u.Width())
	return core.Size{W: w, H: w}
}

// Cells exposes the lattice, newest generation in the top row.
func (a *Automaton) Cells() []uint8 { return a.u.Lattice() }

// Universe exposes the wrapped engine.
func (a *Automaton) Universe() *Universe { return a.u }

// Generation reports the number of steps since the last reset.
func (a *Automaton) Generation() int { return a.generation }

// Reset renews the universe at its current width and rule using seed.
func (a *Automaton) Reset(seed int64) {
	a.cfg.Seed = seed
	a.u.src = core.NewRNG(seed)
	a.renew(a.u.Width(), a.u.Order())
}

// Step advances one generation and records it.
func (a *Automaton) Step() {
	a.u.TickLattice()
	a.generation++
}

// ChangeDirection rotates the scan direction of the universe.
func (a *Automaton) ChangeDirection() { a.u.ChangeDirection() }

func (a *Automaton) renew(width, order uint32) bool {
	if err := a.u.Renew(width, order); err != nil {
		return false
	}
	a.cfg.Width, a.cfg.Order = width, order
	a.generation = 0
	return true
}

// Parameters reports the current configuration for display.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Universe",
			Params: []core.Parameter{
				intParam("w", "Width", int(a.u.Width())),
				intParam("rule", "Rule", int(a.u.Order())),
				intParam("dir", "Direction", int(a.u.Direction())),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("gen", "Generation", a.generation),
				{
					Key:   "seed",
					Label: "Seed",
					Type:  core.ParamTypeInt,
					Value: strconv.FormatInt(a.cfg.Seed, 10),
				},
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 8, Min: 8, HasMin: true, Max: 1024, HasMax: true},
		{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: MaxOrder, HasMax: true},
		{Key: "dir", Label: "Direction", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 2, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Changing the width or rule renews
// the universe.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if value <= 0 || uint64(value) > math.MaxUint32 {
			return false
		}
		return a.renew(uint32(value), a.u.Order())
	case "rule":
		if value < 0 || value > MaxOrder {
			return false
		}
		return a.renew(a.u.Width(), uint32(value))
	case "dir":
		if value < 0 || value > 2 {
			return false
		}
		return a.u.SetDirection(uint8(value)) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func init() {
	core.Register("d1ca", func(cfg map[string]string) core.Sim {
		a, err := NewAutomaton(FromMap(cfg))
		if err != nil {
			a, _ = NewAutomaton(DefaultConfig())
		}
		return a
	})
}
