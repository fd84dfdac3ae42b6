package core

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// Size describes the dimensions of a preview grid.
type Size struct {
	W int
	H int
}

// Sim is the contract every preview shares: a palette-indexed grid that can
// be reseeded and advanced.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Cells holds one palette index per cell, row-major.
	Cells() []uint8
	Palette() []color.RGBA
}

// ViewSelector is implemented by sims that can render more than one field.
type ViewSelector interface {
	Views() []string
	View() string
	SetView(name string) bool
}

// StatusProvider exposes a one-line progress summary for the HUD.
type StatusProvider interface {
	Status() string
}

// Finisher is implemented by sims whose growth ends after a fixed number of
// steps.
type Finisher interface {
	Done() bool
}

// Factory constructs a Sim from an optional string configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a sim factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available sim factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered sims in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrUnknownSim reports a name missing from the registry.
var ErrUnknownSim = errors.New("unknown sim")

// New builds the named sim from cfg.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSim, name)
	}
	return f(cfg)
}

// CycleView advances a ViewSelector to its next view and returns the new
// view name. Sims without views return "".
func CycleView(sim Sim) string {
	vs, ok := sim.(ViewSelector)
	if !ok {
		return ""
	}
	views := vs.Views()
	if len(views) == 0 {
		return vs.View()
	}
	next := 0
	for i, v := range views {
		if v == vs.View() {
			next = (i + 1) % len(views)
			break
		}
	}
	vs.SetView(views[next])
	return vs.View()
}
