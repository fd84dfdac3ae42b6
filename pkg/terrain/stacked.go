package terrain

import (
	"fmt"

	"terragen/pkg/core"
	"terragen/pkg/diffusion"
)

// StackedConfig drives the stacked random landform: Layers rounds of sparse
// random deposits on a footprint that shrinks by Index cells per round.
type StackedConfig struct {
	Index    int
	Sparsity float64
	Layers   int
}

// DefaultStackedConfig returns the standard configuration.
func DefaultStackedConfig() StackedConfig {
	return StackedConfig{Index: 2, Sparsity: 0.5, Layers: 32}
}

// Size is the side of the square output map, 4 + Index*Layers.
func (c StackedConfig) Size() int { return 4 + c.Index*c.Layers }

// Validate checks the footprint parameters.
func (c StackedConfig) Validate() error {
	if c.Index <= 0 || c.Layers <= 0 {
		return fmt.Errorf("%w: stacked index %d and layers %d must be positive", ErrInvalidConfiguration, c.Index, c.Layers)
	}
	if !unit(c.Sparsity) {
		return fmt.Errorf("%w: sparsity %v outside [0,1]", ErrInvalidConfiguration, c.Sparsity)
	}
	return nil
}

// Stacked deposits the layers one Step at a time. It is not safe for
// concurrent use.
type Stacked struct {
	cfg   StackedConfig
	src   core.Source
	field *core.Field
	span  int
	layer int
}

// NewStacked validates cfg and returns an empty map.
func NewStacked(cfg StackedConfig, src core.Source) (*Stacked, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Stacked{cfg: cfg, src: src}
	s.Reset()
	return s, nil
}

// Reset clears the map. The random source is not reseeded.
func (s *Stacked) Reset() {
	size := s.cfg.Size()
	s.field = core.NewField(size, size)
	s.span = size
	s.layer = 0
}

// Done reports whether every layer has been deposited.
func (s *Stacked) Done() bool { return s.layer >= s.cfg.Layers }

// Layer reports how many layers have been deposited.
func (s *Stacked) Layer() int { return s.layer }

// Field returns the map as of the last deposited layer.
func (s *Stacked) Field() *core.Field { return s.field }

// Step deposits one layer: for every cell of the centered footprint one
// draw decides whether the cell is skipped (draw < Sparsity); kept cells
// add a second draw. The footprint then shrinks by Index and the whole map
// is blurred. Step reports whether another layer remains.
func (s *Stacked) Step() bool {
	if s.Done() {
		return false
	}
	size := s.field.W
	margin := (size - s.span) / 2
	for x := margin; x < size-margin; x++ {
		for y := margin; y < size-margin; y++ {
			if s.src.NextDouble() < s.cfg.Sparsity {
				continue
			}
			s.field.Add(x, y, s.src.NextDouble())
		}
	}
	s.span -= s.cfg.Index
	s.field = diffusion.Blur(s.field)
	s.layer++
	return !s.Done()
}

// BuildStacked deposits every layer and returns the accumulated map.
func BuildStacked(cfg StackedConfig, src core.Source) (*core.Field, error) {
	s, err := NewStacked(cfg, src)
	if err != nil {
		return nil, err
	}
	for s.Step() {
	}
	return s.Field(), nil
}
