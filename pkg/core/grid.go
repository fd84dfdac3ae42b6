package core

// Grids are stored row-major: W is the extent along x (length), H the extent
// along y (width), and cell (x, y) lives at index y*W + x.

// Wrap maps v onto [0, n) with toroidal wrapping. Negative values wrap from
// the far edge.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	return Wrap(x, g.W), Wrap(y, g.H)
}

// At returns the value at (x, y) after wrapping.
func (g *ByteGrid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y) after wrapping.
func (g *ByteGrid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Count reports how many cells are non-zero.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Pad returns a new grid grown by border cells on every side with the current
// contents copied into the center.
func (g *ByteGrid) Pad(border int) *ByteGrid {
	out := NewByteGrid(g.W+2*border, g.H+2*border)
	for y := 0; y < g.H; y++ {
		copy(out.data[out.Index(border, y+border):], g.data[g.Index(0, y):g.Index(0, y)+g.W])
	}
	return out
}

// Field is a dense 2D grid of float samples.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a zeroed field. Non-positive dimensions are raised to 1.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice.
func (f *Field) Cells() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (f *Field) Wrap(x, y int) (int, int) {
	return Wrap(x, f.W), Wrap(y, f.H)
}

// At returns the sample at (x, y) after wrapping.
func (f *Field) At(x, y int) float64 {
	x, y = f.Wrap(x, y)
	return f.data[f.Index(x, y)]
}

// Set stores v at (x, y) after wrapping.
func (f *Field) Set(x, y int, v float64) {
	x, y = f.Wrap(x, y)
	f.data[f.Index(x, y)] = v
}

// Add accumulates v into (x, y) after wrapping.
func (f *Field) Add(x, y int, v float64) {
	x, y = f.Wrap(x, y)
	f.data[f.Index(x, y)] += v
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	out := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	copy(out.data, f.data)
	return out
}

// Sum returns the total of all samples.
func (f *Field) Sum() float64 {
	total := 0.0
	for _, v := range f.data {
		total += v
	}
	return total
}

// Range returns the minimum and maximum sample.
func (f *Field) Range() (float64, float64) {
	lo, hi := f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// HeightField stores one integer column height per (x, y).
type HeightField struct {
	W, H int
	data []int
}

// NewHeightField allocates a zeroed height field.
func NewHeightField(w, h int) *HeightField {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &HeightField{W: w, H: h, data: make([]int, w*h)}
}

// Cells exposes the backing slice.
func (h *HeightField) Cells() []int { return h.data }

// Index returns the linear slice index for coordinates (x, y).
func (h *HeightField) Index(x, y int) int { return y*h.W + x }

// At returns the height at (x, y) after wrapping.
func (h *HeightField) At(x, y int) int {
	return h.data[h.Index(Wrap(x, h.W), Wrap(y, h.H))]
}

// Set stores v at (x, y) after wrapping.
func (h *HeightField) Set(x, y, v int) {
	h.data[h.Index(Wrap(x, h.W), Wrap(y, h.H))] = v
}

// Range returns the lowest and highest column.
func (h *HeightField) Range() (int, int) {
	lo, hi := h.data[0], h.data[0]
	for _, v := range h.data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
