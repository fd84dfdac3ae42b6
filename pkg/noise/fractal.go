package noise

// Default octave shaping used by Fractal.
const (
	Lacunarity  = 2.0
	Persistence = 0.5
)

// Fractal sums octaves of fn with doubling frequency and halving amplitude,
// normalized by the total amplitude so the result stays in fn's range.
func Fractal(fn Func, x, y float64, octaves int) float64 {
	return FractalWith(fn, x, y, octaves, Lacunarity, Persistence)
}

// FractalWith is Fractal with explicit lacunarity and persistence. Fewer than
// one octave is treated as one.
func FractalWith(fn Func, x, y float64, octaves int, lacunarity, persistence float64) float64 {
	octaves = max(octaves, 1)
	total := 0.0
	norm := 0.0
	freq := 1.0
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += fn(x*freq, y*freq) * amp
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	return total / norm
}
