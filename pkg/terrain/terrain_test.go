package terrain

import (
	"errors"
	"math"
	"slices"
	"testing"

	"terragen/pkg/biome"
	"terragen/pkg/core"
	"terragen/pkg/noise"
)

type countingSource struct {
	core.Source
	draws int
}

func (c *countingSource) NextDouble() float64 {
	c.draws++
	return c.Source.NextDouble()
}

func smallWorldConfig(seed int64) WorldConfig {
	return WorldConfig{
		Seed:          seed,
		LatticeLength: 16,
		LatticeWidth:  16,
		MaxHeight:     8,
		BuiltinKind:   noise.BuiltinPerlin,
	}
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Length = 24
	cfg.Width = 20
	cfg.Noise = NoiseParams{Type: GradientFractal, Scale: 4, Octaves: 3}
	cfg.Biome.SeaLevel = 3
	return cfg
}

func newTerrain(t *testing.T, seed int64) *Terrain {
	t.Helper()
	w, err := NewWorld(smallWorldConfig(seed))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return New(w)
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	cfg := smallConfig()
	a, err := newTerrain(t, 7).Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTerrain(t, 7).Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Height.Cells(), b.Height.Cells()) {
		t.Fatal("same seed produced different height fields")
	}
	if !slices.Equal(a.Temperature.Cells(), b.Temperature.Cells()) {
		t.Fatal("same seed produced different temperature fields")
	}
	if !slices.Equal(a.Humidity.Cells(), b.Humidity.Cells()) {
		t.Fatal("same seed produced different humidity fields")
	}
}

func TestReseedReproducesFields(t *testing.T) {
	tr := newTerrain(t, 7)
	first, err := tr.Generate(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	height := append([]int(nil), first.Height.Cells()...)
	temperature := append([]float64(nil), first.Temperature.Cells()...)

	// Without reseeding, temperature continues the stream and changes.
	again, err := tr.Generate(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if slices.Equal(temperature, again.Temperature.Cells()) {
		t.Fatal("temperature should draw a fresh scale and offset on each generation")
	}

	reseeded, err := tr.Reseed(7)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(height, reseeded.Height.Cells()) {
		t.Fatal("reseeding did not reproduce the height field")
	}
	if !slices.Equal(temperature, reseeded.Temperature.Cells()) {
		t.Fatal("reseeding did not reproduce the temperature field")
	}
}

func TestWorldDrawOrder(t *testing.T) {
	src := &countingSource{Source: core.NewRNG(0)}
	cfg := smallWorldConfig(3)
	cfg.Source = src
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	wantInit := 3 + 16*16 + 2*16*16*8
	if src.draws != wantInit {
		t.Fatalf("world init drew %d values, want %d", src.draws, wantInit)
	}

	src.draws = 0
	tr := New(w)
	gen := smallConfig()
	if _, err := tr.Generate(gen); err != nil {
		t.Fatal(err)
	}
	if want := gen.Length*gen.Width + 3; src.draws != want {
		t.Fatalf("generation drew %d values, want %d", src.draws, want)
	}

	src.draws = 0
	gen.Biome.SeaLevel++
	if _, err := tr.Regenerate(gen); err != nil {
		t.Fatal(err)
	}
	if src.draws != 3 {
		t.Fatalf("sea level regeneration drew %d values, want 3", src.draws)
	}

	src.draws = 0
	gen.Humidity = ExpandBuffered
	if _, err := tr.Regenerate(gen); err != nil {
		t.Fatal(err)
	}
	if src.draws != 0 {
		t.Fatalf("humidity-only regeneration drew %d values", src.draws)
	}
}

func TestRegenerateRebuildsOnlyStaleFields(t *testing.T) {
	tr := newTerrain(t, 11)
	cfg := smallConfig()
	base, err := tr.Regenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	cfg.Biome.SeaLevel = 5
	sea, err := tr.Regenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sea.Height != base.Height {
		t.Fatal("sea level change rebuilt height")
	}
	if sea.Temperature == base.Temperature || sea.Humidity == base.Humidity {
		t.Fatal("sea level change did not rebuild temperature and humidity")
	}
	if slices.Equal(sea.Temperature.Cells(), base.Temperature.Cells()) {
		t.Fatal("sea level change reused the previous temperature draws")
	}

	cfg.Biome.CaveThreshold = 0.7
	caves, err := tr.Regenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if caves != sea {
		t.Fatal("cave threshold change should not rebuild any field")
	}

	cfg.Landform = LandformParams{Shape: IslandManhattan, Mix: 0.8}
	land, err := tr.Regenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if land.Height == sea.Height || land.Humidity == sea.Humidity {
		t.Fatal("landform change did not rebuild height and humidity")
	}
	if land.Temperature != sea.Temperature {
		t.Fatal("landform change rebuilt temperature")
	}

	cfg.Length = 32
	resized, err := tr.Regenerate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if resized.Temperature == land.Temperature || resized.Height.W != 32 || resized.Temperature.W != 32 {
		t.Fatal("size change did not rebuild every field")
	}
}

func TestRegenerateKeepsFieldsOnInvalidConfig(t *testing.T) {
	tr := newTerrain(t, 5)
	good, err := tr.Generate(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	bad := smallConfig()
	bad.Biome.MinTemperature = 0.9
	bad.Biome.MaxTemperature = 0.1
	got, err := tr.Regenerate(bad)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
	if got != good || tr.Fields() != good {
		t.Fatal("invalid regeneration replaced the published fields")
	}
	if tr.Config() != smallConfig() {
		t.Fatal("invalid regeneration replaced the applied config")
	}
}

func TestConfigValidate(t *testing.T) {
	mutate := []struct {
		name string
		fn   func(*Config)
		want error
	}{
		{"zero length", func(c *Config) { c.Length = 0 }, ErrInvalidConfiguration},
		{"negative width", func(c *Config) { c.Width = -3 }, ErrInvalidConfiguration},
		{"zero scale", func(c *Config) { c.Noise.Scale = 0 }, ErrInvalidConfiguration},
		{"zero octaves", func(c *Config) { c.Noise.Octaves = 0 }, ErrInvalidConfiguration},
		{"mix above one", func(c *Config) { c.Landform.Mix = 1.5 }, ErrInvalidConfiguration},
		{"negative sea level", func(c *Config) { c.Biome.SeaLevel = -1 }, ErrInvalidConfiguration},
		{"cave threshold", func(c *Config) { c.Biome.CaveThreshold = -0.1 }, ErrInvalidConfiguration},
		{"humidity threshold", func(c *Config) { c.Biome.HumidityThreshold = 2 }, ErrInvalidConfiguration},
		{"equal temperatures", func(c *Config) { c.Biome.MinTemperature = 0.5; c.Biome.MaxTemperature = 0.5 }, ErrInvalidConfiguration},
		{"unknown noise", func(c *Config) { c.Noise.Type = NoiseType(42) }, ErrUnsupportedNoiseType},
		{"unknown shape", func(c *Config) { c.Landform.Shape = Shape(42) }, ErrUnsupportedLandformShape},
		{"unknown expand", func(c *Config) { c.Humidity = ExpandMode(9) }, ErrInvalidConfiguration},
	}
	for _, m := range mutate {
		cfg := DefaultConfig()
		m.fn(&cfg)
		if err := cfg.Validate(); !errors.Is(err, m.want) {
			t.Errorf("%s: Validate = %v, want %v", m.name, err, m.want)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestRedistributeMixBounds(t *testing.T) {
	shapes := []Shape{IslandEuclidean, IslandSquareBump, IslandEuclidean2, IslandManhattan}
	for _, s := range shapes {
		for x := 0; x < 8; x++ {
			for y := 0; y < 6; y++ {
				v := float64(x*6+y) / 48
				got, err := Redistribute(v, x, y, 8, 6, LandformParams{Shape: s, Mix: 0})
				if err != nil {
					t.Fatal(err)
				}
				if got != v {
					t.Fatalf("%v mix 0 at (%d,%d): %v, want %v", s, x, y, got, v)
				}

				nx := 2*float64(x)/8 - 1
				ny := 2*float64(y)/6 - 1
				d, _ := shapeDistance(s, nx, ny)
				want := math.Max(0, math.Min(1, 1-d))
				got, err = Redistribute(v, x, y, 8, 6, LandformParams{Shape: s, Mix: 1})
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(got-want) > 1e-12 {
					t.Fatalf("%v mix 1 at (%d,%d): %v, want %v", s, x, y, got, want)
				}
			}
		}
	}
}

func TestRedistributeShapes(t *testing.T) {
	// Corner (0,0) of a 4x4 grid normalizes to (-1,-1).
	cases := []struct {
		shape Shape
		want  float64
	}{
		{IslandEuclidean, 0},
		{IslandSquareBump, 0},
		{IslandEuclidean2, 0},
		{IslandManhattan, 0},
	}
	for _, c := range cases {
		got, err := Redistribute(0.8, 0, 0, 4, 4, LandformParams{Shape: c.shape, Mix: 1})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v at the corner = %v, want %v", c.shape, got, c.want)
		}
	}
	// The center (2,2) normalizes to (0,0) and every profile peaks there.
	for _, c := range cases {
		got, _ := Redistribute(0.2, 2, 2, 4, 4, LandformParams{Shape: c.shape, Mix: 1})
		if got != 1 {
			t.Errorf("%v at the center = %v, want 1", c.shape, got)
		}
	}
	if v, err := Redistribute(0.3, 1, 1, 4, 4, LandformParams{Shape: ShapeNone, Mix: 1}); err != nil || v != 0.3 {
		t.Fatalf("ShapeNone = %v, %v; want identity", v, err)
	}
	if _, err := Redistribute(0.3, 1, 1, 4, 4, LandformParams{Shape: Shape(99), Mix: 1}); !errors.Is(err, ErrUnsupportedLandformShape) {
		t.Fatalf("unknown shape err = %v", err)
	}
}

func TestRandomHeightsSkipRedistribution(t *testing.T) {
	w, err := NewWorld(smallWorldConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	random := RandomField(core.NewRNG(2), 6, 5)
	island := LandformParams{Shape: IslandEuclidean, Mix: 1}

	h, err := BuildHeight(w, 6, 5, NoiseParams{Type: Random, Scale: 1, Octaves: 1}, island, random)
	if err != nil {
		t.Fatal(err)
	}
	h4, err := BuildHeight(w, 6, 5, NoiseParams{Type: Random4, Scale: 1, Octaves: 1}, island, random)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 6; x++ {
		for y := 0; y < 5; y++ {
			if want := int(math.Floor(random.At(x, y) * 8)); h.At(x, y) != want {
				t.Fatalf("random height (%d,%d) = %d, want %d", x, y, h.At(x, y), want)
			}
			avg := (random.At(x, y) + random.At(x+1, y) + random.At(x, y+1) + random.At(x+1, y+1)) * 0.25
			if want := int(math.Floor(avg * 8)); h4.At(x, y) != want {
				t.Fatalf("random4 height (%d,%d) = %d, want %d", x, y, h4.At(x, y), want)
			}
		}
	}
	// (5,4) averages across both wrapped edges.
	wrapped := (random.At(5, 4) + random.At(0, 4) + random.At(5, 0) + random.At(0, 0)) * 0.25
	if h4.At(5, 4) != int(math.Floor(wrapped*8)) {
		t.Fatal("random4 did not wrap at the grid edge")
	}
}

func TestGradientHeightsFollowIslandShape(t *testing.T) {
	w, err := NewWorld(smallWorldConfig(4))
	if err != nil {
		t.Fatal(err)
	}
	np := NoiseParams{Type: Gradient, Scale: 2, Octaves: 1}
	h, err := BuildHeight(w, 16, 16, np, LandformParams{Shape: IslandSquareBump, Mix: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if h.At(0, 0) != 0 {
		t.Fatalf("corner of a full island = %d, want 0", h.At(0, 0))
	}
	if h.At(8, 8) != 7 {
		t.Fatalf("center of a full island = %d, want MaxHeight-1", h.At(8, 8))
	}
	for _, v := range h.Cells() {
		if v < 0 || v >= 8 {
			t.Fatalf("height %d outside [0, MaxHeight)", v)
		}
	}
}

func TestBuiltinFractalUsesPluggableProvider(t *testing.T) {
	cfg := smallWorldConfig(1)
	calls := 0
	cfg.Builtin = func(x, y float64) float64 {
		calls++
		return 0.5
	}
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	np := NoiseParams{Type: BuiltinGradientFractal, Scale: 3, Octaves: 3}
	h, err := BuildHeight(w, 4, 4, np, LandformParams{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 4*4*3 {
		t.Fatalf("builtin called %d times, want %d", calls, 4*4*3)
	}
	for _, v := range h.Cells() {
		if v != 4 {
			t.Fatalf("height from constant 0.5 noise = %d, want 4", v)
		}
	}
}

func TestHumiditySpreadsFromSingleWetColumn(t *testing.T) {
	height := core.NewHeightField(7, 7)
	for i := range height.Cells() {
		height.Cells()[i] = 10
	}
	height.Set(3, 3, 0)

	buffered := BuildHumidity(height, 5, ExpandBuffered)
	checks := []struct {
		x, y int
		want float64
	}{
		{3, 3, 1.25},
		{2, 3, 0.5}, {4, 3, 0.5}, {3, 2, 0.5}, {3, 4, 0.5},
		{2, 2, 0.125}, {4, 4, 0.125},
		{1, 3, 0.0625}, {3, 5, 0.0625},
		{0, 0, 0},
	}
	for _, c := range checks {
		if got := buffered.At(c.x, c.y); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("buffered humidity (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	inPlace := BuildHumidity(height, 5, ExpandInPlace)
	for _, p := range [][2]int{{2, 3}, {4, 3}, {3, 2}, {3, 4}} {
		v := inPlace.At(p[0], p[1])
		if v <= 0 || v > 1 {
			t.Fatalf("in-place neighbour %v = %v, want within (0,1]", p, v)
		}
	}
	if inPlace.At(3, 3) < 1 {
		t.Fatalf("wet column dried out: %v", inPlace.At(3, 3))
	}
}

func TestQueriesBeforeGeneration(t *testing.T) {
	tr := newTerrain(t, 2)
	if d := tr.Density(1, 2, 3); d != 0 {
		t.Fatalf("density before generation = %v, want 0", d)
	}
	if col := tr.Column(1, 2); col != nil {
		t.Fatalf("column before generation = %v, want nil", col)
	}
	if _, err := tr.Generate(smallConfig()); err != nil {
		t.Fatal(err)
	}
	if d := tr.Density(1, 2, 3); math.IsNaN(d) || d == 0 {
		t.Fatalf("density after generation = %v, want a noise sample", d)
	}
}

func TestColumnClassification(t *testing.T) {
	tr := newTerrain(t, 21)
	cfg := smallConfig()
	cfg.Biome.SeaLevel = 4
	fields, err := tr.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	solid := 0
	tr.Voxels(func(x, y, z int, m biome.Material) { solid++ })
	counted := 0
	for x := 0; x < cfg.Length; x++ {
		for y := 0; y < cfg.Width; y++ {
			h := fields.Height.At(x, y)
			col := tr.Column(x, y)
			if len(col) != max(h, cfg.Biome.SeaLevel) {
				t.Fatalf("column (%d,%d) has %d voxels, want %d", x, y, len(col), max(h, cfg.Biome.SeaLevel))
			}
			for z, m := range col {
				if m.Solid() {
					counted++
				}
				switch {
				case z < cfg.Biome.SeaLevel && z >= h:
					if m != biome.Water {
						t.Fatalf("(%d,%d,%d) = %v, want water", x, y, z, m)
					}
				case z < cfg.Biome.SeaLevel:
					if m != biome.Rock && m != biome.Void {
						t.Fatalf("(%d,%d,%d) = %v, want rock or cave", x, y, z, m)
					}
				default:
					if m == biome.Rock || m == biome.Water {
						t.Fatalf("(%d,%d,%d) = %v above sea level", x, y, z, m)
					}
				}
			}
		}
	}
	if counted != solid {
		t.Fatalf("Voxels visited %d solids, columns hold %d", solid, counted)
	}
	if New(tr.World()).Column(0, 0) != nil {
		t.Fatal("Column before generation should be nil")
	}
}

func TestStackedLandform(t *testing.T) {
	cfg := StackedConfig{Index: 1, Sparsity: 0.5, Layers: 6}
	a, err := BuildStacked(cfg, core.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	if a.W != 10 || a.H != 10 {
		t.Fatalf("stacked map %dx%d, want 10x10", a.W, a.H)
	}
	b, _ := BuildStacked(cfg, core.NewRNG(8))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("stacked landform not deterministic")
	}
	if lo, hi := a.Range(); lo < 0 || hi <= 0 {
		t.Fatalf("stacked range [%v,%v]", lo, hi)
	}
	if a.At(5, 5) <= a.At(0, 0) {
		t.Fatalf("center %v should stand above the rim %v", a.At(5, 5), a.At(0, 0))
	}

	cfg.Sparsity = 1
	empty, _ := BuildStacked(cfg, core.NewRNG(8))
	if empty.Sum() != 0 {
		t.Fatalf("sparsity 1 deposited %v", empty.Sum())
	}
	if _, err := BuildStacked(StackedConfig{Index: 0, Layers: 3}, core.NewRNG(1)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("invalid stacked config err = %v", err)
	}
}

func TestParseNames(t *testing.T) {
	for i := range noiseTypeNames {
		nt := NoiseType(i)
		got, err := ParseNoiseType(nt.String())
		if err != nil || got != nt {
			t.Fatalf("ParseNoiseType(%q) = %v, %v", nt.String(), got, err)
		}
	}
	for i := range shapeNames {
		s := Shape(i)
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseNoiseType("plasma"); !errors.Is(err, ErrUnsupportedNoiseType) {
		t.Fatalf("ParseNoiseType err = %v", err)
	}
	if _, err := ParseShape("donut"); !errors.Is(err, ErrUnsupportedLandformShape) {
		t.Fatalf("ParseShape err = %v", err)
	}
}

func TestParseExpandMode(t *testing.T) {
	for _, name := range ExpandModeNames() {
		m, err := ParseExpandMode(name)
		if err != nil || m.String() != name {
			t.Fatalf("ParseExpandMode(%q) = %v, %v", name, m, err)
		}
	}
	if _, err := ParseExpandMode("sideways"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v", err)
	}
}

func TestStackedSteps(t *testing.T) {
	cfg := StackedConfig{Index: 2, Sparsity: 0.3, Layers: 3}
	s, err := NewStacked(cfg, core.NewRNG(2))
	if err != nil {
		t.Fatal(err)
	}
	steps := 0
	for !s.Done() {
		s.Step()
		steps++
	}
	if steps != 3 || s.Layer() != 3 || s.Step() {
		t.Fatalf("stepped %d layers, at layer %d", steps, s.Layer())
	}
	whole, _ := BuildStacked(cfg, core.NewRNG(2))
	if !slices.Equal(whole.Cells(), s.Field().Cells()) {
		t.Fatal("stepping and BuildStacked disagree")
	}
	s.Reset()
	if s.Layer() != 0 || s.Field().Sum() != 0 {
		t.Fatal("Reset kept deposits")
	}
}

func BenchmarkGenerate(b *testing.B) {
	w, err := NewWorld(DefaultWorldConfig())
	if err != nil {
		b.Fatal(err)
	}
	tr := New(w)
	cfg := DefaultConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Generate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
