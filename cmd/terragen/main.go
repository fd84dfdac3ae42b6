// Command terragen generates one terrain headlessly, logs a summary of its
// fields and materials, and optionally writes a PNG of the chosen view.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"terragen/internal/render"
	"terragen/internal/sims/landform"
	"terragen/pkg/biome"
)

func main() {
	var (
		seed    = flag.Int64("seed", 1337, "world seed")
		length  = flag.Int("length", 128, "cells along x")
		width   = flag.Int("width", 128, "cells along y")
		noise   = flag.String("noise", "gradient-fractal", "height source")
		scale   = flag.Int("scale", 8, "noise scale")
		octaves = flag.Int("octaves", 4, "fractal octaves")
		shape   = flag.String("shape", "none", "landform shape")
		mix     = flag.Float64("mix", 0.5, "landform mix")
		sea     = flag.Int("sea", 8, "sea level")
		expand  = flag.String("expand", "in-place", "humidity expand mode")
		builtin = flag.String("builtin", "perlin", "builtin noise provider")
		view    = flag.String("view", "surface", "view written to -out")
		out     = flag.String("out", "", "write a PNG of the view to this path")
		zoom    = flag.Int("zoom", 4, "PNG pixels per cell")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := landform.FromMap(map[string]string{
		"seed":    strconv.FormatInt(*seed, 10),
		"length":  strconv.Itoa(*length),
		"width":   strconv.Itoa(*width),
		"noise":   *noise,
		"scale":   strconv.Itoa(*scale),
		"octaves": strconv.Itoa(*octaves),
		"shape":   *shape,
		"mix":     strconv.FormatFloat(*mix, 'g', -1, 64),
		"sea":     strconv.Itoa(*sea),
		"expand":  *expand,
		"builtin": *builtin,
		"view":    *view,
	})
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	start := time.Now()
	sim, err := landform.New(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	t := sim.Terrain()
	fields := t.Fields()
	hLo, hHi := fields.Height.Range()
	tLo, tHi := fields.Temperature.Range()
	mLo, mHi := fields.Humidity.Range()
	logger.Info("generated",
		"seed", *seed,
		"grid", strconv.Itoa(*length)+"x"+strconv.Itoa(*width),
		"noise", cfg.Terrain.Noise.Type,
		"shape", cfg.Terrain.Landform.Shape,
		"height_min", hLo, "height_max", hHi,
		"temperature_min", tLo, "temperature_max", tHi,
		"humidity_min", mLo, "humidity_max", mHi,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	counts := make(map[biome.Material]int)
	t.Voxels(func(x, y, z int, m biome.Material) { counts[m]++ })
	attrs := make([]any, 0, 2*len(biome.Materials))
	for _, m := range biome.Materials {
		if m.Solid() {
			attrs = append(attrs, m.String(), counts[m])
		}
	}
	logger.Info("voxels", attrs...)

	if *out == "" {
		return
	}
	size := sim.Size()
	img := render.Upscale(render.PaletteImage(size.W, size.H, sim.Cells(), sim.Palette()), *zoom)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	logger.Info("wrote preview", "path", *out, "view", sim.View())
}
