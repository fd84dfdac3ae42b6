// Command dla-sweep grows DLA maps over a grid of densities and seeds in
// parallel and reports how each density shapes the accumulated relief.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"terragen/pkg/core"
	"terragen/pkg/dla"
)

type job struct {
	density float64
	seed    int64
}

type result struct {
	job
	particles int
	peak      float64
	relief    float64
	coverage  float64
	elapsed   time.Duration
	err       error
}

type summary struct {
	density   float64
	runs      int
	particles float64
	peak      float64
	relief    float64
	coverage  float64
}

func main() {
	size := flag.Int("size", 64, "map side, a multiple of 4")
	seeds := flag.Int("seeds", 8, "seeds per density")
	baseSeed := flag.Int64("seed", 1337, "first seed")
	densities := flag.String("densities", "0.2,0.3,0.4,0.5,0.6,0.7", "comma separated densities in (0,1)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var jobs []job
	for _, field := range strings.Split(*densities, ",") {
		d, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			log.Fatalf("density %q: %v", field, err)
		}
		cfg := dla.Config{MaxLength: *size, MaxWidth: *size, Density: d}
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, job{density: d, seed: *baseSeed + int64(i)})
		}
	}
	logger.Info("sweeping", "runs", len(jobs), "workers", *workers, "size", *size)

	in := make(chan job)
	out := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range in {
				out <- run(*size, j)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	go func() {
		for _, j := range jobs {
			in <- j
		}
		close(in)
	}()

	start := time.Now()
	byDensity := map[float64]*summary{}
	for res := range out {
		if res.err != nil {
			log.Fatalf("density %.2f seed %d: %v", res.density, res.seed, res.err)
		}
		s, ok := byDensity[res.density]
		if !ok {
			s = &summary{density: res.density}
			byDensity[res.density] = s
		}
		s.runs++
		s.particles += float64(res.particles)
		s.peak += res.peak
		s.relief += res.relief
		s.coverage += res.coverage
	}

	all := make([]*summary, 0, len(byDensity))
	for _, s := range byDensity {
		n := float64(s.runs)
		s.particles /= n
		s.peak /= n
		s.relief /= n
		s.coverage /= n
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].density < all[j].density })

	fmt.Printf("%-8s %5s %10s %8s %8s %8s\n", "density", "runs", "particles", "peak", "relief", "coverage")
	for _, s := range all {
		fmt.Printf("%-8.2f %5d %10.1f %8.3f %8.3f %8.3f\n", s.density, s.runs, s.particles, s.peak, s.relief, s.coverage)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))
}

// run grows one map. Relief is the peak over the mean height; coverage is
// the share of cells above the mean.
func run(size int, j job) result {
	start := time.Now()
	engine, err := dla.New(dla.Config{MaxLength: size, MaxWidth: size, Density: j.density}, core.NewRNG(j.seed))
	if err != nil {
		return result{job: j, err: err}
	}
	heights := engine.Run()
	_, peak := heights.Range()
	mean := heights.Sum() / float64(len(heights.Cells()))
	above := 0
	for _, v := range heights.Cells() {
		if v > mean {
			above++
		}
	}
	res := result{
		job:       j,
		particles: engine.Particles(),
		peak:      peak,
		coverage:  float64(above) / float64(len(heights.Cells())),
		elapsed:   time.Since(start),
	}
	if mean > 0 {
		res.relief = peak / mean
	}
	return res
}
