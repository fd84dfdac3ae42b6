package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"terragen/internal/core"
	"terragen/internal/render"
	"terragen/internal/sims/landform"
)

// Query keys consumed by the server; every other key configures the sim.
const (
	queryZoom  = "zoom"
	querySteps = "steps"
)

type simInfo struct {
	Name       string                 `json:"name"`
	Size       core.Size              `json:"size"`
	Views      []string               `json:"views,omitempty"`
	View       string                 `json:"view,omitempty"`
	Status     string                 `json:"status,omitempty"`
	Parameters core.ParameterSnapshot `json:"parameters"`
}

type columnInfo struct {
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Height      int      `json:"height"`
	SeaLevel    int      `json:"sea_level"`
	Temperature float64  `json:"temperature"`
	Humidity    float64  `json:"humidity"`
	Surface     string   `json:"surface"`
	Materials   []string `json:"materials"`
}

func (s *Server) listSims(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"sims": core.Names()})
}

// simParams handles GET /api/sims/{name}/params.
func (s *Server) simParams(w http.ResponseWriter, r *http.Request) {
	sim, status, err := s.build(r)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}
	info := simInfo{Name: sim.Name(), Size: sim.Size()}
	if p, ok := sim.(core.ParameterProvider); ok {
		info.Parameters = p.Parameters()
	}
	if vs, ok := sim.(core.ViewSelector); ok {
		info.Views = vs.Views()
		info.View = vs.View()
	}
	if sp, ok := sim.(core.StatusProvider); ok {
		info.Status = sp.Status()
	}
	respondJSON(w, http.StatusOK, info)
}

// preview handles GET /api/sims/{name}/preview.png. Sims that finish are
// run to completion unless steps is given.
func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	zoom, err := intQuery(q.Get(queryZoom), 4)
	if err != nil || zoom < 1 || zoom > 16 {
		respondError(w, http.StatusBadRequest, "zoom must be an integer in [1,16]")
		return
	}
	steps, err := intQuery(q.Get(querySteps), -1)
	if err != nil || steps > s.cfg.MaxSteps {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("steps must be an integer up to %d", s.cfg.MaxSteps))
		return
	}

	sim, status, err := s.build(r)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}
	f, finishes := sim.(core.Finisher)
	switch {
	case steps >= 0:
		for i := 0; i < steps; i++ {
			sim.Step()
		}
	case finishes:
		for i := 0; i < s.cfg.MaxSteps && !f.Done(); i++ {
			sim.Step()
		}
	}

	size := sim.Size()
	img := render.Upscale(render.PaletteImage(size.W, size.H, sim.Cells(), sim.Palette()), zoom)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// column handles GET /api/sims/landform/column/{x}/{y}.
func (s *Server) column(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "name") != "landform" {
		respondError(w, http.StatusNotFound, "columns are only available for landform")
		return
	}
	x, errX := strconv.Atoi(chi.URLParam(r, "x"))
	y, errY := strconv.Atoi(chi.URLParam(r, "y"))
	if errX != nil || errY != nil {
		respondError(w, http.StatusBadRequest, "invalid column coordinate")
		return
	}
	sim, status, err := s.build(r)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}
	lf := sim.(*landform.Sim)
	size := lf.Size()
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		respondError(w, http.StatusNotFound, fmt.Sprintf("column (%d,%d) outside %dx%d grid", x, y, size.W, size.H))
		return
	}

	t := lf.Terrain()
	fields := t.Fields()
	col := lf.Column(x, y)
	info := columnInfo{
		X:           x,
		Y:           y,
		Height:      fields.Height.At(x, y),
		SeaLevel:    t.Config().Biome.SeaLevel,
		Temperature: fields.Temperature.At(x, y),
		Humidity:    fields.Humidity.At(x, y),
		Surface:     t.Surface(x, y).String(),
		Materials:   make([]string, len(col)),
	}
	for z, m := range col {
		info.Materials[z] = m.String()
	}
	respondJSON(w, http.StatusOK, info)
}

// build constructs the sim named in the route from the query string. It
// returns the HTTP status to report on failure.
func (s *Server) build(r *http.Request) (core.Sim, int, error) {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if k == queryZoom || k == querySteps || len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}
	for k, limit := range s.cfg.limits() {
		if v, ok := params[k]; ok {
			if n, err := strconv.Atoi(v); err == nil && n > limit {
				return nil, http.StatusBadRequest, fmt.Errorf("%s %d exceeds the limit of %d", k, n, limit)
			}
		}
	}
	if v, ok := params["density"]; ok {
		if d, err := strconv.ParseFloat(v, 64); err == nil && d > s.cfg.MaxDensity {
			return nil, http.StatusBadRequest, fmt.Errorf("density %v exceeds the limit of %v", d, s.cfg.MaxDensity)
		}
	}
	sim, err := core.New(chi.URLParam(r, "name"), params)
	switch {
	case errors.Is(err, core.ErrUnknownSim):
		return nil, http.StatusNotFound, err
	case err != nil:
		return nil, http.StatusBadRequest, err
	}
	if size := sim.Size(); size.W > s.cfg.MaxSide || size.H > s.cfg.MaxSide {
		return nil, http.StatusBadRequest, fmt.Errorf("%s map %dx%d exceeds the limit of %d", sim.Name(), size.W, size.H, s.cfg.MaxSide)
	}
	return sim, http.StatusOK, nil
}

func intQuery(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
