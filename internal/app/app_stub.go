//go:build !ebiten

package app

import (
	"errors"

	"terragen/internal/core"
)

// Game is a placeholder that satisfies the API expected by the viewer build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required.
func New(core.Sim, *Config) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the viewer build tag is missing.
func (g *Game) Update() error {
	return errors.New("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
