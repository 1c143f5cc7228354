package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/railgun/sim"
)

// pollInput writes the held arrow and WASD keys into the Input singleton.
// While the overlay owns the keyboard the player gets neutral input instead
// of stale holds.
func (g *Game) pollInput(captureKeyboard bool) {
	in := g.input.Get()
	if captureKeyboard {
		*in = sim.Input{}
		return
	}

	*in = sim.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}
