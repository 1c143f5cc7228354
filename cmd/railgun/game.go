package main

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/ecs/debugui"
	debugui_ebiten "github.com/plus3/railgun/ecs/debugui/ebiten"
	"github.com/plus3/railgun/prefabs"
	"github.com/plus3/railgun/sim"
)

// Game drives the simulation at a fixed 60Hz tick and renders it top-down.
// With -debug the tick is bracketed by an ImGui frame so overlay panels see
// the post-tick world.
type Game struct {
	world   *sim.World
	render  *renderer
	input   *ecs.Singleton[sim.Input]
	imgui   *ecs.Singleton[debugui.ImguiInputState]
	backend debugui_ebiten.ImguiBackend
	watcher *prefabs.Watcher
	debug   bool
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollPrefabs()

	captureKeyboard := false
	if g.debug {
		if state := g.imgui.Get(); state != nil {
			captureKeyboard = state.WantCaptureKeyboard
		}
	}
	g.pollInput(captureKeyboard)

	if g.debug {
		g.backend.BeginFrame()
		g.world.Step(1.0 / 60.0)
		g.backend.EndFrame()
		return nil
	}

	g.world.Step(1.0 / 60.0)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.draw(screen, g.world)
	if g.debug {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.debug {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// pollPrefabs drains watcher events without blocking the tick. Only tuning
// is hot-reloadable; the scene is applied once at build time.
func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(name) != "tuning.yaml" {
				continue
			}
			tuning, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("tuning reload: %v", err)
				continue
			}
			g.world.Storage.AddSingleton(tuning)
			log.Printf("tuning reloaded from %s", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}
