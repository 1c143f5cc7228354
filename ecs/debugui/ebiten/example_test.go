package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/ecs/debugui"
	debugui_ebiten "github.com/plus3/railgun/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and drives the ECS with the ImGui overlay.
type Game struct {
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// The ImGui frame brackets the tick so panels see post-update state.
	g.backend.Get().BeginFrame()
	g.scheduler.Once(1.0 / 60.0)
	g.backend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Game rendering goes here, overlay composites on top.
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)

	ecs.NewSingleton(storage, debugui_ebiten.NewBackend("Overlay Example", 1280, 720))

	// Standard panels: entity browser, component inspector, performance.
	debugui.Attach(storage, scheduler)
	scheduler.Register(&debugui.ImguiSystem{})

	game := &Game{
		scheduler: scheduler,
		backend:   ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
