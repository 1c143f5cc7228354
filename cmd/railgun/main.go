package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/railgun/asset"
	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/ecs/debugui"
	debugui_ebiten "github.com/plus3/railgun/ecs/debugui/ebiten"
	"github.com/plus3/railgun/prefabs"
	"github.com/plus3/railgun/sim"
)

func main() {
	log.SetPrefix("railgun: ")
	log.SetFlags(0)

	prefabDir := flag.String("prefabs", "prefabs", "prefab override directory, watched for live tuning")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug overlay")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	prefabs.Root = *prefabDir

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	scene, err := prefabs.LoadScene()
	if err != nil {
		log.Fatal(err)
	}
	if scene.Road.Segments > 0 {
		tuning.RoadSegments = scene.Road.Segments
	}

	catalog := asset.NewCatalog()
	attachDisplayNotes(catalog)

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)

	world, err := sim.Build(registry,
		sim.WithTuning(tuning),
		sim.WithSpawns(scene.Spawns()),
		sim.WithProvider(catalog),
	)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{
		world:  world,
		render: &renderer{catalog: catalog},
		input:  ecs.NewSingleton[sim.Input](world.Storage),
		debug:  *debug,
	}

	if *debug {
		game.backend = debugui_ebiten.NewBackend("railgun", *width, *height)
		debugui.Attach(world.Storage, world.Scheduler)
		attachOverlay(world.Storage)
		world.Scheduler.Register(&debugui.ImguiSystem{})
		game.imgui = ecs.NewSingleton[debugui.ImguiInputState](world.Storage)
	}

	if w, err := prefabs.NewWatcher(*prefabDir); err != nil {
		log.Printf("prefab watch disabled: %v", err)
	} else {
		game.watcher = w
		defer w.Close()
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("railgun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
