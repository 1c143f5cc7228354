package sim

import (
	"errors"
	"fmt"

	"github.com/plus3/railgun/asset"
	"github.com/plus3/railgun/ecs"
)

var (
	// ErrNoPlayer is returned by Build when the spawn set holds no player.
	ErrNoPlayer = errors.New("no player in spawn set")
	// ErrMultiplePlayers is returned by Build when the spawn set holds more
	// than one player.
	ErrMultiplePlayers = errors.New("multiple players in spawn set")
)

// Spawns describes the initial scene. Build requires exactly one player;
// the slice form exists so malformed scene specs fail validation instead of
// silently picking one.
type Spawns struct {
	Players []Transform
	Enemies []Transform
}

// DefaultSpawns returns the stock scene: the player on the origin line and
// one enemy down the road.
func DefaultSpawns(tuning Tuning) Spawns {
	return Spawns{
		Players: []Transform{{X: 0, Y: 0.05, Z: 0}},
		Enemies: []Transform{{X: 0, Y: tuning.EnemySize / 2, Z: -5}},
	}
}

// World owns the storage and scheduler for one simulation run. Player is the
// validated handle both controllers operate on.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Player    ecs.EntityId
}

type buildConfig struct {
	tuning   Tuning
	provider asset.Provider
	spawns   *Spawns
}

// Option adjusts world construction.
type Option func(*buildConfig)

// WithTuning replaces the default tuning constants.
func WithTuning(t Tuning) Option {
	return func(c *buildConfig) { c.tuning = t }
}

// WithProvider replaces the default in-memory asset catalog.
func WithProvider(p asset.Provider) Option {
	return func(c *buildConfig) { c.provider = p }
}

// WithSpawns replaces the default scene.
func WithSpawns(s Spawns) Option {
	return func(c *buildConfig) { c.spawns = &s }
}

// Build assembles a playable world: singletons, the road deck, the player
// with its gun, the enemies, and the five systems in their fixed order.
// The returned world is ready to Step.
func Build(registry *ecs.ComponentRegistry, opts ...Option) (*World, error) {
	cfg := buildConfig{
		tuning:   DefaultTuning(),
		provider: asset.NewCatalog(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.spawns == nil {
		spawns := DefaultSpawns(cfg.tuning)
		cfg.spawns = &spawns
	}

	switch n := len(cfg.spawns.Players); n {
	case 1:
	case 0:
		return nil, fmt.Errorf("build world: %w", ErrNoPlayer)
	default:
		return nil, fmt.Errorf("build world: %d player spawns: %w", n, ErrMultiplePlayers)
	}

	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	storage.AddSingleton(Input{})
	storage.AddSingleton(cfg.tuning)
	storage.AddSingleton(Scoreboard{})

	// The road parent starts exactly one wrap jump up, so the first wrap
	// maps it back onto its starting offset with no visible pop.
	roadZ := float32(cfg.tuning.WrapSegments) * cfg.tuning.SegmentLen
	road := storage.Spawn(Road{}, Transform{Z: roadZ})
	for i := 0; i < cfg.tuning.RoadSegments; i++ {
		storage.Spawn(RoadSegment{
			Road:   road,
			Offset: -float32(i) * cfg.tuning.SegmentLen,
		})
	}

	// A fresh gun starts one full period in the past, so it fires on the
	// first advancing tick instead of waiting out a phantom cooldown.
	player := storage.Spawn(
		Player{},
		Gun{LastFired: -cfg.tuning.GunPeriod},
		cfg.spawns.Players[0],
	)

	for _, enemy := range cfg.spawns.Enemies {
		storage.Spawn(Enemy{}, enemy)
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&RoadScroller{})
	scheduler.Register(&PlayerController{Player: player})
	scheduler.Register(&GunSystem{Provider: cfg.provider})
	scheduler.Register(&BulletSystem{})
	scheduler.Register(&EnemyControl{Player: player})

	return &World{
		Storage:   storage,
		Scheduler: scheduler,
		Player:    player,
	}, nil
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.Scheduler.Once(dt)
}
