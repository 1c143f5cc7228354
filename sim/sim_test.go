package sim_test

import (
	"github.com/plus3/railgun/asset"
	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/sim"
)

// newTestStorage builds a storage with all sim components registered and the
// three singletons added, using stock tuning. System tests spawn exactly the
// entities they need and register only the system under test.
func newTestStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	storage.AddSingleton(sim.Input{})
	storage.AddSingleton(sim.DefaultTuning())
	storage.AddSingleton(sim.Scoreboard{})
	return storage
}

func setInput(storage *ecs.Storage, input sim.Input) {
	storage.AddSingleton(input)
}

func kills(storage *ecs.Storage) int {
	var board *sim.Scoreboard
	if !storage.ReadSingleton(&board) {
		return 0
	}
	return board.Kills
}

// countingProvider records how many times the projectile pair was requested.
type countingProvider struct {
	catalog *asset.Catalog
	calls   int
}

func newCountingProvider() *countingProvider {
	return &countingProvider{catalog: asset.NewCatalog()}
}

func (p *countingProvider) Projectile() asset.Pair {
	p.calls++
	return p.catalog.Projectile()
}

func (p *countingProvider) RoadPlate() asset.Pair  { return p.catalog.RoadPlate() }
func (p *countingProvider) PlayerHull() asset.Pair { return p.catalog.PlayerHull() }
func (p *countingProvider) EnemyHull() asset.Pair  { return p.catalog.EnemyHull() }

type bulletView struct {
	Id ecs.EntityId
	*sim.Bullet
	*sim.Transform
}

func collectBullets(storage *ecs.Storage) []bulletView {
	var out []bulletView
	for _, b := range ecs.NewView[bulletView](storage).Iter() {
		out = append(out, b)
	}
	return out
}

type enemyView struct {
	Id ecs.EntityId
	*sim.Enemy
	*sim.Transform
}

func collectEnemies(storage *ecs.Storage) []enemyView {
	var out []enemyView
	for _, e := range ecs.NewView[enemyView](storage).Iter() {
		out = append(out, e)
	}
	return out
}
