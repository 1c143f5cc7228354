// Package sim is the rail-shooter simulation core: a scrolling road, a
// player avatar steered by four key states, cooldown-timed guns, plane
// crossing bullet collisions and enemies bounded by the player plane. It is
// headless and deterministic; hosts drive it tick by tick and render
// whatever the component state says.
package sim

import (
	"github.com/plus3/railgun/asset"
	"github.com/plus3/railgun/ecs"
)

// Transform is the shared spatial store. The simulation moves entities on x
// and z; y is set at spawn and left alone.
type Transform struct {
	X, Y, Z float32
}

// Player marks the player avatar. A world holds exactly one.
type Player struct{}

// Road marks the scrolling road parent. Only the parent moves.
type Road struct{}

// RoadSegment is one static deck plate, placed at a fixed offset from its
// road parent. Renderers draw plates at the parent's z plus Offset; the
// simulation never touches them after spawn.
type RoadSegment struct {
	Road   ecs.EntityId
	Offset float32
}

// Gun fires bullets while its cooldown allows. Rounds is the lazily created
// mesh/material pair every bullet from this gun shares by pointer.
type Gun struct {
	LastFired float64
	Rounds    *asset.Pair
}

// Bullet is a live projectile carrying its gun's shared asset pair.
type Bullet struct {
	Rounds *asset.Pair
}

// Enemy marks a hostile.
type Enemy struct{}

// Input holds the four pressed-states for the current tick. The host writes
// it before stepping; the simulation only reads.
type Input struct {
	Left, Right, Up, Down bool
}

// Scoreboard accumulates registered hits for the whole run.
type Scoreboard struct {
	Kills int
}

// RegisterComponents registers every sim component type with the registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Road](registry)
	ecs.RegisterComponent[RoadSegment](registry)
	ecs.RegisterComponent[Gun](registry)
	ecs.RegisterComponent[Bullet](registry)
	ecs.RegisterComponent[Enemy](registry)
}
