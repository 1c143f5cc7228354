package sim

import (
	"github.com/chewxy/math32"

	"github.com/plus3/railgun/ecs"
)

// EnemyControl advances every enemy down the road and keeps it from passing
// the player plane. Integration, clamping and the committed write are
// separate steps so each is observable on its own.
type EnemyControl struct {
	Player  ecs.EntityId
	Enemies ecs.Query[struct {
		*Enemy
		*Transform
	}]
	Tuning ecs.Singleton[Tuning]
}

func (s *EnemyControl) Execute(frame *ecs.UpdateFrame) {
	player, ok := ecs.GetComponent[Transform](frame.Storage, s.Player)
	if !ok {
		panic("player entity is no longer alive")
	}

	tuning := s.Tuning.Get()
	for enemy := range s.Enemies.Values() {
		cz := IntegrateEnemy(enemy.Transform.Z, float32(frame.DeltaTime), tuning.EnemyVel)
		cz = ClampEnemy(cz, player.Z)
		enemy.Transform.Z = cz
	}
}

// IntegrateEnemy returns the candidate position after one tick of advance.
func IntegrateEnemy(z, delta, vel float32) float32 {
	return z - delta*vel
}

// ClampEnemy bounds a candidate position at the player plane.
func ClampEnemy(z, playerZ float32) float32 {
	return math32.Min(z, playerZ)
}
