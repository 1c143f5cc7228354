package sim

import (
	"github.com/chewxy/math32"

	"github.com/plus3/railgun/ecs"
)

// BulletSystem moves bullets, culls the out-of-range ones and resolves
// collisions against enemies. A bullet hits the first enemy whose plane the
// interval [newZ, oldZ] crosses within the lateral tolerance; testing the
// interval instead of the point position keeps fast bullets from tunneling
// through the enemy plane between ticks.
type BulletSystem struct {
	Bullets ecs.Query[struct {
		ecs.EntityId
		*Bullet
		*Transform
	}]
	Enemies ecs.Query[struct {
		ecs.EntityId
		*Enemy
		*Transform
	}]
	Tuning     ecs.Singleton[Tuning]
	Scoreboard ecs.Singleton[Scoreboard]
}

func (s *BulletSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	board := s.Scoreboard.Get()

	for bullet := range s.Bullets.Values() {
		// Out of range: mark and keep going. Destruction lands at the flush,
		// so a culled bullet still moves and can still kill this tick.
		if math32.Abs(bullet.Transform.Z) > tuning.BulletRange {
			frame.Commands.Delete(bullet.EntityId)
		}

		oldZ := bullet.Transform.Z
		newZ := oldZ - float32(frame.DeltaTime)*tuning.BulletVel

		hit := false
		for enemy := range s.Enemies.Values() {
			if oldZ < enemy.Transform.Z || newZ > enemy.Transform.Z {
				continue
			}
			if math32.Abs(bullet.Transform.X-enemy.Transform.X) > tuning.EnemySize/2 {
				continue
			}

			// First match wins: one enemy per bullet per tick. The enemy may
			// already be marked by an earlier bullet this tick; both hits
			// count and the flush collapses the double delete.
			frame.Commands.Delete(enemy.EntityId)
			frame.Commands.Delete(bullet.EntityId)
			board.Kills++
			hit = true
			break
		}

		// A hit supersedes the position update; the bullet despawns where it
		// was. Otherwise commit the integrated position.
		if !hit {
			bullet.Transform.Z = newZ
		}
	}
}
