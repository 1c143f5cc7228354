package sim

import (
	"github.com/plus3/railgun/asset"
	"github.com/plus3/railgun/ecs"
)

// GunSystem fires a bullet from every gun whose cooldown has lapsed. Firing
// is edge-free: any tick where the period has strictly passed fires exactly
// once, no matter how far past the threshold the clock has run. There are
// no catch-up shots. Cooldowns are tracked per gun.
type GunSystem struct {
	// Provider hands out the projectile's visual pair. Set at construction;
	// a gun firing without one is a broken world.
	Provider asset.Provider

	Guns ecs.Query[struct {
		*Gun
		*Transform
	}]
	Tuning ecs.Singleton[Tuning]
}

func (s *GunSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	now := frame.Elapsed

	for gun := range s.Guns.Values() {
		if now-gun.Gun.LastFired <= tuning.GunPeriod {
			continue
		}
		gun.Gun.LastFired = now

		if gun.Gun.Rounds == nil {
			if s.Provider == nil {
				panic("gun fired with no asset provider")
			}
			rounds := s.Provider.Projectile()
			gun.Gun.Rounds = &rounds
		}

		frame.Commands.Spawn(
			Transform{X: gun.Transform.X, Y: gun.Transform.Y, Z: gun.Transform.Z},
			Bullet{Rounds: gun.Gun.Rounds},
		)
	}
}
