package sim

import (
	"github.com/chewxy/math32"

	"github.com/plus3/railgun/ecs"
)

// PlayerController integrates the player avatar from the Input singleton and
// clamps it to the play area. It operates on the single player handle
// validated at build time; that handle going dead mid-run means somebody
// broke the world, and the system panics rather than carry on without a
// player.
type PlayerController struct {
	Player ecs.EntityId
	Input  ecs.Singleton[Input]
	Tuning ecs.Singleton[Tuning]
}

func (s *PlayerController) Execute(frame *ecs.UpdateFrame) {
	t, ok := ecs.GetComponent[Transform](frame.Storage, s.Player)
	if !ok {
		panic("player entity is no longer alive")
	}

	tuning := s.Tuning.Get()
	ix, iz := Intent(*s.Input.Get())

	t.X += ix * tuning.PlayerVel * float32(frame.DeltaTime)
	t.Z += iz * tuning.PlayerVel * float32(frame.DeltaTime)

	t.X = math32.Min(math32.Max(t.X, -tuning.BoundsX), tuning.BoundsX)
	t.Z = math32.Min(math32.Max(t.Z, tuning.BoundsZMin), tuning.BoundsZMax)
}

// Intent resolves the four pressed-states to movement intent per axis with a
// fixed priority: right beats left, down beats up. Opposing holds are not
// canceled; the higher-priority direction wins outright.
func Intent(input Input) (x, z float32) {
	if input.Left {
		x = -1
	}
	if input.Right {
		x = 1
	}
	if input.Up {
		z = -1
	}
	if input.Down {
		z = 1
	}
	return x, z
}
