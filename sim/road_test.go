package sim_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/sim"
)

func TestScroll(t *testing.T) {
	tuning := sim.DefaultTuning()

	t.Run("plain advance", func(t *testing.T) {
		z := sim.Scroll(17.0, 0.1, &tuning)
		assert.InDelta(t, 16.9, z, 1e-5)
	})

	t.Run("no wrap while rem is large", func(t *testing.T) {
		// 17.4 is 1.2 above the 9*1.8 boundary, well outside the window.
		z := sim.Scroll(17.5, 0.1, &tuning)
		assert.InDelta(t, 17.4, z, 1e-5)
	})

	t.Run("wrap fires inside the boundary window", func(t *testing.T) {
		// 16.215 - 0.01 = 16.205, within 0.01 of the 9*1.8=16.2 boundary:
		// rem = 0.005 and the road jumps ten segments up.
		z := sim.Scroll(16.215, 0.01, &tuning)
		assert.InDelta(t, 18.005, z, 1e-3)
	})

	t.Run("wrap lands on rem plus ten segments", func(t *testing.T) {
		moved := float32(16.2149) - float32(0.01)*tuning.RoadVel
		rem := math32.Mod(moved, tuning.SegmentLen)
		assert.Less(t, rem, float32(0.01), "scenario must land inside the window")

		after := sim.Scroll(16.2149, 0.01, &tuning)
		assert.InDelta(t, rem+18.0, after, 1e-6)
	})

	t.Run("no wrap near the origin", func(t *testing.T) {
		// rem < 0.01 but |z| <= 1 suppresses the jump.
		z := sim.Scroll(0.006, 0.001, &tuning)
		assert.InDelta(t, 0.005, z, 1e-5)
	})

	t.Run("negative offsets wrap immediately", func(t *testing.T) {
		// rem keeps the dividend's sign, so any z below -1 satisfies the
		// window test and jumps back into the deck range.
		z := sim.Scroll(-2.0, 0, &tuning)
		assert.InDelta(t, 17.8, z, 1e-5)
	})

	t.Run("zero delta on a boundary is idempotent", func(t *testing.T) {
		// On the boundary itself the wrap maps z back onto itself.
		z := sim.Scroll(18.0, 0, &tuning)
		assert.Equal(t, float32(18.0), z)

		again := sim.Scroll(z, 0, &tuning)
		assert.Equal(t, z, again)
	})
}

func TestRoadScrollerSystem(t *testing.T) {
	storage := newTestStorage()
	road := storage.Spawn(sim.Road{}, sim.Transform{Z: 18.0})
	plate := storage.Spawn(sim.RoadSegment{Road: road, Offset: -1.8}, sim.Transform{Z: 0})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.RoadScroller{})

	scheduler.Once(0.1)

	roadT := ecs.ReadComponent[sim.Transform](storage, road)
	assert.InDelta(t, 17.9, roadT.Z, 1e-5)

	// Child plates are static; only the parent scrolls.
	plateT := ecs.ReadComponent[sim.Transform](storage, plate)
	assert.Equal(t, float32(0), plateT.Z)
}

func TestRoadOscillatesWithinOneSegment(t *testing.T) {
	// A tick decrement below the 0.01 window width guarantees some tick
	// lands inside every boundary window, so the road never descends past
	// one segment before wrapping. At coarser tick rates the road may skip
	// windows and fall further before recovering; that fragility is part of
	// the scroll rule and exercised in TestScroll.
	storage := newTestStorage()
	tuning := sim.DefaultTuning()
	road := storage.Spawn(sim.Road{}, sim.Transform{Z: float32(tuning.WrapSegments) * tuning.SegmentLen})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.RoadScroller{})

	wraps := 0
	prev := float32(tuning.WrapSegments) * tuning.SegmentLen
	for i := 0; i < 600; i++ {
		scheduler.Once(1.0 / 120.0)
		z := ecs.ReadComponent[sim.Transform](storage, road).Z
		assert.Greater(t, z, 9*tuning.SegmentLen-0.01, "road fell past the wrap window at tick %d", i)
		assert.Less(t, z, 10*tuning.SegmentLen+0.02, "road overshot the wrap target at tick %d", i)
		if z > prev {
			wraps++
		}
		prev = z
	}
	assert.GreaterOrEqual(t, wraps, 2, "road should have wrapped at least twice in five seconds")
}
