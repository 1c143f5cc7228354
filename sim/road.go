package sim

import (
	"github.com/chewxy/math32"

	"github.com/plus3/railgun/ecs"
)

// RoadScroller slides the road parent backward and periodically jumps it
// forward by a whole number of segments, so the finite child deck reads as
// an endless road.
type RoadScroller struct {
	Roads ecs.Query[struct {
		*Road
		*Transform
	}]
	Tuning ecs.Singleton[Tuning]
}

func (s *RoadScroller) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	for road := range s.Roads.Values() {
		road.Transform.Z = Scroll(road.Transform.Z, float32(frame.DeltaTime), tuning)
	}
}

// Scroll advances a road offset by one tick and applies the wrap rule:
// rem = mod(z, SegmentLen) keeping the dividend's sign; once the offset is
// more than one unit from the origin and rem has just crossed a segment
// boundary (rem < 0.01), jump forward by WrapSegments whole segments. The
// bare 0.01 threshold is deliberate: the jump must land on the first frame
// past the boundary or the deck visibly pops. On the boundary itself the
// wrap maps z back onto itself, so a zero-delta tick is a no-op.
func Scroll(z, delta float32, tuning *Tuning) float32 {
	z -= delta * tuning.RoadVel
	rem := math32.Mod(z, tuning.SegmentLen)
	if math32.Abs(z) > 1 && rem < 0.01 {
		z = rem + float32(tuning.WrapSegments)*tuning.SegmentLen
	}
	return z
}
