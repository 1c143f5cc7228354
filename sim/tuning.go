package sim

// Tuning carries every gameplay constant. Systems read it through a
// singleton each tick, so swapping values mid-run takes effect on the next
// step.
type Tuning struct {
	RoadVel      float32
	SegmentLen   float32
	WrapSegments int
	RoadSegments int
	PlayerVel    float32
	BoundsX      float32
	BoundsZMin   float32
	BoundsZMax   float32
	GunPeriod    float64
	BulletVel    float32
	BulletRange  float32
	EnemySize    float32
	EnemyVel     float32
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		RoadVel:      1.0,
		SegmentLen:   1.8,
		WrapSegments: 10,
		RoadSegments: 64,
		PlayerVel:    1.0,
		BoundsX:      1.8,
		BoundsZMin:   0,
		BoundsZMax:   5,
		GunPeriod:    0.5,
		BulletVel:    50,
		BulletRange:  100,
		EnemySize:    0.3,
		EnemyVel:     0.5,
	}
}
