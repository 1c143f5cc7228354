package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/plus3/railgun/sim"
)

// LoadSpec loads and unmarshals one prefab into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec mirrors tuning.yaml.
type TuningSpec struct {
	RoadVel      float32 `yaml:"road_vel"`
	SegmentLen   float32 `yaml:"segment_len"`
	WrapSegments int     `yaml:"wrap_segments"`
	RoadSegments int     `yaml:"road_segments"`
	PlayerVel    float32 `yaml:"player_vel"`
	BoundsX      float32 `yaml:"bounds_x"`
	BoundsZMin   float32 `yaml:"bounds_z_min"`
	BoundsZMax   float32 `yaml:"bounds_z_max"`
	GunPeriod    float64 `yaml:"gun_period"`
	BulletVel    float32 `yaml:"bullet_vel"`
	BulletRange  float32 `yaml:"bullet_range"`
	EnemySize    float32 `yaml:"enemy_size"`
	EnemyVel     float32 `yaml:"enemy_vel"`
}

// Tuning validates the spec and converts it. The scroll wrap and the gun
// cooldown both divide by their constants, so non-positive lengths, periods
// and velocities are rejected here rather than left to degenerate at tick
// time.
func (s TuningSpec) Tuning() (sim.Tuning, error) {
	switch {
	case s.SegmentLen <= 0:
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: segment_len must be positive, got %v", s.SegmentLen)
	case s.GunPeriod <= 0:
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: gun_period must be positive, got %v", s.GunPeriod)
	case s.RoadVel <= 0:
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: road_vel must be positive, got %v", s.RoadVel)
	case s.PlayerVel <= 0:
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: player_vel must be positive, got %v", s.PlayerVel)
	case s.BulletVel <= 0:
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: bullet_vel must be positive, got %v", s.BulletVel)
	case s.EnemyVel <= 0:
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: enemy_vel must be positive, got %v", s.EnemyVel)
	}

	return sim.Tuning{
		RoadVel:      s.RoadVel,
		SegmentLen:   s.SegmentLen,
		WrapSegments: s.WrapSegments,
		RoadSegments: s.RoadSegments,
		PlayerVel:    s.PlayerVel,
		BoundsX:      s.BoundsX,
		BoundsZMin:   s.BoundsZMin,
		BoundsZMax:   s.BoundsZMax,
		GunPeriod:    s.GunPeriod,
		BulletVel:    s.BulletVel,
		BulletRange:  s.BulletRange,
		EnemySize:    s.EnemySize,
		EnemyVel:     s.EnemyVel,
	}, nil
}

// LoadTuning loads tuning.yaml and converts it to runnable tuning.
func LoadTuning() (sim.Tuning, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return sim.Tuning{}, err
	}
	return spec.Tuning()
}

// SceneSpec mirrors scene.yaml. Player is a pointer so a scene that simply
// omits it converts to an empty spawn set and fails world validation,
// instead of silently planting a player at the origin.
type SceneSpec struct {
	Player  *SpawnSpec  `yaml:"player"`
	Enemies []SpawnSpec `yaml:"enemies"`
	Road    RoadSpec    `yaml:"road"`
}

type SpawnSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type RoadSpec struct {
	// Segments overrides the tuned deck size when positive.
	Segments int `yaml:"segments"`
}

// Spawns converts the scene to the world builder's spawn set.
func (s SceneSpec) Spawns() sim.Spawns {
	var spawns sim.Spawns
	if s.Player != nil {
		spawns.Players = []sim.Transform{{X: s.Player.X, Y: s.Player.Y, Z: s.Player.Z}}
	}
	for _, e := range s.Enemies {
		spawns.Enemies = append(spawns.Enemies, sim.Transform{X: e.X, Y: e.Y, Z: e.Z})
	}
	return spawns
}

// LoadScene loads scene.yaml.
func LoadScene() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
