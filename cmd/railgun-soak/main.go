package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/chewxy/math32"

	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/sim"
)

// lanes fans respawned enemies across the rail so collisions land at many
// lateral offsets, not just dead center.
var lanes = []float32{0, -1.5, 0.75, -0.75, 1.5}

type enemyProbe struct {
	*sim.Enemy
	*sim.Transform
}

type bulletProbe struct {
	*sim.Bullet
	*sim.Transform
}

func main() {
	duration := flag.Duration("duration", 60*time.Second, "simulated time to run")
	tick := flag.Float64("tick", 1.0/60.0, "fixed timestep in seconds")
	population := flag.Int("enemies", 8, "enemy population held steady by respawns")
	flag.Parse()

	log.SetPrefix("railgun-soak: ")
	log.SetFlags(0)

	tuning := sim.DefaultTuning()
	spawns := sim.Spawns{Players: []sim.Transform{{Y: 0.05}}}
	for i := 0; i < *population; i++ {
		spawns.Enemies = append(spawns.Enemies, enemyAt(i, tuning))
	}

	world, err := sim.Build(ecs.NewComponentRegistry(),
		sim.WithTuning(tuning),
		sim.WithSpawns(spawns),
	)
	if err != nil {
		log.Fatal(err)
	}

	totalTicks := int(duration.Seconds() / *tick)
	log.Printf("running %d ticks at dt=%.4fs with %d enemies", totalTicks, *tick, *population)

	report := &Report{
		Duration: *duration,
		Tick:     *tick,
		Enemies:  *population,
		Ticks:    totalTicks,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	checker := newInvariantChecker(world, tuning, *tick)
	input := ecs.NewSingleton[sim.Input](world.Storage)
	liveEnemies := ecs.NewView[enemyProbe](world.Storage)

	start := time.Now()
	respawned := 0
	for i := 0; i < totalTicks; i++ {
		*input.Get() = weave(i, *tick)

		stepStart := time.Now()
		world.Step(*tick)
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))

		// Hold the population: every kill frees a slot for a fresh enemy,
		// keeping the collision path hot for the whole run.
		live := 0
		for range liveEnemies.Values() {
			live++
		}
		for ; live < *population; live++ {
			world.Storage.Spawn(sim.Enemy{}, enemyAt(respawned, tuning))
			respawned++
		}

		checker.check(i)
	}

	report.WallTime = time.Since(start)
	report.SimTime = world.Scheduler.Elapsed()
	report.Kills = finalKills(world)
	report.Respawned = respawned
	report.FinalEntities = world.Storage.Count()
	report.Violations = checker.violations
	report.Systems = world.Scheduler.GetStats().Systems
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("generate report: %v", err)
	}

	if checker.violations > 0 {
		log.Printf("%d invariant violations", checker.violations)
		os.Exit(1)
	}
}

// enemyAt places the nth enemy on a cycling lane at a cycling depth, all
// behind the default spawn plane.
func enemyAt(n int, tuning sim.Tuning) sim.Transform {
	return sim.Transform{
		X: lanes[n%len(lanes)],
		Y: tuning.EnemySize / 2,
		Z: -5 - float32(n%4)*2,
	}
}

// weave cycles held keys once per simulated second so the clamps, the gun
// and the collision lanes all get exercised.
func weave(tick int, dt float64) sim.Input {
	switch int(float64(tick)*dt) % 6 {
	case 1:
		return sim.Input{Right: true}
	case 2:
		return sim.Input{Right: true, Down: true}
	case 3:
		return sim.Input{Left: true, Down: true}
	case 4:
		return sim.Input{Left: true}
	case 5:
		return sim.Input{Up: true}
	default:
		return sim.Input{}
	}
}

func finalKills(world *sim.World) int {
	var board *sim.Scoreboard
	if !world.Storage.ReadSingleton(&board) {
		return 0
	}
	return board.Kills
}

// invariantChecker verifies after every tick what the systems promise: the
// player stays inside its bounds, no enemy ends a tick past the player
// plane, and no bullet outlives its range by more than the two ticks the
// cull-at-flush rule allows.
type invariantChecker struct {
	world      *sim.World
	tuning     sim.Tuning
	maxBulletZ float32
	violations int

	enemies *ecs.View[enemyProbe]
	bullets *ecs.View[bulletProbe]
}

func newInvariantChecker(world *sim.World, tuning sim.Tuning, dt float64) *invariantChecker {
	return &invariantChecker{
		world:      world,
		tuning:     tuning,
		maxBulletZ: tuning.BulletRange + 2*tuning.BulletVel*float32(dt) + 0.01,
		enemies:    ecs.NewView[enemyProbe](world.Storage),
		bullets:    ecs.NewView[bulletProbe](world.Storage),
	}
}

func (c *invariantChecker) check(tick int) {
	pos, ok := ecs.GetComponent[sim.Transform](c.world.Storage, c.world.Player)
	if !ok {
		c.fail(tick, "player handle dead")
		return
	}
	if pos.X < -c.tuning.BoundsX || pos.X > c.tuning.BoundsX ||
		pos.Z < c.tuning.BoundsZMin || pos.Z > c.tuning.BoundsZMax {
		c.fail(tick, fmt.Sprintf("player out of bounds at (%v, %v)", pos.X, pos.Z))
	}

	for enemy := range c.enemies.Values() {
		if enemy.Transform.Z > pos.Z {
			c.fail(tick, fmt.Sprintf("enemy past player plane: %v > %v", enemy.Transform.Z, pos.Z))
		}
	}

	for bullet := range c.bullets.Values() {
		if math32.Abs(bullet.Transform.Z) > c.maxBulletZ {
			c.fail(tick, fmt.Sprintf("bullet outlived its range at z=%v", bullet.Transform.Z))
		}
	}
}

func (c *invariantChecker) fail(tick int, msg string) {
	c.violations++
	log.Printf("tick %d: %s", tick, msg)
}
