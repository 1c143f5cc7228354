package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// System represents a behavior that operates on entities with specific components.
// User-defined systems should implement this interface and can include Query,
// View and Singleton fields for accessing entities, as well as custom state
// fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// queryRunner is implemented by Query fields; the scheduler executes all of
// them before running systems so every system sees the same per-tick snapshot.
type queryRunner interface {
	Execute()
}

// Scheduler manages and executes systems in registration order, single
// threaded. Each tick it snapshots all registered queries, runs every system
// once, then flushes the frame's buffered commands. The flush is the only
// point where structural changes are applied.
type Scheduler struct {
	storage      *Storage
	systems      []System
	systemStats  []*systemStatsInternal
	queryRunners []queryRunner
	elapsed      float64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
		systems: make([]System, 0),
	}
}

// Register adds a system to the scheduler and initializes its Query, View and
// Singleton fields.
func (s *Scheduler) Register(system System) {
	s.initializeFields(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	systemName := systemType.Name()

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName,
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) initializeFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()

		if strings.HasPrefix(typeName, "Query[") ||
			strings.HasPrefix(typeName, "View[") ||
			strings.HasPrefix(typeName, "Singleton[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on field: " + fieldType.Name)
			}

			initMethod.Call([]reflect.Value{
				reflect.ValueOf(s.storage),
			})

			if runner, ok := field.Addr().Interface().(queryRunner); ok {
				s.queryRunners = append(s.queryRunners, runner)
			}
		}
	}
}

// Once executes all registered systems once with the given delta time in
// seconds. Elapsed simulation time advances by dt before systems run, so the
// frame they observe already includes this tick.
func (s *Scheduler) Once(dt float64) {
	s.elapsed += dt
	frame := newUpdateFrame(dt, s.elapsed, s.storage)

	for _, runner := range s.queryRunners {
		runner.Execute()
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.storage)
}

// Elapsed returns the accumulated simulation time in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}

// Run executes all systems repeatedly at the given interval until the context
// is cancelled. Delta time is measured between ticks; simulation time is the
// sum of deltas, not wall clock.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
