package ecs

// UpdateFrame carries the per-tick context handed to every system: the delta
// time for this tick, the accumulated simulation time, the frame's command
// buffer and the storage. DeltaTime and Elapsed are simulation seconds
// supplied by whoever drives the scheduler; systems never read wall clocks.
type UpdateFrame struct {
	DeltaTime float64
	Elapsed   float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, elapsed float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Elapsed:   elapsed,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
