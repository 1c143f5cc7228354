package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion operation. Queueing the same entity more
// than once per frame is allowed; the flush applies it once.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Flush applies all buffered commands to the provided storage, resetting the
// buffer state. Deletes go first; component adds and removes targeting an
// entity deleted this flush are dropped, then spawns and deferred functions
// run.
func (c *Commands) Flush(storage *Storage) {
	var deleted *intmap.Map[EntityId, bool]
	if len(c.deletes) > 0 {
		deleted = intmap.New[EntityId, bool](len(c.deletes))
	}

	for _, entity := range c.deletes {
		storage.Delete(entity)
		deleted.Put(entity, true)
	}

	for _, cmd := range c.removes {
		if deleted != nil {
			if _, dead := deleted.Get(cmd.entity); dead {
				continue
			}
		}
		storage.RemoveComponent(cmd.entity, cmd.compType)
	}

	for _, cmd := range c.adds {
		if deleted != nil {
			if _, dead := deleted.Get(cmd.entity); dead {
				continue
			}
		}
		storage.AddComponent(cmd.entity, cmd.component)
	}

	for _, cmd := range c.spawns {
		storage.Spawn(cmd.components...)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
