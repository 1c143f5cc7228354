package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage is a generic implementation of iComponentStorage.
// It stores components of a specific type `T` in fixed-size blocks addressed
// by entity slot. Blocks are allocated lazily as higher slots appear. Growing
// the block list only copies block pointers, never the blocks themselves, so
// pointers handed out by Get remain valid until the slot is deleted.
type genericComponentStorage[T any] struct {
	blocks  []*[genericBlockSize]T
	filled  []*[genericBlockSize]bool
	count   int
	maxSlot int
}

// Set stores a component at the given entity slot, growing the block list as
// needed. Accepts either a T value or a *T.
func (cs *genericComponentStorage[T]) Set(slot int, item any) {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		panic("component value does not match storage type " + reflect.TypeFor[T]().String())
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	for blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		cs.filled = append(cs.filled, new([genericBlockSize]bool))
	}

	if !cs.filled[blockIdx][slotIdx] {
		cs.filled[blockIdx][slotIdx] = true
		cs.count++
	}
	cs.blocks[blockIdx][slotIdx] = concreteItem

	if slot >= cs.maxSlot {
		cs.maxSlot = slot + 1
	}
}

// Get returns a pointer to the component at the given slot, or nil if the
// slot holds no component of this type.
func (cs *genericComponentStorage[T]) Get(slot int) any {
	if slot < 0 {
		return nil
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		return nil
	}

	if !cs.filled[blockIdx][slotIdx] {
		return nil
	}

	return &cs.blocks[blockIdx][slotIdx]
}

// Delete clears the component at the given slot.
func (cs *genericComponentStorage[T]) Delete(slot int) {
	if slot < 0 {
		return
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		return
	}

	if cs.filled[blockIdx][slotIdx] {
		cs.filled[blockIdx][slotIdx] = false
		cs.count--
		var zero T
		cs.blocks[blockIdx][slotIdx] = zero // Zero out the value
	}
}

// Has checks if a component exists at the given slot.
func (cs *genericComponentStorage[T]) Has(slot int) bool {
	if slot < 0 {
		return false
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		return false
	}

	return cs.filled[blockIdx][slotIdx]
}

// Len returns the number of live components in this storage.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

// Iter yields every slot that currently holds a component, in slot order.
func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.maxSlot; i++ {
			blockIdx := i / genericBlockSize
			slotIdx := i % genericBlockSize

			if blockIdx >= len(cs.filled) {
				return
			}

			if cs.filled[blockIdx][slotIdx] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
