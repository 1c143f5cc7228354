package ecs

import "iter"

// Query wraps a View with per-frame snapshot caching. The Scheduler executes
// every registered system's queries at the top of each tick, so all systems
// observe the same membership for the whole tick: entities spawned or deleted
// through Commands only show up in snapshots from the next tick on.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query with snapshot caching.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cacheValid = false
}

// Execute builds the entity and component snapshot for this frame.
// Called automatically by the Scheduler before systems run.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for id, item := range q.view.Iter() {
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Count returns the number of entities in the current snapshot.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Count() int {
	if !q.cacheValid {
		panic("Query.Count() called before Query.Execute()")
	}
	return len(q.cachedEntities)
}

// Entities returns the entity IDs in the current snapshot. The slice is
// reused across frames; do not retain it.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Entities() []EntityId {
	if !q.cacheValid {
		panic("Query.Entities() called before Query.Execute()")
	}
	return q.cachedEntities
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
