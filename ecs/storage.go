package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"
)

// Storage is the main ECS storage: a slot table tracking live entities plus
// one slot-addressed storage per component type. Entity handles stay stable
// for the entity's whole lifetime (adding or removing components never moves
// an entity), and component pointers stay valid until the entity is deleted.
type Storage struct {
	registry    *ComponentRegistry
	stores      map[reflect.Type]iComponentStorage
	generations []uint32
	alive       []bool
	freeSlots   []uint32
	liveCount   int
	singletons  map[reflect.Type]*singletonEntry
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	slot := s.allocSlot()
	for _, component := range components {
		compType := componentTypeOf(component)
		s.storeFor(compType).Set(int(slot), component)
	}

	return NewEntityId(slot, s.generations[slot])
}

// Delete removes all data related to the entity ID. Deleting an entity that
// is already dead (or a stale handle to a recycled slot) is a no-op.
func (s *Storage) Delete(id EntityId) {
	if !s.Alive(id) {
		return
	}

	slot := id.Slot()
	for _, store := range s.stores {
		store.Delete(int(slot))
	}

	s.alive[slot] = false
	s.generations[slot]++
	s.freeSlots = append(s.freeSlots, slot)
	s.liveCount--
}

// Alive reports whether the handle refers to a live entity. A handle held
// across a delete stops resolving even if the slot has been recycled.
func (s *Storage) Alive(id EntityId) bool {
	if id == InvalidEntityId {
		return false
	}
	slot := id.Slot()
	if int(slot) >= len(s.generations) {
		return false
	}
	return s.alive[slot] && s.generations[slot] == id.Generation()
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	return s.liveCount
}

// Entities yields a handle for every live entity, in slot order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for slot := range s.liveSlots() {
			if !yield(s.idAt(slot)) {
				return
			}
		}
	}
}

// ComponentTypes lists the component types attached to an entity, sorted by
// type name. Returns nil for dead handles.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.Alive(id) {
		return nil
	}
	slot := int(id.Slot())
	var types []reflect.Type
	for t, store := range s.stores {
		if store.Has(slot) {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// AddComponent attaches a component to a live entity. The entity's handle is
// unaffected. Adding to a dead entity is a programmer error.
func (s *Storage) AddComponent(id EntityId, component any) {
	if !s.Alive(id) {
		panic("cannot add component to dead entity")
	}
	compType := componentTypeOf(component)
	s.storeFor(compType).Set(int(id.Slot()), component)
}

// RemoveComponent detaches a component from a live entity. The entity stays
// alive even if its last component is removed; only Delete ends it.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	if !s.Alive(id) {
		panic("cannot remove component from dead entity")
	}
	if store, ok := s.stores[compType]; ok {
		store.Delete(int(id.Slot()))
	}
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.Alive(id) {
		return nil
	}
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.Get(int(id.Slot()))
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return store.Has(int(id.Slot()))
}

func (s *Storage) allocSlot() uint32 {
	s.liveCount++
	if n := len(s.freeSlots); n > 0 {
		slot := s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
		s.alive[slot] = true
		return slot
	}
	slot := uint32(len(s.generations))
	s.generations = append(s.generations, 1)
	s.alive = append(s.alive, true)
	return slot
}

// storeFor returns the storage for a component type, creating it through the
// registry factory on first use.
func (s *Storage) storeFor(compType reflect.Type) iComponentStorage {
	store, ok := s.stores[compType]
	if !ok {
		factory := s.registry.getFactory(compType)
		if factory == nil {
			panic("component type " + compType.String() + " not registered")
		}
		store = factory()
		s.stores[compType] = store
	}
	return store
}

// idAt reconstructs the handle for a live slot.
func (s *Storage) idAt(slot int) EntityId {
	return NewEntityId(uint32(slot), s.generations[slot])
}

// liveSlots yields every live slot in slot order.
func (s *Storage) liveSlots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for slot := 0; slot < len(s.alive); slot++ {
			if s.alive[slot] {
				if !yield(slot) {
					return
				}
			}
		}
	}
}

// componentTypeOf normalizes a component value to its storage type.
func componentTypeOf(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("component cannot be nil")
	}

	// If it's a pointer, get the underlying type
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
		compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}

	return compType
}

type singletonEntry struct {
	dataPtr unsafe.Pointer
	value   any // pins the allocation
}

// AddSingleton stores one shared instance per type, detached from any entity.
// Accepts a value or a pointer to one. If the type already has an instance,
// the new value is copied into the existing allocation, so pointers cached
// by Singleton accessors observe the update.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("singleton cannot be nil")
	}
	rv := reflect.ValueOf(value)
	if t.Kind() == reflect.Ptr {
		if rv.IsNil() {
			panic("singleton cannot be a nil pointer")
		}
		t = t.Elem()
		rv = rv.Elem()
	}

	if entry, ok := s.singletons[t]; ok {
		reflect.NewAt(t, entry.dataPtr).Elem().Set(rv)
		return
	}

	boxed := reflect.New(t)
	boxed.Elem().Set(rv)
	s.singletons[t] = &singletonEntry{
		dataPtr: unsafe.Pointer(boxed.Pointer()),
		value:   boxed.Interface(),
	}
}

// ReadSingleton fills pptr, which must be a pointer to a pointer to the
// singleton type, and reports whether the singleton exists:
//
//	var tuning *Tuning
//	if storage.ReadSingleton(&tuning) { ... }
func (s *Storage) ReadSingleton(pptr any) bool {
	v := reflect.ValueOf(pptr)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a component pointer")
	}
	target := v.Elem()
	entry := s.singletons[target.Type().Elem()]
	if entry == nil {
		return false
	}
	target.Set(reflect.NewAt(target.Type().Elem(), entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// StorageStats is a point-in-time summary of entity and component counts.
type StorageStats struct {
	Entities   int
	Slots      int
	FreeSlots  int
	Singletons int
	Components []ComponentStats
}

// ComponentStats reports the live count for one component type.
type ComponentStats struct {
	Type  string
	Count int
}

// CollectStats summarizes current storage occupancy, with component types
// sorted by name.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		Entities:   s.liveCount,
		Slots:      len(s.generations),
		FreeSlots:  len(s.freeSlots),
		Singletons: len(s.singletons),
	}
	for t, store := range s.stores {
		stats.Components = append(stats.Components, ComponentStats{
			Type:  t.String(),
			Count: store.Len(),
		})
	}
	sort.Slice(stats.Components, func(i, j int) bool {
		return stats.Components[i].Type < stats.Components[j].Type
	})
	return stats
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// GetComponent returns the typed component for an entity, with ok reporting
// whether the entity is alive and has the component.
func GetComponent[T any](reader ComponentReader, entityId EntityId) (*T, bool) {
	comp := reader.GetComponent(entityId, reflect.TypeFor[T]())
	if comp == nil {
		return nil, false
	}
	return comp.(*T), true
}

// ReadComponent returns the typed component for an entity, panicking if the
// entity is dead or lacks it. Use for components the caller has already
// validated must exist.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp := reader.GetComponent(entityId, reflect.TypeFor[T]())
	if comp == nil {
		panic("entity has no component of type " + reflect.TypeFor[T]().String())
	}
	return comp.(*T)
}
