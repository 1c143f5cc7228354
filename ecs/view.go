package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a query for entities with a specific combination of components.
// The type T should be a struct with pointer fields for each component type.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag,
// and a plain EntityId field receives the entity's handle during iteration.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	idOffsets   []uintptr
}

// NewView creates a new view for the given struct type.
// The struct T should have embedded or named fields that are pointers to
// component types. Embedded fields are always required; named fields can be
// marked optional via the `ecs:"optional"` tag. Fields of type EntityId are
// filled with the entity's handle instead of component data.
func NewView[T any](storage *Storage) *View[T] {
	v := &View[T]{}
	v.Init(storage)
	return v
}

// Init initializes or re-initializes the View with a storage.
// Called by the Scheduler during system registration.
func (v *View[T]) Init(storage *Storage) {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	entityIdType := reflect.TypeFor[EntityId]()

	types := make([]reflect.Type, 0, structType.NumField())
	optional := make([]bool, 0, structType.NumField())
	fieldOffset := make([]uintptr, 0, structType.NumField())
	idOffsets := make([]uintptr, 0, 1)

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType == entityIdType {
			idOffsets = append(idOffsets, field.Offset)
			continue
		}

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		componentType := fieldType.Elem()
		types = append(types, componentType)
		fieldOffset = append(fieldOffset, field.Offset)

		// Parse struct tag to check if component is optional
		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}
		optional = append(optional, isOptional)
	}

	v.storage = storage
	v.types = types
	v.optional = optional
	v.fieldOffset = fieldOffset
	v.idOffsets = idOffsets
}

// Fill populates the provided struct pointer with component data for the given
// entity. Returns false if the entity is dead or missing any required
// components. Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.Alive(id) {
		return false
	}
	return v.fill(unsafe.Pointer(ptr), id, int(id.Slot()))
}

// Get returns a populated view struct for the given entity, or nil if the
// entity doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// fill writes component pointers and entity handles directly into the struct
// memory using the pre-computed field offsets. This avoids reflection
// overhead in the hot path.
func (v *View[T]) fill(structPtr unsafe.Pointer, id EntityId, slot int) bool {
	for i := 0; i < len(v.types); i++ {
		store := v.storage.stores[v.types[i]]

		var component any
		if store != nil {
			component = store.Get(slot)
		}

		// Calculate the address of the field using the pre-computed offset
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		if component == nil {
			// If this is a required component, fail
			if !v.optional[i] {
				return false
			}
			// Optional component is missing, set field to nil
			*(*unsafe.Pointer)(fieldPtr) = nil
		} else {
			// Extract the component pointer from the interface{}
			componentPtr := (*iface)(unsafe.Pointer(&component)).data
			*(*unsafe.Pointer)(fieldPtr) = componentPtr
		}
	}

	for _, offset := range v.idOffsets {
		*(*EntityId)(unsafe.Pointer(uintptr(structPtr) + offset)) = id
	}

	return true
}

// Spawn creates an entity from a populated view struct. Required fields must
// be non-nil or Spawn panics; optional fields that are nil are simply not
// attached. EntityId fields are ignored. Component values are copied into
// storage, so the caller's pointers do not alias the stored data.
func (v *View[T]) Spawn(item T) EntityId {
	itemPtr := unsafe.Pointer(&item)

	components := make([]any, 0, len(v.types))
	for i := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(itemPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil: " + v.types[i].String())
			}
			continue
		}
		components = append(components, reflect.NewAt(v.types[i], componentPtr).Interface())
	}

	return v.storage.Spawn(components...)
}

// driver picks the storage to iterate: the required component with the fewest
// live instances. ok is false when a required type has no storage at all, in
// which case nothing can match. A nil driver with ok=true means the view has
// no required components and must walk the slot table.
func (v *View[T]) driver() (iComponentStorage, bool) {
	var best iComponentStorage
	for i, componentType := range v.types {
		if v.optional[i] {
			continue
		}
		store := v.storage.stores[componentType]
		if store == nil {
			return nil, false
		}
		if best == nil || store.Len() < best.Len() {
			best = store
		}
	}
	return best, true
}

// Iter returns an iterator over all entities that have all the required
// components for this view. The iterator yields (EntityId, T) pairs where T
// is the populated view struct. Optional components are set to nil if not
// present.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		driver, ok := v.driver()
		if !ok {
			return
		}

		var result T
		resultPtr := unsafe.Pointer(&result)

		slots := v.storage.liveSlots()
		if driver != nil {
			slots = driver.Iter()
		}

		for slot := range slots {
			if !v.storage.alive[slot] {
				continue
			}

			entityId := v.storage.idAt(slot)
			if !v.fill(resultPtr, entityId, slot) {
				continue
			}

			if !yield(entityId, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
// This is useful when you only care about the component data, not which entity it belongs to
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
