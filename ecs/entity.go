package ecs

// EntityId encodes the slot generation (upper 32 bits) and the slot index (lower 32 bits).
//
// Slots are recycled after deletion, but each recycle bumps the slot's
// generation, so a handle held across a delete stops resolving instead of
// silently aliasing whatever entity reuses the slot.
type EntityId uint64

// InvalidEntityId is the zero EntityId. Generations start at 1, so it never
// refers to a live entity.
const InvalidEntityId EntityId = 0

// NewEntityId assembles a handle from a slot index and a generation. Storage
// hands out handles itself; this exists for tests and for rehydrating handles
// that crossed a serialization boundary.
func NewEntityId(slot uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(slot))
}

// Slot extracts the slot index from the entity ID.
func (e EntityId) Slot() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the slot generation from the entity ID.
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}
