package ecs

import "iter"

// iComponentStorage is an interface for a type-erased, slot-addressed
// component storage.
type iComponentStorage interface {
	Set(slot int, item any)
	Delete(slot int)
	Get(slot int) any
	Has(slot int) bool
	Len() int
	Iter() iter.Seq[int]
}
