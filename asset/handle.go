// Package asset models opaque visual-asset handles. The simulation stores
// and compares handles but never looks inside them; hosts decide what a
// handle maps to (a mesh on the GPU, a color in a vector renderer, nothing
// at all in a headless run).
package asset

import (
	"fmt"
	"strings"
)

// Handle is an opaque token for one visual asset. The zero Handle refers to
// nothing.
type Handle struct {
	kind Kind
	id   uint64
}

// Valid reports whether the handle refers to an allocated asset.
func (h Handle) Valid() bool { return h.kind != KindInvalid }

// Kind returns the asset class this handle refers to.
func (h Handle) Kind() Kind { return h.kind }

// Key returns the packed numeric identity, stable across calls. Catalogs use
// it to key per-handle data.
func (h Handle) Key() uint64 { return uint64(h.kind)<<56 | h.id }

func (h Handle) String() string {
	if !h.Valid() {
		return "asset(none)"
	}
	return fmt.Sprintf("%s#%d", strings.ToLower(h.kind.String()), h.id)
}

// Pair bundles the mesh and material handles for one renderable. A gun
// caches its Pair once; every bullet it fires shares that same pointer.
type Pair struct {
	Mesh     Handle
	Material Handle
}

// Provider supplies the handles the simulation asks for. The core requests
// each pair at most lazily and treats the result as opaque.
type Provider interface {
	Projectile() Pair
	RoadPlate() Pair
	PlayerHull() Pair
	EnemyHull() Pair
}
