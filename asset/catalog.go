package asset

import "github.com/kamstrup/intmap"

// Catalog is an in-memory Provider handing out sequential handles. Each
// named pair is allocated once and memoized, so repeated calls return
// identical handles. Hosts can hang display data off any handle via notes;
// the simulation never reads them.
type Catalog struct {
	nextId uint64
	pairs  map[string]Pair
	notes  *intmap.Map[uint64, any]
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		pairs: make(map[string]Pair),
		notes: intmap.New[uint64, any](16),
	}
}

func (c *Catalog) alloc(kind Kind) Handle {
	c.nextId++
	return Handle{kind: kind, id: c.nextId}
}

func (c *Catalog) pair(name string) Pair {
	if p, ok := c.pairs[name]; ok {
		return p
	}
	p := Pair{Mesh: c.alloc(KindMesh), Material: c.alloc(KindMaterial)}
	c.pairs[name] = p
	return p
}

func (c *Catalog) Projectile() Pair { return c.pair("projectile") }
func (c *Catalog) RoadPlate() Pair  { return c.pair("road-plate") }
func (c *Catalog) PlayerHull() Pair { return c.pair("player-hull") }
func (c *Catalog) EnemyHull() Pair  { return c.pair("enemy-hull") }

// SetNote attaches host display data to a handle.
func (c *Catalog) SetNote(h Handle, note any) {
	c.notes.Put(h.Key(), note)
}

// Note returns the display data attached to a handle, if any.
func (c *Catalog) Note(h Handle) (any, bool) {
	return c.notes.Get(h.Key())
}
