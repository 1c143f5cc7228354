package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/railgun/asset"
)

func TestCatalogMemoizesPairs(t *testing.T) {
	catalog := asset.NewCatalog()

	first := catalog.Projectile()
	second := catalog.Projectile()

	assert.Equal(t, first, second)
	assert.True(t, first.Mesh.Valid())
	assert.True(t, first.Material.Valid())
}

func TestCatalogAllocatesDistinctPairs(t *testing.T) {
	catalog := asset.NewCatalog()

	projectile := catalog.Projectile()
	road := catalog.RoadPlate()
	player := catalog.PlayerHull()
	enemy := catalog.EnemyHull()

	keys := map[uint64]bool{}
	for _, pair := range []asset.Pair{projectile, road, player, enemy} {
		assert.False(t, keys[pair.Mesh.Key()], "mesh handle reused across pairs")
		assert.False(t, keys[pair.Material.Key()], "material handle reused across pairs")
		keys[pair.Mesh.Key()] = true
		keys[pair.Material.Key()] = true
	}
	assert.Len(t, keys, 8)
}

func TestCatalogKindAssignment(t *testing.T) {
	catalog := asset.NewCatalog()

	pair := catalog.Projectile()
	assert.Equal(t, asset.KindMesh, pair.Mesh.Kind())
	assert.Equal(t, asset.KindMaterial, pair.Material.Kind())
}

func TestCatalogNotes(t *testing.T) {
	catalog := asset.NewCatalog()
	pair := catalog.EnemyHull()

	_, ok := catalog.Note(pair.Mesh)
	assert.False(t, ok)

	catalog.SetNote(pair.Mesh, "crimson")
	note, ok := catalog.Note(pair.Mesh)
	assert.True(t, ok)
	assert.Equal(t, "crimson", note)

	// Notes key on the handle, not the pair.
	_, ok = catalog.Note(pair.Material)
	assert.False(t, ok)
}

func TestHandleString(t *testing.T) {
	catalog := asset.NewCatalog()
	pair := catalog.Projectile()

	assert.Equal(t, "mesh#1", pair.Mesh.String())
	assert.Equal(t, "material#2", pair.Material.String())

	var zero asset.Handle
	assert.False(t, zero.Valid())
	assert.Equal(t, "asset(none)", zero.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Mesh", asset.KindMesh.String())
	assert.Equal(t, "Material", asset.KindMaterial.String())
	assert.Equal(t, "Invalid", asset.KindInvalid.String())
	assert.Equal(t, "Kind(9)", asset.Kind(9).String())
}
