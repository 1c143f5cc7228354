// Package prefabs holds the YAML specs the simulation is assembled from:
// gameplay tuning and the initial scene. The shipped copies are embedded;
// a matching file under the override root wins, which is what the live
// tuning reload in the demo host edits.
package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Root is the on-disk override directory consulted before the embedded
// copies. Hosts running with -prefabs point it somewhere else before the
// first Load.
var Root = "prefabs"

// Load returns the named prefab, preferring an on-disk override under Root
// and falling back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Root, filepath.FromSlash(clean))
}
