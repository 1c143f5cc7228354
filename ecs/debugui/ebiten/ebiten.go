// Package ebiten bridges the Dear ImGui overlay to the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Ebiten games
// call BeginFrame before running systems, EndFrame after, and Draw from
// their Draw method to composite the overlay onto the screen.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the backend with a window and disables imgui.ini
// persistence, which has no sensible home for a game overlay.
func NewBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}
