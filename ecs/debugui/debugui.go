// Package debugui renders Dear ImGui debug panels on top of a running ECS.
// Panels are plain entities carrying an ImguiItem component; ImguiSystem
// collects the render functions each tick and defers them, so they run after
// every other system has finished mutating the world.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/railgun/ecs"
)

// ImguiItem holds a Dear ImGui render function. Attach it to an entity to
// have the function run once per tick while the overlay is active.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors Dear ImGui's input capture flags as a singleton.
// Game input handlers consult it to ignore clicks and keys the overlay owns.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and queues every ImguiItem render
// function for execution at the end of the tick.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input capture state and defers all queued render functions.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}

// RegisterComponents registers the component types the overlay spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Attach spawns the standard debug panels: an entity browser with a component
// inspector, and a performance panel. The ImguiInputState singleton is created
// if missing. Callers still register ImguiSystem with their scheduler.
func Attach(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	ecs.NewSingleton[ImguiInputState](storage)

	browser := NewEntityBrowser(50)
	perf := NewPerformancePanel(120)

	storage.Spawn(ImguiItem{Render: func() { browser.Render(storage) }})
	storage.Spawn(ImguiItem{Render: func() { browser.RenderInspector(storage) }})
	storage.Spawn(ImguiItem{Render: func() { perf.Render(storage, scheduler) }})
}
