package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/railgun/ecs"
)

// PerformancePanel shows storage occupancy, per-store component counts and
// per-system execution timings, plus a frame time graph.
type PerformancePanel struct {
	frameHistory []float32
	frameIndex   int
	lastRender   time.Time
}

// NewPerformancePanel creates a panel graphing the last historyFrames frames.
func NewPerformancePanel(historyFrames int) *PerformancePanel {
	return &PerformancePanel{
		frameHistory: make([]float32, historyFrames),
		lastRender:   time.Now(),
	}
}

// Render draws the performance window.
func (pp *PerformancePanel) Render(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	now := time.Now()
	delta := float32(now.Sub(pp.lastRender).Seconds())
	pp.lastRender = now

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pp.frameHistory[pp.frameIndex] = delta * 1000.0
	pp.frameIndex = (pp.frameIndex + 1) % len(pp.frameHistory)

	stats := storage.CollectStats()

	imgui.Text(fmt.Sprintf("Entities: %d (%d slots, %d free)", stats.Entities, stats.Slots, stats.FreeSlots))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.Singletons))
	imgui.Text(fmt.Sprintf("Sim Time: %.2fs", scheduler.Elapsed()))

	var avgFrameTime float32
	for _, ft := range pp.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(len(pp.frameHistory))

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &pp.frameHistory[0], int32(len(pp.frameHistory)))

	if imgui.TreeNodeStr("Component Stores") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StoreTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, comp := range stats.Components {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(comp.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", comp.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Timings") {
		schedStats := scheduler.GetStats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Executions")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, sys := range schedStats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
