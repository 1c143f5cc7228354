package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/ecs/debugui"
	"github.com/plus3/railgun/sim"
)

// attachOverlay spawns the game-specific debug window next to the standard
// debugui panels. Sliders write straight into the Tuning singleton, so edits
// take effect on the next tick, same as a prefab reload.
func attachOverlay(storage *ecs.Storage) {
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var tuning *sim.Tuning
			if !storage.ReadSingleton(&tuning) {
				return
			}
			var board *sim.Scoreboard
			storage.ReadSingleton(&board)

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)

			if imgui.BeginV("Railgun", nil, 0) {
				if board != nil {
					imgui.Text(fmt.Sprintf("Kills: %d", board.Kills))
				}
				imgui.Text(fmt.Sprintf("Entities: %d", storage.Count()))
				imgui.Separator()

				imgui.SliderFloat("road velocity", &tuning.RoadVel, 0.1, 5)
				imgui.SliderFloat("player velocity", &tuning.PlayerVel, 0.1, 5)

				period := float32(tuning.GunPeriod)
				if imgui.SliderFloat("gun period", &period, 0.05, 2) {
					tuning.GunPeriod = float64(period)
				}

				imgui.SliderFloat("bullet velocity", &tuning.BulletVel, 5, 100)
				imgui.SliderFloat("enemy velocity", &tuning.EnemyVel, 0.05, 5)
				imgui.SliderFloat("enemy size", &tuning.EnemySize, 0.05, 1)

				imgui.End()
			}
		},
	})
}
