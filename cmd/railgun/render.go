package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/railgun/asset"
	"github.com/plus3/railgun/ecs"
	"github.com/plus3/railgun/sim"
)

// The camera is a fixed top-down window on the rail: zFar at the top of the
// screen, zNear at the bottom, xSpan world units across.
const (
	zNear float32 = 6
	zFar  float32 = -24
	xSpan float32 = 6
)

// displayNote is the render payload hung on mesh handles in the catalog.
// The simulation never looks inside; only the renderer does.
type displayNote struct {
	fill  color.RGBA
	size  float32
	round bool
}

func attachDisplayNotes(catalog *asset.Catalog) {
	catalog.SetNote(catalog.RoadPlate().Mesh, displayNote{fill: color.RGBA{52, 52, 58, 255}, size: 1.8})
	catalog.SetNote(catalog.PlayerHull().Mesh, displayNote{fill: color.RGBA{64, 200, 180, 255}, size: 0.3})
	catalog.SetNote(catalog.EnemyHull().Mesh, displayNote{fill: color.RGBA{214, 69, 65, 255}, size: 0.3})
	catalog.SetNote(catalog.Projectile().Mesh, displayNote{fill: color.RGBA{255, 214, 64, 255}, size: 0.12, round: true})
}

type renderer struct {
	catalog *asset.Catalog
}

func (r *renderer) note(h asset.Handle) displayNote {
	if n, ok := r.catalog.Note(h); ok {
		if d, ok := n.(displayNote); ok {
			return d
		}
	}
	return displayNote{fill: color.RGBA{128, 128, 128, 255}, size: 0.3}
}

func (r *renderer) draw(screen *ebiten.Image, world *sim.World) {
	bounds := screen.Bounds()
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	scaleX := w / xSpan
	scaleZ := h / (zNear - zFar)
	sx := func(x float32) float32 { return w/2 + x*scaleX }
	sy := func(z float32) float32 { return (z - zFar) * scaleZ }

	screen.Fill(color.RGBA{30, 30, 34, 255})

	var tuning *sim.Tuning
	if !world.Storage.ReadSingleton(&tuning) {
		return
	}

	r.drawRoad(screen, world, tuning, w, h, sy, scaleX)
	r.drawEnemies(screen, world, sx, sy, scaleX)
	r.drawBullets(screen, world, sx, sy, scaleX)
	r.drawPlayer(screen, world, sx, sy, scaleX)

	var board *sim.Scoreboard
	if world.Storage.ReadSingleton(&board) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d", board.Kills), 8, 8)
	}
}

// drawRoad lays the plate deck from the scrolling parent offset plus each
// plate's static offset, alternating shades so the scroll reads on screen.
func (r *renderer) drawRoad(screen *ebiten.Image, world *sim.World, tuning *sim.Tuning, w, h float32, sy func(float32) float32, scaleX float32) {
	roadView := ecs.NewView[struct {
		*sim.Road
		*sim.Transform
	}](world.Storage)

	parentZ := float32(0)
	haveRoad := false
	for road := range roadView.Values() {
		parentZ = road.Transform.Z
		haveRoad = true
	}
	if !haveRoad {
		return
	}

	base := r.note(r.catalog.RoadPlate().Mesh)
	alt := lighten(base.fill, 8)
	halfRoad := (tuning.BoundsX + 0.4) * scaleX

	segView := ecs.NewView[struct{ *sim.RoadSegment }](world.Storage)
	for seg := range segView.Values() {
		front := parentZ + seg.RoadSegment.Offset
		top := sy(front - tuning.SegmentLen)
		bottom := sy(front)
		if bottom < 0 || top > h {
			continue
		}

		fill := base.fill
		if int(-seg.RoadSegment.Offset/tuning.SegmentLen+0.5)%2 == 1 {
			fill = alt
		}
		vector.DrawFilledRect(screen, w/2-halfRoad, top, halfRoad*2, bottom-top, fill, false)
	}

	rail := color.RGBA{200, 160, 60, 255}
	vector.StrokeLine(screen, w/2-halfRoad, 0, w/2-halfRoad, h, 2, rail, false)
	vector.StrokeLine(screen, w/2+halfRoad, 0, w/2+halfRoad, h, 2, rail, false)
}

func (r *renderer) drawEnemies(screen *ebiten.Image, world *sim.World, sx, sy func(float32) float32, scaleX float32) {
	note := r.note(r.catalog.EnemyHull().Mesh)
	half := note.size / 2 * scaleX

	view := ecs.NewView[struct {
		*sim.Enemy
		*sim.Transform
	}](world.Storage)
	for enemy := range view.Values() {
		vector.DrawFilledRect(screen,
			sx(enemy.Transform.X)-half, sy(enemy.Transform.Z)-half,
			half*2, half*2, note.fill, false)
	}
}

func (r *renderer) drawBullets(screen *ebiten.Image, world *sim.World, sx, sy func(float32) float32, scaleX float32) {
	view := ecs.NewView[struct {
		*sim.Bullet
		*sim.Transform
	}](world.Storage)
	for bullet := range view.Values() {
		// Bullets carry their shared pair; resolve display through it so a
		// bullet is drawn with whatever the provider handed its gun.
		pair := r.catalog.Projectile()
		if bullet.Bullet.Rounds != nil {
			pair = *bullet.Bullet.Rounds
		}
		note := r.note(pair.Mesh)
		vector.DrawFilledCircle(screen,
			sx(bullet.Transform.X), sy(bullet.Transform.Z),
			note.size/2*scaleX, note.fill, false)
	}
}

func (r *renderer) drawPlayer(screen *ebiten.Image, world *sim.World, sx, sy func(float32) float32, scaleX float32) {
	pos, ok := ecs.GetComponent[sim.Transform](world.Storage, world.Player)
	if !ok {
		return
	}

	note := r.note(r.catalog.PlayerHull().Mesh)
	half := note.size / 2 * scaleX
	x := sx(pos.X) - half
	y := sy(pos.Z) - half
	vector.DrawFilledRect(screen, x, y, half*2, half*2, note.fill, false)
	vector.StrokeRect(screen, x, y, half*2, half*2, 1, color.RGBA{240, 240, 240, 255}, false)
}

func lighten(c color.RGBA, d uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if v > 255-d {
			return 255
		}
		return v + d
	}
	return color.RGBA{add(c.R), add(c.G), add(c.B), c.A}
}
