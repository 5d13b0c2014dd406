package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/fonts"
	"github.com/automoto/puffball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the player's flags.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay && !cfg.Debug.Hitboxes {
		return
	}
	vp, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok && cfg.Debug.Hitboxes {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := cfg.LightBlue
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.DarkGray
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvEnemy):
				c = cfg.Red
			case obj.HasTags(tags.ResolvInhaleZone):
				c = cfg.Green
			case obj.HasTags(tags.ResolvShootingStar):
				c = cfg.Orange
			}
			drawOutline(screen, vp, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	f := face(fonts.Small, &debugFace)
	if !cfg.Debug.Overlay || f == nil {
		return
	}
	lines := fmt.Sprintf("TPS %.0f  entities %d", ebiten.ActualTPS(), ecs.World.Len())
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		pos := components.Position.Get(playerEntry)
		hp := components.Health.Get(playerEntry)
		jumps := components.DoubleJump.Get(playerEntry)
		lines += fmt.Sprintf("\npos %.0f,%.0f  hp %d/%d  jumps %d\ninhaling %t  full %t",
			pos.X, pos.Y, hp.Current, hp.Max, jumps.Remaining, player.IsInhaling, player.IsFull)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin*2+hudPipSize)
	op.LineSpacing = f.Metrics().HAscent + f.Metrics().HDescent + 2
	op.ColorScale.ScaleWithColor(cfg.DarkGray)
	text.Draw(screen, lines, f, op)
}

func drawOutline(screen *ebiten.Image, vp Viewport, x, y, w, h float64, c color.Color) {
	sx, sy := vp.ToScreen(x, y)
	sw, sh := float32(w*vp.scale), float32(h*vp.scale)
	vector.StrokeRect(screen, sx, sy, sw, sh, 1, c, false)
}
