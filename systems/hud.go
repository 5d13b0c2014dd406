package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/fonts"
	"github.com/automoto/puffball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPipSize = 18
	hudPipGap  = 6
	hudMargin  = 10
)

var (
	hudFace   *text.GoXFace
	debugFace *text.GoXFace
)

// face wraps a registered font for text/v2, or returns nil when fonts were
// never loaded (headless runs).
func face(name fonts.FontName, cached **text.GoXFace) *text.GoXFace {
	if *cached == nil && fonts.Loaded(name) {
		*cached = text.NewGoXFace(name.Get())
	}
	return *cached
}

// DrawHUD renders one pip per health point and the level name.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)
		for i := 0; i < hp.Max; i++ {
			clr := cfg.DarkGray
			if i < hp.Current {
				clr = cfg.LightRed
			}
			x := float32(hudMargin + i*(hudPipSize+hudPipGap))
			vector.FillRect(screen, x, hudMargin, hudPipSize, hudPipSize, clr, false)
		}
	}

	levelEntry, ok := components.Level.First(ecs.World)
	f := face(fonts.Regular, &hudFace)
	if !ok || f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-hudMargin), hudMargin)
	op.PrimaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(cfg.DarkGray)
	text.Draw(screen, components.Level.Get(levelEntry).Name, f, op)
}
