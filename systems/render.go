package systems

import (
	"image/color"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport maps world coordinates to screen pixels for one frame.
type Viewport struct {
	originX, originY float64
	scale            float64
	halfW, halfH     float64
}

func newViewport(camera *components.CameraData, screen *ebiten.Image) Viewport {
	return Viewport{
		originX: camera.Position.X + camera.Shake.X,
		originY: camera.Position.Y + camera.Shake.Y,
		scale:   camera.Scale,
		halfW:   float64(screen.Bounds().Dx()) / 2,
		halfH:   float64(screen.Bounds().Dy()) / 2,
	}
}

// ToScreen converts a world point to screen pixels.
func (v Viewport) ToScreen(x, y float64) (float32, float32) {
	return float32((x-v.originX)*v.scale + v.halfW), float32((y-v.originY)*v.scale + v.halfH)
}

func (v Viewport) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	sx, sy := v.ToScreen(x, y)
	vector.FillRect(screen, sx, sy, float32(w*v.scale), float32(h*v.scale), clr, false)
}

func cameraViewport(ecs *ecs.ECS, screen *ebiten.Image) (Viewport, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return Viewport{}, false // No camera yet
	}
	return newViewport(components.Camera.Get(cameraEntry), screen), true
}

// DrawLevel fills the background and draws the level's solids and exits.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	vp, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vp.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.Ground)
	})
	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vp.fillRect(screen, o.X, o.Y, o.W, o.H, withAlpha(cfg.Yellow, 0.5))
	})
}

// DrawActors renders every entity with a Visual as a coloured shape.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	vp, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}

	components.Visual.Each(ecs.World, func(e *donburi.Entry) {
		visual := components.Visual.Get(e)
		if visual.Opacity <= 0 {
			return
		}
		pos := components.Position.Get(e)

		w := visual.Width * visual.ScaleX
		h := visual.Height * visual.ScaleY
		x, y := pos.X, pos.Y
		if visual.Centered {
			x -= w / 2
			y -= h / 2
		}

		switch visual.Anim {
		case cfg.AnimInhaleEffect:
			vp.fillRect(screen, x, y+h/4, w, h/2, withAlpha(cfg.White, visual.Opacity*0.6))
		case cfg.AnimParticle:
			vp.fillRect(screen, x, y, w, h, withAlpha(cfg.White, visual.Opacity))
		default:
			vp.fillRect(screen, x, y, w, h, withAlpha(animColor(visual.Anim), visual.Opacity))
			drawEye(screen, vp, x, y, w, h, visual)
		}
	})
}

// drawEye marks which way a shape is looking. Sprites in the sheet face
// right unless flipped; guy, bird and shooting star frames face left.
func drawEye(screen *ebiten.Image, vp Viewport, x, y, w, h float64, visual *components.VisualData) {
	size := w / 8
	left := visual.FlipX
	if visual.Anim == cfg.AnimShootingStar || visual.Anim == cfg.AnimGuyWalk || visual.Anim == cfg.AnimBird {
		left = !left
	}
	ex := x + w*0.7
	if left {
		ex = x + w*0.3 - size
	}
	vp.fillRect(screen, ex, y+h*0.35, size, size*1.5, withAlpha(cfg.DarkGray, visual.Opacity))
}

func animColor(anim cfg.AnimID) color.RGBA {
	switch anim {
	case cfg.AnimPlayerIdle, cfg.AnimPlayerInhaling:
		return cfg.Pink
	case cfg.AnimPlayerFull:
		return cfg.Magenta
	case cfg.AnimShootingStar:
		return cfg.Yellow
	case cfg.AnimFlame:
		return cfg.Orange
	case cfg.AnimGuyWalk:
		return cfg.Brown
	case cfg.AnimBird:
		return cfg.LightBlue
	}
	return cfg.White
}

// withAlpha scales a straight-alpha colour into premultiplied form.
func withAlpha(c color.RGBA, opacity float64) color.RGBA {
	a := float64(c.A) / 255 * opacity
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
