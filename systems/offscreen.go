package systems

import (
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// View is the world-space rectangle the camera shows.
type View struct {
	MinX, MinY, MaxX, MaxY float64
}

// CameraView returns the area visible through camera on a screen of the
// configured size.
func CameraView(camera *components.CameraData) View {
	halfW := float64(cfg.C.Width) / 2 / camera.Scale
	halfH := float64(cfg.C.Height) / 2 / camera.Scale
	return View{
		MinX: camera.Position.X - halfW,
		MinY: camera.Position.Y - halfH,
		MaxX: camera.Position.X + halfW,
		MaxY: camera.Position.Y + halfH,
	}
}

// Outside reports whether (x, y) lies more than distance units beyond the view.
func (v View) Outside(x, y, distance float64) bool {
	return x < v.MinX-distance || x > v.MaxX+distance ||
		y < v.MinY-distance || y > v.MaxY+distance
}

// UpdateOffscreen destroys entities that drifted too far out of view.
func UpdateOffscreen(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := CameraView(components.Camera.Get(cameraEntry))

	var gone []donburi.Entity
	components.Offscreen.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		if view.Outside(pos.X, pos.Y, components.Offscreen.Get(e).Distance) {
			gone = append(gone, e.Entity())
		}
	})
	for _, entity := range gone {
		factory.Destroy(ecs, entity)
	}
}
