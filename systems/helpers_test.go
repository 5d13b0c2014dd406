package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/leveldata"
	"github.com/automoto/puffball/systems/factory"
	"github.com/automoto/puffball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const frame = 1.0 / 60

// gameplay is the frame pipeline without keyboard polling; tests drive the
// Input singleton directly.
var gameplay = []func(*ecs.ECS){
	UpdateClock,
	UpdatePlayer,
	UpdateEnemies,
	UpdateMovers,
	UpdatePhysics,
	UpdateInhale,
	UpdateObjects,
	UpdateContacts,
	UpdateEffects,
	UpdateCamera,
	UpdateOffscreen,
}

// collisions re-runs only positioning and contact detection.
var collisions = []func(*ecs.ECS){
	UpdateInhale,
	UpdateObjects,
	UpdateContacts,
}

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	factory.Seed(1)

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(w)
	factory.CreateInput(w)
	RegisterContactHandlers(w)
	factory.CreateSpace(w, 4000, 2000, cfg.Physics.CellSize)
	factory.CreateLevel(w, "level1", &leveldata.Level{Width: 4000, Height: 2000}, 0)
	factory.CreateCamera(w, 500)
	return w
}

func run(w *ecs.ECS, systems []func(*ecs.ECS)) {
	for _, s := range systems {
		s(w)
	}
}

// runFrames plays n full frames with the given actions held throughout.
func runFrames(w *ecs.ECS, n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		hold(w, actions...)
		run(w, gameplay)
	}
}

// hold sets the actions held this frame, keeping last frame's for edges.
func hold(w *ecs.ECS, actions ...cfg.ActionID) {
	var held [cfg.ActionCount]bool
	for _, a := range actions {
		held[a] = true
	}
	inputState(w).Latch(held)
}

// addGround places a solid whose top edge is at y.
func addGround(w *ecs.ECS, y float64) {
	factory.CreatePlatform(w, leveldata.Rect{X: -1000, Y: y, W: 6000, H: 64})
}

// addStandingPlayer spawns the player at (x, y) resting on fresh ground.
func addStandingPlayer(w *ecs.ECS, x, y float64) *donburi.Entry {
	addGround(w, y+cfg.Player.Hitbox.Y+cfg.Player.Hitbox.H)
	return factory.CreatePlayer(w, x, y)
}

func count(w *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w.World)
}

func now(w *ecs.ECS) float64 {
	return factory.Scheduler(w.World).Now()
}

func level(w *ecs.ECS) *components.LevelData {
	e, _ := components.Level.First(w.World)
	return components.Level.Get(e)
}

func inhaleEffect(w *ecs.ECS) *components.VisualData {
	e, ok := tags.InhaleEffect.First(w.World)
	if !ok {
		return nil
	}
	return components.Visual.Get(e)
}
