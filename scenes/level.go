package scenes

import (
	"log"
	"math"
	"sync"

	"github.com/automoto/puffball/assets"
	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/automoto/puffball/leveldata"
	"github.com/automoto/puffball/systems"
	"github.com/automoto/puffball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// LevelScene plays one level until the player dies, falls or reaches an exit.
type LevelScene struct {
	ecs          *ecs.ECS
	name         string
	sceneChanger SceneChanger
	once         sync.Once
}

func NewLevelScene(sc SceneChanger, name string) *LevelScene {
	return &LevelScene{sceneChanger: sc, name: name}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	levelEntry, ok := components.Level.First(ls.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.NextScene == "" {
		return
	}
	log.Printf("Leaving %s for %s: %s", ls.name, level.NextScene, level.NextReason)
	ls.sceneChanger.ChangeScene(NewLevelScene(ls.sceneChanger, level.NextScene))
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ls.ecs = NewLevelWorld(ls.name, assets.MustLoadLevel(ls.name))

	ls.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}

// NewLevelWorld builds the world for a loaded level and registers the frame
// systems in order. Renderers are left to the caller.
func NewLevelWorld(name string, data *leveldata.Level) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateMovers)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateInhale)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateContacts)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateOffscreen)

	Populate(ecs, name, data)
	return ecs
}

// Populate creates the level's entities: geometry, camera, player, enemies
// and the bird spawners.
func Populate(ecs *ecs.ECS, name string, data *leveldata.Level) {
	factory.CreateClock(ecs)
	factory.CreateInput(ecs)
	systems.RegisterContactHandlers(ecs)

	cell := cfg.Physics.CellSize
	factory.CreateSpace(ecs, int(math.Ceil(data.Width)), int(math.Ceil(data.Height)), cell)
	factory.CreateLevel(ecs, name, data, 0)
	factory.CreateGeometry(ecs, data)

	spawn := data.Spawns(leveldata.SpawnPlayer)[0]
	factory.CreateCamera(ecs, spawn.X+cfg.Camera.LeadX)
	factory.CreatePlayer(ecs, spawn.X, spawn.Y)
	factory.CreateInhaleEffect(ecs, spawn.X, spawn.Y)

	for _, p := range data.Spawns(leveldata.SpawnFlame) {
		factory.CreateFlame(ecs, p.X, p.Y)
	}
	for _, p := range data.Spawns(leveldata.SpawnGuy) {
		factory.CreateGuy(ecs, p.X, p.Y)
	}

	sched := factory.Scheduler(ecs.World)
	for _, p := range data.Spawns(leveldata.SpawnBird) {
		sched.Every(cfg.Enemy.Bird.SpawnInterval, func() {
			factory.CreateBird(ecs, p.X, p.Y)
		})
	}

	log.Printf("Loaded %s: %d solids, %d exits, %d flames, %d guys, %d bird spawners",
		name, len(data.Solids), len(data.Exits),
		len(data.Spawns(leveldata.SpawnFlame)), len(data.Spawns(leveldata.SpawnGuy)),
		len(data.Spawns(leveldata.SpawnBird)))
}
