package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/viewmodel/arena"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/systems"
	"github.com/automoto/viewmodel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewmodelScene drives a simulated actor holding the rifle and the cannon
type ViewmodelScene struct {
	ecs    *ecs.ECS
	assets fs.FS
	saved  *systems.SavedSettings
	once   sync.Once
}

// NewViewmodelScene creates the sandbox scene. Sounds are read from assets.
func NewViewmodelScene(assets fs.FS, saved *systems.SavedSettings) *ViewmodelScene {
	return &ViewmodelScene{assets: assets, saved: saved}
}

func (vs *ViewmodelScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewmodelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *ViewmodelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateActorMotion)
	ecs.AddSystem(systems.UpdateLoadout)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateWeapons)
	ecs.AddSystem(systems.UpdateMuzzleFlash)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawRig)
	ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawArena)

	vs.ecs = ecs

	systems.InitAudio(vs.ecs, vs.assets)
	start := systems.ApplySavedSettings(vs.ecs, vs.saved)

	layout, err := arena.Load(vs.assets, cfg.Arena.Path)
	if err != nil {
		log.Printf("Warning: Could not load arena, using a flat one: %v", err)
		layout = arena.Flat(cfg.C.Width, 12*cfg.Arena.CellSize)
	}
	factory.CreateArena(vs.ecs, layout)

	actor, err := factory.CreateActor(vs.ecs, cfg.GunRifle, cfg.GunCannon)
	if err != nil {
		panic("failed to create actor: " + err.Error())
	}
	if err := systems.EquipGun(vs.ecs, actor, start); err != nil {
		panic(err)
	}
}
