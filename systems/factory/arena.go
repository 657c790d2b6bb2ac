package factory

import (
	"github.com/automoto/viewmodel/archetypes"
	"github.com/automoto/viewmodel/arena"
	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the collision space of a layout and adds its solids.
func CreateArena(ecs *ecs.ECS, layout *arena.Layout) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	space := resolv.NewSpace(layout.Width, layout.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)

	for _, r := range layout.Solids {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	components.Arena.SetValue(entry, components.ArenaData{Space: space, Layout: layout})
	return entry
}

// attachBody places a collision box for actor at the arena's spawn point.
// Actors created without an arena have no body.
func attachBody(ecs *ecs.ECS, actor *donburi.Entry) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok || !actor.HasComponent(components.Body) {
		return
	}
	a := components.Arena.Get(arenaEntry)
	w, h := cfg.Arena.BodyWidth, cfg.Arena.BodyHeight

	obj := resolv.NewObject(a.Layout.Spawn.X-w/2, a.Layout.Spawn.Y-h, w, h, tags.ResolvActor)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = actor
	a.Space.Add(obj)

	components.Body.SetValue(actor, components.BodyData{
		Object: obj,
		Facing: 1,
		FloorY: a.Layout.Spawn.Y,
	})
}
