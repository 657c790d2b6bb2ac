package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/viewmodel/components"
	cfg "github.com/automoto/viewmodel/config"
	"github.com/automoto/viewmodel/fonts"
	"github.com/automoto/viewmodel/gamemath"
	"github.com/automoto/viewmodel/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// nearPlane keeps points behind the camera from being drawn.
const nearPlane = 0.05

// project maps a camera-space point to the screen. ViewScale is the focal
// length in pixels.
func project(p mgl64.Vec3, width, height int) (float32, float32, bool) {
	if p.Z() < nearPlane {
		return 0, 0, false
	}
	f := cfg.Sandbox.ViewScale
	x := float64(width)/2 + p.X()/p.Z()*f
	y := float64(height)/2 - p.Y()/p.Z()*f
	return float32(x), float32(y), true
}

// DrawRig draws the held weapon's parts, hands and pivots.
func DrawRig(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sandbox.Background)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		if !components.Weapon.Get(entry).Active() {
			return
		}
		rig := components.Rig.Get(entry)

		for i := 1; i < len(rig.Parts); i++ {
			drawSegment(screen, rig.Parts[i-1].Transform, rig.Parts[i].Transform, cfg.Sandbox.PartColor, width, height)
		}
		drawSegment(screen, rig.Center, rig.DominantHand.Transform, cfg.Sandbox.HandColor, width, height)
		drawSegment(screen, rig.Center, rig.SupportHand.Transform, cfg.Sandbox.HandColor, width, height)
		drawPoint(screen, rig.DominantHand.Transform.WorldPosition(), 4, cfg.Sandbox.HandColor, width, height)
		drawPoint(screen, rig.SupportHand.Transform.WorldPosition(), 4, cfg.Sandbox.HandColor, width, height)

		if cfg.Debug.ShowPivots {
			for _, t := range []*gamemath.Transform{rig.Barrel, rig.Center, rig.Stock} {
				drawPoint(screen, t.WorldPosition(), 3, cfg.Sandbox.PivotColor, width, height)
			}
		}

		if entry.HasComponent(components.MuzzleFlash) && components.MuzzleFlash.Get(entry).Duration > 0 {
			drawPoint(screen, rig.Barrel.WorldPosition(), 8, cfg.Sandbox.ProjectileColor, width, height)
		}
	})
}

// DrawProjectiles draws launched shots relative to the actor's camera.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	var camera mgl64.Vec3
	if actor, ok := ActorEntry(ecs); ok {
		camera = components.Actor.Get(actor).CameraPosition
	}

	components.Projectile.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		drawPoint(screen, p.Position.Sub(camera), 3, cfg.Sandbox.ProjectileColor, width, height)
	})
}

// DrawHUD prints the state of the held weapon and its sway channels.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	clock := GetOrCreateClock(ecs)
	actor, ok := ActorEntry(ecs)
	if !ok {
		return
	}

	audioData := GetOrCreateAudio(ecs)
	msg := fmt.Sprintf("tick %d  paused %v  sfx %.0f%%  muted %v\n", clock.Tick, clock.Paused, audioData.SFXVolume*100, audioData.Muted)
	gun := CurrentGun(ecs, actor)
	if gun == nil {
		msg += "holstered (1 rifle, 2 cannon)"
		drawText(ecs, screen, msg)
		return
	}

	entry := gun.Entry()
	fc := components.FireControl.Get(entry)
	msg += fmt.Sprintf("%s  %s  shots %d\n", gun.Type(), fc.Phase(), fc.ShotsFired)

	if cfg.Debug.ShowChannels {
		s := components.Sway.Get(entry)
		pose := components.Pose.Get(entry)
		msg += fmt.Sprintf("lateral %+.3f  soft %+.3f\n", s.Lateral.Current, s.LateralSoft.Current)
		msg += fmt.Sprintf("vertical %+.3f  soft %+.3f\n", s.Vertical.Current, s.VerticalSoft.Current)
		msg += fmt.Sprintf("forward %+.3f  crouch %.2f\n", s.Forward.Current, s.CrouchFactor)
		msg += fmt.Sprintf("support %.2f  drop %.3f", pose.SupportBlend, pose.HolsterDrop)
	}
	drawText(ecs, screen, msg)
}

func drawText(ecs *ecs.ECS, screen *ebiten.Image, msg string) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	text.Draw(screen, msg, fonts.HUD.Get(), 8, 16, color.White)
	if fonts.Loaded(fonts.HUDSmall) {
		hint := ControlsHint(getOrCreateInput(ecs).LastInputMethod)
		text.Draw(screen, hint, fonts.HUDSmall.Get(), 8, screen.Bounds().Dy()-8, color.Gray{Y: 160})
	}
}

// ControlsHint returns the controls line for the device last used.
func ControlsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Stick yaw  A jump  B slide  RT fire  Start pause"
	}
	return "A/D yaw  Space jump  Shift slide  Z/LMB fire  1/2/0 guns  M mute  -/= volume  P pause"
}

// DrawArena draws a minimap of the arena solids and the actor's body.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	a := components.Arena.Get(arenaEntry)
	scale := cfg.Arena.MinimapScale
	ox := float64(screen.Bounds().Dx()) - float64(a.Layout.Width)*scale - 8
	oy := 8.0

	for _, r := range a.Layout.Solids {
		vector.DrawFilledRect(screen,
			float32(ox+r.X*scale), float32(oy+r.Y*scale),
			float32(r.W*scale), float32(r.H*scale),
			cfg.Arena.SolidColor, false)
	}

	tags.Actor.Each(ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Body) {
			return
		}
		obj := components.Body.Get(entry).Object
		vector.DrawFilledRect(screen,
			float32(ox+obj.X*scale), float32(oy+obj.Y*scale),
			float32(obj.W*scale), float32(obj.H*scale),
			cfg.Arena.BodyColor, false)
	})
}

func drawSegment(screen *ebiten.Image, a, b *gamemath.Transform, clr color.Color, width, height int) {
	x0, y0, ok0 := project(a.WorldPosition(), width, height)
	x1, y1, ok1 := project(b.WorldPosition(), width, height)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
}

func drawPoint(screen *ebiten.Image, p mgl64.Vec3, size float32, clr color.Color, width, height int) {
	x, y, ok := project(p, width, height)
	if !ok {
		return
	}
	vector.FillRect(screen, x-size/2, y-size/2, size, size, clr, false)
}
