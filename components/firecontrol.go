package components

import (
	cfg "github.com/automoto/viewmodel/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FireState is the readiness of a weapon's trigger.
type FireState int

const (
	FireReady FireState = iota
	FireCooldown
	FireReloadLocked
)

func (s FireState) String() string {
	switch s {
	case FireReady:
		return "Ready"
	case FireCooldown:
		return "Cooldown"
	case FireReloadLocked:
		return "ReloadLocked"
	}
	return "Unknown"
}

// FireEvent records a shot that was allowed this tick.
type FireEvent struct {
	Gun  cfg.GunType
	Tick int
}

// ShotRequest asks the game to spawn a projectile.
type ShotRequest struct {
	Origin   mgl64.Vec3 // camera position
	Muzzle   mgl64.Vec3 // barrel pivot, offset by the camera position
	Velocity mgl64.Vec3
}

// FireControlData is the trigger state machine of one weapon.
type FireControlData struct {
	State         FireState // FireReady or FireCooldown
	ReloadLocked  bool
	InputConsumed bool // the current press already produced a shot
	Policy        cfg.FirePolicy
	ReloadCapable bool
	ShotsFired    int
	PendingEvents []FireEvent
	PendingShots  []ShotRequest
}

// Phase reports the externally visible state, with the reload lock taking
// precedence over the cooldown.
func (f *FireControlData) Phase() FireState {
	if f.ReloadLocked {
		return FireReloadLocked
	}
	return f.State
}

// Reset returns the trigger to ready without clearing the configuration.
func (f *FireControlData) Reset() {
	f.State = FireReady
	f.ReloadLocked = false
	f.InputConsumed = false
	f.PendingEvents = f.PendingEvents[:0]
	f.PendingShots = f.PendingShots[:0]
}

var FireControl = donburi.NewComponentType[FireControlData]()
