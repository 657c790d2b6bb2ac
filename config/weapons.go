package config

// GunType identifies a weapon archetype
type GunType int

const (
	GunNone GunType = iota
	GunRifle
	GunCannon
)

func (g GunType) String() string {
	switch g {
	case GunRifle:
		return "Rifle"
	case GunCannon:
		return "Cannon"
	}
	return "None"
}

// FirePolicy decides when a weapon in cooldown becomes ready again.
type FirePolicy int

const (
	// SingleShotPerPress re-arms every tick; only the press edge limits fire rate.
	SingleShotPerPress FirePolicy = iota
	// AlwaysReadyWhenGrounded re-arms only while the actor stands on ground.
	AlwaysReadyWhenGrounded
)

// WeaponProfile is the per-archetype tuning of the shared weapon core.
type WeaponProfile struct {
	Name            string
	Policy          FirePolicy
	ReloadLock      bool    // firing locks the weapon until a reload completes
	Breathing       bool    // idle forward drift
	CrouchReloadMod float64 // reload posture lean, 0 disables
	Projectile      bool    // firing emits a shot request
	ProjectileSpeed float64
	FireSound       SoundID
}

// Weapons maps every archetype to its profile
var Weapons map[GunType]WeaponProfile

func init() {
	Weapons = map[GunType]WeaponProfile{
		GunRifle: {
			Name:       "Rifle",
			Policy:     SingleShotPerPress,
			ReloadLock: true,
			Breathing:  false,
			FireSound:  SoundRifleFire,
		},
		GunCannon: {
			Name:            "Cannon",
			Policy:          AlwaysReadyWhenGrounded,
			ReloadLock:      false,
			Breathing:       true,
			Projectile:      true,
			ProjectileSpeed: 100,
			FireSound:       SoundCannonFire,
		},
	}
}
