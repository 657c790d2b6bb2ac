package config

import "github.com/go-gl/mathgl/mgl64"

// PartLayout places one rig part relative to the rig root.
type PartLayout struct {
	Name   string
	Offset mgl64.Vec3
}

// RigLayout is the rest geometry of a weapon in camera space: x right,
// y up, z forward.
type RigLayout struct {
	Root  mgl64.Vec3
	Parts []PartLayout // drawn as a polyline in order

	// Names of the parts used as pivots
	Barrel string
	Center string
	Stock  string

	DominantHand mgl64.Vec3
	SupportHand  mgl64.Vec3
}

// Rigs maps every gun to its rig geometry
var Rigs map[GunType]RigLayout

func init() {
	Rigs = map[GunType]RigLayout{
		GunRifle: {
			Root: mgl64.Vec3{0.09, -0.08, 0.3},
			Parts: []PartLayout{
				{Name: "muzzle", Offset: mgl64.Vec3{0, 0.01, 0.28}},
				{Name: "barrel", Offset: mgl64.Vec3{0, 0.01, 0.2}},
				{Name: "receiver", Offset: mgl64.Vec3{0, 0, 0.05}},
				{Name: "grip", Offset: mgl64.Vec3{0, -0.04, 0}},
				{Name: "stock", Offset: mgl64.Vec3{0, -0.01, -0.15}},
			},
			Barrel:       "barrel",
			Center:       "receiver",
			Stock:        "stock",
			DominantHand: mgl64.Vec3{0, -0.05, 0},
			SupportHand:  mgl64.Vec3{-0.01, -0.02, 0.16},
		},
		GunCannon: {
			Root: mgl64.Vec3{0.1, -0.1, 0.32},
			Parts: []PartLayout{
				{Name: "mouth", Offset: mgl64.Vec3{0, 0.02, 0.22}},
				{Name: "barrel", Offset: mgl64.Vec3{0, 0.02, 0.12}},
				{Name: "chamber", Offset: mgl64.Vec3{0, 0, 0}},
				{Name: "back", Offset: mgl64.Vec3{0, 0.01, -0.12}},
			},
			Barrel:       "barrel",
			Center:       "chamber",
			Stock:        "back",
			DominantHand: mgl64.Vec3{0.01, -0.05, -0.02},
			SupportHand:  mgl64.Vec3{-0.03, -0.03, 0.1},
		},
	}
}
