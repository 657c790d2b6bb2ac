package components

import "github.com/yohamta/donburi"

// MuzzleFlashData tracks the muzzle flash drawn after a shot
type MuzzleFlashData struct {
	Duration int // frames remaining
	Shots    int // fire events seen since spawn
	LastTick int // clock tick of the latest fire event
}

var MuzzleFlash = donburi.NewComponentType[MuzzleFlashData]()
