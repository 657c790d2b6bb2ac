package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock (singleton component).
type ClockData struct {
	Delta     float64 // scaled seconds for this tick
	TimeScale float64
	Paused    bool
	Tick      int
}

var Clock = donburi.NewComponentType[ClockData]()
