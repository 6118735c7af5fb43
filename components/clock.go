package components

import "github.com/yohamta/donburi"

// ClockData is a singleton holding the seconds elapsed in the current tick
type ClockData struct {
	DT      float64
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
