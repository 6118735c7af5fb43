package tags

import "github.com/yohamta/donburi"

var (
	Background = donburi.NewTag().SetName("Background")
	Title      = donburi.NewTag().SetName("Title")
	Tooltip    = donburi.NewTag().SetName("Tooltip")
)
