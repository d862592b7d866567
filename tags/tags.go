package tags

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Titan  = donburi.NewTag().SetName("Titan")
	Orb    = donburi.NewTag().SetName("Orb")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer = "Player"
	ResolvTitan  = "Titan"
	ResolvOrb    = "Orb"
	ResolvProbe  = "probe"

	// Side tags select an opponent's bodies
	ResolvSide1 = "side1"
	ResolvSide2 = "side2"
)

// SideTag returns the resolv tag carried by every body of a side.
func SideTag(side cfg.Side) string {
	if side == cfg.Side2 {
		return ResolvSide2
	}
	return ResolvSide1
}
