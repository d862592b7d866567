package components

import (
	"github.com/automoto/lanebrawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the collision box in arena coordinates.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves and resizes the object, keeping its resolv shape in sync.
func (o *ObjectData) SetRect(r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	if o.W != r.W || o.H != r.H {
		o.W, o.H = r.W, r.H
		o.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase for every body in the arena.
var Space = donburi.NewComponentType[resolv.Space]()
