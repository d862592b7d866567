package components

import (
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state. JustPressed/JustReleased
// are computed on demand by comparing frames.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Load shifts the current frame into Previous and copies the held set in.
func (in *PlayerInputData) Load(held cfg.ActionSet) {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for id, on := range held {
		if on && id.Valid() {
			in.Current[id] = true
		}
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
