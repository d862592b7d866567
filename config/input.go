package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionSwitchLane
	ActionCount // Must be last - used for array sizing
)

// ActionSet is the set of actions a side is holding this tick.
type ActionSet map[ActionID]bool

// NewActionSet builds a set from held actions. Unknown IDs are dropped.
func NewActionSet(actions ...ActionID) ActionSet {
	set := make(ActionSet, len(actions))
	for _, a := range actions {
		if a.Valid() {
			set[a] = true
		}
	}
	return set
}

// Valid reports whether a is a recognized gameplay action.
func (a ActionID) Valid() bool {
	return a > ActionNone && a < ActionCount
}

// actionNames maps host-side action names to IDs. Jump and crouch are
// aliases of the vertical directions.
var actionNames = map[string]ActionID{
	"moveLeft":   ActionMoveLeft,
	"moveRight":  ActionMoveRight,
	"moveUp":     ActionMoveUp,
	"jump":       ActionMoveUp,
	"moveDown":   ActionMoveDown,
	"crouch":     ActionMoveDown,
	"attack":     ActionAttack,
	"switchLane": ActionSwitchLane,
}

// ParseAction maps a host action name to its ID.
func ParseAction(name string) (ActionID, bool) {
	id, ok := actionNames[name]
	return id, ok
}

// ParseActionSet builds a set from names, ignoring anything unrecognized.
func ParseActionSet(names ...string) ActionSet {
	set := make(ActionSet, len(names))
	for _, n := range names {
		if id, ok := ParseAction(n); ok {
			set[id] = true
		}
	}
	return set
}
