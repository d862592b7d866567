package config

// Side identifies one of the two teams. Side1 plays from the left edge.
type Side int

const (
	SideNone Side = 0
	Side1    Side = 1
	Side2    Side = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// Index maps a side to a zero-based array index.
func (s Side) Index() int {
	return int(s) - 1
}

// Valid reports whether s is Side1 or Side2.
func (s Side) Valid() bool {
	return s == Side1 || s == Side2
}

// Lane is one of the two parallel combat planes.
type Lane int

const (
	LaneForeground Lane = iota
	LaneBackground
)

func (l Lane) Other() Lane {
	if l == LaneForeground {
		return LaneBackground
	}
	return LaneForeground
}

func (l Lane) String() string {
	switch l {
	case LaneForeground:
		return "foreground"
	case LaneBackground:
		return "background"
	}
	return "unknown"
}

// Winner is the match outcome.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerSide1
	WinnerSide2
	WinnerDraw
)

// WinnerFor returns the outcome crediting side.
func WinnerFor(side Side) Winner {
	if side == Side1 {
		return WinnerSide1
	}
	return WinnerSide2
}

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerSide1:
		return "side1"
	case WinnerSide2:
		return "side2"
	case WinnerDraw:
		return "draw"
	}
	return "unknown"
}

// HitCategory tags the last impactful hit for the renderer's VFX.
type HitCategory int

const (
	HitNone HitCategory = iota
	HitBlade
	HitHandle
	HitSpecial
	HitTitanClash
	HitSiegeBeam
)

func (c HitCategory) String() string {
	switch c {
	case HitBlade:
		return "blade"
	case HitHandle:
		return "handle"
	case HitSpecial:
		return "special"
	case HitTitanClash:
		return "titan-clash"
	case HitSiegeBeam:
		return "siege-beam"
	}
	return "none"
}

// TitanState is the titan controller's current behavior.
type TitanState int

const (
	TitanDueling TitanState = iota
	TitanMarching
	TitanSieging
	TitanDormant
	TitanDead
)

func (s TitanState) String() string {
	switch s {
	case TitanDueling:
		return "dueling"
	case TitanMarching:
		return "marching"
	case TitanSieging:
		return "sieging"
	case TitanDormant:
		return "dormant"
	case TitanDead:
		return "dead"
	}
	return "unknown"
}

// PlayerPhase is the respawn machine state of a player.
type PlayerPhase int

const (
	PhaseAlive PlayerPhase = iota
	PhaseDying
	PhaseRespawning
	PhaseResurrecting
)

func (p PlayerPhase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseDying:
		return "dying"
	case PhaseRespawning:
		return "respawning"
	case PhaseResurrecting:
		return "resurrecting"
	}
	return "unknown"
}

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
