package core

import (
	"time"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

// ObstacleKind classifies an obstacle
type ObstacleKind uint8

const (
	KindWall ObstacleKind = iota
	KindSpike
	KindPortal
)

// ObstacleKinds lists the kinds in the order the spawner draws from
var ObstacleKinds = [3]ObstacleKind{KindWall, KindSpike, KindPortal}

func (k ObstacleKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindSpike:
		return "spike"
	case KindPortal:
		return "portal"
	}
	return "unknown"
}

// Lethal reports whether running into the obstacle ends the game
func (k ObstacleKind) Lethal() bool {
	return k == KindWall || k == KindSpike
}

// Obstacle is a permanent board hazard
type Obstacle struct {
	maplib.Cell
	Kind ObstacleKind
}

// SmoothSegment is the continuous render position of one body segment
type SmoothSegment struct {
	X, Y             float64
	TargetX, TargetY float64
}

// Cause records why a session ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseBoundary
	CauseWall
	CauseSpike
	CauseSelf
	CausePortalBlocked
)

func (c Cause) String() string {
	switch c {
	case CauseBoundary:
		return "left the board"
	case CauseWall:
		return "hit a wall"
	case CauseSpike:
		return "hit a spike"
	case CauseSelf:
		return "bit itself"
	case CausePortalBlocked:
		return "portal had no exit"
	}
	return "none"
}

// Session is the state of one game from start to game over. It is owned by
// a single GameLoop and is not safe for concurrent use.
type Session struct {
	ID    string
	Board maplib.Board

	Snake     []maplib.Cell // head first
	Smooth    []SmoothSegment
	Food      maplib.Cell
	Obstacles []Obstacle
	Direction maplib.Direction

	Score        int
	TickInterval time.Duration
	Steps        uint64 // successful moves

	Over  bool
	Cause Cause
}

// NewSession places a one-segment snake at the configured start cell. Food
// is placed by the simulation.
func NewSession(id string, cfg Config) *Session {
	start := cfg.Start
	return &Session{
		ID:    id,
		Board: cfg.Board(),
		Snake: []maplib.Cell{start},
		Smooth: []SmoothSegment{{
			X: float64(start.X), Y: float64(start.Y),
			TargetX: float64(start.X), TargetY: float64(start.Y),
		}},
		Direction:    cfg.StartDirection,
		TickInterval: cfg.BaseTick,
	}
}

// Head returns the first snake segment
func (s *Session) Head() maplib.Cell {
	return s.Snake[0]
}

// Len returns the snake length
func (s *Session) Len() int {
	return len(s.Snake)
}

// SetDirection changes the heading unless it reverses the current one
func (s *Session) SetDirection(d maplib.Direction) bool {
	if !d.Valid() || d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// IsOccupied reports whether food or an obstacle sits on c
func (s *Session) IsOccupied(c maplib.Cell) bool {
	if s.Food == c {
		return true
	}
	_, ok := s.ObstacleAt(c)
	return ok
}

// IsNearSnake reports whether any segment is within one cell of c, diagonals
// included
func (s *Session) IsNearSnake(c maplib.Cell) bool {
	for _, seg := range s.Snake {
		if maplib.Chebyshev(seg, c) < 2 {
			return true
		}
	}
	return false
}

// ObstacleAt returns the obstacle on c, if any
func (s *Session) ObstacleAt(c maplib.Cell) (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Cell == c {
			return o, true
		}
	}
	return Obstacle{}, false
}

// OnSnake reports whether c is part of the body
func (s *Session) OnSnake(c maplib.Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Prepend adds a new head. The matching smooth segment starts where the old
// head is drawn so the renderer stretches it into place.
func (s *Session) Prepend(c maplib.Cell) {
	from := SmoothSegment{X: float64(c.X), Y: float64(c.Y)}
	if len(s.Smooth) > 0 {
		from = s.Smooth[0]
	}
	s.Snake = append([]maplib.Cell{c}, s.Snake...)
	s.Smooth = append([]SmoothSegment{{
		X: from.X, Y: from.Y,
		TargetX: float64(c.X), TargetY: float64(c.Y),
	}}, s.Smooth...)
}

// PopTail removes the last segment of the snake and its smooth twin
func (s *Session) PopTail() {
	if len(s.Snake) <= 1 {
		return
	}
	s.Snake = s.Snake[:len(s.Snake)-1]
	s.Smooth = s.Smooth[:len(s.Smooth)-1]
}

// End marks the session as lost
func (s *Session) End(cause Cause) {
	s.Over = true
	s.Cause = cause
}

// StepResult describes what a single tick did
type StepResult struct {
	Moved          bool
	Ate            bool
	Teleported     bool
	ObstaclesAdded int
	Over           bool
	Cause          Cause
	From           maplib.Cell // head before the step
	Portal         maplib.Cell // portal entered, when Teleported
	Head           maplib.Cell // head after the step
	Err            error       // spawner exhaustion, the step itself still happened
}

// Simulation advances a session. The systems package provides the game's
// implementation.
type Simulation interface {
	Init(s *Session) error
	Step(s *Session) StepResult
	Interpolate(s *Session)
}
