package ai

import (
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
	"github.com/1siamBot/snake-engine/engine/pathfind"
)

// Autopilot steers the snake toward the food along an A* path and falls
// back to the roomiest open neighbour when the food is unreachable or the
// path leads into a pocket smaller than the snake.
type Autopilot struct {
	Chased    int // decisions that followed a path to food
	Fallbacks int // decisions made by the space heuristic
	Trapped   int // decisions with no open neighbour
}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Decide returns the heading for the next step. It never returns the
// reverse of the current heading.
func (a *Autopilot) Decide(s *core.Session) maplib.Direction {
	ng := pathfind.NewNavGrid(s)
	head := s.Head()

	if path := pathfind.FindPath(ng, head, s.Food); path != nil {
		if d, ok := pathfind.FirstMove(path); ok && d != s.Direction.Opposite() {
			if a.room(ng, head.Add(d)) >= s.Len() {
				a.Chased++
				return d
			}
		}
	}

	best, bestRoom := s.Direction, -1
	for _, d := range candidates(s.Direction) {
		next := head.Add(d)
		if !ng.Passable(next) {
			continue
		}
		if r := a.room(ng, next); r > bestRoom {
			best, bestRoom = d, r
		}
	}
	if bestRoom < 0 {
		a.Trapped++
		return s.Direction
	}
	a.Fallbacks++
	return best
}

// Drive applies a decision to a running loop
func (a *Autopilot) Drive(gl *core.GameLoop) bool {
	if gl.State() != core.StateRunning {
		return false
	}
	return gl.SetDirection(a.Decide(gl.Session()))
}

// room counts the cells reachable from c once the head has moved there
func (a *Autopilot) room(ng *pathfind.NavGrid, c maplib.Cell) int {
	cost := ng.Cost(c)
	ng.SetBlocked(c)
	n := pathfind.NewDistanceField(ng, c).Reachable()
	ng.SetCost(c, cost)
	return n
}

// candidates lists the legal headings, current heading first so ties keep
// the snake going straight
func candidates(cur maplib.Direction) []maplib.Direction {
	out := []maplib.Direction{cur}
	for _, d := range maplib.Directions {
		if d != cur && d != cur.Opposite() {
			out = append(out, d)
		}
	}
	return out
}
