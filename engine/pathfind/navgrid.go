package pathfind

import (
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// NavGrid is a cost grid derived from a session
type NavGrid struct {
	Board maplib.Board
	Costs []float64 // movement cost per cell (0 = impassable)
}

// NewNavGrid marks the body, walls, spikes and portals as impassable. The
// tail counts as body because moving onto it is fatal. Cells next to a
// lethal obstacle cost more.
func NewNavGrid(s *core.Session) *NavGrid {
	ng := &NavGrid{
		Board: s.Board,
		Costs: make([]float64, s.Board.Area()),
	}
	for i := range ng.Costs {
		ng.Costs[i] = 1.0
	}
	for _, o := range s.Obstacles {
		if !o.Kind.Lethal() {
			continue
		}
		for _, d := range maplib.Directions {
			ng.SetCost(o.Cell.Add(d), 1.5)
		}
	}
	for _, o := range s.Obstacles {
		ng.SetBlocked(o.Cell)
	}
	for _, c := range s.Snake {
		ng.SetBlocked(c)
	}
	return ng
}

// Passable checks if a cell can be entered
func (ng *NavGrid) Passable(c maplib.Cell) bool {
	return ng.Cost(c) > 0
}

// Cost returns the movement cost at c, 0 outside the board
func (ng *NavGrid) Cost(c maplib.Cell) float64 {
	i := ng.Board.Index(c)
	if i < 0 {
		return 0
	}
	return ng.Costs[i]
}

// SetBlocked marks a cell as impassable
func (ng *NavGrid) SetBlocked(c maplib.Cell) {
	ng.SetCost(c, 0)
}

// SetCost sets a custom cost for a cell
func (ng *NavGrid) SetCost(c maplib.Cell, cost float64) {
	if i := ng.Board.Index(c); i >= 0 {
		ng.Costs[i] = cost
	}
}
