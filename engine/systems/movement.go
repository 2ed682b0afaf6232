package systems

import (
	"errors"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// MovementSystem advances the snake one cell and resolves collisions
type MovementSystem struct {
	sampler
	Reward     int
	Food       *FoodManager
	Difficulty *DifficultySystem
}

// Step runs one tick:
//  1. the candidate head is the current head moved one cell along Direction
//  2. leaving the board, walls and spikes end the game
//  3. a portal replaces the candidate with a random cell free of food and
//     obstacles; closeness to the snake is not checked
//  4. a candidate on the body, tail included, ends the game
//  5. otherwise the head is prepended; eating grows the snake, any other
//     move drops the tail
func (m *MovementSystem) Step(s *core.Session) core.StepResult {
	res := core.StepResult{From: s.Head(), Head: s.Head()}
	if s.Over {
		res.Over, res.Cause = true, s.Cause
		return res
	}

	next := s.Head().Add(s.Direction)
	if !s.Board.InBounds(next) {
		return m.end(s, res, core.CauseBoundary)
	}

	if obs, hit := s.ObstacleAt(next); hit {
		switch obs.Kind {
		case core.KindWall:
			return m.end(s, res, core.CauseWall)
		case core.KindSpike:
			return m.end(s, res, core.CauseSpike)
		case core.KindPortal:
			exit, ok := m.find(s.Board, func(c maplib.Cell) bool { return !s.IsOccupied(c) })
			if !ok {
				return m.end(s, res, core.CausePortalBlocked)
			}
			res.Teleported, res.Portal = true, obs.Cell
			next = exit
		}
	}

	if s.OnSnake(next) {
		return m.end(s, res, core.CauseSelf)
	}

	s.Prepend(next)
	s.Steps++
	res.Moved, res.Head = true, next

	if next != s.Food {
		s.PopTail()
		return res
	}

	res.Ate = true
	s.Score += m.Reward
	added, err := m.Difficulty.Update(s)
	res.ObstaclesAdded = added
	if ferr := m.Food.Spawn(s); ferr != nil {
		err = errors.Join(err, ferr)
	}
	res.Err = err
	return res
}

func (m *MovementSystem) end(s *core.Session, res core.StepResult, cause core.Cause) core.StepResult {
	s.End(cause)
	res.Over, res.Cause = true, cause
	return res
}
