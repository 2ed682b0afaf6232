package systems

import (
	"fmt"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// FoodManager relocates the single food item
type FoodManager struct {
	sampler
	AvoidOccupied bool
}

func NewFoodManager(cfg core.Config, rng core.Rand) *FoodManager {
	return &FoodManager{
		sampler:       sampler{rng: rng, attempts: cfg.MaxSpawnAttempts},
		AvoidOccupied: cfg.FoodAvoidsOccupied,
	}
}

// Spawn moves the food to a uniformly random cell. Unless AvoidOccupied is
// set the cell may lie on the snake or an obstacle, as in the classic game.
func (m *FoodManager) Spawn(s *core.Session) error {
	if !m.AvoidOccupied {
		s.Food = m.random(s.Board)
		return nil
	}
	c, ok := m.find(s.Board, func(c maplib.Cell) bool {
		if s.OnSnake(c) {
			return false
		}
		_, blocked := s.ObstacleAt(c)
		return !blocked
	})
	if !ok {
		return fmt.Errorf("food: %w", core.ErrBoardFull)
	}
	s.Food = c
	return nil
}
