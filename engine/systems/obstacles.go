package systems

import (
	"fmt"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// ObstacleManager places walls, spikes and portals. Obstacles are never
// removed.
type ObstacleManager struct {
	sampler
	Cap int
}

func NewObstacleManager(cfg core.Config, rng core.Rand) *ObstacleManager {
	return &ObstacleManager{
		sampler: sampler{rng: rng, attempts: cfg.MaxSpawnAttempts},
		Cap:     cfg.ObstacleCap,
	}
}

// Spawn adds min(Cap, level) obstacles on cells free of food and obstacles
// and not adjacent to the snake. It stops early with ErrBoardFull when no
// such cell is left and reports how many it placed.
func (m *ObstacleManager) Spawn(s *core.Session, level int) (int, error) {
	n := min(m.Cap, level)
	accept := func(c maplib.Cell) bool {
		return !s.IsOccupied(c) && !s.IsNearSnake(c)
	}
	for i := 0; i < n; i++ {
		c, ok := m.find(s.Board, accept)
		if !ok {
			return i, fmt.Errorf("obstacle %d of %d: %w", i+1, n, core.ErrBoardFull)
		}
		kind := core.ObstacleKinds[m.rng.Intn(len(core.ObstacleKinds))]
		s.Obstacles = append(s.Obstacles, core.Obstacle{Cell: c, Kind: kind})
	}
	return n, nil
}
