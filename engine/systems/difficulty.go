package systems

import (
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
)

// DifficultySystem derives speed and obstacle count from the score
type DifficultySystem struct {
	Step      int
	Base      time.Duration
	Floor     time.Duration
	Decrement time.Duration
	Obstacles *ObstacleManager
}

func NewDifficultySystem(cfg core.Config, obstacles *ObstacleManager) *DifficultySystem {
	return &DifficultySystem{
		Step:      cfg.DifficultyStep,
		Base:      cfg.BaseTick,
		Floor:     cfg.MinTick,
		Decrement: cfg.TickDecrement,
		Obstacles: obstacles,
	}
}

// Level returns floor(score / Step)
func (d *DifficultySystem) Level(score int) int {
	return score / d.Step
}

// TickInterval shrinks by Decrement per level down to Floor
func (d *DifficultySystem) TickInterval(score int) time.Duration {
	return max(d.Floor, d.Base-time.Duration(d.Level(score))*d.Decrement)
}

// Update applies the score to the session: new tick interval, and fresh
// obstacles when the score lands exactly on a level boundary.
func (d *DifficultySystem) Update(s *core.Session) (int, error) {
	s.TickInterval = d.TickInterval(s.Score)
	if s.Score > 0 && s.Score%d.Step == 0 {
		return d.Obstacles.Spawn(s, d.Level(s.Score))
	}
	return 0, nil
}
