package core

import (
	"fmt"
	"time"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

// Config holds every tunable of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	CanvasSize int // playfield size in pixels
	CellSize   int // pixels per cell

	BaseTick      time.Duration // tick interval at level 0
	MinTick       time.Duration // floor of the tick interval
	TickDecrement time.Duration // speed-up per difficulty level

	FoodReward     int // score per food
	ObstacleCap    int // max obstacles added per level-up
	DifficultyStep int // score per difficulty level

	AnimationSpeed float64 // lerp factor applied every frame

	Start          maplib.Cell
	StartDirection maplib.Direction

	MaxSpawnAttempts   int  // random samples before falling back to a board scan
	CatchUp            bool // run several steps per frame after a stall
	MaxCatchUpSteps    int
	FoodAvoidsOccupied bool // keep food off the snake and obstacles

	Seed uint64 // 0 picks a time-based seed
}

// DefaultConfig returns the settings of the classic browser game
func DefaultConfig() Config {
	return Config{
		CanvasSize:       400,
		CellSize:         20,
		BaseTick:         200 * time.Millisecond,
		MinTick:          100 * time.Millisecond,
		TickDecrement:    20 * time.Millisecond,
		FoodReward:       10,
		ObstacleCap:      3,
		DifficultyStep:   50,
		AnimationSpeed:   0.1,
		Start:            maplib.Cell{X: 5, Y: 5},
		StartDirection:   maplib.Right,
		MaxSpawnAttempts: 1000,
		MaxCatchUpSteps:  5,
	}
}

// Board returns the playfield geometry
func (c Config) Board() maplib.Board {
	return maplib.NewBoard(c.CanvasSize, c.CellSize)
}

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	b := c.Board()
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case b.TileCount < 2:
		return fmt.Errorf("%w: board of %d tiles", ErrInvalidConfig, b.TileCount)
	case !b.InBounds(c.Start):
		return fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidConfig, c.Start, b.TileCount, b.TileCount)
	case !c.StartDirection.Valid():
		return fmt.Errorf("%w: start direction %d", ErrInvalidConfig, c.StartDirection)
	case c.MinTick <= 0 || c.BaseTick < c.MinTick:
		return fmt.Errorf("%w: tick interval %v floored at %v", ErrInvalidConfig, c.BaseTick, c.MinTick)
	case c.TickDecrement < 0:
		return fmt.Errorf("%w: negative tick decrement", ErrInvalidConfig)
	case c.FoodReward <= 0:
		return fmt.Errorf("%w: food reward %d", ErrInvalidConfig, c.FoodReward)
	case c.DifficultyStep <= 0:
		return fmt.Errorf("%w: difficulty step %d", ErrInvalidConfig, c.DifficultyStep)
	case c.ObstacleCap < 0:
		return fmt.Errorf("%w: obstacle cap %d", ErrInvalidConfig, c.ObstacleCap)
	case c.AnimationSpeed <= 0 || c.AnimationSpeed > 1:
		return fmt.Errorf("%w: animation speed %v", ErrInvalidConfig, c.AnimationSpeed)
	case c.MaxSpawnAttempts <= 0:
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalidConfig, c.MaxSpawnAttempts)
	case c.CatchUp && c.MaxCatchUpSteps <= 0:
		return fmt.Errorf("%w: catch-up enabled with %d steps", ErrInvalidConfig, c.MaxCatchUpSteps)
	}
	return nil
}
