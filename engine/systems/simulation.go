package systems

import "github.com/1siamBot/snake-engine/engine/core"

// Simulation wires the systems together and implements core.Simulation.
// All systems share one random source so a seed fixes the whole game.
type Simulation struct {
	Movement   *MovementSystem
	Food       *FoodManager
	Obstacles  *ObstacleManager
	Difficulty *DifficultySystem
	Interp     *InterpolationSystem
}

func NewSimulation(cfg core.Config, rng core.Rand) *Simulation {
	food := NewFoodManager(cfg, rng)
	obstacles := NewObstacleManager(cfg, rng)
	difficulty := NewDifficultySystem(cfg, obstacles)
	return &Simulation{
		Movement: &MovementSystem{
			sampler:    sampler{rng: rng, attempts: cfg.MaxSpawnAttempts},
			Reward:     cfg.FoodReward,
			Food:       food,
			Difficulty: difficulty,
		},
		Food:       food,
		Obstacles:  obstacles,
		Difficulty: difficulty,
		Interp:     &InterpolationSystem{Speed: cfg.AnimationSpeed},
	}
}

// Init sets the starting speed and places the first food
func (sim *Simulation) Init(s *core.Session) error {
	s.TickInterval = sim.Difficulty.TickInterval(s.Score)
	return sim.Food.Spawn(s)
}

func (sim *Simulation) Step(s *core.Session) core.StepResult {
	return sim.Movement.Step(s)
}

func (sim *Simulation) Interpolate(s *core.Session) {
	sim.Interp.Update(s)
}
