package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// scriptRand replays fixed values, then returns zero
type scriptRand struct {
	vals []int
	i    int
}

func (r *scriptRand) Intn(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

func newTestSession(t *testing.T, cfg core.Config) *core.Session {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return core.NewSession("test", cfg)
}

func TestStepEatsFood(t *testing.T) {
	cfg := core.DefaultConfig()
	rng := &scriptRand{vals: []int{12, 13}}
	sim := NewSimulation(cfg, rng)
	s := newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 6, Y: 5}

	res := sim.Step(s)

	if !res.Moved || !res.Ate {
		t.Fatalf("expected move and eat, got %+v", res)
	}
	if s.Head() != (maplib.Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, want (6,5)", s.Head())
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if s.Len() != 2 {
		t.Errorf("length = %d, want 2", s.Len())
	}
	if s.Food != (maplib.Cell{X: 12, Y: 13}) {
		t.Errorf("food respawned at %v, want (12,13)", s.Food)
	}
	if rng.i != 2 {
		t.Errorf("expected exactly one food respawn (2 draws), got %d draws", rng.i)
	}
}

func TestStepWithoutFoodKeepsLength(t *testing.T) {
	cfg := core.DefaultConfig()
	sim := NewSimulation(cfg, &scriptRand{})
	s := newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 0, Y: 0}
	s.Prepend(maplib.Cell{X: 6, Y: 5})
	s.Direction = maplib.Right

	before := s.Len()
	res := sim.Step(s)
	if !res.Moved || res.Ate {
		t.Fatalf("unexpected result %+v", res)
	}
	if s.Len() != before {
		t.Errorf("length changed from %d to %d", before, s.Len())
	}
	if s.Snake[0] != (maplib.Cell{X: 7, Y: 5}) || s.Snake[1] != (maplib.Cell{X: 6, Y: 5}) {
		t.Errorf("unexpected body %v", s.Snake)
	}
}

func TestStepLeavesBoard(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Start = maplib.Cell{X: 19, Y: 5}
	sim := NewSimulation(cfg, &scriptRand{})
	s := newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 0, Y: 0}

	res := sim.Step(s)
	if !res.Over || res.Cause != core.CauseBoundary {
		t.Fatalf("expected boundary game over, got %+v", res)
	}
	if !s.Over {
		t.Error("session not marked over")
	}
	if s.Head() != cfg.Start || s.Len() != 1 {
		t.Errorf("snake mutated on a fatal step: %v", s.Snake)
	}

	// further steps do nothing
	again := sim.Step(s)
	if again.Moved || !again.Over {
		t.Errorf("step after game over moved: %+v", again)
	}
}

func TestStepObstacles(t *testing.T) {
	tests := []struct {
		name  string
		kind  core.ObstacleKind
		cause core.Cause
	}{
		{"wall", core.KindWall, core.CauseWall},
		{"spike", core.KindSpike, core.CauseSpike},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			sim := NewSimulation(cfg, &scriptRand{})
			s := newTestSession(t, cfg)
			s.Food = maplib.Cell{X: 0, Y: 0}
			s.Obstacles = []core.Obstacle{{Cell: maplib.Cell{X: 6, Y: 5}, Kind: tt.kind}}

			res := sim.Step(s)
			if !res.Over || res.Cause != tt.cause {
				t.Errorf("expected %s, got %+v", tt.cause, res)
			}
		})
	}
}

func TestStepPortalTeleports(t *testing.T) {
	cfg := core.DefaultConfig()
	// first draw lands on the food and is rejected, second is free
	rng := &scriptRand{vals: []int{0, 0, 10, 11}}
	sim := NewSimulation(cfg, rng)
	s := newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 0, Y: 0}
	s.Obstacles = []core.Obstacle{{Cell: maplib.Cell{X: 6, Y: 5}, Kind: core.KindPortal}}

	res := sim.Step(s)
	if res.Over {
		t.Fatalf("portal should not end the game: %+v", res)
	}
	if !res.Teleported || res.Portal != (maplib.Cell{X: 6, Y: 5}) {
		t.Errorf("expected teleport through (6,5), got %+v", res)
	}
	if s.Head() != (maplib.Cell{X: 10, Y: 11}) {
		t.Errorf("head = %v, want (10,11)", s.Head())
	}
	if s.Len() != 1 {
		t.Errorf("length = %d, want 1", s.Len())
	}
}

func TestStepPortalIntoBody(t *testing.T) {
	cfg := core.DefaultConfig()
	rng := &scriptRand{vals: []int{4, 5}}
	sim := NewSimulation(cfg, rng)
	s := newTestSession(t, cfg)
	s.Snake = []maplib.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	s.Smooth = make([]core.SmoothSegment, 3)
	s.Food = maplib.Cell{X: 0, Y: 0}
	s.Obstacles = []core.Obstacle{{Cell: maplib.Cell{X: 6, Y: 5}, Kind: core.KindPortal}}

	res := sim.Step(s)
	if !res.Over || res.Cause != core.CauseSelf {
		t.Errorf("teleporting onto the body should end the game, got %+v", res)
	}
}

func TestStepPortalWithNoExit(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.CanvasSize = 40 // 2x2 board
	cfg.Start = maplib.Cell{X: 0, Y: 0}
	cfg.MaxSpawnAttempts = 3
	sim := NewSimulation(cfg, &scriptRand{})
	s := newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 0, Y: 1}
	s.Obstacles = []core.Obstacle{
		{Cell: maplib.Cell{X: 1, Y: 0}, Kind: core.KindPortal},
		{Cell: maplib.Cell{X: 1, Y: 1}, Kind: core.KindWall},
	}
	// (0,0) is the only unoccupied cell; the portal may exit onto the head,
	// which then counts as biting itself.
	res := sim.Step(s)
	if !res.Over || res.Cause != core.CauseSelf {
		t.Fatalf("expected self collision, got %+v", res)
	}

	s = newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 0, Y: 1}
	s.Obstacles = []core.Obstacle{
		{Cell: maplib.Cell{X: 1, Y: 0}, Kind: core.KindPortal},
		{Cell: maplib.Cell{X: 1, Y: 1}, Kind: core.KindWall},
		{Cell: maplib.Cell{X: 0, Y: 0}, Kind: core.KindWall},
	}
	res = sim.Step(s)
	if !res.Over || res.Cause != core.CausePortalBlocked {
		t.Fatalf("expected blocked portal, got %+v", res)
	}
}

func TestStepSelfCollision(t *testing.T) {
	cfg := core.DefaultConfig()
	sim := NewSimulation(cfg, &scriptRand{})

	t.Run("body", func(t *testing.T) {
		s := newTestSession(t, cfg)
		s.Snake = []maplib.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
		s.Smooth = make([]core.SmoothSegment, len(s.Snake))
		s.Direction = maplib.Right
		s.Food = maplib.Cell{X: 0, Y: 0}
		if res := sim.Step(s); res.Cause != core.CauseSelf {
			t.Errorf("expected self collision, got %+v", res)
		}
	})

	t.Run("tail", func(t *testing.T) {
		s := newTestSession(t, cfg)
		s.Snake = []maplib.Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
		s.Smooth = make([]core.SmoothSegment, len(s.Snake))
		s.Direction = maplib.Down
		s.Food = maplib.Cell{X: 0, Y: 0}
		if res := sim.Step(s); res.Cause != core.CauseSelf {
			t.Errorf("moving onto the tail ends the game, got %+v", res)
		}
	})
}

func TestSmoothSegmentStretchesFromPreviousHead(t *testing.T) {
	cfg := core.DefaultConfig()
	sim := NewSimulation(cfg, &scriptRand{})
	s := newTestSession(t, cfg)
	s.Food = maplib.Cell{X: 6, Y: 5}
	s.Smooth[0].X, s.Smooth[0].Y = 4.7, 5

	sim.Step(s)

	if len(s.Smooth) != len(s.Snake) {
		t.Fatalf("smooth %d vs snake %d", len(s.Smooth), len(s.Snake))
	}
	head := s.Smooth[0]
	if head.X != 4.7 || head.Y != 5 {
		t.Errorf("new smooth head starts at (%v,%v), want previous head (4.7,5)", head.X, head.Y)
	}
	if head.TargetX != 6 || head.TargetY != 5 {
		t.Errorf("target = (%v,%v), want (6,5)", head.TargetX, head.TargetY)
	}

	sim.Interpolate(s)
	if got := s.Smooth[0].X; got <= 4.7 || got >= 6 {
		t.Errorf("interpolated x = %v, want between 4.7 and 6", got)
	}
}

func TestInterpolationConverges(t *testing.T) {
	interp := &InterpolationSystem{Speed: 0.1}
	s := &core.Session{
		Snake:  []maplib.Cell{{X: 10, Y: 3}},
		Smooth: []core.SmoothSegment{{X: 0, Y: 0}},
	}
	for i := 0; i < 200; i++ {
		interp.Update(s)
	}
	if dx := 10 - s.Smooth[0].X; dx > 1e-6 {
		t.Errorf("x did not converge, off by %v", dx)
	}
	if dy := 3 - s.Smooth[0].Y; dy > 1e-6 {
		t.Errorf("y did not converge, off by %v", dy)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.1); got != 1 {
		t.Errorf("Lerp(0,10,0.1) = %v", got)
	}
	if got := Lerp(4, 4, 0.5); got != 4 {
		t.Errorf("Lerp(4,4,0.5) = %v", got)
	}
}

func TestTickInterval(t *testing.T) {
	d := NewDifficultySystem(core.DefaultConfig(), nil)
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 200 * time.Millisecond},
		{40, 200 * time.Millisecond},
		{50, 180 * time.Millisecond},
		{100, 160 * time.Millisecond},
		{199, 140 * time.Millisecond},
		{200, 120 * time.Millisecond},
		{250, 100 * time.Millisecond},
		{450, 100 * time.Millisecond},
		{5000, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := d.TickInterval(tt.score); got != tt.want {
			t.Errorf("TickInterval(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	prev := d.TickInterval(0)
	for score := 0; score <= 2000; score += 10 {
		got := d.TickInterval(score)
		if got > prev {
			t.Fatalf("interval increased at score %d: %v > %v", score, got, prev)
		}
		if got < 100*time.Millisecond {
			t.Fatalf("interval %v below floor at score %d", got, score)
		}
		prev = got
	}
}

func TestDifficultySpawnsOnBoundary(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{40, 0},
		{50, 1},
		{60, 0},
		{100, 2},
		{150, 3},
		{250, 3},
	}
	for _, tt := range tests {
		cfg := core.DefaultConfig()
		// x, y and kind per obstacle, spread far from the snake at (5,5)
		rng := &scriptRand{vals: []int{15, 15, 0, 15, 17, 1, 17, 15, 2}}
		obstacles := NewObstacleManager(cfg, rng)
		d := NewDifficultySystem(cfg, obstacles)
		s := core.NewSession("t", cfg)
		s.Score = tt.score

		added, err := d.Update(s)
		if err != nil {
			t.Fatalf("score %d: %v", tt.score, err)
		}
		if added != tt.want || len(s.Obstacles) != tt.want {
			t.Errorf("score %d: added %d (%d on board), want %d", tt.score, added, len(s.Obstacles), tt.want)
		}
		if s.TickInterval != d.TickInterval(tt.score) {
			t.Errorf("score %d: tick interval not updated", tt.score)
		}
	}
}

func TestObstacleSpawnAvoidsSnakeAndFood(t *testing.T) {
	cfg := core.DefaultConfig()
	// (6,6) is next to the snake, (0,0) is food, (9,9) is free
	rng := &scriptRand{vals: []int{6, 6, 0, 0, 9, 9, 2}}
	m := NewObstacleManager(cfg, rng)
	s := core.NewSession("t", cfg)
	s.Food = maplib.Cell{X: 0, Y: 0}

	n, err := m.Spawn(s, 1)
	if err != nil || n != 1 {
		t.Fatalf("Spawn = %d, %v", n, err)
	}
	got := s.Obstacles[0]
	if got.Cell != (maplib.Cell{X: 9, Y: 9}) || got.Kind != core.KindPortal {
		t.Errorf("obstacle = %+v, want portal at (9,9)", got)
	}
}

func TestObstacleSpawnOnFullBoard(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.CanvasSize = 60 // 3x3, every cell is next to the centre
	cfg.Start = maplib.Cell{X: 1, Y: 1}
	cfg.MaxSpawnAttempts = 10
	m := NewObstacleManager(cfg, &scriptRand{})
	s := core.NewSession("t", cfg)

	n, err := m.Spawn(s, 3)
	if !errors.Is(err, core.ErrBoardFull) {
		t.Fatalf("expected ErrBoardFull, got %v", err)
	}
	if n != 0 || len(s.Obstacles) != 0 {
		t.Errorf("placed %d obstacles on a full board", n)
	}
}

func TestFoodSpawn(t *testing.T) {
	t.Run("classic ignores occupancy", func(t *testing.T) {
		cfg := core.DefaultConfig()
		m := NewFoodManager(cfg, &scriptRand{vals: []int{5, 5}})
		s := core.NewSession("t", cfg)
		if err := m.Spawn(s); err != nil {
			t.Fatal(err)
		}
		if s.Food != (maplib.Cell{X: 5, Y: 5}) {
			t.Errorf("food = %v, want on the snake at (5,5)", s.Food)
		}
	})

	t.Run("avoiding falls back to scan", func(t *testing.T) {
		cfg := core.DefaultConfig()
		cfg.CanvasSize = 40
		cfg.Start = maplib.Cell{X: 0, Y: 0}
		cfg.FoodAvoidsOccupied = true
		cfg.MaxSpawnAttempts = 4
		m := NewFoodManager(cfg, &scriptRand{})
		s := core.NewSession("t", cfg)
		s.Snake = []maplib.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
		s.Smooth = make([]core.SmoothSegment, 2)
		s.Obstacles = []core.Obstacle{{Cell: maplib.Cell{X: 0, Y: 1}, Kind: core.KindWall}}

		if err := m.Spawn(s); err != nil {
			t.Fatal(err)
		}
		if s.Food != (maplib.Cell{X: 1, Y: 1}) {
			t.Errorf("food = %v, want the only free cell (1,1)", s.Food)
		}
	})

	t.Run("avoiding on a full board", func(t *testing.T) {
		cfg := core.DefaultConfig()
		cfg.CanvasSize = 40
		cfg.Start = maplib.Cell{X: 0, Y: 0}
		cfg.FoodAvoidsOccupied = true
		m := NewFoodManager(cfg, &scriptRand{})
		s := core.NewSession("t", cfg)
		s.Snake = []maplib.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		s.Smooth = make([]core.SmoothSegment, 4)
		s.Food = maplib.Cell{X: 1, Y: 1}

		if err := m.Spawn(s); !errors.Is(err, core.ErrBoardFull) {
			t.Errorf("expected ErrBoardFull, got %v", err)
		}
		if s.Food != (maplib.Cell{X: 1, Y: 1}) {
			t.Errorf("food moved to %v on failure", s.Food)
		}
	})
}
