package pathfind

import (
	"testing"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

func testSession() *core.Session {
	s := core.NewSession("path", core.DefaultConfig())
	s.Food = maplib.Cell{X: 10, Y: 5}
	return s
}

func TestFindPathStraight(t *testing.T) {
	s := testSession()
	path := FindPath(NewNavGrid(s), s.Head(), s.Food)
	if len(path) != 6 {
		t.Fatalf("path length %d, want 6: %v", len(path), path)
	}
	if path[0] != s.Head() || path[len(path)-1] != s.Food {
		t.Errorf("path endpoints %v .. %v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if maplib.Manhattan(path[i-1], path[i]) != 1 {
			t.Fatalf("non-adjacent step %v -> %v", path[i-1], path[i])
		}
	}
	if d, ok := FirstMove(path); !ok || d != maplib.Right {
		t.Errorf("FirstMove = %s, %v", d, ok)
	}
}

func TestFindPathAroundWall(t *testing.T) {
	s := testSession()
	for y := 0; y < 10; y++ {
		s.Obstacles = append(s.Obstacles, core.Obstacle{Cell: maplib.Cell{X: 8, Y: y}, Kind: core.KindWall})
	}
	ng := NewNavGrid(s)
	path := FindPath(ng, s.Head(), s.Food)
	if path == nil {
		t.Fatal("no path around the wall")
	}
	for _, c := range path[1:] {
		if !ng.Passable(c) {
			t.Fatalf("path crosses blocked cell %v", c)
		}
	}
	if len(path)-1 < 15 {
		t.Errorf("path of %d steps is shorter than the detour", len(path)-1)
	}
}

func TestFindPathBlocked(t *testing.T) {
	s := testSession()
	s.Obstacles = []core.Obstacle{{Cell: s.Food, Kind: core.KindPortal}}
	if path := FindPath(NewNavGrid(s), s.Head(), s.Food); path != nil {
		t.Errorf("path into a portal: %v", path)
	}

	s = testSession()
	for _, d := range maplib.Directions {
		s.Obstacles = append(s.Obstacles, core.Obstacle{Cell: s.Food.Add(d), Kind: core.KindSpike})
	}
	if path := FindPath(NewNavGrid(s), s.Head(), s.Food); path != nil {
		t.Errorf("path into an enclosed cell: %v", path)
	}
}

func TestNavGridCosts(t *testing.T) {
	s := testSession()
	s.Snake = []maplib.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}
	s.Smooth = make([]core.SmoothSegment, 2)
	s.Obstacles = []core.Obstacle{{Cell: maplib.Cell{X: 2, Y: 2}, Kind: core.KindWall}}
	ng := NewNavGrid(s)

	tests := []struct {
		c    maplib.Cell
		want float64
	}{
		{maplib.Cell{X: 5, Y: 5}, 0},
		{maplib.Cell{X: 4, Y: 5}, 0},
		{maplib.Cell{X: 2, Y: 2}, 0},
		{maplib.Cell{X: 2, Y: 3}, 1.5},
		{maplib.Cell{X: 9, Y: 9}, 1},
		{maplib.Cell{X: -1, Y: 0}, 0},
	}
	for _, tt := range tests {
		if got := ng.Cost(tt.c); got != tt.want {
			t.Errorf("Cost(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestDistanceField(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.CanvasSize = 100 // 5x5
	cfg.Start = maplib.Cell{X: 0, Y: 0}
	s := core.NewSession("df", cfg)
	s.Food = maplib.Cell{X: 4, Y: 4}
	// wall off column 2
	for y := 0; y < 5; y++ {
		s.Obstacles = append(s.Obstacles, core.Obstacle{Cell: maplib.Cell{X: 2, Y: y}, Kind: core.KindWall})
	}

	df := NewDistanceField(NewNavGrid(s), s.Head())
	if got := df.Reachable(); got != 10 {
		t.Errorf("Reachable = %d, want 10", got)
	}
	if d, ok := df.Distance(maplib.Cell{X: 1, Y: 4}); !ok || d != 5 {
		t.Errorf("Distance(1,4) = %d, %v", d, ok)
	}
	if _, ok := df.Distance(maplib.Cell{X: 3, Y: 0}); ok {
		t.Error("cell behind the wall reachable")
	}
}
