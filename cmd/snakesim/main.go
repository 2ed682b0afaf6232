package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/1siamBot/snake-engine/engine/ai"
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/raster"
	"github.com/1siamBot/snake-engine/engine/replay"
	"github.com/1siamBot/snake-engine/engine/systems"
)

// gameResult summarizes one autopilot game
type gameResult struct {
	Seed   uint64
	Score  int
	Level  int
	Length int
	Steps  uint64
	Cause  core.Cause
	Capped bool // hit the step limit while still alive
	Final  core.Snapshot
}

// runGame plays one game on autopilot without a clock
func runGame(cfg core.Config, maxSteps int, rec core.CommandRecorder) (gameResult, *core.GameLoop, error) {
	gl := core.NewGameLoop(cfg, systems.NewSimulation(cfg, core.NewRand(cfg.Seed)))
	if rec != nil {
		gl.SetRecorder(rec)
	}
	if err := gl.Start(time.Time{}); err != nil {
		return gameResult{}, gl, err
	}
	pilot := ai.NewAutopilot()
	for i := 0; i < maxSteps && gl.State() == core.StateRunning; i++ {
		pilot.Drive(gl)
		if _, err := gl.Advance(); err != nil {
			return gameResult{}, gl, err
		}
		gl.Events().Dispatch()
	}
	snap := gl.Snapshot()
	return gameResult{
		Seed:   cfg.Seed,
		Score:  snap.Score,
		Level:  snap.Level,
		Length: len(snap.Segments),
		Steps:  snap.Steps,
		Cause:  snap.Cause,
		Capped: gl.State() == core.StateRunning,
		Final:  snap,
	}, gl, nil
}

// stats aggregates a batch of results
type stats struct {
	Games    int
	Mean     float64
	Median   int
	Best     int
	Capped   int
	ByCause  map[core.Cause]int
	MaxLevel int
}

func summarize(results []gameResult) stats {
	st := stats{Games: len(results), ByCause: make(map[core.Cause]int)}
	if len(results) == 0 {
		return st
	}
	scores := make([]int, len(results))
	total := 0
	for i, r := range results {
		scores[i] = r.Score
		total += r.Score
		st.Best = max(st.Best, r.Score)
		st.MaxLevel = max(st.MaxLevel, r.Level)
		if r.Capped {
			st.Capped++
		} else {
			st.ByCause[r.Cause]++
		}
	}
	sort.Ints(scores)
	st.Mean = float64(total) / float64(len(results))
	st.Median = scores[len(scores)/2]
	return st
}

func verifyReplay(path, pngPath string) error {
	rp, err := replay.LoadFile(path)
	if err != nil {
		return err
	}
	if rp.Truncated {
		log.Printf("%s: recording was truncated, playing what is there", path)
	}
	p, err := replay.NewPlayer(rp)
	if err != nil {
		return err
	}
	steps := 0
	for !p.Done() {
		_, ok, err := p.Next()
		if err != nil {
			return err
		}
		if ok {
			steps++
		}
	}
	snap := p.Loop().Snapshot()
	fmt.Printf("replay %s: seed %d, %d commands, %d steps, state %s, score %d, length %d\n",
		path, rp.Header.Seed, len(rp.Commands), steps, snap.State, snap.Score, len(snap.Segments))
	if pngPath != "" {
		return raster.NewRasterizer(snap.TileCount, int(rp.Header.CellSize)).SavePNG(pngPath, snap)
	}
	return nil
}

func main() {
	cfg := core.DefaultConfig()
	seed := flag.Uint64("seed", 1, "seed of the first game, later games count up")
	games := flag.Int("games", 20, "number of games")
	maxSteps := flag.Int("max-steps", 20000, "step limit per game")
	tiles := flag.Int("tiles", 0, "board size in cells (0 keeps the default)")
	flag.BoolVar(&cfg.FoodAvoidsOccupied, "safe-food", false, "never place food on the snake or an obstacle")
	pngDir := flag.String("png", "", "write the final frame of every game to this directory")
	recordDir := flag.String("record", "", "write a replay of every game to this directory")
	verify := flag.String("replay", "", "re-simulate a replay file and exit")
	flag.Parse()

	if *verify != "" {
		var png string
		if *pngDir != "" {
			png = filepath.Join(*pngDir, "replay.png")
		}
		if err := verifyReplay(*verify, png); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *tiles > 0 {
		cfg.CanvasSize = *tiles * cfg.CellSize
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	for _, dir := range []string{*pngDir, *recordDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	var frames *raster.Rasterizer
	if *pngDir != "" {
		frames = raster.NewRasterizer(cfg.Board().TileCount, cfg.CellSize)
	}

	results := make([]gameResult, 0, *games)
	for i := 0; i < *games; i++ {
		c := cfg
		c.Seed = core.ResolveSeed(*seed + uint64(i))

		var rec *replay.Recorder
		if *recordDir != "" {
			var err error
			rec, err = replay.Create(filepath.Join(*recordDir, fmt.Sprintf("game-%d.snkr", c.Seed)), c)
			if err != nil {
				log.Fatal(err)
			}
		}
		var recorder core.CommandRecorder
		if rec != nil {
			recorder = rec
		}

		res, gl, err := runGame(c, *maxSteps, recorder)
		if rec != nil {
			if ferr := rec.Finish(gl.CurrentTick()); ferr != nil {
				err = errors.Join(err, ferr)
			}
		}
		if err != nil {
			log.Fatalf("seed %d: %v", c.Seed, err)
		}
		results = append(results, res)
		fmt.Printf("seed %-6d score %-5d level %-3d length %-4d steps %-6d %s\n",
			res.Seed, res.Score, res.Level, res.Length, res.Steps, outcome(res))

		if frames != nil {
			path := filepath.Join(*pngDir, fmt.Sprintf("game-%d.png", c.Seed))
			if err := frames.SavePNG(path, res.Final); err != nil {
				log.Printf("png: %v", err)
			}
		}
	}

	st := summarize(results)
	fmt.Printf("\n%d games: mean %.1f, median %d, best %d, max level %d, %d hit the step limit\n",
		st.Games, st.Mean, st.Median, st.Best, st.MaxLevel, st.Capped)
	for _, c := range []core.Cause{core.CauseBoundary, core.CauseWall, core.CauseSpike, core.CauseSelf, core.CausePortalBlocked} {
		if n := st.ByCause[c]; n > 0 {
			fmt.Printf("  %-20s %d\n", c, n)
		}
	}
}

func outcome(r gameResult) string {
	if r.Capped {
		return "alive at step limit"
	}
	return r.Cause.String()
}
