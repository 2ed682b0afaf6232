package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/replay"
	"github.com/1siamBot/snake-engine/engine/systems"
	"github.com/1siamBot/snake-engine/engine/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := core.DefaultConfig()
	flag.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one)")
	tiles := flag.Int("tiles", 0, "board size in cells (0 keeps the default)")
	flag.BoolVar(&cfg.CatchUp, "catchup", false, "take several steps per frame after a stall")
	flag.BoolVar(&cfg.FoodAvoidsOccupied, "safe-food", false, "never place food on the snake or an obstacle")
	piloting := flag.Bool("autopilot", false, "let the autopilot steer")
	record := flag.String("record", "", "write a replay of the session to this file")
	logPath := flag.String("log", "", "append logs to this file")
	fps := flag.Int("fps", 60, "frames per second")
	flag.Parse()

	if *tiles > 0 {
		cfg.CanvasSize = *tiles * cfg.CellSize
	}
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}

	// stdout belongs to the screen
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "tsnake ", log.Ldate|log.Ltime|log.Lmsgprefix)

	gl := core.NewGameLoop(cfg, systems.NewSimulation(cfg, core.NewRand(cfg.Seed)))
	gl.SetLogger(logger)

	var rec *replay.Recorder
	if *record != "" {
		var err error
		if rec, err = replay.Create(*record, cfg); err != nil {
			log.Fatal(err)
		}
		gl.SetRecorder(rec)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.HideCursor()

	app := term.NewApp(screen, gl, logger)
	app.SetAutopilot(*piloting)
	logger.Printf("seed %d", cfg.Seed)

	runErr := app.Run(time.Second / time.Duration(*fps))
	screen.Fini()

	if rec != nil {
		if err := rec.Finish(gl.CurrentTick()); err != nil {
			log.Printf("replay: %v", err)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
