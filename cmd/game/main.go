package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/1siamBot/snake-engine/engine/ai"
	"github.com/1siamBot/snake-engine/engine/audio"
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/1siamBot/snake-engine/engine/render"
	"github.com/1siamBot/snake-engine/engine/replay"
	"github.com/1siamBot/snake-engine/engine/systems"
	"github.com/1siamBot/snake-engine/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	hudHeight    = 24
	footerHeight = 56
)

var errQuit = errors.New("quit")

// Game implements ebiten.Game interface
type Game struct {
	loop     *core.GameLoop
	renderer *render.BoardRenderer
	input    *input.InputState
	hud      *ui.HUD
	menu     *ui.MenuSystem
	sound    *audio.AudioManager
	pilot    *ai.Autopilot
	rec      *replay.Recorder

	screenW, screenH int
	piloting         bool
	lastSteps        uint64
	lastSess         *core.Session
}

func NewGame(cfg core.Config, muted, piloting bool, volume float64, rec *replay.Recorder) *Game {
	board := cfg.Board().TileCount * cfg.CellSize
	g := &Game{
		loop:     core.NewGameLoop(cfg, systems.NewSimulation(cfg, core.NewRand(cfg.Seed))),
		renderer: render.NewBoardRenderer(cfg.CellSize),
		input:    input.NewInputState(),
		sound:    audio.NewAudioManager(muted),
		pilot:    ai.NewAutopilot(),
		rec:      rec,
		screenW:  board,
		screenH:  hudHeight + board + footerHeight,
		piloting: piloting,
	}
	g.renderer.Viewport.OffsetY = hudHeight
	g.sound.SetVolume(volume)
	g.hud = ui.NewHUD(g.screenW)
	g.menu = ui.NewMenuSystem(g.screenW, g.screenH)

	g.loop.SetLogger(log.New(os.Stderr, "snake ", log.Ldate|log.Ltime|log.Lmsgprefix))
	if rec != nil {
		g.loop.SetRecorder(rec)
	}

	bus := g.loop.Events()
	g.hud.Attach(bus)
	g.menu.Attach(bus)
	g.sound.Attach(bus)

	g.menu.OnStart = func() { g.start(time.Now()) }
	g.menu.OnRestart = func() { g.start(time.Now()) }
	return g
}

func (g *Game) start(now time.Time) {
	var err error
	if g.loop.State() == core.StateGameOver {
		err = g.loop.Restart(now)
	} else {
		err = g.loop.Start(now)
	}
	if err != nil {
		log.Printf("start: %v", err)
		g.hud.Flash("could not start")
	}
	g.lastSess = nil
}

func (g *Game) Update() error {
	now := time.Now()
	g.input.Update()
	if g.input.Quit {
		return errQuit
	}

	for _, d := range g.input.Turns {
		g.loop.SetDirection(d)
	}
	state := g.loop.State()
	switch {
	case g.input.Start && state != core.StateRunning:
		g.start(now)
	case g.input.Restart && state == core.StateGameOver:
		g.start(now)
	}
	if g.input.Autopilot {
		g.piloting = !g.piloting
		g.hud.Flash(fmt.Sprintf("autopilot %v", g.piloting))
	}
	if g.input.Mute {
		if g.sound.ToggleMute() {
			g.hud.Flash("muted")
		} else {
			g.hud.Flash("sound on")
		}
	}
	if g.input.Grid {
		g.renderer.ShowGrid = !g.renderer.ShowGrid
	}
	g.menu.Update(g.input, g.loop.State())

	if g.piloting && g.loop.State() == core.StateRunning {
		s := g.loop.Session()
		if s != g.lastSess || s.Steps != g.lastSteps {
			g.pilot.Drive(g.loop)
			g.lastSess, g.lastSteps = s, s.Steps
		}
	}

	g.loop.Frame(now)
	g.loop.Events().Dispatch()
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})
	g.renderer.Draw(screen, g.loop.Snapshot())
	g.hud.Draw(screen)
	g.menu.Draw(screen)
	if g.renderer.ShowGrid {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.loop.CurrentTick()), 4, g.screenH-16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func main() {
	cfg := core.DefaultConfig()
	flag.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one)")
	tiles := flag.Int("tiles", 0, "board size in cells (0 keeps the default)")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels")
	flag.BoolVar(&cfg.CatchUp, "catchup", false, "take several steps per frame after a stall")
	flag.BoolVar(&cfg.FoodAvoidsOccupied, "safe-food", false, "never place food on the snake or an obstacle")
	muted := flag.Bool("mute", false, "start with sound off")
	volume := flag.Float64("volume", 0.8, "sound volume from 0 to 1")
	piloting := flag.Bool("autopilot", false, "let the autopilot steer")
	record := flag.String("record", "", "write a replay of the session to this file")
	scale := flag.Float64("scale", 1.5, "window scale")
	flag.Parse()

	if *tiles > 0 {
		cfg.CanvasSize = *tiles * cfg.CellSize
	}
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var rec *replay.Recorder
	if *record != "" {
		var err error
		if rec, err = replay.Create(*record, cfg); err != nil {
			log.Fatal(err)
		}
	}

	game := NewGame(cfg, *muted, *piloting, *volume, rec)
	log.Printf("seed %d", cfg.Seed)

	ebiten.SetWindowSize(int(float64(game.screenW)**scale), int(float64(game.screenH)**scale))
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(game)
	if rec != nil {
		if ferr := rec.Finish(game.loop.CurrentTick()); ferr != nil {
			log.Printf("replay: %v", ferr)
		}
	}
	if err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
