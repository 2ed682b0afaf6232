package term

import (
	"fmt"
	"log"
	"time"

	"github.com/1siamBot/snake-engine/engine/ai"
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/gdamore/tcell/v2"
)

// App runs a game loop on a terminal screen
type App struct {
	Screen    tcell.Screen
	Loop      *core.GameLoop
	Renderer  *Renderer
	Autopilot *ai.Autopilot
	Log       *log.Logger

	piloting  bool
	lastSteps uint64
	lastSess  *core.Session
	status    string
	statusTTL int // frames left to show status
}

// NewApp wires the renderer to the loop's events
func NewApp(screen tcell.Screen, gl *core.GameLoop, logger *log.Logger) *App {
	a := &App{
		Screen:    screen,
		Loop:      gl,
		Renderer:  NewRenderer(screen),
		Autopilot: ai.NewAutopilot(),
		Log:       logger,
	}
	bus := gl.Events()
	bus.On(core.EvtLevelUp, func(e core.Event) {
		a.flash(fmt.Sprintf("Level %d!", e.Payload.(int)))
	})
	bus.On(core.EvtPortal, func(e core.Event) {
		a.flash("Whoosh!")
	})
	bus.On(core.EvtGameOver, func(e core.Event) {
		info := e.Payload.(core.GameOverInfo)
		a.flash(info.Cause.String())
		a.Log.Printf("game over after %d segments: %s", info.Length, info.Cause)
	})
	return a
}

// SetAutopilot turns the autopilot on or off
func (a *App) SetAutopilot(on bool) {
	a.piloting = on
	a.lastSess = nil
}

// Handle processes one terminal event and reports whether to quit
func (a *App) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.Screen.Sync()
	case *tcell.EventError:
		a.Log.Printf("tcell error: %v", ev)
		return true
	case *tcell.EventKey:
		act := KeyAction(ev)
		switch act.Kind {
		case ActTurn:
			a.Loop.SetDirection(act.Dir)
		case ActStart:
			if a.Loop.State() != core.StateRunning {
				a.start(now)
			}
		case ActRestart:
			if a.Loop.State() == core.StateGameOver {
				a.start(now)
			}
		case ActAutopilot:
			a.SetAutopilot(!a.piloting)
			a.flash(fmt.Sprintf("autopilot %v", a.piloting))
		case ActQuit:
			return true
		}
	}
	return false
}

// Tick advances the loop by one host frame and repaints
func (a *App) Tick(now time.Time) {
	if a.piloting && a.Loop.State() == core.StateRunning {
		s := a.Loop.Session()
		// one decision per step
		if s != a.lastSess || s.Steps != a.lastSteps {
			a.Autopilot.Drive(a.Loop)
			a.lastSess, a.lastSteps = s, s.Steps
		}
	}
	a.Loop.Frame(now)
	a.Loop.Events().Dispatch()
	a.draw()
}

// Run polls events and ticks every frame until the user quits
func (a *App) Run(frame time.Duration) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go a.Screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.Handle(ev, time.Now()) {
				return nil
			}
			a.draw()
		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}

func (a *App) start(now time.Time) {
	var err error
	if a.Loop.State() == core.StateGameOver {
		err = a.Loop.Restart(now)
	} else {
		err = a.Loop.Start(now)
	}
	if err != nil {
		a.Log.Printf("start: %v", err)
		a.flash("could not start")
	}
	a.Loop.Events().Dispatch()
}

func (a *App) flash(msg string) {
	a.status = msg
	a.statusTTL = 30
}

func (a *App) draw() {
	if a.statusTTL > 0 {
		a.statusTTL--
	} else {
		a.status = ""
	}
	a.Renderer.Status = a.status
	a.Renderer.Draw(a.Loop.Snapshot())
}
