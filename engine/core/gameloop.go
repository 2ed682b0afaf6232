package core

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/1siamBot/snake-engine/engine/maplib"
	"github.com/google/uuid"
)

// GameState represents the lifecycle of the loop
type GameState uint8

const (
	StateIdle GameState = iota
	StateRunning
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// FrameResult reports what one frame did
type FrameResult struct {
	Steps  int        // discrete steps taken this frame
	Last   StepResult // result of the last step, if any
	Frozen bool       // frame ignored because the loop is not running
}

// GameLoop owns the session and decouples the simulation rate from the host
// frame rate with a time accumulator. It is driven from a single goroutine.
type GameLoop struct {
	cfg Config
	sim Simulation
	bus *EventBus
	rec CommandRecorder
	log *log.Logger

	state       GameState
	session     *Session
	accumulator time.Duration
	lastTime    time.Time
	ticks       uint64 // step attempts across all sessions
	frames      uint64
}

// NewGameLoop creates an idle loop. cfg must already be validated.
func NewGameLoop(cfg Config, sim Simulation) *GameLoop {
	return &GameLoop{
		cfg: cfg,
		sim: sim,
		bus: NewEventBus(),
		log: log.New(io.Discard, "", 0),
	}
}

// SetLogger routes lifecycle logging; nil silences it
func (gl *GameLoop) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	gl.log = l
}

// SetRecorder captures every command applied to the loop
func (gl *GameLoop) SetRecorder(r CommandRecorder) {
	gl.rec = r
}

// Events returns the bus events are queued on during a frame. Callers
// Dispatch it after Frame.
func (gl *GameLoop) Events() *EventBus {
	return gl.bus
}

// Config returns the loop configuration
func (gl *GameLoop) Config() Config {
	return gl.cfg
}

// State returns the lifecycle state
func (gl *GameLoop) State() GameState {
	return gl.state
}

// Session returns the live session, nil before the first start
func (gl *GameLoop) Session() *Session {
	return gl.session
}

// CurrentTick returns the number of step attempts since the loop was created
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.ticks
}

// Start begins a fresh session. A running session is discarded first, so
// there is never more than one chain of frames stepping the game.
func (gl *GameLoop) Start(now time.Time) error {
	return gl.begin(now, CmdStart)
}

// Restart is Start issued from the game-over screen
func (gl *GameLoop) Restart(now time.Time) error {
	return gl.begin(now, CmdRestart)
}

func (gl *GameLoop) begin(now time.Time, how CmdType) error {
	if gl.sim == nil {
		return ErrNoSimulation
	}
	gl.record(Command{Tick: gl.ticks, Type: how})

	if gl.state == StateRunning {
		gl.logf("%s while running, dropping session %s", how, shortID(gl.session.ID))
	}
	s := NewSession(uuid.New().String(), gl.cfg)
	if err := gl.sim.Init(s); err != nil {
		gl.state = StateIdle
		gl.session = nil
		return fmt.Errorf("init session: %w", err)
	}
	gl.session = s
	gl.state = StateRunning
	gl.accumulator = 0
	gl.lastTime = now

	gl.logf("[session:%s] %s, food at %v", shortID(s.ID), how, s.Food)
	gl.emit(EvtGameStart, s.ID)
	gl.emit(EvtScoreChanged, 0)
	return nil
}

// SetDirection forwards a heading change to the session. Reversals are
// rejected.
func (gl *GameLoop) SetDirection(d maplib.Direction) bool {
	gl.record(Command{Tick: gl.ticks, Type: CmdSetDirection, Dir: d})
	if gl.session == nil || gl.state != StateRunning {
		return false
	}
	if !gl.session.SetDirection(d) {
		return false
	}
	gl.emit(EvtDirectionChanged, d)
	return true
}

// Apply executes a decoded command
func (gl *GameLoop) Apply(cmd Command, now time.Time) error {
	switch cmd.Type {
	case CmdSetDirection:
		gl.SetDirection(cmd.Dir)
		return nil
	case CmdStart:
		return gl.Start(now)
	case CmdRestart:
		return gl.Restart(now)
	case CmdEnd:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Type)
}

// Frame should be called once per host frame. It takes at most one discrete
// step, or up to MaxCatchUpSteps when catch-up is enabled, then interpolates
// the render positions.
func (gl *GameLoop) Frame(now time.Time) FrameResult {
	gl.frames++
	if gl.state != StateRunning {
		return FrameResult{Frozen: true}
	}

	delta := now.Sub(gl.lastTime)
	if delta < 0 {
		delta = 0
	}
	gl.lastTime = now
	gl.accumulator += delta

	var res FrameResult
	limit := 1
	if gl.cfg.CatchUp {
		limit = gl.cfg.MaxCatchUpSteps
	}
	for res.Steps < limit && gl.state == StateRunning && gl.accumulator >= gl.session.TickInterval {
		s := gl.session
		res.Last = gl.step()
		// a level-up step has already shortened the interval
		gl.accumulator -= s.TickInterval
		res.Steps++
	}
	if gl.cfg.CatchUp && gl.state == StateRunning && gl.accumulator >= gl.session.TickInterval {
		// Drop the backlog instead of spiralling.
		gl.accumulator %= gl.session.TickInterval
	}

	gl.sim.Interpolate(gl.session)
	return res
}

// Advance takes exactly one step regardless of elapsed time. Replays and the
// headless simulator drive the loop this way.
func (gl *GameLoop) Advance() (StepResult, error) {
	if gl.state != StateRunning {
		return StepResult{}, ErrNotRunning
	}
	res := gl.step()
	gl.sim.Interpolate(gl.session)
	return res, nil
}

func (gl *GameLoop) step() StepResult {
	s := gl.session
	levelBefore := gl.level(s.Score)
	res := gl.sim.Step(s)
	gl.ticks++

	if res.Err != nil {
		gl.logf("[session:%s] %v", shortID(s.ID), res.Err)
	}
	if res.Teleported {
		gl.emit(EvtPortal, PortalJump{Portal: res.Portal, Exit: res.Head})
	}
	if res.Ate {
		gl.emit(EvtFoodEaten, res.Head)
		gl.emit(EvtScoreChanged, s.Score)
		if lvl := gl.level(s.Score); lvl != levelBefore {
			gl.emit(EvtLevelUp, lvl)
		}
	}
	if res.ObstaclesAdded > 0 {
		gl.emit(EvtObstaclesAdded, res.ObstaclesAdded)
	}
	if res.Over {
		gl.state = StateGameOver
		gl.logf("[session:%s] game over: %s, score %d, length %d",
			shortID(s.ID), res.Cause, s.Score, s.Len())
		gl.emit(EvtGameOver, GameOverInfo{
			SessionID:  s.ID,
			FinalScore: s.Score,
			Cause:      res.Cause,
			Length:     s.Len(),
		})
	}
	return res
}

// Snapshot copies the state for rendering
func (gl *GameLoop) Snapshot() Snapshot {
	if gl.session == nil {
		return Snapshot{TileCount: gl.cfg.Board().TileCount, State: gl.state}
	}
	return snapshotOf(gl.session, gl.state, gl.level(gl.session.Score))
}

func (gl *GameLoop) level(score int) int {
	return score / gl.cfg.DifficultyStep
}

func (gl *GameLoop) emit(t EventType, payload any) {
	gl.bus.Emit(Event{Type: t, Tick: gl.ticks, Payload: payload})
}

func (gl *GameLoop) record(cmd Command) {
	if gl.rec == nil {
		return
	}
	if err := gl.rec.Record(cmd); err != nil {
		gl.logf("record %s: %v", cmd.Type, err)
	}
}

func (gl *GameLoop) logf(format string, args ...any) {
	gl.log.Printf(format, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
