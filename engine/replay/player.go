package replay

import (
	"fmt"
	"time"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/systems"
)

// Player re-simulates a replay one step at a time
type Player struct {
	rp      *Replay
	loop    *core.GameLoop
	applied int // commands applied so far
	done    bool
}

// NewPlayer builds a fresh loop from the recorded configuration
func NewPlayer(rp *Replay) (*Player, error) {
	cfg := rp.Config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	sim := systems.NewSimulation(cfg, core.NewRand(cfg.Seed))
	return &Player{rp: rp, loop: core.NewGameLoop(cfg, sim)}, nil
}

// Loop exposes the re-simulated game for rendering
func (p *Player) Loop() *core.GameLoop {
	return p.loop
}

// Done reports whether the recording has been fully played
func (p *Player) Done() bool {
	return p.done
}

// Next applies the commands due at the current tick and takes one step. It
// returns false once the end of the recording is reached.
func (p *Player) Next() (core.StepResult, bool, error) {
	if p.done {
		return core.StepResult{}, false, nil
	}
	tick := p.loop.CurrentTick()
	for _, cmd := range p.rp.CommandsForTick(tick) {
		if err := p.loop.Apply(cmd, time.Time{}); err != nil {
			p.done = true
			return core.StepResult{}, false, fmt.Errorf("%w: tick %d: %v", ErrCorrupt, tick, err)
		}
		p.applied++
	}
	if tick >= p.rp.End && p.applied >= len(p.rp.Commands) {
		p.done = true
		return core.StepResult{}, false, nil
	}
	if p.loop.State() != core.StateRunning {
		p.done = true
		return core.StepResult{}, false, fmt.Errorf("%w: game not running at tick %d, recording ends at %d",
			ErrCorrupt, tick, p.rp.End)
	}
	res, err := p.loop.Advance()
	if err != nil {
		p.done = true
		return res, false, err
	}
	return res, true, nil
}

// Play runs a replay to the end and returns the final loop
func Play(rp *Replay) (*core.GameLoop, error) {
	p, err := NewPlayer(rp)
	if err != nil {
		return nil, err
	}
	for {
		_, ok, err := p.Next()
		if err != nil {
			return p.loop, err
		}
		if !ok {
			return p.loop, nil
		}
	}
}
