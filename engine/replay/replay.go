package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/1siamBot/snake-engine/engine/core"
)

// Recorder streams the commands of a game to a writer. It implements
// core.CommandRecorder.
type Recorder struct {
	Header   Header
	Commands []core.Command
	writer   *bufio.Writer
	closer   io.Closer
	finished bool
}

// NewRecorder writes the header for cfg to w
func NewRecorder(w io.Writer, cfg core.Config) (*Recorder, error) {
	r := &Recorder{
		Header: NewHeader(cfg),
		writer: bufio.NewWriter(w),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	if err := r.Header.Encode(r.writer); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return r, nil
}

// Create opens a replay file for recording
func Create(path string, cfg core.Config) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Record writes a command to the replay
func (r *Recorder) Record(cmd core.Command) error {
	if r.finished {
		return errors.New("replay already finished")
	}
	r.Commands = append(r.Commands, cmd)
	return cmd.Encode(r.writer)
}

// Finish writes the end marker at endTick, flushes and closes the writer
func (r *Recorder) Finish(endTick uint64) error {
	if r.finished {
		return nil
	}
	err := r.Record(core.Command{Tick: endTick, Type: core.CmdEnd})
	r.finished = true
	if ferr := r.writer.Flush(); err == nil {
		err = ferr
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Replay is a loaded recording
type Replay struct {
	Header    Header
	Commands  []core.Command // end marker excluded
	End       uint64         // tick the recording stopped at
	Truncated bool           // no end marker was found
}

// Load reads a replay. A recording cut short without an end marker still
// loads, ending at its last command.
func Load(r io.Reader) (*Replay, error) {
	br := bufio.NewReader(r)
	rp := &Replay{}
	if err := rp.Header.Decode(br); err != nil {
		return nil, err
	}
	for {
		var cmd core.Command
		err := cmd.Decode(br)
		if errors.Is(err, io.EOF) {
			rp.Truncated = true
			if n := len(rp.Commands); n > 0 {
				rp.End = rp.Commands[n-1].Tick
			}
			return rp, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: command %d: %v", ErrCorrupt, len(rp.Commands), err)
		}
		if n := len(rp.Commands); n > 0 && cmd.Tick < rp.Commands[n-1].Tick {
			return nil, fmt.Errorf("%w: tick %d after %d", ErrCorrupt, cmd.Tick, rp.Commands[n-1].Tick)
		}
		if cmd.Type == core.CmdEnd {
			rp.End = cmd.Tick
			return rp, nil
		}
		rp.Commands = append(rp.Commands, cmd)
	}
}

// LoadFile loads a replay file
func LoadFile(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Config returns the configuration the game was recorded with
func (rp *Replay) Config() core.Config {
	return rp.Header.Config()
}

// CommandsForTick returns all commands applied before the given step.
// Commands are ordered by tick, so the result is a sub-slice.
func (rp *Replay) CommandsForTick(tick uint64) []core.Command {
	cmds := rp.Commands
	i := sort.Search(len(cmds), func(i int) bool { return cmds[i].Tick >= tick })
	j := i
	for j < len(cmds) && cmds[j].Tick == tick {
		j++
	}
	return cmds[i:j]
}
