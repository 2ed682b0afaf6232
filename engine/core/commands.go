package core

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

// CmdType identifies an input command
type CmdType uint8

const (
	CmdSetDirection CmdType = iota
	CmdStart
	CmdRestart
	CmdEnd // end-of-recording marker
)

func (t CmdType) String() string {
	switch t {
	case CmdSetDirection:
		return "set-direction"
	case CmdStart:
		return "start"
	case CmdRestart:
		return "restart"
	case CmdEnd:
		return "end"
	}
	return fmt.Sprintf("cmd(%d)", uint8(t))
}

// Command is a deterministic input applied before the step numbered Tick
type Command struct {
	Tick uint64
	Type CmdType
	Dir  maplib.Direction
}

// Encode writes a command to binary
func (c *Command) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, c.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.Type); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, c.Dir)
}

// Decode reads a command from binary
func (c *Command) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &c.Tick); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.Type); err != nil {
		return partial(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &c.Dir); err != nil {
		return partial(err)
	}
	if c.Type > CmdEnd {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, c.Type)
	}
	return nil
}

// partial turns a clean EOF inside a record into ErrUnexpectedEOF
func partial(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// CommandRecorder receives every command the loop accepts
type CommandRecorder interface {
	Record(cmd Command) error
}
