package core

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrBoardFull      = errors.New("no free cell on board")
	ErrNotRunning     = errors.New("game not running")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoSimulation   = errors.New("game loop has no simulation")
)
