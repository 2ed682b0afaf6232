package term

import (
	"github.com/1siamBot/snake-engine/engine/maplib"
	"github.com/gdamore/tcell/v2"
)

// ActionKind is what a key press asks for
type ActionKind uint8

const (
	ActNone ActionKind = iota
	ActTurn
	ActStart
	ActRestart
	ActAutopilot
	ActQuit
)

// Action is a decoded key press
type Action struct {
	Kind ActionKind
	Dir  maplib.Direction
}

// KeyAction maps arrows and WASD to turns, Enter/Space to start, R to
// restart, P to toggle the autopilot, Esc/Q/Ctrl-C to quit
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return Action{Kind: ActTurn, Dir: maplib.Up}
	case tcell.KeyDown:
		return Action{Kind: ActTurn, Dir: maplib.Down}
	case tcell.KeyLeft:
		return Action{Kind: ActTurn, Dir: maplib.Left}
	case tcell.KeyRight:
		return Action{Kind: ActTurn, Dir: maplib.Right}
	case tcell.KeyEnter:
		return Action{Kind: ActStart}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return Action{Kind: ActTurn, Dir: maplib.Up}
		case 's', 'S':
			return Action{Kind: ActTurn, Dir: maplib.Down}
		case 'a', 'A':
			return Action{Kind: ActTurn, Dir: maplib.Left}
		case 'd', 'D':
			return Action{Kind: ActTurn, Dir: maplib.Right}
		case ' ':
			return Action{Kind: ActStart}
		case 'r', 'R':
			return Action{Kind: ActRestart}
		case 'p', 'P':
			return Action{Kind: ActAutopilot}
		case 'q', 'Q':
			return Action{Kind: ActQuit}
		}
	}
	return Action{}
}
