package input

import (
	"github.com/1siamBot/snake-engine/engine/maplib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// turnKeys maps arrow keys and WASD to headings
var turnKeys = []struct {
	key ebiten.Key
	dir maplib.Direction
}{
	{ebiten.KeyArrowUp, maplib.Up},
	{ebiten.KeyArrowDown, maplib.Down},
	{ebiten.KeyArrowLeft, maplib.Left},
	{ebiten.KeyArrowRight, maplib.Right},
	{ebiten.KeyW, maplib.Up},
	{ebiten.KeyS, maplib.Down},
	{ebiten.KeyA, maplib.Left},
	{ebiten.KeyD, maplib.Right},
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	LeftJustPressed  bool
	LeftJustReleased bool

	// Turns pressed this frame, in key order
	Turns []maplib.Direction

	Start     bool // Enter or Space
	Restart   bool // R
	Autopilot bool // P
	Mute      bool // M
	Grid      bool // G
	Quit      bool // Escape
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	s.Turns = s.Turns[:0]
	for _, tk := range turnKeys {
		if inpututil.IsKeyJustPressed(tk.key) {
			s.Turns = append(s.Turns, tk.dir)
		}
	}

	s.Start = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.Autopilot = inpututil.IsKeyJustPressed(ebiten.KeyP)
	s.Mute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	s.Grid = inpututil.IsKeyJustPressed(ebiten.KeyG)
	s.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Clicked reports a left click inside the rectangle
func (s *InputState) Clicked(x, y, w, h float64) bool {
	return s.LeftJustPressed && InRect(s.MouseX, s.MouseY, x, y, w, h)
}

// InRect reports whether a pixel lies inside the rectangle
func InRect(mx, my int, x, y, w, h float64) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}
