package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/1siamBot/snake-engine/engine/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton represents a clickable menu button
type MenuButton struct {
	X, Y, W, H float64
	Text       string
	Hovered    bool
	Disabled   bool
}

func (b *MenuButton) hit(in *input.InputState) bool {
	return !b.Disabled && in.Clicked(b.X, b.Y, b.W, b.H)
}

var (
	menuPanel   = color.RGBA{15, 15, 30, 230}
	menuBtnNorm = color.RGBA{25, 35, 55, 240}
	menuBtnHov  = color.RGBA{35, 55, 90, 255}
	menuBtnDis  = color.RGBA{20, 20, 30, 200}
	menuText    = color.RGBA{200, 220, 255, 255}
	menuTextDim = color.RGBA{100, 120, 150, 255}
	menuGreen   = color.RGBA{50, 220, 80, 255}
	menuRed     = color.RGBA{220, 50, 50, 255}
	backdrop    = color.RGBA{0, 0, 0, 160}
)

// MenuSystem owns the start button and the game-over modal
type MenuSystem struct {
	ScreenW, ScreenH int

	Start   MenuButton
	Restart MenuButton

	// Modal is shown after a game over until restart or dismissal
	Modal bool
	Final core.GameOverInfo

	OnStart   func()
	OnRestart func()
}

func NewMenuSystem(screenW, screenH int) *MenuSystem {
	cx, cy := float64(screenW)/2, float64(screenH)/2
	return &MenuSystem{
		ScreenW: screenW,
		ScreenH: screenH,
		Start:   MenuButton{X: cx - 70, Y: float64(screenH) - 44, W: 140, H: 32, Text: "START"},
		Restart: MenuButton{X: cx - 80, Y: cy + 30, W: 160, H: 36, Text: "PLAY AGAIN"},
	}
}

// Attach opens the modal when a game ends
func (m *MenuSystem) Attach(bus *core.EventBus) {
	bus.On(core.EvtGameOver, func(e core.Event) {
		m.Final = e.Payload.(core.GameOverInfo)
		m.Modal = true
	})
	bus.On(core.EvtGameStart, func(core.Event) {
		m.Modal = false
	})
}

func (m *MenuSystem) panel() (x, y, w, h float64) {
	w, h = 300, 170
	return float64(m.ScreenW)/2 - w/2, float64(m.ScreenH)/2 - h/2, w, h
}

// Update handles clicks for the current game state
func (m *MenuSystem) Update(in *input.InputState, state core.GameState) {
	m.Start.Disabled = state == core.StateRunning
	m.Start.Hovered = input.InRect(in.MouseX, in.MouseY, m.Start.X, m.Start.Y, m.Start.W, m.Start.H)
	m.Restart.Hovered = input.InRect(in.MouseX, in.MouseY, m.Restart.X, m.Restart.Y, m.Restart.W, m.Restart.H)

	if m.Modal {
		switch {
		case m.Restart.hit(in):
			m.Modal = false
			if m.OnRestart != nil {
				m.OnRestart()
			}
		case in.LeftJustPressed:
			px, py, pw, ph := m.panel()
			if !input.InRect(in.MouseX, in.MouseY, px, py, pw, ph) {
				m.Modal = false
			}
		}
		return
	}
	if m.Start.hit(in) && m.OnStart != nil {
		m.OnStart()
	}
}

func (m *MenuSystem) Draw(screen *ebiten.Image) {
	drawButton(screen, &m.Start, menuBtnNorm)
	if !m.Modal {
		return
	}
	vector.FillRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH), backdrop, false)
	px, py, pw, ph := m.panel()
	render.FillRoundRect(screen, float32(px), float32(py), float32(pw), float32(ph), 12, menuPanel)

	cx := float64(m.ScreenW) / 2
	drawCentered(screen, "GAME OVER", cx, py+20, menuRed)
	vector.FillRect(screen, float32(cx-50), float32(py+38), 100, 2, menuRed, false)
	drawCentered(screen, fmt.Sprintf("Final score: %d", m.Final.FinalScore), cx, py+52, menuText)
	drawCentered(screen, m.Final.Cause.String(), cx, py+72, menuTextDim)
	drawButton(screen, &m.Restart, menuGreen)
}

func drawButton(screen *ebiten.Image, b *MenuButton, clr color.RGBA) {
	bg := clr
	switch {
	case b.Disabled:
		bg = menuBtnDis
	case b.Hovered && clr == menuBtnNorm:
		bg = menuBtnHov
	case b.Hovered:
		bg.R = uint8(min(int(bg.R)+30, 255))
		bg.G = uint8(min(int(bg.G)+30, 255))
		bg.B = uint8(min(int(bg.B)+30, 255))
	}
	render.FillRoundRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 6, bg)

	tc := color.Color(menuText)
	if b.Disabled {
		tc = menuTextDim
	}
	drawCentered(screen, b.Text, b.X+b.W/2, b.Y+b.H/2-7, tc)
}
