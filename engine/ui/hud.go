package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

var (
	hudBG   = color.RGBA{0, 0, 0, 180}
	hudText = color.RGBA{240, 240, 240, 255}
	hudGold = color.RGBA{255, 200, 50, 255}
)

// HUD is the score bar above the board
type HUD struct {
	ScreenW int
	Height  int

	score   int
	level   int
	status  string
	flashes int // frames left to show status
}

func NewHUD(screenW int) *HUD {
	return &HUD{ScreenW: screenW, Height: 24}
}

// Attach keeps the HUD in sync with the game's events
func (h *HUD) Attach(bus *core.EventBus) {
	bus.On(core.EvtScoreChanged, func(e core.Event) {
		h.score = e.Payload.(int)
	})
	bus.On(core.EvtGameStart, func(core.Event) {
		h.level = 0
		h.status = ""
	})
	bus.On(core.EvtLevelUp, func(e core.Event) {
		h.level = e.Payload.(int)
		h.Flash(fmt.Sprintf("Level %d!", h.level))
	})
	bus.On(core.EvtPortal, func(core.Event) {
		h.Flash("Whoosh!")
	})
}

// Flash shows a short-lived message on the right of the bar
func (h *HUD) Flash(msg string) {
	h.status = msg
	h.flashes = 90
}

// Update ages the flash message
func (h *HUD) Update() {
	if h.flashes > 0 {
		h.flashes--
		if h.flashes == 0 {
			h.status = ""
		}
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(h.ScreenW), float32(h.Height), hudBG, false)
	drawText(screen, fmt.Sprintf("Score: %d  Level: %d", h.score, h.level), 10, 6, hudText)
	if h.status != "" {
		w, _ := text.Measure(h.status, face, 0)
		drawText(screen, h.status, float64(h.ScreenW)-w-10, 6, hudGold)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawCentered(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(screen, s, cx-w/2, y, clr)
}
