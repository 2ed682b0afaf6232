package term

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
	"github.com/1siamBot/snake-engine/engine/raster"
	"github.com/gdamore/tcell/v2"
)

const (
	GlyphHead   = 'Ö'
	GlyphBody   = 'O'
	GlyphFood   = '+'
	GlyphWall   = '#'
	GlyphSpike  = '^'
	GlyphPortal = '@'
)

// Renderer draws snapshots as text cells: a status line, a border, then the
// board one character per cell
type Renderer struct {
	Screen tcell.Screen
	Status string // extra text after the score line
}

func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{Screen: s}
}

// Transform maps a board cell to its screen position inside the border
func (r *Renderer) Transform(c maplib.Cell) (int, int) {
	return c.X + 1, c.Y + 2
}

// Draw repaints the whole screen from snap
func (r *Renderer) Draw(snap core.Snapshot) {
	s := r.Screen
	s.Clear()
	n := snap.TileCount

	style := tcell.StyleDefault
	s.SetContent(0, 1, '+', nil, style)
	s.SetContent(1+n, 1, '+', nil, style)
	s.SetContent(0, 2+n, '+', nil, style)
	s.SetContent(1+n, 2+n, '+', nil, style)
	for i := 0; i < n; i++ {
		s.SetContent(1+i, 1, '-', nil, style)
		s.SetContent(1+i, 2+n, '-', nil, style)
		s.SetContent(0, 2+i, '|', nil, style)
		s.SetContent(1+n, 2+i, '|', nil, style)
	}

	status := fmt.Sprintf("Score: %d  Level: %d", snap.Score, snap.Level)
	if r.Status != "" {
		status += "  " + r.Status
	}
	r.text(0, 0, status, style)

	for _, o := range snap.Obstacles {
		x, y := r.Transform(o.Cell)
		s.SetContent(x, y, obstacleGlyph(o.Kind), nil, tcell.StyleDefault.Foreground(rgb(raster.ObstacleColor(o.Kind))))
	}

	if len(snap.Segments) > 0 {
		x, y := r.Transform(snap.Food)
		s.SetContent(x, y, GlyphFood, nil, tcell.StyleDefault.Foreground(rgb(raster.ColorFood)))
	}
	// tail first so the head stays visible when it overlaps the body
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		x, y := r.Transform(seg.Cell)
		if i == 0 {
			s.SetContent(x, y, GlyphHead, nil, tcell.StyleDefault.Foreground(rgb(raster.ColorHead)))
			continue
		}
		s.SetContent(x, y, GlyphBody, nil, tcell.StyleDefault.Foreground(rgb(raster.BodyColor(i))))
	}

	switch snap.State {
	case core.StateIdle:
		r.centered(n, "Press Enter to start")
	case core.StateGameOver:
		r.centered(n, fmt.Sprintf("Game Over! Final score: %d", snap.FinalScore))
		r.text(0, 3+n, "R to restart, Esc to quit", style)
	}
	s.Show()
}

func (r *Renderer) centered(n int, msg string) {
	x := 1 + (n-len([]rune(msg)))/2
	if x < 0 {
		x = 0
	}
	r.text(x, 2+n/2, msg, tcell.StyleDefault.Reverse(true))
}

func (r *Renderer) text(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.Screen.SetContent(x+i, y, ch, nil, style)
	}
}

func obstacleGlyph(k core.ObstacleKind) rune {
	switch k {
	case core.KindSpike:
		return GlyphSpike
	case core.KindPortal:
		return GlyphPortal
	}
	return GlyphWall
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
