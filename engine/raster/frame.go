package raster

import (
	"fmt"
	"image"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/fogleman/gg"
)

// Rasterizer draws snapshots into an offscreen gg context
type Rasterizer struct {
	Viewport *Viewport
	HUD      bool // draw score and level text under the board
	dc       *gg.Context
	hudH     int
}

// NewRasterizer sizes the canvas for a square board of tileCount cells
func NewRasterizer(tileCount, cellSize int) *Rasterizer {
	v := NewViewport(cellSize)
	size := int(v.BoardSize(tileCount))
	r := &Rasterizer{Viewport: v, HUD: true, hudH: 24}
	r.dc = gg.NewContext(size, size+r.hudH)
	return r
}

// Render draws snap and returns the frame. The image is reused by the next
// call.
func (r *Rasterizer) Render(snap core.Snapshot) image.Image {
	dc := r.dc
	dc.SetColor(ColorBackground)
	dc.Clear()

	for _, s := range Scene(snap, r.Viewport) {
		DrawShape(dc, s)
	}
	if snap.Over() {
		size := r.Viewport.BoardSize(snap.TileCount)
		dc.SetColor(ColorShade)
		dc.DrawRectangle(r.Viewport.OffsetX, r.Viewport.OffsetY, size, size)
		dc.Fill()
		dc.SetColor(ColorEye)
		dc.DrawStringAnchored(fmt.Sprintf("Game Over! Final score: %d", snap.FinalScore),
			r.Viewport.OffsetX+size/2, r.Viewport.OffsetY+size/2, 0.5, 0.5)
	}
	if r.HUD {
		dc.SetColor(ColorText)
		y := float64(dc.Height() - r.hudH/2)
		dc.DrawStringAnchored(HUDText(snap), 6, y, 0, 0.5)
	}
	return dc.Image()
}

// SavePNG renders snap to a PNG file
func (r *Rasterizer) SavePNG(path string, snap core.Snapshot) error {
	return gg.SavePNG(path, r.Render(snap))
}

// HUDText is the status line shown under the board
func HUDText(snap core.Snapshot) string {
	return fmt.Sprintf("Score: %d  Level: %d  Length: %d", snap.Score, snap.Level, len(snap.Segments))
}

// DrawShape fills one display-list entry
func DrawShape(dc *gg.Context, s Shape) {
	dc.SetColor(s.Color)
	switch s.Kind {
	case ShapeRect:
		dc.DrawRectangle(s.X, s.Y, s.W, s.H)
	case ShapeRoundRect:
		dc.DrawRoundedRectangle(s.X, s.Y, s.W, s.H, s.R)
	case ShapeCircle:
		dc.DrawCircle(s.X, s.Y, s.R)
	case ShapeTriangle:
		dc.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		dc.LineTo(s.Pts[1].X, s.Pts[1].Y)
		dc.LineTo(s.Pts[2].X, s.Pts[2].Y)
		dc.ClosePath()
	}
	dc.Fill()
}
