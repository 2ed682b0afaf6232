package raster

import (
	"math"

	"github.com/1siamBot/snake-engine/engine/maplib"
)

// Viewport maps board cells to screen pixels
type Viewport struct {
	CellSize float64 // unscaled pixels per cell
	Scale    float64 // zoom (1.0 = native)
	OffsetX  float64 // screen position of the board's top-left corner
	OffsetY  float64
	MinScale float64
	MaxScale float64
}

// NewViewport creates a viewport at native scale
func NewViewport(cellSize int) *Viewport {
	return &Viewport{
		CellSize: float64(cellSize),
		Scale:    1.0,
		MinScale: 0.25,
		MaxScale: 4.0,
	}
}

// Cell returns the on-screen cell size
func (v *Viewport) Cell() float64 {
	return v.CellSize * v.Scale
}

// BoardSize returns the on-screen size of a square board
func (v *Viewport) BoardSize(tileCount int) float64 {
	return v.Cell() * float64(tileCount)
}

// Fit scales the board to the largest size that fits the screen, keeping
// whole-cell proportions, and centres it
func (v *Viewport) Fit(screenW, screenH, tileCount int) {
	native := v.CellSize * float64(tileCount)
	if native <= 0 {
		return
	}
	s := math.Min(float64(screenW), float64(screenH)) / native
	v.Scale = math.Max(v.MinScale, math.Min(v.MaxScale, s))
	size := v.BoardSize(tileCount)
	v.OffsetX = (float64(screenW) - size) / 2
	v.OffsetY = (float64(screenH) - size) / 2
}

// ToScreen converts a continuous cell position to the pixel position of the
// cell's top-left corner
func (v *Viewport) ToScreen(x, y float64) (float64, float64) {
	c := v.Cell()
	return v.OffsetX + x*c, v.OffsetY + y*c
}

// ScreenToCell converts a pixel position to the cell under it
func (v *Viewport) ScreenToCell(sx, sy int) maplib.Cell {
	c := v.Cell()
	x := math.Floor((float64(sx) - v.OffsetX) / c)
	y := math.Floor((float64(sy) - v.OffsetY) / c)
	return maplib.Cell{X: int(x), Y: int(y)}
}
