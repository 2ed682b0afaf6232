package render

import (
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/raster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var gridColor = color.RGBA{0, 0, 0, 12}

// BoardRenderer draws snapshots onto an ebiten image
type BoardRenderer struct {
	Viewport *raster.Viewport
	ShowGrid bool
}

func NewBoardRenderer(cellSize int) *BoardRenderer {
	return &BoardRenderer{Viewport: raster.NewViewport(cellSize)}
}

// Draw paints the board, obstacles, food and snake
func (r *BoardRenderer) Draw(screen *ebiten.Image, snap core.Snapshot) {
	shapes := raster.Scene(snap, r.Viewport)
	if len(shapes) > 0 {
		FillShape(screen, shapes[0])
		shapes = shapes[1:]
	}
	if r.ShowGrid {
		r.drawGrid(screen, snap.TileCount)
	}
	for _, s := range shapes {
		FillShape(screen, s)
	}
}

func (r *BoardRenderer) drawGrid(screen *ebiten.Image, n int) {
	v := r.Viewport
	x0, y0 := v.ToScreen(0, 0)
	size := float32(v.BoardSize(n))
	for i := 0; i <= n; i++ {
		x, y := v.ToScreen(float64(i), float64(i))
		vector.StrokeLine(screen, float32(x), float32(y0), float32(x), float32(y0)+size, 1, gridColor, false)
		vector.StrokeLine(screen, float32(x0), float32(y), float32(x0)+size, float32(y), 1, gridColor, false)
	}
}
