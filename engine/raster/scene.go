package raster

import (
	"image/color"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/maplib"
)

// ShapeKind selects how a Shape is filled
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeRoundRect
	ShapeCircle
	ShapeTriangle
)

// Point is a screen position in pixels
type Point struct{ X, Y float64 }

// Shape is one filled primitive of a frame. Rects use X, Y, W, H (and R as
// the corner radius), circles use X, Y as centre and R, triangles use Pts.
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	W, H  float64
	R     float64
	Pts   [3]Point
	Color color.RGBA
}

// Scene lays out a snapshot as a display list, back to front. Both the
// windowed renderer and the PNG rasteriser draw from it.
func Scene(snap core.Snapshot, v *Viewport) []Shape {
	c := v.Cell()
	bx, by := v.ToScreen(0, 0)
	board := v.BoardSize(snap.TileCount)
	shapes := []Shape{{Kind: ShapeRect, X: bx, Y: by, W: board, H: board, Color: ColorBackground}}

	for _, o := range snap.Obstacles {
		x, y := v.ToScreen(float64(o.X), float64(o.Y))
		shapes = append(shapes, obstacleShape(o.Kind, x, y, c, v.Scale))
	}

	if len(snap.Segments) == 0 {
		return shapes
	}

	fx, fy := v.ToScreen(float64(snap.Food.X), float64(snap.Food.Y))
	shapes = append(shapes, Shape{Kind: ShapeCircle, X: fx + c/2, Y: fy + c/2, R: c/2 - 2*v.Scale, Color: ColorFood})

	inset, radius := 1*v.Scale, 5*v.Scale
	for i, seg := range snap.Segments {
		x, y := v.ToScreen(seg.X, seg.Y)
		fill := BodyColor(i)
		if i == 0 {
			fill = ColorHead
		}
		shapes = append(shapes, Shape{
			Kind:  ShapeRoundRect,
			X:     x + inset,
			Y:     y + inset,
			W:     c - 2*inset,
			H:     c - 2*inset,
			R:     radius,
			Color: fill,
		})
		if i == 0 {
			shapes = append(shapes, eyeShapes(snap.Direction, x, y, c, v.Scale)...)
		}
	}
	return shapes
}

func obstacleShape(k core.ObstacleKind, x, y, c, scale float64) Shape {
	switch k {
	case core.KindSpike:
		return Shape{Kind: ShapeTriangle, Color: ColorSpike, Pts: [3]Point{
			{x + c/2, y}, {x + c, y + c}, {x, y + c},
		}}
	case core.KindPortal:
		return Shape{Kind: ShapeCircle, X: x + c/2, Y: y + c/2, R: c/2 - 2*scale, Color: ColorPortal}
	}
	return Shape{Kind: ShapeRect, X: x, Y: y, W: c, H: c, Color: ColorWall}
}

// Eyes returns the two eye centres of a head drawn at (x, y) with cell size
// c. The eyes sit on the side the snake is heading.
func Eyes(d maplib.Direction, x, y, c, scale float64) [2]Point {
	near, far := 6*scale, c-8*scale
	switch d {
	case maplib.Left:
		return [2]Point{{x + near, y + near}, {x + near, y + far}}
	case maplib.Up:
		return [2]Point{{x + near, y + near}, {x + far, y + near}}
	case maplib.Down:
		return [2]Point{{x + near, y + far}, {x + far, y + far}}
	}
	return [2]Point{{x + far, y + near}, {x + far, y + far}}
}

func eyeShapes(d maplib.Direction, x, y, c, scale float64) []Shape {
	eyes := Eyes(d, x, y, c, scale)
	size := 4 * scale
	out := make([]Shape, 0, 4)
	for _, e := range eyes {
		out = append(out, Shape{Kind: ShapeCircle, X: e.X, Y: e.Y, R: size, Color: ColorEye})
	}
	for _, e := range eyes {
		out = append(out, Shape{Kind: ShapeCircle, X: e.X, Y: e.Y, R: size / 2, Color: ColorPupil})
	}
	return out
}
