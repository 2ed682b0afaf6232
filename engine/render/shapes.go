package render

import (
	"image/color"

	"github.com/1siamBot/snake-engine/engine/raster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// FillShape draws one display-list entry
func FillShape(dst *ebiten.Image, s raster.Shape) {
	switch s.Kind {
	case raster.ShapeRect:
		vector.FillRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Color, false)
	case raster.ShapeRoundRect:
		FillRoundRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), float32(s.R), s.Color)
	case raster.ShapeCircle:
		vector.FillCircle(dst, float32(s.X), float32(s.Y), float32(s.R), s.Color, true)
	case raster.ShapeTriangle:
		var path vector.Path
		path.MoveTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
		path.LineTo(float32(s.Pts[1].X), float32(s.Pts[1].Y))
		path.LineTo(float32(s.Pts[2].X), float32(s.Pts[2].Y))
		path.Close()
		fillPath(dst, &path, s.Color)
	}
}

// FillRoundRect fills a rectangle with rounded corners of radius r
func FillRoundRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.RGBA) {
	r = min(r, w/2, h/2)
	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.ArcTo(x+w, y, x+w, y+r, r)
	path.LineTo(x+w, y+h-r)
	path.ArcTo(x+w, y+h, x+w-r, y+h, r)
	path.LineTo(x+r, y+h)
	path.ArcTo(x, y+h, x, y+h-r, r)
	path.LineTo(x, y+r)
	path.ArcTo(x, y, x+r, y, r)
	path.Close()
	fillPath(dst, &path, clr)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteImg, op)
}
