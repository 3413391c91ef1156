// pkg/render/surface.go
package render

import "image/color"

// Point — точка в экранных координатах
type Point struct {
	X, Y float64
}

// FogHole — область, в которой из тумана вычитается Alpha
type FogHole struct {
	Points []Point
	Alpha  uint8
}

// Fog — слой тумана от левого верхнего угла экрана: прямоугольник Width×Height,
// залитый чёрным с Opacity, из которого вычитаются дыры.
// Дыры — звёздные многоугольники вокруг центра.
type Fog struct {
	Width, Height    float64
	CenterX, CenterY float64
	Opacity          uint8
	Holes            []FogHole
}

// Surface — минимальный набор примитивов, которыми рисуется игра.
// Все координаты экранные.
type Surface interface {
	DrawRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	DrawCircle(cx, cy, r float64, clr color.Color)
	DrawLines(points []Point, width float64, clr color.Color)
	DrawPolygon(points []Point, clr color.Color)
	DrawText(s string, x, y float64, clr color.Color)
	DrawFog(fog Fog)
}
