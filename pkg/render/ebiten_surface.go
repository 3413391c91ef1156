package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var _ Surface = (*EbitenSurface)(nil)

// subtractAlpha вычитает альфу источника из приёмника (dst - src)
var subtractAlpha = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
	BlendOperationAlpha:         ebiten.BlendOperationReverseSubtract,
}

// EbitenSurface рисует примитивы в *ebiten.Image.
// Target меняется каждый кадр через SetTarget.
type EbitenSurface struct {
	target   *ebiten.Image
	fillImg  *ebiten.Image
	fogImg   *ebiten.Image
	fontFace font.Face
	ascent   int
	vs       []ebiten.Vertex
	is       []uint16
}

// LoadFontFace загружает встроенный Go Regular нужного размера
func LoadFontFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func NewEbitenSurface(face font.Face) *EbitenSurface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenSurface{
		fillImg:  fillImg,
		fontFace: face,
		ascent:   face.Metrics().Ascent.Ceil(),
	}
}

// SetTarget задаёт изображение, в которое идёт отрисовка
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *EbitenSurface) DrawRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s *EbitenSurface) DrawCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *EbitenSurface) DrawLines(points []Point, width float64, clr color.Color) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(s.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

func (s *EbitenSurface) DrawPolygon(points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	r, g, b, a := clr.RGBA()
	for i := range s.vs {
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	s.target.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawText рисует строку; (x, y) — левый верхний угол
func (s *EbitenSurface) DrawText(str string, x, y float64, clr color.Color) {
	text.Draw(s.target, str, s.fontFace, int(x), int(y)+s.ascent, clr)
}

// DrawFog заливает область туманом и вырезает дыры вычитанием альфы.
// Дыры звёздные относительно центра, поэтому хватает веера треугольников.
func (s *EbitenSurface) DrawFog(fog Fog) {
	w, h := int(fog.Width), int(fog.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if s.fogImg == nil || s.fogImg.Bounds().Dx() != w || s.fogImg.Bounds().Dy() != h {
		if s.fogImg != nil {
			s.fogImg.Deallocate()
		}
		s.fogImg = ebiten.NewImage(w, h)
	}
	s.fogImg.Fill(color.RGBA{0, 0, 0, fog.Opacity})

	for _, hole := range fog.Holes {
		if hole.Alpha == 0 || len(hole.Points) < 3 {
			continue
		}
		s.fanTriangles(fog.CenterX, fog.CenterY, hole.Points, float32(hole.Alpha)/255)
		s.fogImg.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
			Blend: subtractAlpha,
		})
	}

	s.target.DrawImage(s.fogImg, nil)
}

// fanTriangles строит веер треугольников от центра по замкнутому контуру
func (s *EbitenSurface) fanTriangles(cx, cy float64, contour []Point, alpha float32) {
	s.vs = s.vs[:0]
	s.is = s.is[:0]
	s.vs = append(s.vs, ebiten.Vertex{DstX: float32(cx), DstY: float32(cy), ColorA: alpha})
	for _, p := range contour {
		s.vs = append(s.vs, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			ColorA: alpha,
		})
	}
	n := uint16(len(contour))
	for i := uint16(0); i < n; i++ {
		s.is = append(s.is, 0, 1+i, 1+(i+1)%n)
	}
}
