// pkg/render/fog.go
package render

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise2D — источник двумерного шума; *perlin.Perlin ему удовлетворяет
type Noise2D interface {
	Noise2D(x, y float64) float64
}

// FogParams — параметры деформации и затухания тумана
type FogParams struct {
	Points          int
	Radius          float64 // мировые пиксели
	AmplitudeFactor float64 // доля радиуса
	NoiseScale      float64
	Speed           float64
	FadeWidth       float64
	FadeSteps       int
	Opacity         uint8
}

// NewPerlinNoise создаёт одну октаву шума Перлина (значения примерно в [-0.7, 0.7])
func NewPerlinNoise(seed int64) Noise2D {
	return perlin.NewPerlin(2, 2, 1, seed)
}

// FogPolygon строит «дышащий» многоугольник вокруг (cx, cy).
// Радиус каждой вершины смещается шумом, взятым на окружности, которая
// сдвигается со временем t.
func FogPolygon(cx, cy, t float64, p FogParams, noise Noise2D) []Point {
	points := make([]Point, p.Points)
	amplitude := p.AmplitudeFactor * p.Radius
	shift := t * p.Speed
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(p.Points)
		cos, sin := math.Cos(angle), math.Sin(angle)
		n := noise.Noise2D(cos*p.NoiseScale+shift, sin*p.NoiseScale+shift)
		r := p.Radius + n*amplitude
		points[i] = Point{X: cx + r*cos, Y: cy + r*sin}
	}
	return points
}

// FogHoles возвращает концентрические уменьшенные копии многоугольника.
// Шаг i (fraction = (i+1)/steps) масштабируется на 1-fraction*FadeWidth
// и вычитает (1-fraction)*Opacity. Наложение шагов даёт мягкий край.
func FogHoles(polygon []Point, cx, cy float64, p FogParams) []FogHole {
	holes := make([]FogHole, 0, p.FadeSteps)
	for step := 0; step < p.FadeSteps; step++ {
		fraction := float64(step+1) / float64(p.FadeSteps)
		inset := 1 - fraction*p.FadeWidth
		scaled := make([]Point, len(polygon))
		for i, pt := range polygon {
			scaled[i] = Point{X: cx + (pt.X-cx)*inset, Y: cy + (pt.Y-cy)*inset}
		}
		holes = append(holes, FogHole{
			Points: scaled,
			Alpha:  uint8((1 - fraction) * float64(p.Opacity)),
		})
	}
	return holes
}
