package render

import "math"

// starPoints is the vertex count of the twinkle star: four outer tips
// alternating with four inner corners.
const starPoints = 8

// starInner is the inner corner radius as a fraction of the outer radius.
const starInner = 0.35

// StarPoints returns the outline of a 4-point twinkle star of outer radius r
// centered at (x, y), rotated by π/4 so the tips point diagonally.
func StarPoints(x, y, r float64) [][2]float64 {
	pts := make([][2]float64, starPoints)
	for k := range pts {
		rad := r
		if k%2 == 1 {
			rad = r * starInner
		}
		ang := math.Pi/4 + float64(k)*(2*math.Pi/starPoints)
		pts[k] = [2]float64{x + math.Cos(ang)*rad, y + math.Sin(ang)*rad}
	}
	return pts
}

// StarDot returns the diameter of the dot drawn at the star's center.
func StarDot(r float64) float64 {
	return math.Max(1.5, r*0.22)
}
