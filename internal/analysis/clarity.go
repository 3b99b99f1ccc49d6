package analysis

import "image"

const (
	blurVariance  = 50.0
	sharpVariance = 100.0
)

// LaplacianVariance is the focus measure: the variance of the 4-neighbour
// Laplacian response over the interior pixels of g.
func LaplacianVariance(g *image.Gray) float64 {
	b := g.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return 0
	}

	var sum, sumSq float64
	var n int
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			lap := grayAt(g, x-1, y) + grayAt(g, x+1, y) +
				grayAt(g, x, y-1) + grayAt(g, x, y+1) -
				4*grayAt(g, x, y)
			sum += lap
			sumSq += lap * lap
			n++
		}
	}

	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

// ClarityFromVariance maps a focus measure onto [0,100]: 0 at or below 50,
// 100 at or above 100, linear in between.
func ClarityFromVariance(v float64) float64 {
	switch {
	case v <= blurVariance:
		return 0
	case v >= sharpVariance:
		return 100
	default:
		return (v - blurVariance) * 100 / (sharpVariance - blurVariance)
	}
}

func ClarityScore(img image.Image) float64 {
	return ClarityFromVariance(LaplacianVariance(Grayscale(img)))
}
