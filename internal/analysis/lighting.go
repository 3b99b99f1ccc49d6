package analysis

import (
	"image"
	"math"
)

const (
	nearWhite       = 240
	nearBlack       = 20
	exposureAllowed = 0.1
	exposurePenalty = 500.0
	minContrastStd  = 30.0
	contrastPenalty = 2.0
)

// Exposure summarizes the brightness distribution of a frame.
type Exposure struct {
	Mean         float64
	StdDev       float64
	Overexposed  float64
	Underexposed float64
}

func MeasureExposure(g *image.Gray) Exposure {
	b := g.Bounds()
	n := float64(b.Dx() * b.Dy())
	if n == 0 {
		return Exposure{}
	}

	var sum, sumSq float64
	var over, under int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := g.GrayAt(x, y).Y
			f := float64(v)
			sum += f
			sumSq += f * f
			if v > nearWhite {
				over++
			}
			if v < nearBlack {
				under++
			}
		}
	}

	mean := sum / n
	return Exposure{
		Mean:         mean,
		StdDev:       math.Sqrt(math.Max(0, sumSq/n-mean*mean)),
		Overexposed:  float64(over) / n,
		Underexposed: float64(under) / n,
	}
}

// LightingFromExposure starts at 100 and deducts for clipped highlights,
// crushed shadows and flat contrast.
func LightingFromExposure(e Exposure) float64 {
	score := 100.0
	if e.Overexposed > exposureAllowed {
		score -= (e.Overexposed - exposureAllowed) * exposurePenalty
	}
	if e.Underexposed > exposureAllowed {
		score -= (e.Underexposed - exposureAllowed) * exposurePenalty
	}
	if e.StdDev < minContrastStd {
		score -= (minContrastStd - e.StdDev) * contrastPenalty
	}
	return math.Max(0, math.Min(100, score))
}

func LightingScore(img image.Image) float64 {
	return LightingFromExposure(MeasureExposure(Grayscale(img)))
}
