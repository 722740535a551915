package city

import (
	"math"
	"math/rand"

	"neoncity/internal/assets"
	"neoncity/internal/config"
)

func newTestBuilder(cfg config.Config) *Builder {
	return NewBuilder(cfg, assets.NewPalette(), rand.New(rand.NewSource(1)))
}

// ringDist is the shortest distance between a and b on a loop of length l.
func ringDist(a, b, l float64) float64 {
	d := math.Mod(math.Abs(a-b), l)
	return math.Min(d, l-d)
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
