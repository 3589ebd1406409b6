package game

import "math/rand"

// Rand is the uniform source every random decision draws from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source for a match.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
}

// roll reports whether a uniform draw lands under chance.
func roll(r Rand, chance float64) bool {
	if chance <= 0 {
		return false
	}
	return r.Float64() < chance
}

// randomPoint picks a uniform integer point inside [lo, hi] on both axes.
func randomPoint(r Rand, loX, hiX, loY, hiY int) Vec {
	hiX = max(hiX, loX)
	hiY = max(hiY, loY)
	return Vec{
		X: float64(loX + r.Intn(hiX-loX+1)),
		Y: float64(loY + r.Intn(hiY-loY+1)),
	}
}
