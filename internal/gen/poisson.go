package gen

import "math"

// poisson draws from Poisson(lambda) by inverse-transform sampling, which
// is exact and fast for the small means used here (goals, assists).
func (g *Generator) poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for p > limit {
		k++
		p *= g.rng.Float64()
	}
	return k - 1
}
