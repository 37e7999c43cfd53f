package synth

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// #region constants

// True relationship: y = 2.5x + 5 + ε, sampled over [0, 10].
const (
	TrueSlope     = 2.5
	TrueIntercept = 5.0
	XMin          = 0.0
	XMax          = 10.0

	// Seed fixes the noise stream for a session. Draws are reproducible only
	// while the order and count of draws stay identical; see Generator.
	Seed uint64 = 42
)

// #endregion constants

// #region types

// Dataset is an ordered pair of equal-length samples.
type Dataset struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.X) }

// Generator owns the session's noise stream. All datasets generated through
// one Generator share a single underlying source, like the original shared
// rng: regenerating an identical dataset requires an identical draw history,
// not just the same (n, σ) pair. A fresh Generator restarts the stream.
type Generator struct {
	src rand.Source
}

// NewGenerator returns a Generator seeded with the given value.
func NewGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewSource(seed)}
}

// #endregion types

// #region generate

// Generate produces n points with x evenly spaced over [0, 10] and
// y = 2.5x + 5 + ε, ε ~ N(0, σ²) drawn from the generator's stream. A draw
// is consumed per point even when σ is 0, so the stream position advances
// the same way regardless of noise level.
func (g *Generator) Generate(n int, sigma float64) Dataset {
	x := Linspace(XMin, XMax, n)
	y := make([]float64, len(x))

	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: g.src}
	for i := range x {
		eps := noise.Rand() * sigma
		y[i] = TrueSlope*x[i] + TrueIntercept + eps
	}
	return Dataset{X: x, Y: y}
}

// Linspace returns n evenly spaced points over [lo, hi], endpoints included.
// n of 1 returns just lo; n below 1 returns an empty slice.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	pts := make([]float64, n)
	span := hi - lo
	for i := range pts {
		pts[i] = lo + span*float64(i)/float64(n-1)
	}
	return pts
}

// #endregion generate
