package fit

import (
	"gonum.org/v1/gonum/stat"

	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// #region types

// Result holds the closed-form least-squares fit of a dataset.
type Result struct {
	Slope     float64
	Intercept float64
	R         float64   // Pearson correlation between x and y
	YHat      []float64 // Slope*x + Intercept, pointwise; same length as x
}

// #endregion types

// #region fit

// Fit computes the ordinary least-squares degree-1 fit of the dataset via the
// closed-form normal equations, plus the Pearson correlation coefficient and
// the predicted values. Degenerate inputs (fewer than 2 points, or zero x
// variance) yield NaN slope and correlation; that is not guarded here.
func Fit(ds synth.Dataset) Result {
	intercept, slope := stat.LinearRegression(ds.X, ds.Y, nil, false)
	r := stat.Correlation(ds.X, ds.Y, nil)

	yhat := make([]float64, len(ds.X))
	for i, x := range ds.X {
		yhat[i] = slope*x + intercept
	}

	return Result{
		Slope:     slope,
		Intercept: intercept,
		R:         r,
		YHat:      yhat,
	}
}

// #endregion fit
