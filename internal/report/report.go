package report

import (
	"fmt"

	"github.com/danielpatrickdp/noisyfit/internal/fit"
)

// #region render

// Render builds the Markdown relationship summary shown beneath the sliders.
// Formatting is fixed: slope and intercept to 2 decimals, r to 3, n as an
// integer, σ to 1 decimal.
func Render(sigma float64, n int, res fit.Result) string {
	return fmt.Sprintf(`### Relationship summary

- **Model**: y = %.2fx + %.2f
- **Correlation**: r = %.3f
- **Sample size**: **%d**
- **Noise std (σ)**: **%.1f**

_As σ increases, the points spread further from the line; correlation and the stability of the fitted slope typically decrease._
`, res.Slope, res.Intercept, res.R, n, sigma)
}

// #endregion render

// #region flow-doc

// FlowDoc returns the static description of the cell dependency graph. It
// depends on nothing and never recomputes.
func FlowDoc() string {
	return "**Data flow**\n\n" +
		"`[controls]` → `sigma, n`  ⟶  `[data]` → `dataset`  ⟶  `[fit]` → `slope, intercept, r, y-hat`\n\n" +
		"Then:\n\n" +
		"- `[report]` consumes `sigma, n, fit` → dynamic Markdown\n" +
		"- `[chart]` consumes `dataset, fit` → scatter and fitted line\n"
}

// #endregion flow-doc
