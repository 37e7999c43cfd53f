package controls

import "math"

// #region control

// Control is a named numeric slider: a bounded range with a step grid, a
// current value, and a display label. Controls are created once per session
// and mutated only through Set.
type Control struct {
	Name  string
	Label string
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// Set clamps v to [Min, Max], snaps it to the nearest multiple of Step from
// Min, and stores the result. The applied value is returned so callers can
// reflect the quantized position back into the widget.
func (c *Control) Set(v float64) float64 {
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	if c.Step > 0 {
		steps := math.Round((v - c.Min) / c.Step)
		v = c.Min + steps*c.Step
		// snapping can overshoot Max by one step at the top of the range
		if v > c.Max {
			v = c.Max
		}
	}
	c.Value = v
	return v
}

// Int returns the current value rounded to the nearest integer, for controls
// whose step grid is integral.
func (c *Control) Int() int {
	return int(math.Round(c.Value))
}

// #endregion control

// #region constructors

// Sigma returns the noise standard deviation slider: [0, 5] in steps of 0.1,
// starting at 1.0.
func Sigma() *Control {
	return &Control{
		Name:  "sigma",
		Label: "Noise std (σ)",
		Min:   0.0,
		Max:   5.0,
		Step:  0.1,
		Value: 1.0,
	}
}

// SampleSize returns the sample size slider: [50, 1000] in steps of 50,
// starting at 300.
func SampleSize() *Control {
	return &Control{
		Name:  "n",
		Label: "Sample size (n)",
		Min:   50,
		Max:   1000,
		Step:  50,
		Value: 300,
	}
}

// #endregion constructors
