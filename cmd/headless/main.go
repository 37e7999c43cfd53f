package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/noisyfit/internal/session"
)

// #region main

func main() {
	n := flag.Float64("n", 300, "sample size (snapped to the 50-step grid)")
	sigma := flag.Float64("sigma", 1.0, "noise std σ (snapped to the 0.1 grid)")
	chartPath := flag.String("chart", "", "write the chart PNG to this path")
	flag.Parse()

	if err := run(*n, *sigma, *chartPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

// run evaluates the notebook once at the requested slider positions and
// prints the Markdown report. The two Set calls mirror a user moving each
// slider once, so the draw stream matches an interactive session doing the
// same moves.
func run(n, sigma float64, chartPath string) error {
	sess, err := session.New(session.DefaultConfig())
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if _, err := sess.SetN(n); err != nil {
		return fmt.Errorf("set n: %w", err)
	}
	if _, err := sess.SetSigma(sigma); err != nil {
		return fmt.Errorf("set sigma: %w", err)
	}

	fmt.Print(sess.Report())

	if chartPath != "" {
		png, err := sess.ChartPNG()
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		if err := os.WriteFile(chartPath, png, 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Fprintf(os.Stderr, "chart written to %s (%d bytes)\n", chartPath, len(png))
	}
	return nil
}

// #endregion run
