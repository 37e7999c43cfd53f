package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/noisyfit/internal/replay"
	"github.com/danielpatrickdp/noisyfit/internal/session"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	jsonOut := flag.Bool("json", false, "output outcomes as JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json]")
		os.Exit(2)
	}

	if err := run(*fixturePath, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(fixturePath string, jsonOut bool) error {
	fixture, err := replay.LoadFixture(fixturePath)
	if err != nil {
		return err
	}

	cfg := session.DefaultConfig()
	cfg.Seed = fixture.Seed
	outcomes, summary, err := replay.NewHarness(cfg).Run(fixture.Interactions)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Outcomes []replay.Outcome `json:"outcomes"`
			Summary  replay.Summary   `json:"summary"`
		}{outcomes, summary})
	}

	if fixture.Description != "" {
		fmt.Printf("fixture: %s\n\n", fixture.Description)
	}
	fmt.Printf("  %-5s %-8s %-10s %-8s %-8s %-8s\n", "STEP", "CONTROL", "VALUE", "SLOPE", "INTCPT", "R")
	for _, o := range outcomes {
		fmt.Printf("  %-5d %-8s %-10.1f %-8.2f %-8.2f %-8.3f\n", o.Step, o.Control, o.Applied, o.Slope, o.Intercept, o.R)
	}
	fmt.Printf("\n%d steps, %d cell runs; final n=%d σ=%.1f slope=%.2f r=%.3f\n",
		summary.Steps, summary.CellRuns, summary.FinalN, summary.FinalSigma, summary.FinalSlope, summary.FinalR)
	return nil
}

// #endregion run
