package replay

import (
	"fmt"

	"github.com/danielpatrickdp/noisyfit/internal/session"
	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// #region types

// Outcome captures one interaction's result after the recompute cycle.
type Outcome struct {
	Step      int      `json:"step"`
	Control   string   `json:"control"`
	Value     float64  `json:"value"`
	Applied   float64  `json:"applied"` // after clamping/quantization
	N         int      `json:"n"`
	Sigma     float64  `json:"sigma"`
	Slope     float64  `json:"slope"`
	Intercept float64  `json:"intercept"`
	R         float64  `json:"r"`
	CellsRun  []string `json:"cells_run"`
}

// Summary aggregates a replay run.
type Summary struct {
	Steps          int     `json:"steps"`
	CellRuns       int     `json:"cell_runs"`
	FinalN         int     `json:"final_n"`
	FinalSigma     float64 `json:"final_sigma"`
	FinalSlope     float64 `json:"final_slope"`
	FinalIntercept float64 `json:"final_intercept"`
	FinalR         float64 `json:"final_r"`
}

// #endregion types

// #region harness

// Harness replays recorded slider interactions through a fresh session.
// Because the noise stream is fixed-seed and shared, two runs of the same
// interaction sequence produce identical outcomes; reordering the sequence
// does not.
type Harness struct {
	cfg session.Config
}

// NewHarness returns a harness building sessions from cfg. Seed 0 means the
// default demo seed.
func NewHarness(cfg session.Config) *Harness {
	if cfg.Seed == 0 {
		cfg.Seed = synth.Seed
	}
	return &Harness{cfg: cfg}
}

// Run replays the interactions in order against a fresh session and returns
// per-step outcomes plus a summary. The session's initial evaluation is not
// an outcome; step numbering starts at 1.
func (h *Harness) Run(interactions []Interaction) ([]Outcome, Summary, error) {
	s, err := session.New(h.cfg)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("replay session: %w", err)
	}

	outcomes := make([]Outcome, 0, len(interactions))
	totalCells := 0

	for i, in := range interactions {
		var (
			snap session.Snapshot
			err  error
		)
		switch in.Control {
		case "sigma":
			snap, err = s.SetSigma(in.Value)
		case "n":
			snap, err = s.SetN(in.Value)
		default:
			return outcomes, Summary{}, fmt.Errorf("step %d: unknown control %q", i+1, in.Control)
		}
		if err != nil {
			return outcomes, Summary{}, fmt.Errorf("step %d (%s=%v): %w", i+1, in.Control, in.Value, err)
		}

		applied := snap.Sigma
		if in.Control == "n" {
			applied = float64(snap.N)
		}
		plan, err := s.Registry().Invalidate(in.Control)
		if err != nil {
			return outcomes, Summary{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		totalCells += len(plan)

		outcomes = append(outcomes, Outcome{
			Step:      i + 1,
			Control:   in.Control,
			Value:     in.Value,
			Applied:   applied,
			N:         snap.N,
			Sigma:     snap.Sigma,
			Slope:     snap.Slope,
			Intercept: snap.Intercept,
			R:         snap.R,
			CellsRun:  plan,
		})
	}

	final := s.Current()
	return outcomes, Summary{
		Steps:          len(interactions),
		CellRuns:       totalCells,
		FinalN:         final.N,
		FinalSigma:     final.Sigma,
		FinalSlope:     final.Slope,
		FinalIntercept: final.Intercept,
		FinalR:         final.R,
	}, nil
}

// #endregion harness
