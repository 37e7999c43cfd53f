package session

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/danielpatrickdp/noisyfit/internal/controls"
	"github.com/danielpatrickdp/noisyfit/internal/fit"
	"github.com/danielpatrickdp/noisyfit/internal/graph"
	"github.com/danielpatrickdp/noisyfit/internal/logging"
	"github.com/danielpatrickdp/noisyfit/internal/plot"
	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// #region session-struct

// Session is the explicit reactive session: the two controls, the shared
// noise generator, the cell registry, the current variable bindings, and a
// bounded history of snapshots. Single-threaded by design; each slider event
// runs a full recompute cycle before the next is processed.
type Session struct {
	sigma *controls.Control
	n     *controls.Control

	gen    *synth.Generator
	reg    *graph.Registry
	values graph.Values

	history []Snapshot // newest first
	limit   int

	prov *logging.Provenance
	log  *logrus.Logger
}

// #endregion session-struct

// #region constructor

// New builds a session and runs the initial full evaluation of every cell.
func New(cfg Config) (*Session, error) {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}
	if cfg.Provenance == nil {
		cfg.Provenance = logging.NewProvenance(nil)
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.SetOutput(io.Discard)
	}

	s := &Session{
		sigma: controls.Sigma(),
		n:     controls.SampleSize(),
		gen:   synth.NewGenerator(cfg.Seed),
		limit: cfg.HistoryLimit,
		prov:  cfg.Provenance,
		log:   cfg.Log,
	}

	reg, err := BuildNotebook(s.gen, s.sigma, s.n)
	if err != nil {
		return nil, err
	}
	s.reg = reg
	s.values = graph.Values{}

	plan, err := reg.TopoOrder()
	if err != nil {
		return nil, fmt.Errorf("initial evaluation: %w", err)
	}
	if _, err := s.runCycle("init", plan); err != nil {
		return nil, fmt.Errorf("initial evaluation: %w", err)
	}
	return s, nil
}

// #endregion constructor

// #region setters

// SetSigma applies a new noise level: the control quantizes it, the new
// binding is published, and the minimal downstream subset recomputes.
// Returns the resulting snapshot.
func (s *Session) SetSigma(v float64) (Snapshot, error) {
	applied := s.sigma.Set(v)
	s.values[VarSigma] = applied
	return s.Recompute(VarSigma)
}

// SetN applies a new sample size, quantized to the control's 50-step grid.
func (s *Session) SetN(v float64) (Snapshot, error) {
	s.n.Set(v)
	s.values[VarN] = s.n.Int()
	return s.Recompute(VarN)
}

// #endregion setters

// #region recompute

// Recompute re-evaluates every cell downstream of the changed variable, in
// dependency order, and snapshots the result. A cell error aborts the cycle:
// upstream outputs stay, downstream outputs go stale, no snapshot is taken.
func (s *Session) Recompute(changed string) (Snapshot, error) {
	plan, err := s.reg.Invalidate(changed)
	if err != nil {
		return Snapshot{}, fmt.Errorf("recompute %s: %w", changed, err)
	}
	return s.runCycle(changed, plan)
}

func (s *Session) runCycle(trigger string, plan []string) (Snapshot, error) {
	start := time.Now()
	runs, err := s.reg.Run(s.values, plan)
	if err != nil {
		return Snapshot{}, err
	}

	res := s.values[VarFit].(fit.Result)
	snap := Snapshot{
		ID:        uuid.NewString(),
		Trigger:   trigger,
		At:        time.Now().UTC(),
		N:         s.n.Int(),
		Sigma:     s.sigma.Value,
		Slope:     res.Slope,
		Intercept: res.Intercept,
		R:         res.R,
	}
	if len(s.history) > 0 {
		snap.ParentID = s.history[0].ID
	}
	s.history = append([]Snapshot{snap}, s.history...)
	if len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}

	entry := logging.ProvenanceEntry{
		SnapshotID: snap.ID,
		ParentID:   snap.ParentID,
		Trigger:    trigger,
		CreatedAt:  snap.At,
	}
	for _, r := range runs {
		entry.Cells = append(entry.Cells, logging.CellRunInfo{
			Cell:       r.Cell,
			Outputs:    r.Outputs,
			DurationMS: float64(r.Duration.Microseconds()) / 1000.0,
		})
	}
	if err := s.prov.Log(entry); err != nil {
		s.log.WithError(err).Warn("provenance log failed")
	}

	s.log.WithFields(logrus.Fields{
		"trigger": trigger,
		"cells":   len(runs),
		"took":    time.Since(start),
	}).Debug("recompute cycle")

	return snap, nil
}

// #endregion recompute

// #region accessors

// Current returns the newest snapshot.
func (s *Session) Current() Snapshot { return s.history[0] }

// History returns the retained snapshots, newest first.
func (s *Session) History() []Snapshot {
	return append([]Snapshot(nil), s.history...)
}

// Report returns the current Markdown summary.
func (s *Session) Report() string { return s.values[VarReport].(string) }

// FlowDoc returns the static data-flow Markdown block.
func (s *Session) FlowDoc() string { return s.values[VarFlowDoc].(string) }

// Dataset returns the current synthetic dataset.
func (s *Session) Dataset() synth.Dataset { return s.values[VarDataset].(synth.Dataset) }

// FitResult returns the current fit.
func (s *Session) FitResult() fit.Result { return s.values[VarFit].(fit.Result) }

// Chart returns the current chart spec.
func (s *Session) Chart() *chart.Chart { return s.values[VarChart].(*chart.Chart) }

// ChartPNG renders the current chart spec to PNG bytes.
func (s *Session) ChartPNG() ([]byte, error) { return plot.RenderPNG(s.Chart()) }

// SigmaControl returns the σ slider model for UI binding.
func (s *Session) SigmaControl() *controls.Control { return s.sigma }

// NControl returns the sample-size slider model for UI binding.
func (s *Session) NControl() *controls.Control { return s.n }

// Registry exposes the cell registry for inspection tooling.
func (s *Session) Registry() *graph.Registry { return s.reg }

// #endregion accessors
