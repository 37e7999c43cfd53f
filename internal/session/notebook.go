package session

import (
	"fmt"

	"github.com/danielpatrickdp/noisyfit/internal/controls"
	"github.com/danielpatrickdp/noisyfit/internal/fit"
	"github.com/danielpatrickdp/noisyfit/internal/graph"
	"github.com/danielpatrickdp/noisyfit/internal/plot"
	"github.com/danielpatrickdp/noisyfit/internal/report"
	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// Notebook variable names. The controls cell publishes the slider values;
// everything else derives from them.
const (
	VarSigma   = "sigma"
	VarN       = "n"
	VarDataset = "dataset"
	VarFit     = "fit"
	VarReport  = "report"
	VarChart   = "chart"
	VarFlowDoc = "docflow"
)

// #region build-notebook

// BuildNotebook registers the demo's six cells against a fresh registry:
//
//	controls → (sigma, n) → data → dataset → fit → fit
//	report reads (sigma, n, fit); chart reads (dataset, fit); docflow is static.
//
// Data generation draws from gen's shared stream, so re-running the data cell
// advances the noise sequence rather than replaying it.
func BuildNotebook(gen *synth.Generator, sigma, n *controls.Control) (*graph.Registry, error) {
	reg := graph.NewRegistry()

	cells := []graph.Cell{
		{
			Name:    "controls",
			Outputs: []string{VarSigma, VarN},
			Compute: func(in graph.Values) (graph.Values, error) {
				return graph.Values{VarSigma: sigma.Value, VarN: n.Int()}, nil
			},
		},
		{
			Name:    "data",
			Inputs:  []string{VarSigma, VarN},
			Outputs: []string{VarDataset},
			Compute: func(in graph.Values) (graph.Values, error) {
				sg, ok := in[VarSigma].(float64)
				if !ok {
					return nil, fmt.Errorf("sigma is %T, want float64", in[VarSigma])
				}
				count, ok := in[VarN].(int)
				if !ok {
					return nil, fmt.Errorf("n is %T, want int", in[VarN])
				}
				return graph.Values{VarDataset: gen.Generate(count, sg)}, nil
			},
		},
		{
			Name:    "fit",
			Inputs:  []string{VarDataset},
			Outputs: []string{VarFit},
			Compute: func(in graph.Values) (graph.Values, error) {
				ds := in[VarDataset].(synth.Dataset)
				return graph.Values{VarFit: fit.Fit(ds)}, nil
			},
		},
		{
			Name:    "report",
			Inputs:  []string{VarSigma, VarN, VarFit},
			Outputs: []string{VarReport},
			Compute: func(in graph.Values) (graph.Values, error) {
				md := report.Render(in[VarSigma].(float64), in[VarN].(int), in[VarFit].(fit.Result))
				return graph.Values{VarReport: md}, nil
			},
		},
		{
			Name:    "chart",
			Inputs:  []string{VarDataset, VarFit},
			Outputs: []string{VarChart},
			Compute: func(in graph.Values) (graph.Values, error) {
				ds := in[VarDataset].(synth.Dataset)
				res := in[VarFit].(fit.Result)
				return graph.Values{VarChart: plot.Spec(ds, res.YHat)}, nil
			},
		},
		{
			Name:    "docflow",
			Outputs: []string{VarFlowDoc},
			Compute: func(in graph.Values) (graph.Values, error) {
				return graph.Values{VarFlowDoc: report.FlowDoc()}, nil
			},
		},
	}

	for _, c := range cells {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("build notebook: %w", err)
		}
	}
	return reg, nil
}

// #endregion build-notebook
