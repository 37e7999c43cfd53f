package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/noisyfit/internal/controls"
	"github.com/danielpatrickdp/noisyfit/internal/graph"
	"github.com/danielpatrickdp/noisyfit/internal/session"
	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// #region main

func main() {
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	reg, err := session.BuildNotebook(synth.NewGenerator(synth.Seed), controls.Sigma(), controls.SampleSize())
	if err != nil {
		fmt.Fprintf(os.Stderr, "build notebook: %v\n", err)
		os.Exit(1)
	}

	order, err := reg.TopoOrder()
	if err != nil {
		fmt.Fprintf(os.Stderr, "topo order: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := printJSON(reg, order); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printTable(reg, order)
}

// #endregion main

// #region output

type cellInfo struct {
	Cell    string   `json:"cell"`
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

func printTable(reg *graph.Registry, order []string) {
	fmt.Println("cell dependency graph (evaluation order):")
	fmt.Println()
	fmt.Printf("  %-10s %-22s %s\n", "CELL", "INPUTS", "OUTPUTS")
	for _, name := range order {
		c, _ := reg.Cell(name)
		fmt.Printf("  %-10s %-22s %s\n", name, joinOrDash(c.Inputs), joinOrDash(c.Outputs))
	}
}

func printJSON(reg *graph.Registry, order []string) error {
	infos := make([]cellInfo, 0, len(order))
	for _, name := range order {
		c, _ := reg.Cell(name)
		infos = append(infos, cellInfo{Cell: name, Inputs: c.Inputs, Outputs: c.Outputs})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// #endregion output
