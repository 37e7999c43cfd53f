package graph

import (
	"fmt"
	"time"
)

// #region types

// Values holds the notebook's variable bindings, keyed by variable name.
type Values map[string]any

// ComputeFunc evaluates a cell. It receives a copy of the cell's declared
// inputs and must return a binding for every declared output.
type ComputeFunc func(in Values) (Values, error)

// Cell is a named unit of computation with explicitly declared inputs and
// outputs. The registry uses the declarations to build the dependency graph;
// the scheduler enforces them by copying bindings in and out.
type Cell struct {
	Name    string
	Inputs  []string // variable names this cell reads
	Outputs []string // variable names this cell produces
	Compute ComputeFunc
}

// CellRun records one execution of a cell during a recompute cycle.
type CellRun struct {
	Cell     string
	Outputs  []string
	Duration time.Duration
}

// #endregion types

// #region registry

// Registry maps output variables to their producing cells and keeps the
// declared input list per cell. Registration order is the tie-break for
// topological ordering, so evaluation order is deterministic.
type Registry struct {
	cells    []Cell
	byName   map[string]int    // cell name → index into cells
	producer map[string]string // variable name → producing cell name
}

// NewRegistry returns an empty cell registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]int),
		producer: make(map[string]string),
	}
}

// Register adds a cell. It rejects duplicate cell names and variables that
// already have a producer: every variable has exactly one producing cell.
func (r *Registry) Register(c Cell) error {
	if c.Name == "" {
		return fmt.Errorf("register cell: empty name")
	}
	if _, exists := r.byName[c.Name]; exists {
		return fmt.Errorf("register cell %q: duplicate cell name", c.Name)
	}
	if c.Compute == nil {
		return fmt.Errorf("register cell %q: nil compute func", c.Name)
	}
	for _, out := range c.Outputs {
		if prev, taken := r.producer[out]; taken {
			return fmt.Errorf("register cell %q: output %q already produced by %q", c.Name, out, prev)
		}
	}
	for _, out := range c.Outputs {
		r.producer[out] = c.Name
	}
	r.byName[c.Name] = len(r.cells)
	r.cells = append(r.cells, c)
	return nil
}

// Cells returns the registered cells in registration order.
func (r *Registry) Cells() []Cell {
	return append([]Cell(nil), r.cells...)
}

// Cell returns the cell with the given name.
func (r *Registry) Cell(name string) (Cell, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Cell{}, false
	}
	return r.cells[i], true
}

// Producer returns the name of the cell producing the given variable.
func (r *Registry) Producer(varName string) (string, bool) {
	c, ok := r.producer[varName]
	return c, ok
}

// Consumers returns the names of cells that declare varName as an input,
// in registration order.
func (r *Registry) Consumers(varName string) []string {
	var names []string
	for _, c := range r.cells {
		for _, in := range c.Inputs {
			if in == varName {
				names = append(names, c.Name)
				break
			}
		}
	}
	return names
}

// #endregion registry

// #region topo

// TopoOrder returns cell names in dependency order: a cell appears after
// every cell whose outputs it consumes. Ties break by registration order.
// A dependency cycle returns an error naming the cells involved.
func (r *Registry) TopoOrder() ([]string, error) {
	// indegree counts upstream producer cells not yet scheduled
	indeg := make(map[string]int, len(r.cells))
	for _, c := range r.cells {
		indeg[c.Name] = 0
	}
	for _, c := range r.cells {
		for _, in := range c.Inputs {
			if _, hasProducer := r.producer[in]; hasProducer {
				indeg[c.Name]++
			}
		}
	}

	order := make([]string, 0, len(r.cells))
	done := make(map[string]bool, len(r.cells))

	for len(order) < len(r.cells) {
		progressed := false
		// first registration-order cell with no unfinished upstream wins
		for _, c := range r.cells {
			if done[c.Name] || indeg[c.Name] != 0 {
				continue
			}
			done[c.Name] = true
			order = append(order, c.Name)
			for _, out := range c.Outputs {
				for _, consumer := range r.Consumers(out) {
					indeg[consumer]--
				}
			}
			progressed = true
			break
		}
		if !progressed {
			var stuck []string
			for _, c := range r.cells {
				if !done[c.Name] {
					stuck = append(stuck, c.Name)
				}
			}
			return nil, fmt.Errorf("dependency cycle among cells %v", stuck)
		}
	}
	return order, nil
}

// #endregion topo

// #region invalidate

// Invalidate returns, in topological order, the minimal set of cells that
// must re-run after the given variables changed: the consumers of each
// changed variable plus everything downstream of those. Producers of the
// changed variables are not re-run; the caller publishes the new bindings.
func (r *Registry) Invalidate(changed ...string) ([]string, error) {
	order, err := r.TopoOrder()
	if err != nil {
		return nil, err
	}

	dirty := make(map[string]bool)
	for _, varName := range changed {
		for _, name := range r.Consumers(varName) {
			dirty[name] = true
		}
	}
	// one topo-order pass propagates dirtiness downstream
	for _, name := range order {
		if !dirty[name] {
			continue
		}
		c, _ := r.Cell(name)
		for _, out := range c.Outputs {
			for _, consumer := range r.Consumers(out) {
				dirty[consumer] = true
			}
		}
	}

	var plan []string
	for _, name := range order {
		if dirty[name] {
			plan = append(plan, name)
		}
	}
	return plan, nil
}

// #endregion invalidate

// #region run

// Run executes the named cells in the order given, reading inputs from values
// and merging outputs back in. Each cell sees only its declared inputs and
// must bind every declared output; anything else is an error. The first cell
// error aborts the cycle, leaving earlier outputs in place and later cells
// stale — there is no partial recovery.
func (r *Registry) Run(values Values, plan []string) ([]CellRun, error) {
	runs := make([]CellRun, 0, len(plan))
	for _, name := range plan {
		c, ok := r.Cell(name)
		if !ok {
			return runs, fmt.Errorf("run: unknown cell %q", name)
		}

		in := make(Values, len(c.Inputs))
		for _, varName := range c.Inputs {
			v, bound := values[varName]
			if !bound {
				return runs, fmt.Errorf("run cell %q: input %q is unbound", name, varName)
			}
			in[varName] = v
		}

		start := time.Now()
		out, err := c.Compute(in)
		if err != nil {
			return runs, fmt.Errorf("run cell %q: %w", name, err)
		}

		for varName := range out {
			if r.producer[varName] != name {
				return runs, fmt.Errorf("run cell %q: produced undeclared output %q", name, varName)
			}
		}
		for _, varName := range c.Outputs {
			v, bound := out[varName]
			if !bound {
				return runs, fmt.Errorf("run cell %q: declared output %q not produced", name, varName)
			}
			values[varName] = v
		}

		runs = append(runs, CellRun{
			Cell:     name,
			Outputs:  append([]string(nil), c.Outputs...),
			Duration: time.Since(start),
		})
	}
	return runs, nil
}

// #endregion run
