package graph

import (
	"errors"
	"strings"
	"testing"
)

// passthrough returns a compute func that binds a constant to every output.
func passthrough(outputs ...string) ComputeFunc {
	return func(in Values) (Values, error) {
		out := make(Values, len(outputs))
		for _, name := range outputs {
			out[name] = 1
		}
		return out, nil
	}
}

// sampleRegistry builds the shape used throughout: one source cell feeding a
// diamond (b and c both read "x", d reads both results, e is independent).
func sampleRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	cells := []Cell{
		{Name: "a", Outputs: []string{"x"}, Compute: passthrough("x")},
		{Name: "b", Inputs: []string{"x"}, Outputs: []string{"y"}, Compute: passthrough("y")},
		{Name: "c", Inputs: []string{"x"}, Outputs: []string{"z"}, Compute: passthrough("z")},
		{Name: "d", Inputs: []string{"y", "z"}, Outputs: []string{"w"}, Compute: passthrough("w")},
		{Name: "e", Outputs: []string{"doc"}, Compute: passthrough("doc")},
	}
	for _, c := range cells {
		if err := r.Register(c); err != nil {
			t.Fatalf("register %s: %v", c.Name, err)
		}
	}
	return r
}

// #region test-register

func TestRegisterRejectsDuplicateCell(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Cell{Name: "a", Outputs: []string{"x"}, Compute: passthrough("x")}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.Register(Cell{Name: "a", Outputs: []string{"y"}, Compute: passthrough("y")})
	if err == nil {
		t.Fatal("expected duplicate cell name error")
	}
}

func TestRegisterRejectsDuplicateProducer(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Cell{Name: "a", Outputs: []string{"x"}, Compute: passthrough("x")}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.Register(Cell{Name: "b", Outputs: []string{"x"}, Compute: passthrough("x")})
	if err == nil {
		t.Fatal("expected duplicate producer error")
	}
	if !strings.Contains(err.Error(), `already produced by "a"`) {
		t.Errorf("error should name the existing producer, got: %v", err)
	}
}

// #endregion test-register

// #region test-topo

func TestTopoOrderDeterministic(t *testing.T) {
	r := sampleRegistry(t)
	want := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 10; i++ {
		order, err := r.TopoOrder()
		if err != nil {
			t.Fatalf("topo order: %v", err)
		}
		if len(order) != len(want) {
			t.Fatalf("expected %d cells, got %v", len(want), order)
		}
		for j := range want {
			if order[j] != want[j] {
				t.Fatalf("run %d: expected order %v, got %v", i, want, order)
			}
		}
	}
}

func TestTopoOrderCycleError(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, Cell{Name: "a", Inputs: []string{"z"}, Outputs: []string{"x"}, Compute: passthrough("x")})
	mustRegister(t, r, Cell{Name: "b", Inputs: []string{"x"}, Outputs: []string{"z"}, Compute: passthrough("z")})

	_, err := r.TopoOrder()
	if err == nil {
		t.Fatal("expected cycle error")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected cycle in error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "a") || !strings.Contains(err.Error(), "b") {
		t.Errorf("cycle error should name members, got: %v", err)
	}
}

func mustRegister(t *testing.T, r *Registry, c Cell) {
	t.Helper()
	if err := r.Register(c); err != nil {
		t.Fatalf("register %s: %v", c.Name, err)
	}
}

// #endregion test-topo

// #region test-invalidate

func TestInvalidateMinimalDownstream(t *testing.T) {
	r := sampleRegistry(t)

	plan, err := r.Invalidate("x")
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	want := []string{"b", "c", "d"}
	if len(plan) != len(want) {
		t.Fatalf("expected plan %v, got %v", want, plan)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Fatalf("expected plan %v, got %v", want, plan)
		}
	}

	// "e" and "a" are not downstream of x and must never appear
	for _, name := range plan {
		if name == "a" || name == "e" {
			t.Errorf("cell %q should not be in the plan", name)
		}
	}
}

func TestInvalidateMidGraph(t *testing.T) {
	r := sampleRegistry(t)

	plan, err := r.Invalidate("y")
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if len(plan) != 1 || plan[0] != "d" {
		t.Fatalf("expected [d], got %v", plan)
	}
}

func TestInvalidateUnknownVariable(t *testing.T) {
	r := sampleRegistry(t)
	plan, err := r.Invalidate("nonexistent")
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if len(plan) != 0 {
		t.Fatalf("expected empty plan, got %v", plan)
	}
}

// #endregion test-invalidate

// #region test-run

func TestRunPropagatesValues(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, Cell{Name: "double", Inputs: []string{"x"}, Outputs: []string{"y"}, Compute: func(in Values) (Values, error) {
		return Values{"y": in["x"].(int) * 2}, nil
	}})
	mustRegister(t, r, Cell{Name: "inc", Inputs: []string{"y"}, Outputs: []string{"z"}, Compute: func(in Values) (Values, error) {
		return Values{"z": in["y"].(int) + 1}, nil
	}})

	values := Values{"x": 5}
	runs, err := r.Run(values, []string{"double", "inc"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if values["z"].(int) != 11 {
		t.Errorf("expected z=11, got %v", values["z"])
	}
}

func TestRunAbortsOnCellError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	mustRegister(t, r, Cell{Name: "ok", Outputs: []string{"x"}, Compute: passthrough("x")})
	mustRegister(t, r, Cell{Name: "bad", Inputs: []string{"x"}, Outputs: []string{"y"}, Compute: func(in Values) (Values, error) {
		return nil, boom
	}})
	mustRegister(t, r, Cell{Name: "after", Inputs: []string{"y"}, Outputs: []string{"z"}, Compute: passthrough("z")})

	values := Values{}
	runs, err := r.Run(values, []string{"ok", "bad", "after"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cell error, got %v", err)
	}
	if len(runs) != 1 || runs[0].Cell != "ok" {
		t.Fatalf("expected only 'ok' to have run, got %+v", runs)
	}
	if _, bound := values["x"]; !bound {
		t.Error("earlier output should remain in place")
	}
	if _, bound := values["y"]; bound {
		t.Error("failed cell's output should not be bound")
	}
}

func TestRunRejectsUnboundInput(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, Cell{Name: "b", Inputs: []string{"missing"}, Outputs: []string{"y"}, Compute: passthrough("y")})
	_, err := r.Run(Values{}, []string{"b"})
	if err == nil || !strings.Contains(err.Error(), "unbound") {
		t.Fatalf("expected unbound input error, got %v", err)
	}
}

func TestRunRejectsUndeclaredOutput(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, Cell{Name: "sneaky", Outputs: []string{"x"}, Compute: func(in Values) (Values, error) {
		return Values{"x": 1, "hidden": 2}, nil
	}})
	_, err := r.Run(Values{}, []string{"sneaky"})
	if err == nil || !strings.Contains(err.Error(), "undeclared") {
		t.Fatalf("expected undeclared output error, got %v", err)
	}
}

// #endregion test-run
