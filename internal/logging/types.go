package logging

import "time"

// #region provenance-entry
// ProvenanceEntry records one recompute cycle: which variable change
// triggered it and which cells re-ran, in order.
type ProvenanceEntry struct {
	SnapshotID string        `json:"snapshot_id"`
	ParentID   string        `json:"parent_id,omitempty"`
	Trigger    string        `json:"trigger"` // changed variable name, or "init"
	Cells      []CellRunInfo `json:"cells"`
	CreatedAt  time.Time     `json:"created_at"`
}
// #endregion provenance-entry

// #region cell-run-info
// CellRunInfo captures one cell execution within a cycle.
type CellRunInfo struct {
	Cell       string   `json:"cell"`
	Outputs    []string `json:"outputs"`
	DurationMS float64  `json:"duration_ms"`
}
// #endregion cell-run-info
