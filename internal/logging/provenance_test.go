package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestProvenanceWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewProvenance(&buf)

	entries := []ProvenanceEntry{
		{SnapshotID: "s1", Trigger: "init", Cells: []CellRunInfo{{Cell: "data", Outputs: []string{"dataset"}, DurationMS: 1.5}}},
		{SnapshotID: "s2", ParentID: "s1", Trigger: "sigma"},
	}
	for _, e := range entries {
		if err := p.Log(e); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var got ProvenanceEntry
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if got.SnapshotID != "s1" || got.Trigger != "init" {
		t.Errorf("unexpected entry: %+v", got)
	}
	if len(got.Cells) != 1 || got.Cells[0].Cell != "data" {
		t.Errorf("unexpected cells: %+v", got.Cells)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}
}

func TestProvenanceKeepsExplicitTimestamp(t *testing.T) {
	var buf bytes.Buffer
	p := NewProvenance(&buf)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := p.Log(ProvenanceEntry{SnapshotID: "s1", Trigger: "n", CreatedAt: at}); err != nil {
		t.Fatalf("log: %v", err)
	}
	var got ProvenanceEntry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("timestamp rewritten: %v", got.CreatedAt)
	}
}

func TestProvenanceNilWriterDiscards(t *testing.T) {
	p := NewProvenance(nil)
	if err := p.Log(ProvenanceEntry{SnapshotID: "s1", Trigger: "init"}); err != nil {
		t.Fatalf("log to discard: %v", err)
	}
}

func TestNewAppLoggerLevels(t *testing.T) {
	if got := NewAppLogger("debug").GetLevel(); got != logrus.DebugLevel {
		t.Errorf("debug: got %v", got)
	}
	if got := NewAppLogger("nonsense").GetLevel(); got != logrus.InfoLevel {
		t.Errorf("fallback: got %v", got)
	}
}
