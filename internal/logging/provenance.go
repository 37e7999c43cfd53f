package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// #region provenance
// Provenance writes recompute provenance entries as JSON lines. The zero
// writer (nil) discards entries, so callers can log unconditionally.
type Provenance struct {
	enc *json.Encoder
}

// NewProvenance returns a Provenance writing to w. A nil w discards.
func NewProvenance(w io.Writer) *Provenance {
	if w == nil {
		w = io.Discard
	}
	return &Provenance{enc: json.NewEncoder(w)}
}

// Log writes one entry as a single JSON line. CreatedAt defaults to now.
func (p *Provenance) Log(entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := p.enc.Encode(entry); err != nil {
		return fmt.Errorf("log provenance: %w", err)
	}
	return nil
}
// #endregion provenance
