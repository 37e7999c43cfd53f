package session

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danielpatrickdp/noisyfit/internal/logging"
	"github.com/danielpatrickdp/noisyfit/internal/synth"
)

// #region snapshot
// Snapshot is an immutable record of one recompute cycle's headline results.
// Snapshots link to their parent, oldest to newest, like state versions.
type Snapshot struct {
	ID        string
	ParentID  string
	Trigger   string // changed variable, or "init" for the first evaluation
	At        time.Time
	N         int
	Sigma     float64
	Slope     float64
	Intercept float64
	R         float64
}
// #endregion snapshot

// #region config
// Config tunes a session. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Seed         uint64
	HistoryLimit int // snapshots retained, newest first
	Provenance   *logging.Provenance
	Log          *logrus.Logger
}

// DefaultConfig returns the session defaults: the fixed demo seed, a small
// bounded history, discarded provenance, and a quiet logger.
func DefaultConfig() Config {
	return Config{
		Seed:         synth.Seed,
		HistoryLimit: 64,
	}
}
// #endregion config
