package main

import (
	"io"
	"log"
	"os"

	"github.com/danielpatrickdp/noisyfit/internal/logging"
	"github.com/danielpatrickdp/noisyfit/internal/session"
	"github.com/danielpatrickdp/noisyfit/internal/ui"
)

// #region main

func main() {
	appLog := logging.NewAppLogger(envOr("NOISYFIT_LOG_LEVEL", "info"))

	// Provenance is opt-in; by default nothing is persisted.
	var provWriter io.Writer
	if path := os.Getenv("NOISYFIT_PROVENANCE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open provenance log: %v", err)
		}
		defer f.Close()
		provWriter = f
		appLog.WithField("path", path).Info("provenance logging enabled")
	}

	cfg := session.DefaultConfig()
	cfg.Provenance = logging.NewProvenance(provWriter)
	cfg.Log = appLog

	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}
	appLog.WithField("snapshot", sess.Current().ID).Info("initial evaluation complete")

	ui.New(sess, appLog).Run()
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
