package session

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Watcher polls the credential store and re-derives the live session
// when another process has written or cleared it. The default
// configuration leaves it off and accepts the cross-process
// inconsistency window; enabling it is opt-in hardening.
type Watcher struct {
	cron *cron.Cron
	svc  *Service
	log  zerolog.Logger
}

func NewWatcher(svc *Service, log zerolog.Logger) *Watcher {
	return &Watcher{
		cron: cron.New(cron.WithSeconds()),
		svc:  svc,
		log:  log,
	}
}

// Start schedules the poll. A non-positive interval disables the
// watcher entirely.
func (w *Watcher) Start(interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	if _, err := w.cron.AddFunc(fmt.Sprintf("@every %s", interval), w.sync); err != nil {
		return fmt.Errorf("schedule session watch: %w", err)
	}

	w.cron.Start()
	return nil
}

// Stop halts polling; the returned context is done once any in-flight
// sync has finished. Safe to call when Start never scheduled anything.
func (w *Watcher) Stop() context.Context {
	return w.cron.Stop()
}

func (w *Watcher) sync() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed, err := w.svc.Reload(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("session re-derive failed")
		return
	}
	if changed {
		w.log.Info().Msg("session re-derived from shared store")
	}
}
