package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/service/game"
)

const (
	interval          = 1 * time.Hour
	finishedRetention = 1 * time.Hour
	activeRetention   = 24 * time.Hour
)

// Worker periodically prunes stale sessions from the session manager.
type Worker struct {
	SessionManager *game.SessionManager
	log            *zap.SugaredLogger
}

func NewWorker(sm *game.SessionManager, log *zap.SugaredLogger) *Worker {
	return &Worker{SessionManager: sm, log: log}
}

// Start runs the cleanup loop until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.log.Infow("cleanup worker started", "interval", interval)
	w.run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Infow("cleanup worker stopped")
			return
		case <-ticker.C:
			w.run()
		}
	}
}

func (w *Worker) run() {
	removed := w.SessionManager.CleanupStaleSessions(finishedRetention, activeRetention)
	if removed > 0 {
		w.log.Infow("scheduled cleanup removed sessions", "count", removed)
	}
}
