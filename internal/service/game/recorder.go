package game

import (
	"context"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// MultiRecorder fans a finalized record out to several persistence
// collaborators. The first failure is returned; later recorders still
// run so a cache hiccup cannot lose the durable copy.
type MultiRecorder []Recorder

func (m MultiRecorder) SaveRecord(ctx context.Context, record *domain.Record) error {
	var firstErr error
	for _, r := range m {
		if err := r.SaveRecord(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
