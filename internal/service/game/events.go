package game

import (
	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// LogNotifier is the default logging collaborator: it turns controller
// events into structured log entries and nothing else.
type LogNotifier struct {
	log *zap.SugaredLogger
}

func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) MoveAccepted(sessionID string, move domain.Move, status domain.GameStatus) {
	n.log.Infow("move accepted",
		"session", sessionID,
		"turn", move.Turn,
		"side", move.Side.String(),
		"column", move.Column,
		"row", move.Row,
		"status", status)
}

func (n *LogNotifier) MoveRejected(sessionID string, column int, side domain.Side, reason error) {
	n.log.Warnw("move rejected",
		"session", sessionID,
		"column", column,
		"side", side.String(),
		"reason", reason)
}

func (n *LogNotifier) AIDecision(sessionID string, column int, reaction domain.Reaction) {
	n.log.Infow("ai decision",
		"session", sessionID,
		"column", column,
		"reaction", reaction)
}

func (n *LogNotifier) GameOver(sessionID string, record *domain.Record) {
	winner := "none"
	if record.Winner != nil {
		winner = record.Winner.String()
	}
	n.log.Infow("game over",
		"session", sessionID,
		"game", record.ID,
		"winner", winner,
		"moves", record.TotalMoves(),
		"duration_s", record.DurationSeconds())
}
