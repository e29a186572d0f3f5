package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/repository/postgres"
	"github.com/Kennethenow1/Connect-Four-Game/internal/repository/redis"
	"github.com/Kennethenow1/Connect-Four-Game/internal/transport/http/middleware"
)

type HistoryHandler struct {
	GameRepo *postgres.GameRepo
	Recent   *redis.RecentGames
	log      *zap.SugaredLogger
}

func NewHistoryHandler(gameRepo *postgres.GameRepo, recent *redis.RecentGames, log *zap.SugaredLogger) *HistoryHandler {
	return &HistoryHandler{GameRepo: gameRepo, Recent: recent, log: log}
}

// GetHistory lists the caller's finished games.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rawHistory, err := h.GameRepo.GetUserGameHistory(r.Context(), userID)
	if err != nil {
		h.log.Errorw("history query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch history")
		return
	}

	type historyItem struct {
		ID         string    `json:"id"`
		Mode       string    `json:"mode"`
		Difficulty string    `json:"difficulty,omitempty"`
		Result     string    `json:"result"`
		MovesCount int       `json:"movesCount"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	history := make([]historyItem, 0, len(rawHistory))
	for _, game := range rawHistory {
		item := historyItem{
			ID:         game.GameID,
			Mode:       string(game.Mode),
			Difficulty: string(game.Difficulty),
			MovesCount: game.TotalMoves,
			CreatedAt:  game.CreatedAt,
		}

		// The account holder plays Red in human-vs-AI games.
		switch game.Winner {
		case "":
			item.Result = "draw"
		case "red":
			item.Result = "win"
		default:
			item.Result = "loss"
		}

		history = append(history, item)
	}

	writeJSON(w, http.StatusOK, history)
}

// GetGameDetails returns one stored game with its move log and board.
func (h *HistoryHandler) GetGameDetails(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "missing game id")
		return
	}

	game, err := h.GameRepo.GetGameByID(r.Context(), gameID)
	if err != nil {
		h.log.Errorw("game lookup failed", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch game")
		return
	}
	if game == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	writeJSON(w, http.StatusOK, game)
}

// GetRecent lists the latest finished games for the lobby view, served
// from the Redis cache when available and Postgres otherwise.
func (h *HistoryHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	if h.Recent != nil {
		records, err := h.Recent.ListRecent(r.Context(), 20)
		if err == nil {
			writeJSON(w, http.StatusOK, records)
			return
		}
		h.log.Warnw("recent-games cache read failed, falling back", "error", err)
	}

	games, err := h.GameRepo.GetRecentGames(r.Context(), 20)
	if err != nil {
		h.log.Errorw("recent games query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch recent games")
		return
	}
	if games == nil {
		games = []postgres.GameResult{}
	}
	writeJSON(w, http.StatusOK, games)
}
