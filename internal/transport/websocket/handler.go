package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
	"github.com/Kennethenow1/Connect-Four-Game/internal/service/bot"
	"github.com/Kennethenow1/Connect-Four-Game/internal/service/game"
	"github.com/Kennethenow1/Connect-Four-Game/pkg/auth"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
)

// Handler owns the websocket endpoint. Each connection gets its own game
// session; the session is removed when the connection drops.
type Handler struct {
	sessions *game.SessionManager
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

func NewHandler(sessions *game.SessionManager, log *zap.SugaredLogger) *Handler {
	return &Handler{
		sessions: sessions,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	client := NewClient(conn)
	defer client.Close()

	session := h.sessions.CreateSession()
	defer h.sessions.RemoveSession(session.ID)

	h.log.Infow("client connected", "session", session.ID, "remote", conn.RemoteAddr().String())

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(client, done)

	client.Send(domain.ServerMessage{Type: "connected", SessionID: session.ID})

	authenticated := false
	for {
		var message domain.ClientMessage
		if err := conn.ReadJSON(&message); err != nil {
			h.log.Infow("client disconnected", "session", session.ID, "error", err)
			return
		}

		if message.JWT != "" && !authenticated {
			claims, err := auth.ValidateAccessToken(message.JWT)
			if err != nil {
				client.SendError("invalid or expired token")
			} else {
				session.AttachUser(claims.UserID, claims.Username)
				authenticated = true
				h.log.Infow("session attributed", "session", session.ID, "user", claims.Username)
			}
		}

		h.route(message, client, session)
	}
}

func (h *Handler) route(message domain.ClientMessage, client *Client, session *game.Session) {
	switch message.Type {
	case "start_game":
		h.handleStart(message, client, session)
	case "make_move":
		h.handleMove(message, client, session)
	case "undo":
		h.handleUndo(client, session)
	default:
		client.SendError("unknown message type")
	}
}

func (h *Handler) handleStart(message domain.ClientMessage, client *Client, session *game.Session) {
	mode := message.Mode
	if mode != domain.ModeHumanVsHuman {
		mode = domain.ModeHumanVsAI
	}

	result := session.Start(mode, message.First, message.Difficulty)
	client.Send(domain.ServerMessage{
		Type:        "game_start",
		SessionID:   result.SessionID,
		Board:       result.Board,
		CurrentTurn: result.NextTurn,
		LegalMoves:  result.LegalMoves,
		AITurn:      result.AITurn,
	})

	if result.AITurn {
		h.scheduleAIMove(client, session)
	}
}

func (h *Handler) handleMove(message domain.ClientMessage, client *Client, session *game.Session) {
	acting := message.Side
	if acting != domain.Red && acting != domain.Yellow {
		acting = session.CurrentSide()
	}

	result, err := session.SubmitMove(message.Column, acting)
	if err != nil {
		client.SendError(err.Error())
		return
	}

	h.pushResult(client, "move_made", result)
	if result.AITurn {
		h.scheduleAIMove(client, session)
	}
}

func (h *Handler) handleUndo(client *Client, session *game.Session) {
	result, err := session.Undo()
	if err != nil {
		client.SendError(err.Error())
		return
	}

	client.Send(domain.ServerMessage{
		Type:        "state",
		SessionID:   result.SessionID,
		Board:       result.Board,
		CurrentTurn: result.NextTurn,
		LegalMoves:  result.LegalMoves,
		MoveCount:   result.MoveCount,
		AITurn:      result.AITurn,
	})

	if result.AITurn {
		h.scheduleAIMove(client, session)
	}
}

// scheduleAIMove runs the AI turn off the read loop so the simulated
// thinking pause never blocks incoming messages. A stale trigger, from a
// game restarted mid-pause, fails turn validation and is dropped.
func (h *Handler) scheduleAIMove(client *Client, session *game.Session) {
	go func() {
		bot.ThinkDelay()

		result, err := session.RequestAIMove()
		if err != nil {
			h.log.Debugw("ai move skipped", "session", session.ID, "reason", err)
			return
		}

		h.pushResult(client, "ai_move", result)
		if result.AITurn {
			h.scheduleAIMove(client, session)
		}
	}()
}

func (h *Handler) pushResult(client *Client, msgType string, result *game.MoveResult) {
	message := domain.ServerMessage{
		Type:        msgType,
		SessionID:   result.SessionID,
		Column:      result.Move.Column,
		Row:         result.Move.Row,
		Side:        result.Move.Side,
		Board:       result.Board,
		NextTurn:    result.NextTurn,
		Status:      string(result.Status),
		Reaction:    result.Move.Reaction,
		MoveCount:   result.MoveCount,
		LegalMoves:  result.LegalMoves,
		AITurn:      result.AITurn,
		CurrentTurn: result.NextTurn,
	}

	if result.State == domain.StateTerminal {
		message.Type = "game_over"
		message.WinLine = result.WinLine
		if result.Status == domain.StatusWon {
			message.Winner = result.Winner.String()
		} else {
			message.Winner = "draw"
		}
	}

	if err := client.Send(message); err != nil {
		h.log.Warnw("failed to push update", "session", result.SessionID, "error", err)
	}
}

func (h *Handler) keepAlive(client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.Ping(); err != nil {
				return
			}
		}
	}
}
