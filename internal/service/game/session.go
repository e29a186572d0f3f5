package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
	"github.com/Kennethenow1/Connect-Four-Game/internal/service/bot"
)

// Actor is who controls a side under the current mode.
type Actor string

const (
	ActorHuman Actor = "human"
	ActorAI    Actor = "ai"
)

// actorFor is the explicit side-assignment rule: in human-vs-AI the AI
// side is fixed and manual input for it is refused; in human-vs-human
// both sides are submitted by humans.
func actorFor(mode domain.Mode, side, aiSide domain.Side) Actor {
	if mode == domain.ModeHumanVsAI && side == aiSide {
		return ActorAI
	}
	return ActorHuman
}

// HumanSide and AISide fix color assignment in human-vs-AI games; the
// starting-side choice decides who opens, not who holds which color.
const (
	HumanSide = domain.Red
	AISide    = domain.Yellow
)

// undoLimit bounds the checkpoint stack; 42 covers a maximal game.
const undoLimit = domain.Rows * domain.Columns

// checkpoint is the saved pre-move state a single undo restores.
type checkpoint struct {
	board  [][]domain.Side
	side   domain.Side
	logLen int
}

// Recorder is the persistence collaborator: it receives finalized records
// and independently decides storage and retention.
type Recorder interface {
	SaveRecord(ctx context.Context, record *domain.Record) error
}

// Notifier is the logging collaborator: it consumes discrete event facts
// as controller operations complete.
type Notifier interface {
	MoveAccepted(sessionID string, move domain.Move, status domain.GameStatus)
	MoveRejected(sessionID string, column int, side domain.Side, reason error)
	AIDecision(sessionID string, column int, reaction domain.Reaction)
	GameOver(sessionID string, record *domain.Record)
}

// MoveResult is the structured outcome the presentation layer renders.
type MoveResult struct {
	SessionID  string
	Move       domain.Move
	State      domain.SessionState
	Status     domain.GameStatus
	Winner     domain.Side
	WinLine    []domain.Coord
	NextTurn   domain.Side
	Board      [][]domain.Side
	LegalMoves []int
	AITurn     bool
	MoveCount  int
}

// Session owns the live board and all per-game mutable state. All methods
// are safe for concurrent use; one move is processed start to finish
// before the next is accepted.
type Session struct {
	ID string

	mu           sync.Mutex
	state        domain.SessionState
	status       domain.GameStatus
	mode         domain.Mode
	difficulty   domain.Difficulty
	startingSide domain.Side
	board        [][]domain.Side
	current      domain.Side
	winner       domain.Side
	winLine      []domain.Coord
	moves        []domain.Move
	undo         []checkpoint
	startedAt    time.Time
	lastActive   time.Time

	playerID   *int64
	playerName string

	searchDepth int
	recorder    Recorder
	notifier    Notifier
	log         *zap.SugaredLogger
}

// AttachUser attributes finished games on this session to an account.
func (s *Session) AttachUser(userID int64, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerID = &userID
	s.playerName = username
}

// NewSession returns an Idle session; Start begins the first game.
func NewSession(searchDepth int, recorder Recorder, notifier Notifier, log *zap.SugaredLogger) *Session {
	return &Session{
		ID:          uuid.NewString(),
		state:       domain.StateIdle,
		searchDepth: searchDepth,
		recorder:    recorder,
		notifier:    notifier,
		log:         log,
		lastActive:  time.Now(),
	}
}

// Start resets the board, move log, and undo stack, and transitions to
// InProgress. Starting over is allowed from any state. When the opener is
// AI-controlled the result reports AITurn so the caller can trigger the
// AI move path.
func (s *Session) Start(mode domain.Mode, startingSide domain.Side, difficulty domain.Difficulty) *MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if startingSide != domain.Red && startingSide != domain.Yellow {
		startingSide = domain.Red
	}
	if mode == domain.ModeHumanVsAI && difficulty == "" {
		difficulty = domain.DifficultyGreedy
	}

	s.mode = mode
	s.difficulty = difficulty
	s.startingSide = startingSide
	s.board = domain.NewBoard()
	s.current = startingSide
	s.winner = domain.Empty
	s.winLine = nil
	s.moves = nil
	s.undo = nil
	s.state = domain.StateInProgress
	s.status = domain.StatusActive
	s.startedAt = time.Now()
	s.lastActive = s.startedAt

	s.log.Infow("game started",
		"session", s.ID, "mode", mode, "difficulty", difficulty, "first", startingSide.String())

	return s.resultLocked(domain.Move{})
}

// SubmitMove places a token for a human-controlled side. Every rejection
// leaves session state untouched.
func (s *Session) SubmitMove(column int, acting domain.Side) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateInProgress {
		s.notifier.MoveRejected(s.ID, column, acting, domain.ErrInvalidSessionState)
		return nil, domain.ErrInvalidSessionState
	}
	if acting != s.current || actorFor(s.mode, acting, AISide) != ActorHuman {
		s.notifier.MoveRejected(s.ID, column, acting, domain.ErrOutOfTurn)
		return nil, domain.ErrOutOfTurn
	}

	return s.applyLocked(column, acting, domain.ReactionNone)
}

// RequestAIMove runs the AI Search Module for the side to move. Valid
// only when that side is AI-controlled and the session is in progress.
func (s *Session) RequestAIMove() (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateInProgress {
		return nil, domain.ErrInvalidSessionState
	}
	if actorFor(s.mode, s.current, AISide) != ActorAI {
		return nil, domain.ErrOutOfTurn
	}

	column := bot.ChooseMoveDepth(s.board, s.current, s.difficulty, s.searchDepth)
	if column < 0 {
		return nil, domain.ErrNoLegalMoves
	}

	reaction := bot.ReactionFor(s.board, column, s.current)
	s.notifier.AIDecision(s.ID, column, reaction)

	return s.applyLocked(column, s.current, reaction)
}

// Undo pops the most recent checkpoint and restores board, side to move,
// and move log. Disabled once the session is terminal.
func (s *Session) Undo() (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateInProgress || len(s.undo) == 0 {
		return nil, domain.ErrInvalidSessionState
	}

	cp := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.board = cp.board
	s.current = cp.side
	s.moves = s.moves[:cp.logLen]
	s.lastActive = time.Now()

	s.log.Infow("move undone", "session", s.ID, "moves", len(s.moves))

	return s.resultLocked(domain.Move{}), nil
}

// applyLocked is the single placement path shared by human and AI moves.
// Caller holds the lock and has already validated turn order.
func (s *Session) applyLocked(column int, acting domain.Side, reaction domain.Reaction) (*MoveResult, error) {
	if !domain.IsValidMove(s.board, column) {
		s.notifier.MoveRejected(s.ID, column, acting, domain.ErrIllegalMove)
		return nil, domain.ErrIllegalMove
	}

	cp := checkpoint{board: domain.CopyBoard(s.board), side: s.current, logLen: len(s.moves)}
	if len(s.undo) >= undoLimit {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, cp)

	row, err := domain.DropDisk(s.board, column, acting)
	if err != nil {
		s.undo = s.undo[:len(s.undo)-1]
		s.notifier.MoveRejected(s.ID, column, acting, domain.ErrIllegalMove)
		return nil, domain.ErrIllegalMove
	}

	move := domain.Move{
		Turn:     len(s.moves) + 1,
		Side:     acting,
		Column:   column,
		Row:      row,
		Reaction: reaction,
	}
	s.moves = append(s.moves, move)
	s.lastActive = time.Now()

	if line, won := domain.CheckWin(s.board, row, column, acting); won {
		s.state = domain.StateTerminal
		s.status = domain.StatusWon
		s.winner = acting
		s.winLine = line
		s.notifier.MoveAccepted(s.ID, move, s.status)
		s.finalizeLocked()
		return s.resultLocked(move), nil
	}

	if domain.IsBoardFull(s.board) {
		s.state = domain.StateTerminal
		s.status = domain.StatusDraw
		s.notifier.MoveAccepted(s.ID, move, s.status)
		s.finalizeLocked()
		return s.resultLocked(move), nil
	}

	s.current = s.current.Opponent()
	s.notifier.MoveAccepted(s.ID, move, s.status)
	return s.resultLocked(move), nil
}

// finalizeLocked emits the finished-game record to the persistence
// collaborator. Saving runs in the background so the terminal result
// reaches the presentation layer without waiting on storage.
func (s *Session) finalizeLocked() {
	record := s.recordLocked()
	s.notifier.GameOver(s.ID, record)

	if s.recorder == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.recorder.SaveRecord(ctx, record); err != nil {
			s.log.Errorw("failed to save game record", "session", s.ID, "error", err)
		}
	}()
}

func (s *Session) recordLocked() *domain.Record {
	record := &domain.Record{
		ID:           s.ID + "-" + uuid.NewString()[:8],
		StartedAt:    s.startedAt,
		FinishedAt:   time.Now(),
		Mode:         s.mode,
		Difficulty:   s.difficulty,
		StartingSide: s.startingSide,
		Moves:        append([]domain.Move(nil), s.moves...),
		FinalBoard:   domain.CopyBoard(s.board),
		WinLine:      append([]domain.Coord(nil), s.winLine...),
	}
	if s.winner != domain.Empty {
		w := s.winner
		record.Winner = &w
	}
	if s.playerID != nil {
		id := *s.playerID
		record.PlayerID = &id
		record.PlayerName = s.playerName
	}
	return record
}

// resultLocked snapshots everything the rendering collaborator needs.
func (s *Session) resultLocked(move domain.Move) *MoveResult {
	board := s.board
	var snapshot [][]domain.Side
	if board != nil {
		snapshot = domain.CopyBoard(board)
	}
	res := &MoveResult{
		SessionID: s.ID,
		Move:      move,
		State:     s.state,
		Status:    s.status,
		Winner:    s.winner,
		WinLine:   append([]domain.Coord(nil), s.winLine...),
		NextTurn:  s.current,
		Board:     snapshot,
		MoveCount: len(s.moves),
	}
	if s.state == domain.StateInProgress {
		res.LegalMoves = domain.GetValidMoves(board)
		res.AITurn = actorFor(s.mode, s.current, AISide) == ActorAI
	}
	return res
}

// State returns the current lifecycle state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode returns the configured mode of the running game.
func (s *Session) Mode() domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// CurrentSide returns whose turn it is.
func (s *Session) CurrentSide() domain.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Board returns an independent snapshot of the live board.
func (s *Session) Board() [][]domain.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return domain.NewBoard()
	}
	return domain.CopyBoard(s.board)
}

// Moves returns a copy of the ordered move log.
func (s *Session) Moves() []domain.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Move(nil), s.moves...)
}

// LastActive reports when the session last accepted an operation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Finished reports whether the session reached a terminal state.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.StateTerminal
}
