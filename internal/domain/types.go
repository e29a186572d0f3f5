package domain

// Side identifies what occupies a cell. Empty is the zero value so a
// freshly allocated board is all empty.
type Side int

const (
	Empty  Side = 0
	Red    Side = 1
	Yellow Side = 2
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// Opponent returns the other playing side.
func (s Side) Opponent() Side {
	if s == Red {
		return Yellow
	}
	return Red
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Mode selects who controls each side.
type Mode string

const (
	ModeHumanVsAI    Mode = "human_vs_ai"
	ModeHumanVsHuman Mode = "human_vs_human"
)

// Difficulty is the AI strength tier.
type Difficulty string

const (
	DifficultyRandom Difficulty = "random"
	DifficultyGreedy Difficulty = "greedy"
	DifficultySearch Difficulty = "search"
)

// SessionState is the controller's lifecycle state.
type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateInProgress SessionState = "in_progress"
	StateTerminal   SessionState = "terminal"
)

// GameStatus reports how a session stands or ended.
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Reaction is cosmetic AI expression metadata attached to moves. The
// presentation layer maps kinds to display strings; the engine assigns
// kinds only.
type Reaction string

const (
	ReactionNone     Reaction = ""
	ReactionNeutral  Reaction = "neutral"
	ReactionWinning  Reaction = "winning"
	ReactionBlocking Reaction = "blocking"
	ReactionLosing   Reaction = "losing"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove         Error = "illegal move"
	ErrColumnFull          Error = "column is full"
	ErrOutOfTurn           Error = "not your turn"
	ErrInvalidSessionState Error = "invalid session state"
	ErrNoLegalMoves        Error = "no legal moves"
)
