package domain

// ClientMessage is what the browser sends over the websocket.
type ClientMessage struct {
	Type       string     `json:"type"`
	Mode       Mode       `json:"mode,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	First      Side       `json:"first,omitempty"`
	Column     int        `json:"column"`
	Side       Side       `json:"side,omitempty"`
	JWT        string     `json:"jwt,omitempty"`
}

// ServerMessage is what the server pushes to the browser. Board snapshots
// and win lines are included so the rendering collaborator never queries
// engine state directly.
type ServerMessage struct {
	Type        string   `json:"type"`
	Message     string   `json:"message,omitempty"`
	SessionID   string   `json:"sessionId,omitempty"`
	Column      int      `json:"column,omitempty"`
	Row         int      `json:"row,omitempty"`
	Side        Side     `json:"side,omitempty"`
	Board       [][]Side `json:"board,omitempty"`
	NextTurn    Side     `json:"nextTurn,omitempty"`
	Status      string   `json:"status,omitempty"`
	Winner      string   `json:"winner,omitempty"`
	WinLine     []Coord  `json:"winLine,omitempty"`
	Reaction    Reaction `json:"reaction,omitempty"`
	MoveCount   int      `json:"moveCount,omitempty"`
	AITurn      bool     `json:"aiTurn,omitempty"`
	LegalMoves  []int    `json:"legalMoves,omitempty"`
	CurrentTurn Side     `json:"currentTurn,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
