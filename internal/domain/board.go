package domain

func NewBoard() [][]Side {
	board := make([][]Side, Rows)
	for i := range board {
		board[i] = make([]Side, Columns)
	}
	return board
}

// CopyBoard creates a deep copy of the board. The AI explores hypothetical
// futures on copies only; the live board is never handed to a mutator.
func CopyBoard(board [][]Side) [][]Side {
	newBoard := make([][]Side, len(board))
	for i := range board {
		newBoard[i] = make([]Side, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

// LowestEmptyRow resolves gravity: the bottommost empty row of the column,
// scanning from the bottom row upward. Returns -1 for a full or
// out-of-range column.
func LowestEmptyRow(board [][]Side, column int) int {
	if column < 0 || column >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

func IsValidMove(board [][]Side, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here board[0] represents the top row (0 -> top and 5 -> bottom)
	if board[0][column] != Empty {
		return false
	}

	return true
}

// DropDisk is the sole mutator of cell contents. On a full or out-of-range
// column it reports failure and leaves the board unchanged.
func DropDisk(board [][]Side, column int, side Side) (int, error) {
	row := LowestEmptyRow(board, column)
	if row < 0 {
		return -1, ErrColumnFull
	}
	board[row][column] = side
	return row, nil
}

func IsColumnFull(board [][]Side, column int) bool {
	return !IsValidMove(board, column)
}

func IsBoardFull(board [][]Side) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// GetValidMoves lists playable columns in ascending order.
func GetValidMoves(board [][]Side) []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if IsValidMove(board, col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// SimulateMove drops a disk on a copy and returns the copy with the
// landing row. The input board is untouched.
func SimulateMove(board [][]Side, column int, side Side) ([][]Side, int, error) {
	newBoard := CopyBoard(board)
	row, err := DropDisk(newBoard, column, side)
	if err != nil {
		return nil, -1, err
	}
	return newBoard, row, nil
}

// CountInDirection counts consecutive same-side disks starting one step
// away from (row, column) along the delta, stopping at the first
// non-matching or out-of-board cell.
func CountInDirection(board [][]Side, row, column, deltaRow, deltaCol int, side Side) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == side {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
