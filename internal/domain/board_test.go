package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBoard builds a board from six strings of '.', 'R', 'Y', top row
// first. Shared by the rules tests.
func parseBoard(t *testing.T, rows [Rows]string) [][]Side {
	t.Helper()
	board := NewBoard()
	for r, line := range rows {
		require.Len(t, line, Columns)
		for c, ch := range line {
			switch ch {
			case 'R':
				board[r][c] = Red
			case 'Y':
				board[r][c] = Yellow
			case '.':
			default:
				t.Fatalf("unexpected cell %q", ch)
			}
		}
	}
	return board
}

func TestNewBoardIsEmpty(t *testing.T) {
	board := NewBoard()
	require.Len(t, board, Rows)
	for r := 0; r < Rows; r++ {
		require.Len(t, board[r], Columns)
		for c := 0; c < Columns; c++ {
			assert.Equal(t, Empty, board[r][c])
		}
	}
}

func TestDropDiskGravity(t *testing.T) {
	board := NewBoard()

	row, err := DropDisk(board, 3, Red)
	require.NoError(t, err)
	assert.Equal(t, Rows-1, row)
	assert.Equal(t, Red, board[5][3])

	row, err = DropDisk(board, 3, Yellow)
	require.NoError(t, err)
	assert.Equal(t, Rows-2, row)
	assert.Equal(t, Yellow, board[4][3])

	// untouched columns stay empty
	assert.Equal(t, Empty, board[5][2])
	assert.Equal(t, Empty, board[5][4])
}

func TestDropDiskFullColumn(t *testing.T) {
	board := NewBoard()
	for i := 0; i < Rows; i++ {
		_, err := DropDisk(board, 0, Red)
		require.NoError(t, err)
	}
	require.True(t, IsColumnFull(board, 0))

	before := CopyBoard(board)
	row, err := DropDisk(board, 0, Yellow)
	assert.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, -1, row)
	assert.Equal(t, before, board)
}

func TestDropDiskOutOfRange(t *testing.T) {
	board := NewBoard()
	for _, col := range []int{-1, Columns} {
		_, err := DropDisk(board, col, Red)
		assert.ErrorIs(t, err, ErrColumnFull)
	}
}

func TestLowestEmptyRow(t *testing.T) {
	board := NewBoard()
	assert.Equal(t, 5, LowestEmptyRow(board, 2))

	DropDisk(board, 2, Red)
	DropDisk(board, 2, Yellow)
	assert.Equal(t, 3, LowestEmptyRow(board, 2))

	assert.Equal(t, -1, LowestEmptyRow(board, -1))
	assert.Equal(t, -1, LowestEmptyRow(board, Columns))
}

func TestCopyBoardIndependence(t *testing.T) {
	board := NewBoard()
	DropDisk(board, 4, Red)

	clone := CopyBoard(board)
	DropDisk(clone, 4, Yellow)
	DropDisk(clone, 0, Yellow)

	assert.Equal(t, Empty, board[4][4])
	assert.Equal(t, Empty, board[5][0])
	assert.Equal(t, Red, board[5][4])
}

func TestSimulateMoveLeavesOriginalUntouched(t *testing.T) {
	board := NewBoard()
	DropDisk(board, 3, Red)

	clone, row, err := SimulateMove(board, 3, Yellow)
	require.NoError(t, err)
	assert.Equal(t, 4, row)
	assert.Equal(t, Yellow, clone[4][3])
	assert.Equal(t, Empty, board[4][3])
}

func TestGetValidMoves(t *testing.T) {
	board := NewBoard()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, GetValidMoves(board))

	for i := 0; i < Rows; i++ {
		DropDisk(board, 3, Red)
	}
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6}, GetValidMoves(board))
}

func TestIsBoardFull(t *testing.T) {
	board := NewBoard()
	assert.False(t, IsBoardFull(board))

	side := Red
	for col := 0; col < Columns; col++ {
		for i := 0; i < Rows; i++ {
			DropDisk(board, col, side)
			side = side.Opponent()
		}
	}
	assert.True(t, IsBoardFull(board))
	assert.Empty(t, GetValidMoves(board))
}

func TestCountInDirection(t *testing.T) {
	board := parseBoard(t, [Rows]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"RRRY...",
	})

	assert.Equal(t, 2, CountInDirection(board, 5, 0, 0, 1, Red))
	assert.Equal(t, 0, CountInDirection(board, 5, 0, 0, -1, Red))
	assert.Equal(t, 0, CountInDirection(board, 5, 2, 0, 1, Red))
}
