package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWinHorizontal(t *testing.T) {
	board := NewBoard()
	DropDisk(board, 0, Red)
	DropDisk(board, 1, Red)
	DropDisk(board, 2, Red)
	row, err := DropDisk(board, 3, Red)
	require.NoError(t, err)

	line, won := CheckWin(board, row, 3, Red)
	require.True(t, won)
	assert.Equal(t, []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, line)
}

func TestCheckWinVertical(t *testing.T) {
	board := NewBoard()
	var row int
	for i := 0; i < ToWin; i++ {
		row, _ = DropDisk(board, 4, Yellow)
	}
	require.Equal(t, 2, row)

	line, won := CheckWin(board, row, 4, Yellow)
	require.True(t, won)
	assert.Equal(t, []Coord{{2, 4}, {3, 4}, {4, 4}, {5, 4}}, line)
}

func TestCheckWinDiagonals(t *testing.T) {
	downRight := parseBoard(t, [Rows]string{
		".......",
		".......",
		"R......",
		"YR.....",
		"YYR....",
		"YYYR...",
	})
	line, won := CheckWin(downRight, 2, 0, Red)
	require.True(t, won)
	assert.Equal(t, []Coord{{2, 0}, {3, 1}, {4, 2}, {5, 3}}, line)

	downLeft := parseBoard(t, [Rows]string{
		".......",
		".......",
		"...Y...",
		"..YR...",
		".YRR...",
		"YRRR...",
	})
	line, won = CheckWin(downLeft, 2, 3, Yellow)
	require.True(t, won)
	assert.Equal(t, []Coord{{2, 3}, {3, 2}, {4, 1}, {5, 0}}, line)
}

func TestCheckWinMidLineAnchor(t *testing.T) {
	// the win must be found from any cell of the run, not just the ends
	board := parseBoard(t, [Rows]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		".RRRR..",
	})
	for col := 1; col <= 4; col++ {
		line, won := CheckWin(board, 5, col, Red)
		require.True(t, won, "anchor column %d", col)
		assert.Equal(t, []Coord{{5, 1}, {5, 2}, {5, 3}, {5, 4}}, line)
	}
}

func TestCheckWinColorSymmetry(t *testing.T) {
	shape := [Rows]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"XXXX...",
	}

	for _, side := range []Side{Red, Yellow} {
		board := NewBoard()
		for r, lineStr := range shape {
			for c, ch := range lineStr {
				if ch == 'X' {
					board[r][c] = side
				}
			}
		}
		_, won := CheckWin(board, 5, 0, side)
		assert.True(t, won)
		_, won = CheckWin(board, 5, 0, side.Opponent())
		assert.False(t, won)
	}
}

func TestCheckWinNoRun(t *testing.T) {
	board := parseBoard(t, [Rows]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"RRRYRRR",
	})
	for col := 0; col < Columns; col++ {
		side := board[5][col]
		_, won := CheckWin(board, 5, col, side)
		assert.False(t, won, "column %d", col)
	}
}

func TestCheckWinGapNotBridged(t *testing.T) {
	board := parseBoard(t, [Rows]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"RR.RR..",
	})
	_, won := CheckWin(board, 5, 1, Red)
	assert.False(t, won)
}

func TestCheckWinLongerRunTruncated(t *testing.T) {
	board := parseBoard(t, [Rows]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"RRRRR..",
	})

	line, won := CheckWin(board, 5, 2, Red)
	require.True(t, won)
	assert.Equal(t, []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, line)

	line, won = CheckWin(board, 5, 4, Red)
	require.True(t, won)
	assert.Len(t, line, ToWin)
}

func TestCheckWinRejectsForeignAnchor(t *testing.T) {
	board := NewBoard()
	DropDisk(board, 0, Red)

	_, won := CheckWin(board, 5, 0, Yellow)
	assert.False(t, won)
	_, won = CheckWin(board, 5, 1, Red)
	assert.False(t, won)
	_, won = CheckWin(board, -1, 0, Red)
	assert.False(t, won)
}

func TestHasWin(t *testing.T) {
	board := NewBoard()
	for i := 0; i < ToWin; i++ {
		DropDisk(board, 6, Red)
	}
	assert.True(t, HasWin(board, 2, 6, Red))
	assert.False(t, HasWin(board, 2, 6, Yellow))
}
