package domain

// Coord is a single board cell position.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// winDirections are the four axes checked, in fixed order: right, down,
// down-right, down-left. The first axis that yields a run decides the
// reported line.
var winDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWin examines the four axes through (row, column) for a run of four
// side disks including the origin. For each axis the run is assembled
// forward from the origin first and, if still short of four, extended
// backward along the opposite delta. The returned line is the first four
// cells of the assembled run in axis order; longer runs (possible on
// replayed or undone boards) are truncated, never rejected.
func CheckWin(board [][]Side, row, column int, side Side) ([]Coord, bool) {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return nil, false
	}
	if board[row][column] != side {
		return nil, false
	}

	for _, dir := range winDirections {
		dr, dc := dir[0], dir[1]

		line := []Coord{{Row: row, Col: column}}
		r, c := row+dr, column+dc
		for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == side {
			line = append(line, Coord{Row: r, Col: c})
			r += dr
			c += dc
		}

		if len(line) < ToWin {
			r, c = row-dr, column-dc
			for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == side {
				line = append([]Coord{{Row: r, Col: c}}, line...)
				r -= dr
				c -= dc
			}
		}

		if len(line) >= ToWin {
			return line[:ToWin], true
		}
	}

	return nil, false
}

// HasWin reports whether any run of four anchored at (row, column) exists,
// without materializing the line.
func HasWin(board [][]Side, row, column int, side Side) bool {
	_, won := CheckWin(board, row, column, side)
	return won
}
