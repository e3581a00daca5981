package game

import "fmt"

// directions scanned for lines: horizontal, vertical, diagonal up, diagonal down
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Board is a gravity grid. Row 0 is the bottom row. A Board is never mutated
// once handed out: Drop always returns a fresh copy.
type Board struct {
	width      int
	height     int
	lineLength int
	cells      []Cell // row-major, cells[row*width+col]
	heights    []int  // tokens stacked in each column
	toMove     Cell
	pieces     int
}

// NewBoard returns an empty board with side A to move.
func NewBoard(width, height, lineLength int) *Board {
	if width <= 0 || height <= 0 || lineLength <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d with line length %d", width, height, lineLength))
	}
	return &Board{
		width:      width,
		height:     height,
		lineLength: lineLength,
		cells:      make([]Cell, width*height),
		heights:    make([]int, width),
		toMove:     PlayerA,
	}
}

func (b *Board) Width() int      { return b.width }
func (b *Board) Height() int     { return b.height }
func (b *Board) LineLength() int { return b.lineLength }
func (b *Board) ToMove() Cell    { return b.toMove }

// Pieces returns the number of non-empty cells
func (b *Board) Pieces() int { return b.pieces }

// At returns the cell at row, col. Out-of-range coordinates panic.
func (b *Board) At(row, col int) Cell {
	if !b.inside(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d board", row, col, b.width, b.height))
	}
	return b.cells[row*b.width+col]
}

// Top returns the row of the topmost token in col, or -1 for an empty column.
func (b *Board) Top(col int) int {
	return b.heights[col] - 1
}

// Count returns how many tokens side has on the board
func (b *Board) Count(side Cell) int {
	n := 0
	for _, c := range b.cells {
		if c == side {
			n++
		}
	}
	return n
}

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// FreeColumns returns the columns that can still take a token, ascending.
// An empty result means the board is full.
func (b *Board) FreeColumns() []int {
	free := make([]int, 0, b.width)
	for col, h := range b.heights {
		if h < b.height {
			free = append(free, col)
		}
	}
	return free
}

// Drop returns a copy of the board with a token of the side to move placed
// on the lowest empty row of col, and the turn passed to the other side.
func (b *Board) Drop(col int) (*Board, error) {
	if col < 0 || col >= b.width {
		return nil, fmt.Errorf("%w: column %d out of range [0,%d)", ErrIllegalMove, col, b.width)
	}
	row := b.heights[col]
	if row >= b.height {
		return nil, fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}

	nb := b.Copy()
	nb.cells[row*nb.width+col] = b.toMove
	nb.heights[col]++
	nb.pieces++
	nb.toMove = b.toMove.Opponent()
	return nb, nil
}

// Copy returns an independent deep copy of the board
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)

	return &Board{
		width:      b.width,
		height:     b.height,
		lineLength: b.lineLength,
		cells:      cells,
		heights:    heights,
		toMove:     b.toMove,
		pieces:     b.pieces,
	}
}

// Outcome scans the whole board for a line of LineLength tokens of one side.
func (b *Board) Outcome() Outcome {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			side := b.cells[row*b.width+col]
			if side == Empty {
				continue
			}
			for _, d := range directions {
				if b.lineFrom(row, col, d[0], d[1], side) {
					return Outcome{Status: Won, Winner: side}
				}
			}
		}
	}
	return b.drawOrInProgress()
}

// OutcomeAt only checks lines running through (row, col). It agrees with
// Outcome when (row, col) holds the most recently dropped token.
func (b *Board) OutcomeAt(row, col int) Outcome {
	side := b.At(row, col)
	if side != Empty {
		for _, d := range directions {
			run := 1 + b.run(row, col, d[0], d[1], side) + b.run(row, col, -d[0], -d[1], side)
			if run >= b.lineLength {
				return Outcome{Status: Won, Winner: side}
			}
		}
	}
	return b.drawOrInProgress()
}

func (b *Board) drawOrInProgress() Outcome {
	if b.pieces == len(b.cells) {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}

// lineFrom reports whether LineLength cells starting at (row, col) in
// direction (dx, dy) all hold side.
func (b *Board) lineFrom(row, col, dx, dy int, side Cell) bool {
	endRow := row + (b.lineLength-1)*dy
	endCol := col + (b.lineLength-1)*dx
	if !b.inside(endRow, endCol) {
		return false
	}
	for i := 1; i < b.lineLength; i++ {
		if b.cells[(row+i*dy)*b.width+col+i*dx] != side {
			return false
		}
	}
	return true
}

// run counts consecutive cells of side after (row, col) in direction (dx, dy)
func (b *Board) run(row, col, dx, dy int, side Cell) int {
	n := 0
	r, c := row+dy, col+dx
	for b.inside(r, c) && b.cells[r*b.width+c] == side {
		n++
		r += dy
		c += dx
	}
	return n
}
