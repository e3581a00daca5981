package game

import (
	"fmt"
	"strings"
)

// FromRows builds a board from text rows listed top row first. '.' is an
// empty cell, 'A' or 'X' a token of side A, 'B' or 'O' a token of side B.
// Side A is assumed to have moved first, so the side to move is derived from
// the token counts.
func FromRows(lineLength int, rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	height := len(rows)
	width := len(rows[0])
	b := NewBoard(width, height, lineLength)

	for i, text := range rows {
		if len(text) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, i, len(text), width)
		}
		row := height - 1 - i
		for col, ch := range text {
			cell, err := parseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInvalidBoard, i, col, err)
			}
			b.cells[row*width+col] = cell
		}
	}

	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			if b.cells[row*width+col] == Empty {
				break
			}
			b.heights[col]++
		}
		for row := b.heights[col]; row < height; row++ {
			if b.cells[row*width+col] != Empty {
				return nil, fmt.Errorf("%w: floating token in column %d row %d", ErrInvalidBoard, col, row)
			}
		}
		b.pieces += b.heights[col]
	}

	countA, countB := b.Count(PlayerA), b.Count(PlayerB)
	switch countA - countB {
	case 0:
		b.toMove = PlayerA
	case 1:
		b.toMove = PlayerB
	default:
		return nil, fmt.Errorf("%w: side A has %d tokens and side B has %d", ErrInvalidBoard, countA, countB)
	}
	return b, nil
}

func parseCell(ch rune) (Cell, error) {
	switch ch {
	case '.', ' ':
		return Empty, nil
	case 'A', 'X', 'x':
		return PlayerA, nil
	case 'B', 'O', 'o':
		return PlayerB, nil
	default:
		return Empty, fmt.Errorf("unknown cell %q", ch)
	}
}

// String renders the board in the format read by FromRows
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		for col := 0; col < b.width; col++ {
			sb.WriteString(b.cells[row*b.width+col].String())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
