package searcher

import (
	"cmp"
	"connectn/game"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Successor is a board reachable in one drop, with the cell that drop filled
type Successor struct {
	Board  *game.Board
	Column int
	Row    int
}

// pivot returns the column successors are ordered around
type pivot func(b *game.Board, free []int) float64

// freeCountPivot centers on half the number of free columns. As edge columns
// fill up this drifts toward the low-index side.
func freeCountPivot(_ *game.Board, free []int) float64 {
	return float64(len(free)) / 2
}

func widthPivot(b *game.Board, _ []int) float64 {
	return float64(b.Width()-1) / 2
}

// Successors returns one successor per free column, center columns first and
// ties broken by ascending column. A full board has no successors.
func Successors(b *game.Board) []Successor {
	return orderedSuccessors(b, freeCountPivot)
}

func orderedSuccessors(b *game.Board, center pivot) []Successor {
	free := b.FreeColumns()
	if len(free) == 0 {
		return nil
	}

	c := center(b, free)
	slices.SortStableFunc(free, func(x, y int) int {
		return cmp.Compare(math.Abs(float64(x)-c), math.Abs(float64(y)-c))
	})

	successors := make([]Successor, 0, len(free))
	for _, col := range free {
		next, err := b.Drop(col)
		if err != nil {
			panic(fmt.Sprintf("free column %d rejected a drop: %v", col, err))
		}
		successors = append(successors, Successor{Board: next, Column: col, Row: next.Top(col)})
	}
	return successors
}
