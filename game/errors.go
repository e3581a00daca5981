package game

import "errors"

var (
	// ErrIllegalMove is returned when dropping into a full or out-of-range column
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidBoard is returned when a caller-supplied grid breaks gravity or turn alternation
	ErrInvalidBoard = errors.New("invalid board")
)
