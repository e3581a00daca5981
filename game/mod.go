package game

// Default board geometry for the standard game
const (
	DefaultWidth      = 7
	DefaultHeight     = 6
	DefaultLineLength = 4
)

// Evaluates a non-terminal board to a score indicating how favorable the
// position is for self (positive) compared to its opponent (negative).
type Evaluate func(b *Board, self Cell) float64
