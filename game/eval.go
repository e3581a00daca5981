package game

// TerminalScale multiplies every terminal score so that decided games always
// outrank heuristic cutoff scores.
const TerminalScale = 1000

// Weights tunes the potential-line heuristic.
type Weights struct {
	SelfPotential  float64 // weight of our own potential lines
	EnemyPotential float64 // weight of the opponent's potential lines
	InARow         float64 // weight of the growth factor of a partial line
	GrowthRate     float64 // how quickly a partial line's factor compounds per token
	TokenHeight    float64 // penalty per floating token in a partial line
}

func DefaultWeights() Weights {
	return Weights{
		SelfPotential:  3,
		EnemyPotential: 0,
		InARow:         1,
		GrowthRate:     1,
		TokenHeight:    1,
	}
}

// Utility scores a decided board from self's perspective. A win is worth the
// number of cells left empty, a loss the negation of that, a draw zero.
func Utility(b *Board, self Cell) float64 {
	return TerminalScore(b, b.Outcome(), self)
}

// TerminalScore is Utility for a board whose outcome is already known.
func TerminalScore(b *Board, outcome Outcome, self Cell) float64 {
	base := float64(b.width*b.height - b.pieces)

	var utility float64
	switch {
	case outcome.Status != Won:
		utility = 0
	case outcome.Winner == self:
		utility = base
	default:
		utility = -base
	}
	return utility * TerminalScale
}

// Heuristic scores a non-terminal board by weighing the potential lines of
// both sides.
func (w Weights) Heuristic(b *Board, self Cell) float64 {
	return w.SelfPotential*w.Potential(b, self) - w.EnemyPotential*w.Potential(b, self.Opponent())
}

// Potential sums the line potential of every token of side.
func (w Weights) Potential(b *Board, side Cell) float64 {
	total := 0.0
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col] == side {
				total += w.LinePotential(b, row, col)
			}
		}
	}
	return total
}

// LinePotential sums the directional potential of the token at (row, col)
// over the four line directions, each looked at both ways so that mirrored
// positions score the same.
func (w Weights) LinePotential(b *Board, row, col int) float64 {
	total := 0.0
	for _, d := range directions {
		total += w.DirectionalPotential(b, row, col, d[0], d[1])
		total += w.DirectionalPotential(b, row, col, -d[0], -d[1])
	}
	return total
}

// DirectionalPotential scores the LineLength-1 cells following the token at
// (row, col) in direction (dx, dy). The span is worthless if it runs off the
// board or holds an opposing token. Each own token in the span compounds the
// factor, and each own token with an empty cell underneath costs a height
// penalty. The result may be negative.
func (w Weights) DirectionalPotential(b *Board, row, col, dx, dy int) float64 {
	side := b.At(row, col)
	if side == Empty {
		return 0
	}
	span := b.lineLength - 1
	if !b.inside(row+span*dy, col+span*dx) {
		return 0
	}

	enemy := side.Opponent()
	factor := 1.0
	tokenHeight := 0
	for i := 1; i <= span; i++ {
		r, c := row+i*dy, col+i*dx
		switch b.cells[r*b.width+c] {
		case enemy:
			return 0
		case side:
			if r > 0 && b.cells[(r-1)*b.width+c] == Empty {
				tokenHeight++
			}
			factor = w.GrowthRate * (factor + 1)
		}
	}
	return w.InARow*factor - w.TokenHeight*float64(tokenHeight)
}
