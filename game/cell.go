package game

// Cell is the content of one grid square: empty or a token of one of the two sides.
type Cell uint8

const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		panic("empty cell has no opponent")
	}
}

func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "."
	}
}

type Status int

const (
	InProgress Status = iota
	Draw
	Won
)

// Outcome classifies a board. Winner is Empty unless Status is Won.
type Outcome struct {
	Status Status
	Winner Cell
}

// Decided reports whether the game is over
func (o Outcome) Decided() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	switch o.Status {
	case Draw:
		return "draw"
	case Won:
		return "won by " + o.Winner.String()
	default:
		return "in progress"
	}
}
