package searcher

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// ErrNoLegalMoves is returned when asked to decide on a full or finished board
var ErrNoLegalMoves = errors.New("no legal moves")

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning.
// At most one Decide may run at a time.
type AlphaBeta struct {
	maxDepth int
	evaluate game.Evaluate
	center   pivot
	metrics  metrics.Collector
}

func WithWeights(weights game.Weights) Option {
	return func(ab *AlphaBeta) {
		ab.evaluate = weights.Heuristic
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(ab *AlphaBeta) {
		if collector != nil {
			ab.metrics = collector
		}
	}
}

// WithWidthPivot orders successors around the board's middle column instead
// of half the free column count. This changes which column wins ties.
func WithWidthPivot() Option {
	return func(ab *AlphaBeta) {
		ab.center = widthPivot
	}
}

func NewAlphaBeta(maxDepth int, options ...Option) *AlphaBeta {
	if maxDepth < 0 {
		panic(fmt.Sprintf("max depth must not be negative, got %d", maxDepth))
	}
	ab := &AlphaBeta{ // Default values
		maxDepth: maxDepth,
		evaluate: game.DefaultWeights().Heuristic,
		center:   freeCountPivot,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	log.Debug().Msgf("alpha-beta searcher with max depth %d", ab.maxDepth)
	return ab
}

func (ab *AlphaBeta) MaxDepth() int {
	return ab.maxDepth
}

// Decide returns the column whose successor scores best for self when the
// opponent replies optimally. Ties keep the earliest generated successor.
func (ab *AlphaBeta) Decide(b *game.Board, self game.Cell) (int, error) {
	if outcome := b.Outcome(); outcome.Decided() {
		return -1, fmt.Errorf("%w: game is %s", ErrNoLegalMoves, outcome)
	}
	successors := ab.successors(b)
	if len(successors) == 0 {
		return -1, fmt.Errorf("%w: board is full", ErrNoLegalMoves)
	}

	ab.metrics.StartMove()
	defer ab.metrics.EndMove()

	bestScore := math.Inf(-1)
	bestCol := successors[0].Column
	for _, s := range successors {
		score := ab.minValue(s, self, math.Inf(-1), math.Inf(1), 1)
		if score > bestScore {
			bestScore = score
			bestCol = s.Column
		}
	}
	return bestCol, nil
}

func (ab *AlphaBeta) maxValue(node Successor, self game.Cell, alpha, beta float64, depth int) float64 {
	if score, ok := ab.leaf(node, self, depth); ok {
		return score
	}

	v := math.Inf(-1)
	for _, s := range ab.successors(node.Board) {
		v = max(v, ab.minValue(s, self, alpha, beta, depth+1))
		if v >= beta {
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func (ab *AlphaBeta) minValue(node Successor, self game.Cell, alpha, beta float64, depth int) float64 {
	if score, ok := ab.leaf(node, self, depth); ok {
		return score
	}

	v := math.Inf(1)
	for _, s := range ab.successors(node.Board) {
		v = min(v, ab.maxValue(s, self, alpha, beta, depth+1))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}

// leaf scores terminal boards regardless of depth, and cuts off the rest
// once past the max depth
func (ab *AlphaBeta) leaf(node Successor, self game.Cell, depth int) (float64, bool) {
	// Only the last drop can complete a line since the root was undecided
	outcome := node.Board.OutcomeAt(node.Row, node.Column)
	if outcome.Decided() {
		ab.metrics.RecordNode()
		return game.TerminalScore(node.Board, outcome, self), true
	}
	if depth > ab.maxDepth {
		ab.metrics.RecordNode()
		return ab.evaluate(node.Board, self), true
	}
	return 0, false
}

func (ab *AlphaBeta) successors(b *game.Board) []Successor {
	return orderedSuccessors(b, ab.center)
}
