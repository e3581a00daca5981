package agent

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
	"fmt"

	"golang.org/x/exp/rand"
)

// RandomAgent drops into a uniformly random free column. It is the baseline
// the search agents are measured against.
type RandomAgent struct {
	name    string
	side    game.Cell
	rng     *rand.Rand
	metrics *metrics.Metrics
}

func NewRandom(name string, side game.Cell, seed uint64) *RandomAgent {
	return &RandomAgent{
		name:    name,
		side:    side,
		rng:     rand.New(rand.NewSource(seed)),
		metrics: metrics.NewMetrics(),
	}
}

func (a *RandomAgent) Name() string {
	return a.name
}

func (a *RandomAgent) Side() game.Cell {
	return a.side
}

func (a *RandomAgent) Go(b *game.Board) (int, error) {
	free := b.FreeColumns()
	if len(free) == 0 || b.Outcome().Decided() {
		return -1, fmt.Errorf("%w: game is %s", searcher.ErrNoLegalMoves, b.Outcome())
	}

	a.metrics.StartMove()
	defer a.metrics.EndMove()
	return free[a.rng.Intn(len(free))], nil
}

func (a *RandomAgent) Metrics() *metrics.Metrics {
	return a.metrics
}
