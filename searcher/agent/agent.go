package agent

import (
	"connectn/experiments/metrics"
	"connectn/game"
)

type Agent interface {
	Name() string
	Side() game.Cell
	// Go returns a column from b.FreeColumns() to drop the next token into
	Go(b *game.Board) (int, error)
}

// Reporter is implemented by agents that keep search statistics. The
// statistics are for display only.
type Reporter interface {
	Metrics() *metrics.Metrics
}
