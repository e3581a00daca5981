package agent

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
)

// Config is fixed for the lifetime of an agent
type Config struct {
	Name     string
	Side     game.Cell
	MaxDepth int
	Weights  game.Weights
}

func DefaultConfig(name string, side game.Cell) Config {
	return Config{
		Name:     name,
		Side:     side,
		MaxDepth: searcher.DefaultMaxDepth,
		Weights:  game.DefaultWeights(),
	}
}

// AlphaBetaAgent plays the column picked by a depth-limited alpha-beta search.
type AlphaBetaAgent struct {
	config  Config
	search  *searcher.AlphaBeta
	metrics *metrics.Metrics
}

// NewAlphaBeta returns an agent for actual game play. Options are applied
// after the ones derived from config and may override them.
func NewAlphaBeta(config Config, options ...searcher.Option) *AlphaBetaAgent {
	collector := metrics.NewMetrics()
	opts := append([]searcher.Option{
		searcher.WithWeights(config.Weights),
		searcher.WithMetrics(collector),
	}, options...)

	return &AlphaBetaAgent{
		config:  config,
		search:  searcher.NewAlphaBeta(config.MaxDepth, opts...),
		metrics: collector,
	}
}

func (a *AlphaBetaAgent) Name() string {
	return a.config.Name
}

func (a *AlphaBetaAgent) Side() game.Cell {
	return a.config.Side
}

func (a *AlphaBetaAgent) Config() Config {
	return a.config
}

func (a *AlphaBetaAgent) Go(b *game.Board) (int, error) {
	return a.search.Decide(b, a.config.Side)
}

func (a *AlphaBetaAgent) Metrics() *metrics.Metrics {
	return a.metrics
}
