package engine

import "connectn/experiments/metrics"

type Engine interface {
	// Run plays a game until it is decided
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
