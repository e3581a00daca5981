package metrics

import (
	"time"
)

type SearchMetric struct {
	Nodes    int64 // Leaves evaluated during the move
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player string // Agent name
	Side   string
	Column int
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string // Agent name
	Winner         string // Agent name, "" on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector is the timer and counter sink a search reports to. It must not
// drive any search decision.
type Collector interface {
	StartMove()
	RecordNode()
	EndMove() time.Duration
}

// Metrics accumulates search statistics over a game. It is not safe for
// concurrent use.
type Metrics struct {
	startTime    time.Time
	moveNodes    int64
	totalNodes   int64
	moves        int
	last         time.Duration
	maxElapsed   time.Duration
	totalElapsed time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// StartMove rolls the previous move's nodes into the lifetime total and starts the timer
func (m *Metrics) StartMove() {
	m.totalNodes += m.moveNodes
	m.moveNodes = 0
	m.startTime = time.Now()
}

func (m *Metrics) RecordNode() {
	m.moveNodes++
}

// EndMove stops the timer and returns the time spent on the move
func (m *Metrics) EndMove() time.Duration {
	elapsed := time.Since(m.startTime)
	m.last = elapsed
	m.maxElapsed = max(m.maxElapsed, elapsed)
	m.totalElapsed += elapsed
	m.moves++
	return elapsed
}

// Last returns the statistics of the most recent move
func (m *Metrics) Last() SearchMetric {
	return SearchMetric{
		Nodes:    m.moveNodes,
		Duration: m.last,
	}
}

func (m *Metrics) TotalNodes() int64 {
	return m.totalNodes + m.moveNodes
}

func (m *Metrics) Moves() int {
	return m.moves
}

func (m *Metrics) MaxElapsed() time.Duration {
	return m.maxElapsed
}

func (m *Metrics) TotalElapsed() time.Duration {
	return m.totalElapsed
}

func (m *Metrics) NodesPerSecond() float64 {
	if m.totalElapsed <= 0 {
		return 0
	}
	return float64(m.TotalNodes()) / m.totalElapsed.Seconds()
}

func (m *Metrics) AvgTimePerMove() time.Duration {
	if m.moves == 0 {
		return 0
	}
	return m.totalElapsed / time.Duration(m.moves)
}

// Reset clears all statistics. Call it between games only.
func (m *Metrics) Reset() {
	*m = Metrics{}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) StartMove()             {}
func (m *dummyCollector) RecordNode()            {}
func (m *dummyCollector) EndMove() time.Duration { return 0 }
