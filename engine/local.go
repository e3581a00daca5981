package engine

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher/agent"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State  *game.Board
	Agents [2]agent.Agent // Indexed by side: side A first
}

// NewLocalEngine sets up a game on an empty board. first must play side A
// and second side B.
func NewLocalEngine(first, second agent.Agent, width, height, lineLength int) *LocalEngine {
	if first.Side() != game.PlayerA || second.Side() != game.PlayerB {
		panic(fmt.Sprintf("agents must play sides A and B, got %s and %s", first.Side(), second.Side()))
	}
	return &LocalEngine{
		State:  game.NewBoard(width, height, lineLength),
		Agents: [2]agent.Agent{first, second},
	}
}

// Run executes the entire game loop until a side wins or the board is full.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	for _, a := range e.Agents {
		if r, ok := a.(agent.Reporter); ok {
			r.Metrics().Reset()
		}
	}

	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.Agents[0].Name(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("game %s: %s (A) vs %s (B) on %dx%d, %d in a row", gameMetric.ID,
		e.Agents[0].Name(), e.Agents[1].Name(), e.State.Width(), e.State.Height(), e.State.LineLength())

	var moveMetrics []metrics.MoveMetric
	outcome := e.State.Outcome()
	for step := 1; !outcome.Decided(); step++ {
		current := e.agentFor(e.State.ToMove())

		col, err := current.Go(e.State)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("agent %s failed to move: %w", current.Name(), err)
		}
		next, err := e.State.Drop(col)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("agent %s chose column %d: %w", current.Name(), col, err)
		}

		moveMetric := metrics.MoveMetric{
			Step:   step,
			Player: current.Name(),
			Side:   current.Side().String(),
			Column: col,
		}
		if r, ok := current.(agent.Reporter); ok {
			moveMetric.SearchMetric = r.Metrics().Last()
		}
		moveMetrics = append(moveMetrics, moveMetric)
		log.Debug().Msgf("step %d: %s drops in column %d (%d nodes, %s)", step, current.Name(), col,
			moveMetric.Nodes, moveMetric.Duration)

		e.State = next
		outcome = e.State.OutcomeAt(e.State.Top(col), col)
	}

	if outcome.Status == game.Won {
		gameMetric.Winner = e.agentFor(outcome.Winner).Name()
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game %s over after %d moves: %s", gameMetric.ID, gameMetric.TotalMoves, outcome)
	return gameMetric, moveMetrics, nil
}

func (e *LocalEngine) agentFor(side game.Cell) agent.Agent {
	if side == game.PlayerA {
		return e.Agents[0]
	}
	return e.Agents[1]
}
