package experiments

import (
	"connectn/config"
	"connectn/engine"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunDepthExperiment pairs an agent for each configured depth against the
// baseline agent, alternating which of them plays side A.
func RunDepthExperiment(cfg *config.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Name: "baseline", Random: cfg.BaselineDepth < 0, MaxDepth: cfg.BaselineDepth}
	withWeights(&baseline, cfg.Weights)

	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range cfg.Depths {
		if depth < 0 {
			return "", fmt.Errorf("invalid depth %d", depth)
		}
		config := metrics.AgentConfig{ID: i + 1, Name: fmt.Sprintf("depth%d", depth), MaxDepth: depth}
		withWeights(&config, cfg.Weights)
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", cfg, configs, matchUps, true)
}

func runExperiment(name string, cfg *config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, alternate bool) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	seed := cfg.Seed

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		wins := map[string]int{}
		for i := 0; i < cfg.Games; i++ {
			first, second := matchup[0], matchup[1]
			if alternate && i%2 == 1 {
				first, second = second, first
			}
			log.Info().Msgf("matchup %d of %d game %d of %d: %s vs %s", mi+1, len(matchUps), i+1, cfg.Games, first.Name, second.Name)

			playerA := newAgent(first, game.PlayerA, seed)
			playerB := newAgent(second, game.PlayerB, seed+1)
			seed += 2

			e := engine.NewLocalEngine(playerA, playerB, cfg.Width, cfg.Height, cfg.LineLength)
			gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}
			wins[gameMetric.Winner]++
			report(playerA)
			report(playerB)
		}
		log.Info().Msgf("completed matchup %d of %d: %s won %d, %s won %d, %d draws", mi+1, len(matchUps),
			matchup[0].Name, wins[matchup[0].Name], matchup[1].Name, wins[matchup[1].Name], wins[""])
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored experiment records in %s", writer.Dir())

	return writer.Dir(), nil
}

func newAgent(config metrics.AgentConfig, side game.Cell, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandom(config.Name, side, seed)
	}
	return agent.NewAlphaBeta(agent.Config{
		Name:     config.Name,
		Side:     side,
		MaxDepth: config.MaxDepth,
		Weights: game.Weights{
			SelfPotential:  config.SelfPotential,
			EnemyPotential: config.EnemyPotential,
			InARow:         config.InARow,
			GrowthRate:     config.GrowthRate,
			TokenHeight:    config.TokenHeight,
		},
	})
}

func withWeights(config *metrics.AgentConfig, weights game.Weights) {
	config.SelfPotential = weights.SelfPotential
	config.EnemyPotential = weights.EnemyPotential
	config.InARow = weights.InARow
	config.GrowthRate = weights.GrowthRate
	config.TokenHeight = weights.TokenHeight
}

func report(a agent.Agent) {
	r, ok := a.(agent.Reporter)
	if !ok {
		return
	}
	m := r.Metrics()
	log.Info().Msgf("%s: %d moves, %d nodes, %.0f nodes/s, avg %s per move, max %s",
		a.Name(), m.Moves(), m.TotalNodes(), m.NodesPerSecond(), m.AvgTimePerMove(), m.MaxElapsed())
}
