package experiments

import (
	"connectn/config"
	"connectn/experiments/metrics"
	"fmt"
)

// RunThroughputExperiment plays each configured depth against itself to
// measure search throughput at equal playing strength.
func RunThroughputExperiment(cfg *config.Config) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range cfg.Depths {
		if depth < 0 {
			return "", fmt.Errorf("invalid depth %d", depth)
		}
		config := metrics.AgentConfig{ID: i + 1, Name: fmt.Sprintf("depth%d", depth), MaxDepth: depth}
		withWeights(&config, cfg.Weights)
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", cfg, configs, matchUps, false)
}
