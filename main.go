package main

import (
	"connectn/config"
	"connectn/experiments"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", cfg.LogLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	dir, err := run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}
	fmt.Println(dir)
}

func run(cfg *config.Config) (string, error) {
	switch cfg.Experiment {
	case "depth":
		return experiments.RunDepthExperiment(cfg)
	case "throughput":
		return experiments.RunThroughputExperiment(cfg)
	default:
		return "", fmt.Errorf("unknown experiment %q", cfg.Experiment)
	}
}
