package config

import (
	"connectn/game"
	"connectn/searcher"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Width         int
	Height        int
	LineLength    int
	Games         int   // Per matchup
	Depths        []int // Max depths pitted against the baseline
	BaselineDepth int   // Negative for a random baseline
	Seed          uint64
	Experiment    string // "depth" or "throughput"
	OutDir        string
	LogLevel      string
	Weights       game.Weights
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	defaults := game.DefaultWeights()
	return &Config{
		Width:         GetEnvAsInt("CONNECTN_WIDTH", game.DefaultWidth),
		Height:        GetEnvAsInt("CONNECTN_HEIGHT", game.DefaultHeight),
		LineLength:    GetEnvAsInt("CONNECTN_LINE_LENGTH", game.DefaultLineLength),
		Games:         GetEnvAsInt("CONNECTN_GAMES", 2),
		Depths:        GetEnvAsIntList("CONNECTN_DEPTHS", []int{1, 2, searcher.DefaultMaxDepth}),
		BaselineDepth: GetEnvAsInt("CONNECTN_BASELINE_DEPTH", 2),
		Seed:          uint64(GetEnvAsInt("CONNECTN_SEED", 1)),
		Experiment:    GetEnv("CONNECTN_EXPERIMENT", "depth"),
		OutDir:        GetEnv("CONNECTN_OUT_DIR", "experiments"),
		LogLevel:      GetEnv("CONNECTN_LOG_LEVEL", "info"),
		Weights: game.Weights{
			SelfPotential:  GetEnvAsFloat("CONNECTN_WEIGHT_SELF_POTENTIAL", defaults.SelfPotential),
			EnemyPotential: GetEnvAsFloat("CONNECTN_WEIGHT_ENEMY_POTENTIAL", defaults.EnemyPotential),
			InARow:         GetEnvAsFloat("CONNECTN_WEIGHT_IN_A_ROW", defaults.InARow),
			GrowthRate:     GetEnvAsFloat("CONNECTN_WEIGHT_GROWTH_RATE", defaults.GrowthRate),
			TokenHeight:    GetEnvAsFloat("CONNECTN_WEIGHT_TOKEN_HEIGHT", defaults.TokenHeight),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Warn().Msgf("invalid float value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsIntList parses a comma separated list. Any invalid entry falls
// back to the whole default list.
func GetEnvAsIntList(key string, defaultValue []int) []int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []int
	for _, part := range strings.Split(valueStr, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		value, err := strconv.Atoi(trimmed)
		if err != nil {
			log.Warn().Msgf("invalid integer list for %s: %s, using default: %v", key, valueStr, defaultValue)
			return defaultValue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
