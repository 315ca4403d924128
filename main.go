package main

import (
	"flag"
	"os"
	"time"

	"duel/config"
	"duel/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	games := flag.Int("games", 0, "Matches per matchup, overrides the config")
	depth := flag.Int("depth", 0, "Search depth in plies, overrides the config")
	goroutines := flag.Int("goroutines", 0, "Goroutines searching the root, overrides the config")
	duration := flag.Duration("duration", 0, "Time budget per decision, overrides the config")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *games > 0 {
		cfg.Experiment.Games = *games
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *goroutines > 0 {
		cfg.Search.Goroutines = *goroutines
	}
	if *duration > 0 {
		cfg.Search.Duration = *duration
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid logging level")
	}
	zerolog.SetGlobalLevel(level)

	results, err := experiments.RunStrength(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, result := range results {
		log.Info().Msgf("search vs %s: %d wins, %d losses, %d draws", result.Opponent, result.Wins, result.Losses, result.Draws)
	}
}
