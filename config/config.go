package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"duel/meta"
	"duel/searcher"
	"duel/utils"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Opponents the search agent can be matched against.
const (
	OpponentGreedy = "greedy"
	OpponentRandom = "random"
	OpponentSearch = "search" // Mirror match with the same settings
)

var knownOpponents = []string{OpponentGreedy, OpponentRandom, OpponentSearch}

type Config struct {
	Logging    Logging          `yaml:"logging"`
	Search     Search           `yaml:"search"`
	Weights    searcher.Weights `yaml:"weights"`
	Experiment Experiment       `yaml:"experiment"`
}

type Logging struct {
	Level string `yaml:"level"`
}

type Search struct {
	Depth         int           `yaml:"depth"`
	AdaptiveDepth bool          `yaml:"adaptive_depth"`
	Goroutines    int           `yaml:"goroutines"`
	Duration      time.Duration `yaml:"duration"`    // 0 for no time limit
	NodeBudget    int64         `yaml:"node_budget"` // 0 for no node limit
	VoluntaryPass bool          `yaml:"voluntary_pass"`
}

type Experiment struct {
	Name      string   `yaml:"name"`
	Games     int      `yaml:"games"` // Per matchup
	Seed      uint64   `yaml:"seed"`
	OutputDir string   `yaml:"output_dir"`
	Opponents []string `yaml:"opponents"`
}

func Default() *Config {
	return &Config{
		Logging: Logging{Level: zerolog.LevelInfoValue},
		Search: Search{
			Depth:      meta.DEPTH,
			Goroutines: meta.GO_ROUTINES,
		},
		Weights: searcher.DefaultWeights(),
		Experiment: Experiment{
			Name:      "strength",
			Games:     meta.GAMES,
			Seed:      meta.SEED,
			OutputDir: "experiments",
			Opponents: []string{OpponentGreedy, OpponentRandom},
		},
	}
}

// Load reads a YAML config file. Fields the file leaves out keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}
	if c.Search.Depth <= 0 {
		return errors.New("search depth must be positive")
	}
	if c.Search.Goroutines <= 0 {
		return errors.New("search goroutines must be positive")
	}
	if c.Search.Duration < 0 || c.Search.NodeBudget < 0 {
		return errors.New("search budget must not be negative")
	}
	if c.Experiment.Games <= 0 {
		return errors.New("experiment games must be positive")
	}
	if len(c.Experiment.Opponents) == 0 {
		return errors.New("experiment needs at least one opponent")
	}
	for _, opponent := range c.Experiment.Opponents {
		if utils.FindIndex(knownOpponents, opponent) < 0 {
			return fmt.Errorf("unknown opponent %q", opponent)
		}
	}
	return nil
}

// SearchOptions translates the search settings into minimax options.
func (c *Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDepth(c.Search.Depth),
		searcher.WithGoroutines(c.Search.Goroutines),
		searcher.WithWeights(c.Weights),
		searcher.WithMetrics(),
	}

	if c.Search.AdaptiveDepth {
		options = append(options, searcher.WithAdaptiveDepth())
	}
	if c.Search.Duration > 0 {
		options = append(options, searcher.WithDuration(c.Search.Duration))
	}
	if c.Search.NodeBudget > 0 {
		options = append(options, searcher.WithNodeBudget(c.Search.NodeBudget))
	}
	if c.Search.VoluntaryPass {
		options = append(options, searcher.WithVoluntaryPass())
	}
	return options
}
