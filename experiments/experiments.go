package experiments

import (
	"fmt"

	"duel/config"
	"duel/engine"
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
	"duel/searcher/agent"

	"github.com/rs/zerolog/log"
)

const searchID = 0 // AgentConfig.ID of the agent under test

// Result tallies one matchup from the search agent's side.
type Result struct {
	Opponent string
	Wins     int
	Losses   int
	Draws    int
}

// RunStrength plays the configured search agent against every opponent,
// alternating seats, and stores the records under the output directory.
func RunStrength(cfg *config.Config) ([]Result, error) {
	exp := cfg.Experiment
	configs := agentConfigs(cfg)

	count := 0
	results := []Result{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for oi, opponent := range exp.Opponents {
		opponentID := oi + 1
		result := Result{Opponent: opponent}

		log.Info().Msgf("starting matchup %d of %d against %s...", oi+1, len(exp.Opponents), opponent)

		for i := 0; i < exp.Games; i++ {
			seed := exp.Seed + uint64(i)
			agents := [game.NumPlayers]agent.Agent{newAgent(config.OpponentSearch, cfg, seed), newAgent(opponent, cfg, seed)}
			ids := [game.NumPlayers]int{searchID, opponentID}
			searchSeat := i % game.NumPlayers
			if searchSeat == 1 {
				agents[0], agents[1] = agents[1], agents[0]
				ids[0], ids[1] = ids[1], ids[0]
			}

			winner, gameMetric, moveMetrics := engine.LocalEngine(agents, seed).Run()
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     ids[0],
				Agent2:     ids[1],
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case searchSeat:
				result.Wins++
			case game.NoWinner:
				result.Draws++
			default:
				result.Losses++
			}

			log.Info().Msgf("completed game %d of %d against %s with winner: %d (search seat %d)", i+1, exp.Games, opponent, winner, searchSeat)
		}

		results = append(results, result)
		log.Info().Msgf("completed matchup against %s: %d wins, %d losses, %d draws", opponent, result.Wins, result.Losses, result.Draws)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return results, nil
}

func agentConfigs(cfg *config.Config) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{searchConfig(searchID, cfg)}
	for oi, opponent := range cfg.Experiment.Opponents {
		if opponent == config.OpponentSearch {
			configs = append(configs, searchConfig(oi+1, cfg))
			continue
		}
		configs = append(configs, metrics.AgentConfig{ID: oi + 1, Kind: opponent})
	}
	return configs
}

func searchConfig(id int, cfg *config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:            id,
		Kind:          config.OpponentSearch,
		Depth:         cfg.Search.Depth,
		AdaptiveDepth: cfg.Search.AdaptiveDepth,
		Goroutines:    cfg.Search.Goroutines,
		Duration:      cfg.Search.Duration,
		NodeBudget:    cfg.Search.NodeBudget,
		VoluntaryPass: cfg.Search.VoluntaryPass,
	}
}

func newAgent(kind string, cfg *config.Config, seed uint64) agent.Agent {
	switch kind {
	case config.OpponentSearch:
		return agent.NewSearchAgent(searcher.NewMinimax(cfg.SearchOptions()...))
	case config.OpponentGreedy:
		return agent.NewGreedyAgent()
	case config.OpponentRandom:
		return agent.NewRandomAgent(seed)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", kind))
	}
}
