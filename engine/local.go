package engine

import (
	"fmt"
	"time"

	"duel/experiments/metrics"
	"duel/game"
	"duel/meta"
	"duel/searcher/agent"
	"duel/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type localEngine struct {
	matchID string
	seed    uint64
	state   *game.GameState
	rules   *game.Engine
	agents  [game.NumPlayers]agent.Agent
}

// LocalEngine deals a match from seed between two in-process agents.
// Agent i plays as player i.
func LocalEngine(agents [game.NumPlayers]agent.Agent, seed uint64) Engine {
	for id, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for player %d", id))
		}
	}

	return &localEngine{
		matchID: uuid.NewString(),
		seed:    seed,
		state:   game.Deal(game.NewRand(seed)),
		rules:   game.NewEngine(),
		agents:  agents,
	}
}

// Run executes the entire game loop until the match is over.
func (e *localEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		MatchID:        e.matchID,
		Seed:           e.seed,
		StartingPlayer: e.state.CurrentPlayer,
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("match %s: player %d is starting", e.matchID, e.state.CurrentPlayer)

	step := 0
	for step < meta.MAX_TURNS {
		e.rules.CheckAutoEndRound(e.state)
		if e.state.Over {
			break
		}

		player := e.state.CurrentPlayer
		valid := e.rules.ValidActions(e.state)
		action := e.decide(player, valid)

		step++
		moveMetric := metrics.MoveMetric{
			Step:   step,
			Player: player,
			Action: action.String(),
		}
		if reporter, ok := e.agents[player].(agent.Reporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		round := e.state.Round
		e.rules.Execute(e.state, action)
		if e.state.Round != round || e.state.Over {
			scores := e.state.RoundScores[len(e.state.RoundScores)-1]
			log.Debug().Msgf("match %s: round %d resolved %d-%d", e.matchID, round, scores[0], scores[1])
		}
	}

	if !e.state.Over {
		log.Warn().Msgf("match %s: stopped after %d turns without a result", e.matchID, step)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Winner = e.state.Winner
	gameMetric.RoundsWon = [game.NumPlayers]int{e.state.Players[0].RoundsWon, e.state.Players[1].RoundsWon}
	gameMetric.RoundScores = e.state.RoundScores

	log.Debug().Msgf("match %s: over after %d moves, winner %d", e.matchID, step, e.state.Winner)
	return e.state.Winner, gameMetric, moveMetrics
}

// decide asks the agent for an action on a clone of the state and replaces an
// invalid answer with the first valid action.
func (e *localEngine) decide(player int, valid []game.Action) game.Action {
	action := e.agents[player].Decide(e.state.Clone(), valid)

	i := utils.FindIndexFunc(valid, action.Equal)
	if i < 0 {
		log.Warn().Msgf("player %d chose invalid %v, falling back to %v", player, action, valid[0])
		return valid[0]
	}
	return valid[i]
}
