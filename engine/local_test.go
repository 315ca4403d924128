package engine

import (
	"testing"

	"duel/game"
	"duel/searcher"
	"duel/searcher/agent"

	"github.com/stretchr/testify/require"
)

// invalidAgent always answers with a card nobody holds.
type invalidAgent struct{}

func (invalidAgent) Decide(state *game.GameState, valid []game.Action) game.Action {
	return game.PlayUnit(game.Card{ID: 99, Category: game.Melee, Strength: 10})
}

// tamperingAgent scribbles over the state it is shown, then passes.
type tamperingAgent struct{}

func (tamperingAgent) Decide(state *game.GameState, valid []game.Action) game.Action {
	state.Players[state.CurrentPlayer].RoundsWon = game.WinRounds
	state.Players[state.NextPlayer()].Hand = nil
	return game.Pass()
}

func TestLocalEngine(t *testing.T) {
	t.Run("greedy self-play runs to a result", func(t *testing.T) {
		e := LocalEngine([game.NumPlayers]agent.Agent{agent.NewGreedyAgent(), agent.NewGreedyAgent()}, 3)

		winner, gameMetric, moveMetrics := e.Run()

		require.True(t, e.(*localEngine).state.Over, "Match should be over")
		require.Contains(t, []int{game.NoWinner, 0, 1}, winner, "Winner should be a player or none")
		require.Equal(t, winner, gameMetric.Winner, "Metric should record the winner")
		require.Len(t, moveMetrics, gameMetric.TotalMoves, "Every move should be recorded")
		require.NotEmpty(t, gameMetric.MatchID, "Match should have an id")
		require.Equal(t, uint64(3), gameMetric.Seed, "Metric should record the seed")
		require.GreaterOrEqual(t, len(gameMetric.RoundScores), game.WinRounds, "At least two rounds should be played")
		if winner != game.NoWinner {
			require.Greater(t, gameMetric.RoundsWon[winner], gameMetric.RoundsWon[1-winner], "Winner should lead in rounds")
		}
	})

	t.Run("invalid actions fall back to the first valid action", func(t *testing.T) {
		e := LocalEngine([game.NumPlayers]agent.Agent{invalidAgent{}, invalidAgent{}}, 4)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.NoWinner, winner, "Passing every round with equal hands should draw")
		require.Equal(t, 6, gameMetric.TotalMoves, "Each round should take two passes")
		for _, mm := range moveMetrics {
			require.Equal(t, game.Pass().String(), mm.Action, "Fallback should be the leading Pass")
		}
	})

	t.Run("agents only ever see clones", func(t *testing.T) {
		e := LocalEngine([game.NumPlayers]agent.Agent{tamperingAgent{}, tamperingAgent{}}, 5)

		winner, gameMetric, _ := e.Run()

		require.Equal(t, game.NoWinner, winner, "Tampering should not reach the live match")
		require.Equal(t, [game.NumPlayers]int{0, 0}, gameMetric.RoundsWon, "No round should be won")
	})

	t.Run("missing agents panic", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([game.NumPlayers]agent.Agent{agent.NewGreedyAgent(), nil}, 1)
		}, "Should panic without an agent for every player")
	})

	t.Run("search metrics are attached to moves", func(t *testing.T) {
		search := agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(1), searcher.WithMetrics()))
		e := LocalEngine([game.NumPlayers]agent.Agent{search, agent.NewGreedyAgent()}, 6)

		_, _, moveMetrics := e.Run()

		searched := false
		for _, mm := range moveMetrics {
			if mm.Player == 0 && mm.Nodes > 0 {
				searched = true
			}
		}
		require.True(t, searched, "Search moves should carry node counts")
	})
}

func TestSearchAgainstGreedy(t *testing.T) {
	if testing.Short() {
		t.Skip("self-play is slow")
	}

	const games = 6
	searchWins, greedyWins := 0, 0
	for i := 0; i < games; i++ {
		search := agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(4)))
		agents := [game.NumPlayers]agent.Agent{search, agent.NewGreedyAgent()}
		searchSeat := 0
		if i%2 == 1 {
			agents[0], agents[1] = agents[1], agents[0]
			searchSeat = 1
		}

		winner, _, _ := LocalEngine(agents, uint64(100+i)).Run()

		switch winner {
		case searchSeat:
			searchWins++
		case 1 - searchSeat:
			greedyWins++
		}
	}

	require.GreaterOrEqual(t, searchWins, greedyWins, "Lookahead should not lose more often than greedy play")
}
