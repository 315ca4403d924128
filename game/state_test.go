package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unit(id int, category Category, strength int) Card {
	return Card{ID: id, Category: category, Strength: strength}
}

// newTestState builds a round-1 state with the given hands and player 0 to move.
func newTestState(hand0, hand1 []Card) *GameState {
	gs := NewGameState()
	gs.Players[0].Hand = hand0
	gs.Players[1].Hand = hand1
	return gs
}

func TestClone(t *testing.T) {
	t.Run("cloning produces an independent copy", func(t *testing.T) {
		gs := newTestState(
			[]Card{unit(1, Melee, 5), NewCard(ScorchID)},
			[]Card{unit(2, Ranged, 3)},
		)
		gs.Players[0].Board[MeleeLane] = []Card{unit(3, Melee, 7)}
		gs.Players[1].Board[SiegeLane] = []Card{unit(4, Siege, 4)}
		gs.SpecialsUsed[RowDebuff] = 1
		gs.RoundScores = append(gs.RoundScores, [2]int{3, 2})

		clone := gs.Clone()
		require.Equal(t, gs, clone, "Clone should be deeply equal to the original")

		clone.Players[0].Hand[0].Debuffed = true
		clone.Players[0].Board[MeleeLane][0].Debuffed = true
		clone.Players[0].Board[MeleeLane] = append(clone.Players[0].Board[MeleeLane], unit(5, Melee, 2))
		clone.Players[1].Board[SiegeLane][0].Strength = 99
		clone.Players[1].Passed = true
		clone.Players[1].RoundsWon = 1
		clone.SpecialsUsed[Scorch] = 2
		clone.RoundScores[0][0] = 42
		clone.CurrentPlayer = 1

		require.False(t, gs.Players[0].Hand[0].Debuffed, "Original hand card should not change")
		require.False(t, gs.Players[0].Board[MeleeLane][0].Debuffed, "Original board card should not change")
		require.Len(t, gs.Players[0].Board[MeleeLane], 1, "Original lane should not grow")
		require.Equal(t, 4, gs.Players[1].Board[SiegeLane][0].Strength, "Original board card should not change")
		require.False(t, gs.Players[1].Passed, "Original pass flag should not change")
		require.Equal(t, 0, gs.Players[1].RoundsWon, "Original rounds won should not change")
		require.Equal(t, 0, gs.SpecialsUsed[Scorch], "Original special counters should not change")
		require.Equal(t, 3, gs.RoundScores[0][0], "Original round log should not change")
		require.Equal(t, 0, gs.CurrentPlayer, "Original current player should not change")
	})

	t.Run("playing on a clone leaves the original untouched", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 5)}, []Card{unit(1, Melee, 5)})
		clone := gs.Clone()

		NewEngine().Execute(clone, PlayUnit(clone.Players[0].Hand[0]))

		require.Len(t, gs.Players[0].Hand, 1, "Original hand should keep the card")
		require.Empty(t, gs.Players[0].Board[MeleeLane], "Original board should stay empty")
		require.Equal(t, 0, gs.CurrentPlayer, "Original turn should not advance")
	})
}

func TestResolveRound(t *testing.T) {
	t.Run("stronger board wins the round", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 2)}, []Card{unit(2, Melee, 2)})
		gs.Players[0].Board[MeleeLane] = []Card{unit(3, Melee, 6)}
		gs.Players[1].Board[RangedLane] = []Card{unit(4, Ranged, 5)}

		gs.ResolveRound()

		require.Equal(t, 1, gs.Players[0].RoundsWon, "Player 0 should be credited")
		require.Equal(t, 0, gs.Players[1].RoundsWon, "Player 1 should not be credited")
		require.Equal(t, [][2]int{{6, 5}}, gs.RoundScores, "Round strengths should be logged")
		require.False(t, gs.Over, "Match should continue")
	})

	t.Run("tied strengths credit nobody", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 2)}, []Card{unit(2, Melee, 2)})
		gs.Players[0].Board[MeleeLane] = []Card{unit(3, Melee, 4)}
		gs.Players[1].Board[SiegeLane] = []Card{unit(4, Siege, 4)}

		gs.ResolveRound()

		require.Equal(t, 0, gs.Players[0].RoundsWon, "Tie should not credit player 0")
		require.Equal(t, 0, gs.Players[1].RoundsWon, "Tie should not credit player 1")
		require.Equal(t, 2, gs.Round, "Match should move to round 2")
	})

	t.Run("next round resets boards, passes and debuffs", func(t *testing.T) {
		debuffed := unit(1, Melee, 8)
		debuffed.Debuffed = true
		gs := newTestState([]Card{debuffed}, []Card{})
		gs.Players[0].Board[MeleeLane] = []Card{unit(3, Melee, 6)}
		gs.Players[0].Passed = true
		gs.Players[1].Passed = true

		gs.ResolveRound()

		require.Equal(t, 2, gs.Round, "Round should advance")
		require.Empty(t, gs.Players[0].BoardCards(), "Board should be cleared")
		require.False(t, gs.Players[0].Hand[0].Debuffed, "Hand debuffs should be cleared")
		require.False(t, gs.Players[0].Passed, "Player with cards should be able to act again")
		require.True(t, gs.Players[1].Passed, "Player with an empty hand should be auto-passed")
		require.Equal(t, 1, gs.CurrentPlayer, "Player 1 should open round 2")
	})

	t.Run("openers alternate across rounds", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 2)}, []Card{unit(2, Melee, 2)})

		gs.ResolveRound()
		require.Equal(t, 1, gs.CurrentPlayer, "Player 1 should open round 2")

		gs.ResolveRound()
		require.Equal(t, 0, gs.CurrentPlayer, "Player 0 should open round 3")
	})

	t.Run("second round win ends the match", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 2)}, []Card{unit(2, Melee, 2)})
		gs.Round = 2
		gs.Players[1].RoundsWon = 1
		gs.Players[1].Board[MeleeLane] = []Card{unit(3, Melee, 1)}

		gs.ResolveRound()

		require.True(t, gs.Over, "Match should be over")
		require.Equal(t, 1, gs.Winner, "Player 1 should win the match")
		require.Equal(t, 2, gs.Round, "Round should not advance after the match ends")
	})

	t.Run("round three decides by rounds won before hand size", func(t *testing.T) {
		gs := newTestState([]Card{}, []Card{unit(2, Melee, 2), unit(3, Melee, 2)})
		gs.Round = 3
		gs.Players[0].RoundsWon = 1

		gs.ResolveRound()

		require.True(t, gs.Over, "Match should be over after round 3")
		require.Equal(t, 0, gs.Winner, "Player with more rounds should win despite the smaller hand")
	})

	t.Run("round three tie falls back to hand size", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 2)}, []Card{unit(2, Melee, 2), unit(3, Melee, 2)})
		gs.Round = 3
		gs.Players[0].RoundsWon = 1
		gs.Players[1].RoundsWon = 1

		gs.ResolveRound()

		require.True(t, gs.Over, "Match should be over after round 3")
		require.Equal(t, 1, gs.Winner, "Player with more cards in hand should win the tiebreak")
	})

	t.Run("round three full tie is a draw", func(t *testing.T) {
		gs := newTestState([]Card{unit(1, Melee, 2)}, []Card{unit(2, Melee, 2)})
		gs.Round = 3

		gs.ResolveRound()

		require.True(t, gs.Over, "Match should be over after round 3")
		require.Equal(t, NoWinner, gs.Winner, "Equal rounds and hands should be a draw")
	})
}

func TestRoundsWonMonotonic(t *testing.T) {
	t.Run("rounds won never decrease over a full match", func(t *testing.T) {
		rng := NewRand(7)
		engine := NewEngine()

		for match := 0; match < 20; match++ {
			gs := Deal(rng)
			prev := [NumPlayers]int{}
			for steps := 0; !gs.Over && steps < 200; steps++ {
				engine.CheckAutoEndRound(gs)
				if gs.Over {
					break
				}
				actions := engine.ValidActions(gs)
				engine.Execute(gs, actions[rng.Intn(len(actions))])

				for id, p := range gs.Players {
					require.GreaterOrEqual(t, p.RoundsWon, prev[id], "Rounds won should never decrease")
					require.LessOrEqual(t, p.RoundsWon, WinRounds, "Rounds won should not exceed the match target")
					prev[id] = p.RoundsWon
				}
			}
			require.True(t, gs.Over, "Random play should always finish the match")
			if gs.Winner != NoWinner {
				winner, loser := gs.Players[gs.Winner], gs.Players[1-gs.Winner]
				require.GreaterOrEqual(t, winner.RoundsWon, loser.RoundsWon, "Winner should not trail in rounds")
			}
		}
	})
}
