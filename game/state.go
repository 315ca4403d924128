package game

import (
	"fmt"
	"slices"
)

const (
	NumPlayers = 2
	NumRounds  = 3
	WinRounds  = 2 // Rounds needed to take the match
	SpecialCap = 2 // Uses per special category per match
	NoWinner   = -1
)

// GameState is the match's only authoritative data. It is owned and mutated in
// place by Engine; searchers only ever mutate clones.
type GameState struct {
	Players       [NumPlayers]*PlayerState
	Round         int // 1..NumRounds
	CurrentPlayer int // Index into Players
	SpecialsUsed  [numCategories]int
	SpecialCap    int
	Over          bool
	Winner        int      // NoWinner while running or on a drawn match
	RoundScores   [][2]int // Board strengths of each resolved round
}

// NewGameState initializes an empty match in round 1 with player 0 to move.
func NewGameState() *GameState {
	gs := &GameState{
		Round:       1,
		SpecialCap:  SpecialCap,
		Winner:      NoWinner,
		RoundScores: [][2]int{},
	}
	for id := range gs.Players {
		gs.Players[id] = NewPlayerState(id)
	}
	return gs
}

// Clone returns a deep, fully independent copy of the state.
func (gs *GameState) Clone() *GameState {
	var playersCopy [NumPlayers]*PlayerState
	for id, p := range gs.Players {
		playersCopy[id] = p.Copy()
	}

	return &GameState{
		Players:       playersCopy,
		Round:         gs.Round,
		CurrentPlayer: gs.CurrentPlayer,
		SpecialsUsed:  gs.SpecialsUsed, // Array, copied by value
		SpecialCap:    gs.SpecialCap,
		Over:          gs.Over,
		Winner:        gs.Winner,
		RoundScores:   slices.Clone(gs.RoundScores),
	}
}

// Player returns the player to move.
func (gs *GameState) Player() *PlayerState {
	return gs.Players[gs.CurrentPlayer]
}

// Opponent returns the player not to move.
func (gs *GameState) Opponent() *PlayerState {
	return gs.Players[gs.NextPlayer()]
}

func (gs *GameState) NextPlayer() int {
	return 1 - gs.CurrentPlayer
}

func (gs *GameState) switchPlayer() {
	gs.CurrentPlayer = gs.NextPlayer()
}

// RoundOver reports whether both players have passed.
func (gs *GameState) RoundOver() bool {
	return gs.Players[0].Passed && gs.Players[1].Passed
}

// SpecialAvailable reports whether the category's per-match cap has not been reached.
func (gs *GameState) SpecialAvailable(category Category) bool {
	return gs.SpecialsUsed[category] < gs.SpecialCap
}

// ResolveRound credits the stronger board, then either ends the match or sets up the next round.
func (gs *GameState) ResolveRound() {
	p0, p1 := gs.Players[0], gs.Players[1]
	s0, s1 := p0.BoardStrength(), p1.BoardStrength()
	gs.RoundScores = append(gs.RoundScores, [2]int{s0, s1})

	if s0 > s1 {
		p0.RoundsWon++
	} else if s1 > s0 {
		p1.RoundsWon++
	}

	switch {
	case p0.RoundsWon >= WinRounds:
		gs.finish(0)
	case p1.RoundsWon >= WinRounds:
		gs.finish(1)
	case gs.Round >= NumRounds:
		gs.finish(gs.decideFinalRound())
	default:
		gs.Round++
		p0.resetRound()
		p1.resetRound()
		gs.CurrentPlayer = (gs.Round - 1) % NumPlayers

		// A player with nothing left to play sits the round out
		for _, p := range gs.Players {
			if len(p.Hand) == 0 {
				p.Passed = true
			}
		}
	}
}

// decideFinalRound picks the winner after the last round: more rounds won,
// then more cards in hand, else a draw.
func (gs *GameState) decideFinalRound() int {
	p0, p1 := gs.Players[0], gs.Players[1]
	switch {
	case p0.RoundsWon > p1.RoundsWon:
		return 0
	case p1.RoundsWon > p0.RoundsWon:
		return 1
	case len(p0.Hand) > len(p1.Hand):
		return 0
	case len(p1.Hand) > len(p0.Hand):
		return 1
	default:
		return NoWinner
	}
}

func (gs *GameState) finish(winner int) {
	gs.Over = true
	gs.Winner = winner
}

func (gs *GameState) String() string {
	return fmt.Sprintf("GameState(round=%d, current_player=%d, scores=%d-%d)",
		gs.Round, gs.CurrentPlayer, gs.Players[0].RoundsWon, gs.Players[1].RoundsWon)
}
