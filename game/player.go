package game

import (
	"duel/utils"
	"slices"
)

// PlayerState holds one player's hand, three-lane board, pass flag and rounds won.
type PlayerState struct {
	ID        int
	Hand      []Card
	Board     [NumLanes][]Card
	Passed    bool
	RoundsWon int
}

func NewPlayerState(id int) *PlayerState {
	return &PlayerState{ID: id, Hand: []Card{}}
}

// Copy returns a deep copy of the player. Hand and lanes are fresh slices.
func (p *PlayerState) Copy() *PlayerState {
	var boardCopy [NumLanes][]Card
	for lane, cards := range p.Board {
		boardCopy[lane] = slices.Clone(cards)
	}

	return &PlayerState{
		ID:        p.ID,
		Hand:      slices.Clone(p.Hand),
		Board:     boardCopy,
		Passed:    p.Passed,
		RoundsWon: p.RoundsWon,
	}
}

// BoardStrength sums the effective strength over all three lanes.
func (p *PlayerState) BoardStrength() int {
	total := 0
	for lane := range p.Board {
		total += p.LaneStrength(Lane(lane))
	}
	return total
}

func (p *PlayerState) LaneStrength(lane Lane) int {
	total := 0
	for _, card := range p.Board[lane] {
		total += card.EffectiveStrength()
	}
	return total
}

// BoardCards returns every card on the board, lane by lane.
func (p *PlayerState) BoardCards() []Card {
	var cards []Card
	for _, lane := range p.Board {
		cards = append(cards, lane...)
	}
	return cards
}

func (p *PlayerState) HasCard(id int) bool {
	return p.handIndex(id) >= 0
}

func (p *PlayerState) handIndex(id int) int {
	return utils.FindIndexFunc(p.Hand, func(c Card) bool { return c.ID == id })
}

func (p *PlayerState) heldCard(id int) (Card, bool) {
	i := p.handIndex(id)
	if i < 0 {
		return Card{}, false
	}
	return p.Hand[i], true
}

// takeFromHand removes the card with the given id, reporting whether it was held.
func (p *PlayerState) takeFromHand(id int) (Card, bool) {
	i := p.handIndex(id)
	if i < 0 {
		return Card{}, false
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card, true
}

// resetRound clears the board and the pass flag, and lifts debuffs from the hand.
func (p *PlayerState) resetRound() {
	p.Board = [NumLanes][]Card{}
	p.Passed = false
	for i := range p.Hand {
		p.Hand[i].Debuffed = false
	}
}
