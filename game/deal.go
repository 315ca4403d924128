package game

import "golang.org/x/exp/rand"

const (
	HandUnits = 10 // Unit cards dealt per match

	RowDebuffID = 16
	ScorchID    = 17
)

// Base strengths of the unit pool, indexed by card id - 1.
// Ids 1-5 are melee, 6-10 ranged, 11-15 siege.
var unitStrengths = [15]int{
	2, 4, 5, 7, 10, // Melee
	1, 3, 6, 8, 9, // Ranged
	2, 3, 5, 6, 8, // Siege
}

// NewCard builds a card from the fixed pool by id.
func NewCard(id int) Card {
	switch {
	case id >= 1 && id <= 5:
		return Card{ID: id, Category: Melee, Strength: unitStrengths[id-1]}
	case id >= 6 && id <= 10:
		return Card{ID: id, Category: Ranged, Strength: unitStrengths[id-1]}
	case id >= 11 && id <= 15:
		return Card{ID: id, Category: Siege, Strength: unitStrengths[id-1]}
	case id == RowDebuffID:
		return Card{ID: id, Category: RowDebuff}
	case id == ScorchID:
		return Card{ID: id, Category: Scorch}
	default:
		panic("unknown card id")
	}
}

// Pool returns the ids of every unit card that can be dealt.
func Pool() []int {
	ids := make([]int, len(unitStrengths))
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// Deal starts a match: HandUnits distinct units sampled from the pool plus one
// RowDebuff and one Scorch, with both players holding their own copy of the same hand.
func Deal(rng *rand.Rand) *GameState {
	ids := Pool()
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	hand := make([]Card, 0, HandUnits+2)
	for _, id := range ids[:HandUnits] {
		hand = append(hand, NewCard(id))
	}
	hand = append(hand, NewCard(RowDebuffID), NewCard(ScorchID))

	gs := NewGameState()
	for _, p := range gs.Players {
		p.Hand = make([]Card, len(hand))
		copy(p.Hand, hand)
	}
	gs.CurrentPlayer = 0
	return gs
}

// NewRand returns a seeded generator for reproducible deals.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
