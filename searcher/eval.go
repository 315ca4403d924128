package searcher

import "duel/game"

// Weights are the coefficients of the cutoff heuristic. Every component is
// scored for both players and subtracted, so the evaluation is zero-sum.
type Weights struct {
	RoundLead         float64    `yaml:"round_lead"`          // Flat bonus for any lead in rounds won
	StrengthOpen      float64    `yaml:"strength_open"`       // Per point of board lead, neither passed
	StrengthOnePassed float64    `yaml:"strength_one_passed"` // Per point of board lead, one passed
	StrengthLocked    float64    `yaml:"strength_locked"`     // Per point of board lead, both passed
	SafeLead          float64    `yaml:"safe_lead"`           // Passed while ahead
	PassedBehind      float64    `yaml:"passed_behind"`       // Passed while behind
	HandSize          [3]float64 `yaml:"hand_size"`           // Per card of hand lead, by round
	HandStrength      float64    `yaml:"hand_strength"`       // Per point of unit strength held
	HighCards         float64    `yaml:"high_cards"`          // Per unit of HighStrength or more held
	Special           float64    `yaml:"special"`             // Per usable special held
	ScorchTarget      float64    `yaml:"scorch_target"`       // Per point of an exposed scorch target
	ContestedSpecials float64    `yaml:"contested_specials"`  // Fraction of special value lost when the opponent holds specials too
	Debuff            float64    `yaml:"debuff"`              // Per point of strength lost to debuffs
	ScorchExposure    float64    `yaml:"scorch_exposure"`     // Per point of a uniquely strongest card facing an unused scorch
	StuckHand         float64    `yaml:"stuck_hand"`          // Hand of weak units only
}

func DefaultWeights() Weights {
	return Weights{
		RoundLead:         500,
		StrengthOpen:      1.0,
		StrengthOnePassed: 2.0,
		StrengthLocked:    4.0,
		SafeLead:          30,
		PassedBehind:      30,
		HandSize:          [3]float64{6, 10, 2},
		HandStrength:      0.3,
		HighCards:         3,
		Special:           6,
		ScorchTarget:      1.0,
		ContestedSpecials: 0.5,
		Debuff:            0.5,
		ScorchExposure:    1.0,
		StuckHand:         5,
	}
}

// Evaluate scores a non-terminal state from player's perspective.
func Evaluate(gs *game.GameState, player int, w Weights) float64 {
	me, opp := gs.Players[player], gs.Players[1-player]

	score := 0.0
	switch lead := me.RoundsWon - opp.RoundsWon; {
	case lead > 0:
		score += w.RoundLead
	case lead < 0:
		score -= w.RoundLead
	}

	score += roundScore(me, opp, w)

	round := min(max(gs.Round, 1), len(w.HandSize))
	score += float64(len(me.Hand)-len(opp.Hand)) * w.HandSize[round-1]

	myStrength, myHigh := handUnits(me)
	oppStrength, oppHigh := handUnits(opp)
	score += float64(myStrength-oppStrength) * w.HandStrength
	score += float64(myHigh-oppHigh) * w.HighCards

	score += specialValue(gs, me, opp, w) - specialValue(gs, opp, me, w)
	score += float64(debuffLoss(opp)-debuffLoss(me)) * w.Debuff
	score += exposure(gs, opp, me, w) - exposure(gs, me, opp, w)

	if stuck(me) {
		score -= w.StuckHand
	}
	if stuck(opp) {
		score += w.StuckHand
	}
	return score
}

// roundScore weighs the current board lead by how locked in the round is.
func roundScore(me, opp *game.PlayerState, w Weights) float64 {
	diff := me.BoardStrength() - opp.BoardStrength()

	weight := w.StrengthOpen
	switch {
	case me.Passed && opp.Passed:
		weight = w.StrengthLocked
	case me.Passed || opp.Passed:
		weight = w.StrengthOnePassed
	}
	score := float64(diff) * weight

	if me.Passed {
		score += passBonus(diff, w)
	}
	if opp.Passed {
		score -= passBonus(-diff, w)
	}
	return score
}

func passBonus(diff int, w Weights) float64 {
	switch {
	case diff > 0:
		return w.SafeLead
	case diff < 0:
		return -w.PassedBehind
	default:
		return 0
	}
}

// handUnits sums the base strength of unit cards held and counts the high ones.
func handUnits(p *game.PlayerState) (strength, high int) {
	for _, card := range p.Hand {
		if !card.Category.IsUnit() {
			continue
		}
		strength += card.Strength
		if card.Strength >= HighStrength {
			high++
		}
	}
	return strength, high
}

func specialValue(gs *game.GameState, holder, other *game.PlayerState, w Weights) float64 {
	usable, scorch := usableSpecials(gs, holder)
	if usable == 0 {
		return 0
	}

	value := float64(usable) * w.Special
	if scorch {
		if target, ok := scorchTarget(other, holder); ok {
			value += float64(target) * w.ScorchTarget
		}
	}
	if n, _ := usableSpecials(gs, other); n > 0 {
		value *= 1 - w.ContestedSpecials
	}
	return value
}

func usableSpecials(gs *game.GameState, p *game.PlayerState) (count int, scorch bool) {
	for _, card := range p.Hand {
		if card.Category.IsSpecial() && gs.SpecialAvailable(card.Category) {
			count++
			if card.Category == game.Scorch {
				scorch = true
			}
		}
	}
	return count, scorch
}

// scorchTarget reports the strongest card of target's board when a scorch
// would hit it without touching the caster's board.
func scorchTarget(target, caster *game.PlayerState) (int, bool) {
	top := maxStrength(target)
	if top < HighStrength || top <= maxStrength(caster) {
		return 0, false
	}
	return top, true
}

func maxStrength(p *game.PlayerState) int {
	top := 0
	for _, card := range p.BoardCards() {
		top = max(top, card.EffectiveStrength())
	}
	return top
}

func debuffLoss(p *game.PlayerState) int {
	loss := 0
	for _, card := range p.BoardCards() {
		if card.Debuffed {
			loss += card.Strength - card.EffectiveStrength()
		}
	}
	return loss
}

// exposure penalizes owner for holding the board's single strongest card
// while scorcher still has a scorch to play.
func exposure(gs *game.GameState, owner, scorcher *game.PlayerState, w Weights) float64 {
	if !gs.SpecialAvailable(game.Scorch) || !holdsScorch(scorcher) {
		return 0
	}

	top, count := 0, 0
	for _, p := range gs.Players {
		for _, card := range p.BoardCards() {
			switch s := card.EffectiveStrength(); {
			case s > top:
				top, count = s, 1
			case s == top:
				count++
			}
		}
	}
	if count != 1 || maxStrength(owner) != top {
		return 0
	}
	return float64(top) * w.ScorchExposure
}

func holdsScorch(p *game.PlayerState) bool {
	for _, card := range p.Hand {
		if card.Category == game.Scorch {
			return true
		}
	}
	return false
}

// stuck reports a hand whose playable units are all weak.
func stuck(p *game.PlayerState) bool {
	strength, units := 0, 0
	for _, card := range p.Hand {
		if card.Category.IsUnit() {
			strength += card.Strength
			units++
		}
	}
	return units > 0 && float64(strength)/float64(units) < MidStrength
}
