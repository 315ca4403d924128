package game

import "fmt"

type Category int

const (
	Melee     Category = iota // 0
	Ranged                    // 1
	Siege                     // 2
	RowDebuff                 // 3
	Scorch                    // 4
	numCategories
)

func (c Category) String() string {
	switch c {
	case Melee:
		return "Melee"
	case Ranged:
		return "Ranged"
	case Siege:
		return "Siege"
	case RowDebuff:
		return "RowDebuff"
	case Scorch:
		return "Scorch"
	default:
		return "Unknown"
	}
}

// IsUnit reports whether cards of this category occupy a lane.
func (c Category) IsUnit() bool {
	return c == Melee || c == Ranged || c == Siege
}

// IsSpecial reports whether cards of this category apply an effect instead of occupying a lane.
func (c Category) IsSpecial() bool {
	return c == RowDebuff || c == Scorch
}

// Lane is one of the three board zones. Unit categories map onto lanes one to one.
type Lane int

const (
	MeleeLane Lane = iota
	RangedLane
	SiegeLane
	NumLanes
)

func (l Lane) String() string {
	switch l {
	case MeleeLane:
		return "melee"
	case RangedLane:
		return "ranged"
	case SiegeLane:
		return "siege"
	default:
		return "none"
	}
}

// Card is a value type: copying a Card never shares state between hands, boards or clones.
type Card struct {
	ID       int
	Category Category
	Strength int // Base strength, 0 for specials
	Debuffed bool
}

// EffectiveStrength is 1 while debuffed, otherwise the base strength.
func (c Card) EffectiveStrength() int {
	if c.Debuffed {
		return 1
	}
	return c.Strength
}

// Lane returns the lane a unit card is played into.
func (c Card) Lane() Lane {
	return Lane(c.Category)
}

func (c Card) String() string {
	return fmt.Sprintf("Card(id=%d, type=%s, strength=%d)", c.ID, c.Category, c.EffectiveStrength())
}
