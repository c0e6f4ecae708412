// Package evaluator classifies sets of five or more cards into strength categories.
package evaluator

// Category is a hand strength category. Higher is stronger.
type Category int

const (
	// Unranked is what a failed remote ranking degrades to. Evaluate never returns it.
	Unranked Category = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case Unranked:
		return "Unranked"
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is on the scale, Unranked included.
func (c Category) Valid() bool {
	return c >= Unranked && c <= StraightFlush
}
