package evaluator

import (
	"errors"

	"github.com/lox/leanbot/internal/deck"
)

// ErrTooFewCards is the panic value for evaluating fewer than five cards.
var ErrTooFewCards = errors.New("evaluator: at least five cards required")

// Evaluate classifies the whole card set in one pass; it does not pick the
// best five of a larger set. Pairing categories are checked before straights
// and flushes, so a paired flush is reported as a Pair.
//
// Evaluate panics with ErrTooFewCards when given fewer than five cards.
func Evaluate(cards []deck.Card) Category {
	if len(cards) < 5 {
		panic(ErrTooFewCards)
	}
	h, _ := deck.NewHand(cards...)
	return EvaluateHand(h)
}

// EvaluateHand is Evaluate for an already built hand.
func EvaluateHand(h deck.Hand) Category {
	if h.Len() < 5 {
		panic(ErrTooFewCards)
	}

	var trips, pairs, quads bool
	pairCount := 0
	for _, n := range h.RankCounts() {
		switch n {
		case 4:
			quads = true
		case 3:
			trips = true
		case 2:
			pairs = true
			pairCount++
		}
	}

	straight := isStraight(h.UniqueRankIndices())
	flush := h.Suited()

	switch {
	case quads:
		return FourOfAKind
	case trips && pairs:
		return FullHouse
	case trips:
		return ThreeOfAKind
	case pairCount == 2:
		return TwoPair
	case pairs:
		return Pair
	case straight && flush:
		return StraightFlush
	case flush:
		return Flush
	case straight:
		return Straight
	}
	return HighCard
}

// isStraight reports whether the sorted unique rank indices are exactly five
// consecutive values starting at the lowest. The ace only plays high.
func isStraight(idx []int) bool {
	if len(idx) != 5 {
		return false
	}
	for i, v := range idx {
		if v != idx[0]+i {
			return false
		}
	}
	return true
}
