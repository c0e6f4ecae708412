package evaluator

import (
	"context"

	"github.com/lox/leanbot/internal/deck"
	poker "github.com/paulhankin/poker"
)

// BestFive ranks the strongest five-card subset of the given cards rather
// than the whole set. The subset is chosen with paulhankin/poker and then
// classified with EvaluateHand, so a wheel (A-2-3-4-5) still reads as
// HighCard.
type BestFive struct{}

// Rank implements Ranker.
func (BestFive) Rank(_ context.Context, cards []deck.Card) Category {
	if len(cards) < 5 {
		panic(ErrTooFewCards)
	}
	return Evaluate(BestFiveCards(cards))
}

// BestFiveCards returns the five cards with the highest poker.Eval5 score.
func BestFiveCards(cards []deck.Card) []deck.Card {
	n := len(cards)
	if n <= 5 {
		return cards
	}

	pcs := make([]poker.Card, n)
	for i, c := range cards {
		pcs[i] = toPH(c)
	}

	var (
		bestScore int16
		found     bool
		best      [5]int
		choose    [5]int
		five      [5]poker.Card
	)
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := range 5 {
				five[i] = pcs[choose[i]]
			}
			if score := poker.Eval5(&five); !found || score > bestScore {
				found = true
				bestScore = score
				best = choose
			}
			return
		}
		for i := start; i <= n-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)

	out := make([]deck.Card, 5)
	for i, idx := range best {
		out[i] = cards[idx]
	}
	return out
}

// toPH converts a deck.Card to the library's card. The library counts the
// ace as rank 1.
func toPH(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}
