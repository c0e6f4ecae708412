package deck

import (
	"errors"
	"slices"
	"strings"
)

// ErrHandTooSmall is returned when a hand is built from fewer than two cards.
var ErrHandTooSmall = errors.New("hand needs at least two cards")

// Hand is an immutable, ordered collection of cards.
type Hand struct {
	cards []Card
}

// NewHand copies cards into a new hand.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) < 2 {
		return Hand{}, ErrHandTooSmall
	}
	return Hand{cards: slices.Clone(cards)}, nil
}

// Cards returns a copy of the hand's cards in construction order.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return len(h.cards)
}

// Suited reports whether every card shares one suit.
func (h Hand) Suited() bool {
	for _, c := range h.cards {
		if c.Suit != h.cards[0].Suit {
			return false
		}
	}
	return len(h.cards) > 0
}

// Shorthand renders the hand as a starting-hand key such as "AKs" or "72o".
// Cards are ordered by rank, highest first, followed by 's' when all cards
// share a suit and 'o' otherwise. Pairs always come out as e.g. "22o".
func (h Hand) Shorthand() string {
	sorted := slices.Clone(h.cards)
	slices.SortStableFunc(sorted, func(a, b Card) int {
		return b.RankIndex() - a.RankIndex()
	})

	var sb strings.Builder
	for _, c := range sorted {
		sb.WriteByte(c.CanonicalRank())
	}
	if h.Suited() {
		sb.WriteByte('s')
	} else {
		sb.WriteByte('o')
	}
	return sb.String()
}

// String joins the cards, e.g. "A♠ K♥".
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// RankCounts returns how many times each canonical rank appears.
func (h Hand) RankCounts() map[byte]int {
	counts := make(map[byte]int, len(h.cards))
	for _, c := range h.cards {
		counts[c.CanonicalRank()]++
	}
	return counts
}

// SuitCounts returns how many cards of each suit the hand holds.
func (h Hand) SuitCounts() map[Suit]int {
	counts := make(map[Suit]int, 4)
	for _, c := range h.cards {
		counts[c.Suit]++
	}
	return counts
}

// UniqueRankIndices returns the distinct rank indices in ascending order.
func (h Hand) UniqueRankIndices() []int {
	idx := make([]int, 0, len(h.cards))
	for _, c := range h.cards {
		idx = append(idx, c.RankIndex())
	}
	slices.Sort(idx)
	return slices.Compact(idx)
}
