package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses compact card notation into a slice of cards.
// Format: "AsKsQsJsTs" or "As Ks 10h", each card being [Rank][Suit].
// Ranks: A, K, Q, J, T (or 10), 9..2. Suits: s, h, d, c. Case insensitive.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")

	cards := []Card{}
	for i := 0; i < len(s); {
		rankLen := 1
		if s[i] == '1' && i+1 < len(s) && s[i+1] == '0' {
			rankLen = 2
		}
		if i+rankLen >= len(s) {
			return nil, fmt.Errorf("%w: incomplete card at position %d", ErrInvalidCard, i)
		}

		rank, err := ParseRank(s[i : i+rankLen])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}

		suit, err := parseSuitChar(s[i+rankLen])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+rankLen, err)
		}

		cards = append(cards, Card{Rank: rank, Suit: suit})
		i += rankLen + 1
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseSuitChar(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, c)
}
