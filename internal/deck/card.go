package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a rank or suit token is not recognised.
var ErrInvalidCard = errors.New("invalid card")

// rankOrder is the canonical rank sequence; a rank's index in it is its strength.
const rankOrder = "23456789TJQKA"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the wire name of the suit ("hearts", "spades", ...)
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return ""
	}
}

// ParseSuit parses a wire suit name such as "hearts".
func ParseSuit(token string) (Suit, error) {
	switch strings.ToLower(token) {
	case "spades":
		return Spades, nil
	case "hearts":
		return Hearts, nil
	case "diamonds":
		return Diamonds, nil
	case "clubs":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, token)
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Canonical returns the single character used for ordering and lookup keys.
// Ten is 'T'; every other rank is its own character.
func (r Rank) Canonical() byte {
	if r < Two || r > Ace {
		return '?'
	}
	return rankOrder[r-Two]
}

// Index returns the rank's position in "23456789TJQKA" (0..12).
func (r Rank) Index() int {
	return int(r - Two)
}

// String returns the string representation of a rank
func (r Rank) String() string {
	return string(r.Canonical())
}

// Token returns the wire form of the rank, which spells ten as "10".
func (r Rank) Token() string {
	if r == Ten {
		return "10"
	}
	return r.String()
}

// ParseRank parses a wire rank token: "2".."9", "10", "J", "Q", "K" or "A".
// "T" is accepted as an alias for "10".
func ParseRank(token string) (Rank, error) {
	if token == "10" {
		return Ten, nil
	}
	if len(token) == 1 {
		if i := strings.IndexByte(rankOrder, upper(token[0])); i >= 0 {
			return Two + Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, token)
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// NewCardFromTokens builds a card from its wire tokens, e.g. ("10", "hearts").
func NewCardFromTokens(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: s, Rank: r}, nil
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// CanonicalRank returns the card's rank character ('T' for ten).
func (c Card) CanonicalRank() byte {
	return c.Rank.Canonical()
}

// RankIndex returns the card's position in the rank order (0 for a two, 12 for an ace).
func (c Card) RankIndex() int {
	return c.Rank.Index()
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
