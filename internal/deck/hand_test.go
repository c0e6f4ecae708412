package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShorthand(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"10h Kh", "KTs"},
		{"Kh Th", "KTs"},
		{"2h 2d", "22o"},
		{"As Kd", "AKo"},
		{"Kd As", "AKo"},
		{"7c 2d", "72o"},
		{"9s 8s", "98s"},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h, err := NewHand(MustParseCards(tt.cards)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Shorthand())
		})
	}
}

func TestShorthandIgnoresSuitIdentity(t *testing.T) {
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	for _, a := range suits {
		for _, b := range suits {
			h, err := NewHand(NewCard(a, Ace), NewCard(b, Queen))
			require.NoError(t, err)

			want := "AQo"
			if a == b {
				want = "AQs"
			}
			assert.Equal(t, want, h.Shorthand(), "%s %s", a, b)
		}
	}
}

func TestNewHandCopiesCards(t *testing.T) {
	cards := MustParseCards("AsKs")
	h, err := NewHand(cards...)
	require.NoError(t, err)

	cards[0] = NewCard(Clubs, Two)
	assert.Equal(t, NewCard(Spades, Ace), h.Cards()[0])

	out := h.Cards()
	out[1] = NewCard(Clubs, Two)
	assert.Equal(t, NewCard(Spades, King), h.Cards()[1])
}

func TestNewHandTooSmall(t *testing.T) {
	_, err := NewHand(NewCard(Spades, Ace))
	assert.ErrorIs(t, err, ErrHandTooSmall)
}

func TestStrengthInputs(t *testing.T) {
	h, err := NewHand(MustParseCards("Ah Ad 9c 9s Th 2h")...)
	require.NoError(t, err)

	assert.Equal(t, map[byte]int{'A': 2, '9': 2, 'T': 1, '2': 1}, h.RankCounts())
	assert.Equal(t, map[Suit]int{Hearts: 3, Diamonds: 1, Clubs: 1, Spades: 1}, h.SuitCounts())
	assert.Equal(t, []int{0, 7, 8, 12}, h.UniqueRankIndices())
	assert.False(t, h.Suited())
	assert.Equal(t, 6, h.Len())
}
