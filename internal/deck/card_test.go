package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalRank(t *testing.T) {
	tokens := []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	for i, token := range tokens {
		t.Run(token, func(t *testing.T) {
			c, err := NewCardFromTokens(token, "hearts")
			require.NoError(t, err)

			want := token
			if token == "10" {
				want = "T"
			}
			assert.Equal(t, want, string(c.CanonicalRank()))
			assert.Equal(t, i, c.RankIndex())
			assert.Equal(t, token, c.Rank.Token())
		})
	}
}

func TestNewCardFromTokensInvalid(t *testing.T) {
	tests := []struct {
		name string
		rank string
		suit string
	}{
		{"rank one", "1", "hearts"},
		{"rank eleven", "11", "hearts"},
		{"empty rank", "", "spades"},
		{"short suit", "A", "h"},
		{"unknown suit", "A", "stars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCardFromTokens(tt.rank, tt.suit)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCard))
		})
	}
}

func TestSuitNames(t *testing.T) {
	for _, s := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		parsed, err := ParseSuit(s.Name())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestCardEquality(t *testing.T) {
	a, err := NewCardFromTokens("10", "clubs")
	require.NoError(t, err)
	b, err := NewCardFromTokens("T", "clubs")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "T♣", a.String())
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "spaced with ten",
			input: "Ah 10d 2c",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "dangling rank", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCard))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Len(t, MustParseCards("AsKs"), 2)
	assert.Panics(t, func() { MustParseCards("invalid") })
}
