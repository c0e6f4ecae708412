package deck

import rand "math/rand/v2"

// Deck is a 52-card deck dealt from the top. It is used to generate hands
// for tests and offline tooling; the live bot only ever sees host cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a full deck shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52), rng: rng}
	d.Reset()
	return d
}

// Reset restores all 52 cards and shuffles them.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes n cards from the top. It returns fewer when the deck runs out.
func (d *Deck) Deal(n int) []Card {
	n = min(n, len(d.cards))
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
