package strategy

import (
	"fmt"

	"github.com/lox/leanbot/internal/protocol"
)

// ErrInvalidGameState is returned when a snapshot cannot be decided on.
var ErrInvalidGameState = protocol.ErrInvalidGameState

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// StreetFromCommunity derives the street from the number of community cards.
// Only 0, 3, 4 and 5 are valid.
func StreetFromCommunity(n int) (Street, error) {
	switch n {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	}
	return 0, fmt.Errorf("%w: %d community cards", ErrInvalidGameState, n)
}
