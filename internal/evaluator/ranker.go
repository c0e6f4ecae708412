package evaluator

import (
	"context"

	"github.com/lox/leanbot/internal/deck"
)

// Ranker assigns a strength category to a combined hole + community card set.
type Ranker interface {
	Rank(ctx context.Context, cards []deck.Card) Category
}

// RankerFunc adapts a function to the Ranker interface.
type RankerFunc func(ctx context.Context, cards []deck.Card) Category

// Rank calls f.
func (f RankerFunc) Rank(ctx context.Context, cards []deck.Card) Category {
	return f(ctx, cards)
}

// Local ranks cards in-process with Evaluate.
type Local struct{}

// Rank implements Ranker.
func (Local) Rank(_ context.Context, cards []deck.Card) Category {
	return Evaluate(cards)
}
