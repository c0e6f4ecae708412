package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lox/leanbot/internal/deck"
	"github.com/lox/leanbot/internal/evaluator"
)

// RankCmd ranks cards with the configured ranker
type RankCmd struct {
	Cards []string `arg:"" help:"Cards, e.g. 'Ah Kh 10h Jh Qh' or AhKhThJhQh"`
}

func (c *RankCmd) Run(g *Globals, out io.Writer) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	cards, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) < 5 {
		return fmt.Errorf("%w, got %d", evaluator.ErrTooFewCards, len(cards))
	}

	category := newRanker(cfg, logger).Rank(context.Background(), cards)
	_, err = fmt.Fprintf(out, "%s (%d)\n", category, int(category))
	return err
}
