package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/leanbot/internal/deck"
	"github.com/lox/leanbot/internal/ranges"
)

// RangeCmd checks hole cards against the opening range
type RangeCmd struct {
	Cards []string `arg:"" optional:"" help:"Two hole cards, e.g. 'Ah Kh'"`
	List  bool     `short:"l" help:"List every hand in the opening range"`
}

func (c *RangeCmd) Run(g *Globals, out io.Writer) error {
	cfg, _, err := g.load()
	if err != nil {
		return err
	}
	opening, err := cfg.OpeningRange()
	if err != nil {
		return err
	}

	if c.List {
		for _, key := range opening.Keys() {
			if _, err := fmt.Fprintln(out, key); err != nil {
				return err
			}
		}
		return nil
	}

	cards, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) != 2 {
		return fmt.Errorf("need exactly two hole cards, got %d", len(cards))
	}

	verdict := "out of range"
	if opening.Contains(cards[0], cards[1]) {
		verdict = "in range"
	}
	_, err = fmt.Fprintf(out, "%s %s\n", ranges.Key(cards[0], cards[1]), verdict)
	return err
}
