package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lox/leanbot/internal/protocol"
)

// DecideCmd decides a single bet offline
type DecideCmd struct {
	File string `short:"f" help:"Read the game state JSON from a file instead of stdin"`
}

func (c *DecideCmd) Run(g *Globals, in io.Reader, out io.Writer) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	policy, err := newPolicy(cfg, logger)
	if err != nil {
		return err
	}

	data, err := c.read(in)
	if err != nil {
		return err
	}
	gs, err := protocol.ParseGameState(data)
	if err != nil {
		return err
	}

	bet, err := policy.Decide(context.Background(), gs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, bet)
	return err
}

func (c *DecideCmd) read(in io.Reader) ([]byte, error) {
	if c.File == "" || c.File == "-" {
		return io.ReadAll(in)
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return nil, fmt.Errorf("reading game state: %w", err)
	}
	return data, nil
}
