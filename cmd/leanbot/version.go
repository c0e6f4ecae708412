package main

import (
	"fmt"
	"io"
)

// VersionCmd prints the build version and the version reported to hosts
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals, out io.Writer) error {
	cfg, _, err := g.load()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "leanbot %s (%s)\n", version, cfg.Bot.Version)
	return err
}
