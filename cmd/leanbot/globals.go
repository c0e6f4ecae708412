package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/leanbot/internal/config"
	"github.com/lox/leanbot/internal/evaluator"
	"github.com/lox/leanbot/internal/logging"
	"github.com/lox/leanbot/internal/rainman"
	"github.com/lox/leanbot/internal/strategy"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" help:"HCL config file" default:"leanbot.hcl"`
	EnvFile  string `name:"env-file" help:"Dotenv file loaded before the environment is read" default:".env"`
	LogLevel string `help:"Log level (debug, info, warn, error), overrides the config file"`
	NoColor  bool   `help:"Disable colored log output"`
}

// load resolves configuration from file, dotenv, environment and flags, in
// that order, and builds the logger it asks for.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Server.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:   cfg.Server.LogLevel,
		JSON:    cfg.Server.LogJSON,
		NoColor: g.NoColor,
	})
	return cfg, logger, nil
}

// newRanker returns the ranker named by the config.
func newRanker(cfg *config.Config, logger *log.Logger) evaluator.Ranker {
	switch cfg.Bot.Ranker {
	case config.RankerBestFive:
		return evaluator.BestFive{}
	case config.RankerRemote:
		return rainman.New(cfg.Rainman.URL,
			rainman.WithTimeout(cfg.RainmanTimeout()),
			rainman.WithLogger(logger.WithPrefix("rainman")),
		)
	default:
		return evaluator.Local{}
	}
}

func newPolicy(cfg *config.Config, logger *log.Logger) (*strategy.Policy, error) {
	opening, err := cfg.OpeningRange()
	if err != nil {
		return nil, err
	}
	return strategy.New(newRanker(cfg, logger), opening, logger.WithPrefix("policy"), cfg.StrategyOptions()), nil
}
