// Package config loads leanbot settings from an HCL file, a .env file and
// the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/lox/leanbot/internal/evaluator"
	"github.com/lox/leanbot/internal/logging"
	"github.com/lox/leanbot/internal/rainman"
	"github.com/lox/leanbot/internal/ranges"
	"github.com/lox/leanbot/internal/strategy"
)

// Ranker names accepted by the ranker setting.
const (
	RankerLocal    = "local"
	RankerBestFive = "best-five"
	RankerRemote   = "remote"
)

// Environment variables that override the file.
const (
	EnvAddress    = "LEANBOT_ADDRESS"
	EnvPort       = "LEANBOT_PORT"
	EnvHostPort   = "PORT"
	EnvLogLevel   = "LEANBOT_LOG_LEVEL"
	EnvRanker     = "LEANBOT_RANKER"
	EnvRainmanURL = "LEANBOT_RAINMAN_URL"
)

// Config is the complete bot configuration
type Config struct {
	Server  ServerSettings  `hcl:"server,block"`
	Bot     BotSettings     `hcl:"bot,block"`
	Rainman RainmanSettings `hcl:"rainman,block"`
}

// ServerSettings contains HTTP listener and logging configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogJSON  bool   `hcl:"log_json,optional"`
}

// BotSettings configures the betting policy
type BotSettings struct {
	Name           string   `hcl:"name,optional"`
	Version        string   `hcl:"version,optional"`
	Ranker         string   `hcl:"ranker,optional"`
	RaiseMultiple  int      `hcl:"raise_multiple,optional"`
	AllInThreshold int      `hcl:"all_in_threshold,optional"`
	FlatCallRaised bool     `hcl:"flat_call_raised,optional"`
	OpeningRange   []string `hcl:"opening_range,optional"`
}

// RainmanSettings configures the remote ranking service
type RainmanSettings struct {
	URL            string `hcl:"url,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
}

// file mirrors Config with every block optional.
type file struct {
	Server  *ServerSettings  `hcl:"server,block"`
	Bot     *BotSettings     `hcl:"bot,block"`
	Rainman *RainmanSettings `hcl:"rainman,block"`
}

// Default returns the default configuration
func Default() *Config {
	opts := strategy.DefaultOptions()
	return &Config{
		Server: ServerSettings{
			Address:  "0.0.0.0",
			Port:     9090,
			LogLevel: "info",
		},
		Bot: BotSettings{
			Name:           "leanbot",
			Version:        "leanbot go",
			Ranker:         RankerLocal,
			RaiseMultiple:  opts.RaiseMultiple,
			AllInThreshold: int(opts.AllInThreshold),
		},
		Rainman: RainmanSettings{
			URL:            rainman.DefaultURL,
			TimeoutSeconds: int(rainman.DefaultTimeout / time.Second),
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var parsed file
	diags = gohcl.DecodeBody(f.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.merge(&parsed)
	return cfg, nil
}

// merge copies every value set in the file over the defaults.
func (c *Config) merge(f *file) {
	if s := f.Server; s != nil {
		setString(&c.Server.Address, s.Address)
		setInt(&c.Server.Port, s.Port)
		setString(&c.Server.LogLevel, s.LogLevel)
		c.Server.LogJSON = s.LogJSON
	}
	if b := f.Bot; b != nil {
		setString(&c.Bot.Name, b.Name)
		setString(&c.Bot.Version, b.Version)
		setString(&c.Bot.Ranker, b.Ranker)
		setInt(&c.Bot.RaiseMultiple, b.RaiseMultiple)
		setInt(&c.Bot.AllInThreshold, b.AllInThreshold)
		c.Bot.FlatCallRaised = b.FlatCallRaised
		if len(b.OpeningRange) > 0 {
			c.Bot.OpeningRange = b.OpeningRange
		}
	}
	if r := f.Rainman; r != nil {
		setString(&c.Rainman.URL, r.URL)
		setInt(&c.Rainman.TimeoutSeconds, r.TimeoutSeconds)
	}
}

// LoadDotEnv loads .env style files into the process environment. Missing
// files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables looked up with
// lookup (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddress); ok && v != "" {
		c.Server.Address = v
	}
	for _, key := range []string{EnvHostPort, EnvPort} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", key, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Server.LogLevel = v
	}
	if v, ok := lookup(EnvRanker); ok && v != "" {
		c.Bot.Ranker = v
	}
	if v, ok := lookup(EnvRainmanURL); ok && v != "" {
		c.Rainman.URL = v
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if !logging.ValidLevel(c.Server.LogLevel) {
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	switch c.Bot.Ranker {
	case RankerLocal, RankerBestFive:
	case RankerRemote:
		if c.Rainman.URL == "" {
			return fmt.Errorf("ranker %s needs a rainman url", RankerRemote)
		}
	default:
		return fmt.Errorf("invalid ranker: %s", c.Bot.Ranker)
	}

	if c.Bot.RaiseMultiple <= 0 {
		return fmt.Errorf("raise multiple must be positive")
	}
	if c.Bot.AllInThreshold < int(evaluator.Pair) || c.Bot.AllInThreshold > int(evaluator.StraightFlush) {
		return fmt.Errorf("all-in threshold must be between %d and %d", evaluator.Pair, evaluator.StraightFlush)
	}
	if c.Rainman.TimeoutSeconds <= 0 {
		return fmt.Errorf("rainman timeout must be positive")
	}
	if _, err := c.OpeningRange(); err != nil {
		return err
	}
	return nil
}

// ListenAddress returns the host:port the server binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// StrategyOptions converts the bot settings to policy options.
func (c *Config) StrategyOptions() strategy.Options {
	return strategy.Options{
		RaiseMultiple:  c.Bot.RaiseMultiple,
		AllInThreshold: evaluator.Category(c.Bot.AllInThreshold),
		FlatCallRaised: c.Bot.FlatCallRaised,
	}
}

// OpeningRange returns the configured range, or the default table when none is set.
func (c *Config) OpeningRange() (*ranges.Range, error) {
	if len(c.Bot.OpeningRange) == 0 {
		return ranges.Default(), nil
	}
	return ranges.New(c.Bot.OpeningRange...)
}

// RainmanTimeout returns the remote ranking timeout.
func (c *Config) RainmanTimeout() time.Duration {
	return time.Duration(c.Rainman.TimeoutSeconds) * time.Second
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
