package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lox/leanbot/internal/config"
	"github.com/lox/leanbot/internal/evaluator"
	"github.com/lox/leanbot/internal/logging"
	"github.com/lox/leanbot/internal/protocol"
	"github.com/lox/leanbot/internal/rainman"
	"github.com/lox/leanbot/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleState = `{
  "tournament_id": "550d1d68cd7bd10003000003",
  "game_id": "550da1cb2d909006e90004b1",
  "round": 0,
  "bet_index": 0,
  "small_blind": 10,
  "current_buy_in": 40,
  "pot": 50,
  "orbits": 0,
  "in_action": 1,
  "dealer": 0,
  "players": [
    {"id": 0, "name": "villain", "status": "active", "version": "v1", "stack": 900, "bet": 40},
    {"id": 1, "name": "leanbot", "status": "active", "version": "leanbot go", "stack": 1000, "bet": 10,
     "hole_cards": [{"rank": "A", "suit": "hearts"}, {"rank": "K", "suit": "hearts"}]}
  ],
  "community_cards": []
}`

type noopDecider struct{}

func (noopDecider) Decide(context.Context, *protocol.GameState) (int, error) { return 0, nil }

func (noopDecider) Showdown(context.Context, *protocol.GameState) {}

// testGlobals points every source of configuration at an empty temp dir.
func testGlobals(t *testing.T) *Globals {
	t.Helper()
	for _, key := range []string{config.EnvAddress, config.EnvPort, config.EnvHostPort, config.EnvLogLevel, config.EnvRanker, config.EnvRainmanURL} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	return &Globals{
		Config:   filepath.Join(dir, "leanbot.hcl"),
		EnvFile:  filepath.Join(dir, ".env"),
		LogLevel: "error",
		NoColor:  true,
	}
}

func writeConfig(t *testing.T, g *Globals, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(g.Config, []byte(content), 0o644))
}

func TestNewRanker(t *testing.T) {
	logger := logging.Discard()
	cfg := config.Default()

	assert.IsType(t, evaluator.Local{}, newRanker(cfg, logger))

	cfg.Bot.Ranker = config.RankerBestFive
	assert.IsType(t, evaluator.BestFive{}, newRanker(cfg, logger))

	cfg.Bot.Ranker = config.RankerRemote
	assert.IsType(t, &rainman.Client{}, newRanker(cfg, logger))
}

func TestDecideFromStdin(t *testing.T) {
	g := testGlobals(t)
	var out bytes.Buffer

	err := (&DecideCmd{}).Run(g, strings.NewReader(sampleState), &out)
	require.NoError(t, err)
	assert.Equal(t, "90\n", out.String())
}

func TestDecideFromFile(t *testing.T) {
	g := testGlobals(t)
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleState), 0o644))

	var out bytes.Buffer
	err := (&DecideCmd{File: path}).Run(g, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "90\n", out.String())
}

func TestDecideUsesConfig(t *testing.T) {
	g := testGlobals(t)
	writeConfig(t, g, `
bot {
  raise_multiple = 2
}
`)

	var out bytes.Buffer
	require.NoError(t, (&DecideCmd{}).Run(g, strings.NewReader(sampleState), &out))
	assert.Equal(t, "50\n", out.String())
}

func TestDecideErrors(t *testing.T) {
	g := testGlobals(t)

	err := (&DecideCmd{}).Run(g, strings.NewReader("{"), io.Discard)
	assert.ErrorContains(t, err, "invalid game state")

	err = (&DecideCmd{File: filepath.Join(t.TempDir(), "missing.json")}).Run(g, nil, io.Discard)
	assert.ErrorContains(t, err, "reading game state")

	writeConfig(t, g, `bot { ranker = "psychic" }`)
	err = (&DecideCmd{}).Run(g, strings.NewReader(sampleState), io.Discard)
	assert.ErrorContains(t, err, "invalid ranker")
}

func TestRankCmd(t *testing.T) {
	tests := []struct {
		ranker string
		cards  []string
		want   string
	}{
		{config.RankerLocal, []string{"Ah", "Kh", "Qh", "Jh", "10h"}, "Straight Flush (9)\n"},
		{config.RankerLocal, []string{"AhAdKhKd2c"}, "Two Pair (3)\n"},
		{config.RankerLocal, []string{"Ah Kh Qh Jh Th 2c 3d"}, "Flush (6)\n"},
		{config.RankerBestFive, []string{"Ah Kh Qh Jh Th 2c 3d"}, "Straight Flush (9)\n"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.ranker, strings.Join(tt.cards, " ")), func(t *testing.T) {
			g := testGlobals(t)
			writeConfig(t, g, fmt.Sprintf("bot {\n  ranker = %q\n}\n", tt.ranker))

			var out bytes.Buffer
			require.NoError(t, (&RankCmd{Cards: tt.cards}).Run(g, &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRankCmdErrors(t *testing.T) {
	g := testGlobals(t)

	err := (&RankCmd{Cards: []string{"Ah Kh Qh"}}).Run(g, io.Discard)
	assert.ErrorIs(t, err, evaluator.ErrTooFewCards)

	err = (&RankCmd{Cards: []string{"Ah Kh Qh Jh 1h"}}).Run(g, io.Discard)
	assert.Error(t, err)
}

func TestRangeCmd(t *testing.T) {
	g := testGlobals(t)

	var out bytes.Buffer
	require.NoError(t, (&RangeCmd{Cards: []string{"Kh", "Ah"}}).Run(g, &out))
	assert.Equal(t, "AKs in range\n", out.String())

	out.Reset()
	require.NoError(t, (&RangeCmd{Cards: []string{"7s2d"}}).Run(g, &out))
	assert.Equal(t, "72o out of range\n", out.String())

	err := (&RangeCmd{Cards: []string{"7s"}}).Run(g, io.Discard)
	assert.ErrorContains(t, err, "two hole cards")
}

func TestRangeCmdList(t *testing.T) {
	g := testGlobals(t)
	writeConfig(t, g, `
bot {
  opening_range = ["KQo", "AAo", "AKs"]
}
`)

	var out bytes.Buffer
	require.NoError(t, (&RangeCmd{List: true}).Run(g, &out))
	assert.Equal(t, "AAo\nAKs\nKQo\n", out.String())
}

func TestVersionCmd(t *testing.T) {
	g := testGlobals(t)

	var out bytes.Buffer
	require.NoError(t, (&VersionCmd{}).Run(g, &out))
	assert.Equal(t, "leanbot dev (leanbot go)\n", out.String())
}

func TestServeLifecycle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := server.New(&noopDecider{}, "leanbot test", logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, srv, logging.Discard()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
