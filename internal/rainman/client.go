// Package rainman delegates hand ranking to the lean poker ranking service.
//
// The service answers GET <url>?cards=<json> with {"rank": n}, where n runs
// from 0 (high card) to 8 (straight flush). Any failure is logged and ranked
// as evaluator.Unranked so the betting loop keeps going.
package rainman

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/leanbot/internal/deck"
	"github.com/lox/leanbot/internal/evaluator"
	"github.com/lox/leanbot/internal/logging"
	"github.com/lox/leanbot/internal/protocol"
)

const (
	// DefaultURL is the public lean poker ranking endpoint.
	DefaultURL = "https://rainman.leanpoker.org/rank"

	// DefaultTimeout bounds a single ranking request.
	DefaultTimeout = 10 * time.Second

	maxRank = 8
)

// Client ranks cards remotely. It implements evaluator.Ranker.
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
	clock   quartz.Clock
	logger  logging.Logger
}

var _ evaluator.Ranker = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithClock sets the clock that arms the request timeout.
func WithClock(clock quartz.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger for degraded rankings.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the ranking service at rankURL.
func New(rankURL string, opts ...Option) *Client {
	c := &Client{
		url:     rankURL,
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
		clock:   quartz.NewReal(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rank asks the service for the category of cards. It never fails: errors
// are logged and reported as evaluator.Unranked.
func (c *Client) Rank(ctx context.Context, cards []deck.Card) evaluator.Category {
	rank, err := c.fetch(ctx, cards)
	if err != nil {
		c.logger.Error("could not retrieve ranking", "error", err, "cards", len(cards))
		return evaluator.Unranked
	}
	c.logger.Debug("ranked hand remotely", "rank", rank)
	return evaluator.Category(rank + 1)
}

func (c *Client) fetch(ctx context.Context, cards []deck.Card) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := c.clock.AfterFunc(c.timeout, cancel, "rainman", "timeout")
	defer timer.Stop()

	req, err := c.newRequest(ctx, cards)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("reading response: %w", err)
	}
	return parseRank(body)
}

func (c *Client) newRequest(ctx context.Context, cards []deck.Card) (*http.Request, error) {
	wire := make([]protocol.Card, len(cards))
	for i, card := range cards {
		wire[i] = protocol.CardFromDeck(card)
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encoding cards: %w", err)
	}

	u, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("invalid ranking url: %w", err)
	}
	q := u.Query()
	q.Set("cards", string(payload))
	u.RawQuery = q.Encode()

	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}

// parseRank reads the "rank" field, accepting a number or a numeric string.
func parseRank(body []byte) (int, error) {
	var resp struct {
		Rank json.RawMessage `json:"rank"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("could not parse ranking: %w", err)
	}
	if len(resp.Rank) == 0 || string(resp.Rank) == "null" {
		return 0, fmt.Errorf("ranking response has no rank")
	}

	var rank int
	if err := json.Unmarshal(resp.Rank, &rank); err != nil {
		var s string
		if json.Unmarshal(resp.Rank, &s) != nil {
			return 0, fmt.Errorf("could not parse rank %s", resp.Rank)
		}
		if rank, err = strconv.Atoi(s); err != nil {
			return 0, fmt.Errorf("could not parse rank %q: %w", s, err)
		}
	}
	if rank < 0 || rank > maxRank {
		return 0, fmt.Errorf("rank %d out of range", rank)
	}
	return rank, nil
}
