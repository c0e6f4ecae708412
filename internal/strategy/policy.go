// Package strategy turns a game snapshot into a bet.
package strategy

import (
	"context"
	"slices"

	"github.com/lox/leanbot/internal/deck"
	"github.com/lox/leanbot/internal/evaluator"
	"github.com/lox/leanbot/internal/logging"
	"github.com/lox/leanbot/internal/protocol"
	"github.com/lox/leanbot/internal/ranges"
)

// Options tunes the betting policy.
type Options struct {
	// RaiseMultiple is the preflop raise in small blinds, on top of the call.
	RaiseMultiple int

	// AllInThreshold is the weakest category that moves all in postflop.
	// The category just below it calls; anything weaker folds.
	AllInThreshold evaluator.Category

	// FlatCallRaised makes in-range hands call instead of raise once the
	// pot has been raised past the big blind.
	FlatCallRaised bool
}

// DefaultOptions returns the stock policy: raise 6 small blinds preflop,
// shove two pair or better, call with a pair.
func DefaultOptions() Options {
	return Options{
		RaiseMultiple:  6,
		AllInThreshold: evaluator.TwoPair,
	}
}

// Policy decides how many chips to put in. It holds no per-hand state.
type Policy struct {
	ranker  evaluator.Ranker
	opening *ranges.Range
	logger  logging.Logger
	opts    Options
}

// New creates a policy. A nil ranker ranks locally, a nil range uses
// ranges.Default and a nil logger discards.
func New(ranker evaluator.Ranker, opening *ranges.Range, logger logging.Logger, opts Options) *Policy {
	if ranker == nil {
		ranker = evaluator.Local{}
	}
	if opening == nil {
		opening = ranges.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Policy{ranker: ranker, opening: opening, logger: logger, opts: opts}
}

// Decide returns the number of chips to bet; 0 folds or checks. A snapshot
// with an impossible street, a missing acting player or bad cards is an
// error wrapping ErrInvalidGameState or deck.ErrInvalidCard.
func (p *Policy) Decide(ctx context.Context, gs *protocol.GameState) (int, error) {
	street, err := StreetFromCommunity(len(gs.CommunityCards))
	if err != nil {
		p.logger.Error("could not get game round", "error", err)
		return 0, err
	}

	player, err := gs.InActionPlayer()
	if err != nil {
		return 0, err
	}
	hole, err := gs.HoleCards()
	if err != nil {
		return 0, err
	}
	call, err := gs.CallAmount()
	if err != nil {
		return 0, err
	}

	if street == Preflop {
		return p.preflop(gs, hole, call), nil
	}

	community, err := gs.Community()
	if err != nil {
		return 0, err
	}
	cards := slices.Concat(hole, community)
	category := p.ranker.Rank(ctx, cards)

	switch {
	case category >= p.opts.AllInThreshold:
		p.logger.Debug("made hand, all in", "street", street, "category", category, "stack", player.Stack)
		return player.Stack, nil
	case category == p.opts.AllInThreshold-1:
		p.logger.Debug("marginal hand, call", "street", street, "category", category, "call", call)
		return call, nil
	default:
		p.logger.Debug("nothing, fold", "street", street, "category", category)
		return 0, nil
	}
}

func (p *Policy) preflop(gs *protocol.GameState, hole []deck.Card, call int) int {
	key := ranges.Key(hole[0], hole[1])
	if !p.opening.Contains(hole[0], hole[1]) {
		p.logger.Debug("preflop, out of range, fold", "hand", key)
		return 0
	}

	if p.opts.FlatCallRaised && gs.CurrentBuyIn > 2*gs.SmallBlind {
		p.logger.Debug("preflop, in range, calling raise", "hand", key, "call", call)
		return call
	}

	bet := call + p.opts.RaiseMultiple*gs.SmallBlind
	p.logger.Debug("preflop, in range, raise", "hand", key, "bet", bet)
	return bet
}

// Showdown is called when a hand ends. The policy keeps no history, so it
// only logs what was shown.
func (p *Policy) Showdown(_ context.Context, gs *protocol.GameState) {
	shown := 0
	for _, pl := range gs.Players {
		if len(pl.HoleCards) > 0 {
			shown++
		}
	}
	p.logger.Info("showdown", "game", gs.GameID, "round", gs.Round, "pot", gs.Pot, "shown", shown)
}
