// Package protocol defines the lean poker game-state snapshot and the
// messages exchanged with the game host.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lox/leanbot/internal/deck"
)

// ErrInvalidGameState marks a snapshot that breaks the protocol contract.
var ErrInvalidGameState = errors.New("invalid game state")

// Card is a card as the host sends it, e.g. {"rank": "10", "suit": "hearts"}.
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Parse converts the wire card into a deck.Card.
func (c Card) Parse() (deck.Card, error) {
	return deck.NewCardFromTokens(c.Rank, c.Suit)
}

// CardFromDeck converts a deck.Card to its wire form.
func CardFromDeck(c deck.Card) Card {
	return Card{Rank: c.Rank.Token(), Suit: c.Suit.Name()}
}

// Player is one seat in the snapshot. HoleCards is only present for the
// acting player and for hands revealed at showdown.
type Player struct {
	Name      string `json:"name"`
	Stack     int    `json:"stack"`
	Status    string `json:"status"` // active, folded or out
	Bet       int    `json:"bet"`
	HoleCards []Card `json:"hole_cards,omitempty"`
	Version   string `json:"version"`
	ID        int    `json:"id"`
}

// GameState is the snapshot sent with every bet request.
type GameState struct {
	TournamentID   string   `json:"tournament_id,omitempty"`
	GameID         string   `json:"game_id,omitempty"`
	Players        []Player `json:"players"`
	Round          int      `json:"round"`
	BetIndex       int      `json:"bet_index"`
	SmallBlind     int      `json:"small_blind"`
	Orbits         int      `json:"orbits"`
	Dealer         int      `json:"dealer"`
	CommunityCards []Card   `json:"community_cards"`
	CurrentBuyIn   int      `json:"current_buy_in"`
	Pot            int      `json:"pot"`
	InAction       int      `json:"in_action"`
	MinimumRaise   int      `json:"minimum_raise,omitempty"`
}

// ParseGameState decodes a JSON snapshot.
func ParseGameState(data []byte) (*GameState, error) {
	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGameState, err)
	}
	return &gs, nil
}

// InActionPlayer returns the player whose turn it is.
func (gs *GameState) InActionPlayer() (*Player, error) {
	if gs.InAction < 0 || gs.InAction >= len(gs.Players) {
		return nil, fmt.Errorf("%w: in_action %d with %d players", ErrInvalidGameState, gs.InAction, len(gs.Players))
	}
	return &gs.Players[gs.InAction], nil
}

// HoleCards returns the acting player's two hole cards.
func (gs *GameState) HoleCards() ([]deck.Card, error) {
	p, err := gs.InActionPlayer()
	if err != nil {
		return nil, err
	}
	if len(p.HoleCards) != 2 {
		return nil, fmt.Errorf("%w: player %q holds %d hole cards", ErrInvalidGameState, p.Name, len(p.HoleCards))
	}
	return parseCards(p.HoleCards)
}

// Community returns the community cards.
func (gs *GameState) Community() ([]deck.Card, error) {
	return parseCards(gs.CommunityCards)
}

// CallAmount is what the acting player must add to match the current buy-in.
// It is never negative.
func (gs *GameState) CallAmount() (int, error) {
	p, err := gs.InActionPlayer()
	if err != nil {
		return 0, err
	}
	return max(0, gs.CurrentBuyIn-p.Bet), nil
}

func parseCards(in []Card) ([]deck.Card, error) {
	out := make([]deck.Card, 0, len(in))
	for _, c := range in {
		card, err := c.Parse()
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, nil
}
