package protocol

import "encoding/json"

// Actions the game host posts to a player.
const (
	ActionBetRequest = "bet_request"
	ActionShowdown   = "showdown"
	ActionVersion    = "version"
	ActionCheck      = "check"
)

// Request is a websocket frame from the host: an action plus, for
// bet_request and showdown, the game state.
type Request struct {
	Action    string          `json:"action"`
	GameState json.RawMessage `json:"game_state,omitempty"`
}

// Response answers a Request. Exactly one field is set.
type Response struct {
	Bet     *int   `json:"bet,omitempty"`
	Version string `json:"version,omitempty"`
	OK      bool   `json:"ok,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BetResponse wraps a bet amount.
func BetResponse(bet int) Response {
	return Response{Bet: &bet}
}

// ErrorResponse wraps an error message.
func ErrorResponse(err error) Response {
	return Response{Error: err.Error()}
}
