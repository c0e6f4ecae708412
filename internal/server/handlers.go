package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lox/leanbot/internal/protocol"
)

// ErrUnknownAction is returned for an action outside the player protocol.
var ErrUnknownAction = errors.New("unknown action")

// dispatch runs one protocol action. Errors are client errors: a bad game
// state or an unknown action.
func (s *Server) dispatch(ctx context.Context, action string, gameState []byte) (protocol.Response, error) {
	switch action {
	case protocol.ActionBetRequest:
		gs, err := protocol.ParseGameState(gameState)
		if err != nil {
			return protocol.Response{}, err
		}
		bet, err := s.decider.Decide(ctx, gs)
		if err != nil {
			return protocol.Response{}, err
		}
		return protocol.BetResponse(bet), nil

	case protocol.ActionShowdown:
		gs, err := protocol.ParseGameState(gameState)
		if err != nil {
			return protocol.Response{}, err
		}
		s.decider.Showdown(ctx, gs)
		return protocol.Response{OK: true}, nil

	case protocol.ActionVersion:
		return protocol.Response{Version: s.version}, nil

	case protocol.ActionCheck:
		return protocol.Response{OK: true}, nil
	}
	return protocol.Response{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// handleAction serves the form-encoded protocol on POST /.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action := r.PostForm.Get("action")
	resp, err := s.dispatch(r.Context(), action, []byte(r.PostForm.Get("game_state")))
	if err != nil {
		s.logger.Warn("Rejected request", "action", action, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	switch {
	case resp.Bet != nil:
		_, _ = fmt.Fprint(w, strconv.Itoa(*resp.Bet))
	case resp.Version != "":
		_, _ = fmt.Fprint(w, resp.Version)
	default:
		_, _ = fmt.Fprint(w, "OK")
	}
}

// handleVersion answers GET /, which hosts use as a liveness probe.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, s.version)
}
