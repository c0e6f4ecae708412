package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lox/leanbot/internal/protocol"
)

// handleWebSocket upgrades the request and answers one Response per
// Request frame until the peer goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("conn", id)
	s.track(id, conn)
	defer func() {
		_ = conn.Close()
		s.untrack(id)
	}()

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", "error", err)
			}
			return
		}

		var req protocol.Request
		var resp protocol.Response
		if err := json.Unmarshal(data, &req); err != nil {
			resp = protocol.ErrorResponse(fmt.Errorf("malformed frame: %w", err))
		} else if resp, err = s.dispatch(ctx, req.Action, req.GameState); err != nil {
			logger.Warn("Rejected frame", "action", req.Action, "error", err)
			resp = protocol.ErrorResponse(err)
		}

		if err := conn.WriteJSON(resp); err != nil {
			logger.Error("Failed to write response", "error", err)
			return
		}
	}
}
