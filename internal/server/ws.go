package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/engine"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type      string `json:"type"`       // "message" or "intro"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type        string         `json:"type"` // "response" or "error"
	SessionID   string         `json:"session_id"`
	Content     string         `json:"content"`
	ContextHint string         `json:"context_hint,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Action      *engine.Action `json:"action,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendWSError(conn, "", "invalid message format")
			continue
		}
		if req.SessionID == "" {
			req.SessionID = uuid.New().String()
		}

		switch req.Type {
		case "message":
			s.handleWSMessage(conn, req)
		case "intro":
			s.sendWSResponse(conn, wsResponse{
				Type:        "response",
				SessionID:   req.SessionID,
				Content:     s.engine.Intro(),
				Suggestions: s.engine.InitialSuggestions(),
			})
		default:
			s.sendWSError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleWSMessage(conn *websocket.Conn, req wsRequest) {
	if req.Content == "" {
		s.sendWSError(conn, req.SessionID, "content is required")
		return
	}

	result := s.engine.Process(req.Content)
	s.logTurn(messageRequest{SessionID: req.SessionID, Message: req.Content}, result)

	resp := wsResponse{
		Type:        "response",
		SessionID:   req.SessionID,
		Content:     result.Response,
		ContextHint: result.ContextHint,
		Suggestions: s.engine.Suggest(result.ContextHint),
	}
	if action, ok := engine.ParseAction(result.Response); ok {
		resp.Action = &action
	}
	s.sendWSResponse(conn, resp)
}

func (s *Server) sendWSResponse(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendWSError(conn *websocket.Conn, sessionID, message string) {
	resp := wsResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write error: %v", err)
	}
}
