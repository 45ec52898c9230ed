package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/chatlog"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/engine"
)

// messageRequest is the body the widget posts for one chat turn.
type messageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// messageResponse is one answered chat turn.
type messageResponse struct {
	SessionID   string         `json:"session_id"`
	Response    string         `json:"response"`
	ContextHint string         `json:"context_hint"`
	Suggestions []string       `json:"suggestions"`
	Action      *engine.Action `json:"action,omitempty"`
}

// introResponse is the payload for a freshly opened widget.
type introResponse struct {
	SessionID   string   `json:"session_id"`
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

func (s *Server) registerChatRoutes(r chi.Router) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/message", s.handleMessage)
		r.Get("/intro", s.handleIntro)
		r.Get("/suggestions", s.handleSuggestions)
		r.Get("/ws", s.handleWebSocket)
	})
	r.Get("/api/schedule", s.handleSchedule)
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	result := s.engine.Process(req.Message)
	s.logTurn(req, result)

	resp := messageResponse{
		SessionID:   req.SessionID,
		Response:    result.Response,
		ContextHint: result.ContextHint,
		Suggestions: s.engine.Suggest(result.ContextHint),
	}
	if action, ok := engine.ParseAction(result.Response); ok {
		resp.Action = &action
	}

	writeJSON(w, http.StatusOK, resp)
}

// logTurn records the turn in the background. Telemetry must never delay or
// fail a chat response.
func (s *Server) logTurn(req messageRequest, result engine.Result) {
	if s.store == nil {
		return
	}

	turn := chatlog.Turn{
		SessionID:   req.SessionID,
		Message:     req.Message,
		Response:    result.Response,
		Intent:      string(engine.DetectIntent(req.Message)),
		ContextHint: result.ContextHint,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.LogTurn(ctx, turn); err != nil {
			log.Printf("server: logging chat turn: %v", err)
		}
	}()
}

func (s *Server) handleIntro(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, introResponse{
		SessionID:   uuid.New().String(),
		Response:    s.engine.Intro(),
		Suggestions: s.engine.InitialSuggestions(),
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	hint := r.URL.Query().Get("context")

	var suggestions []string
	if hint == "" {
		suggestions = s.engine.InitialSuggestions()
	} else {
		suggestions = s.engine.Suggest(hint)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.KnowledgeBase().Schedule)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
