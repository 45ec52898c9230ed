package chatlog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RegisterRoutes mounts telemetry endpoints under /api/telemetry on the given
// router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/telemetry", func(r chi.Router) {
		r.Get("/turns", handleTurns(store))
		r.Get("/interactions", handleInteractions(store))
		r.Post("/interactions", handlePostInteraction(store))
		r.Get("/hints", handleTopHints(store))
	})
}

func handleTurns(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := TurnFilter{
			SessionID:   q.Get("session_id"),
			Intent:      q.Get("intent"),
			ContextHint: q.Get("context_hint"),
		}
		if v := q.Get("since"); v != "" {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				filter.Since = &t
			}
		}
		if v := q.Get("until"); v != "" {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				filter.Until = &t
			}
		}
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}
		if v := q.Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Offset = n
			}
		}

		turns, err := store.Turns(r.Context(), filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, turns)
	}
}

func handleInteractions(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := InteractionFilter{
			SessionID: q.Get("session_id"),
			Event:     Event(q.Get("event")),
		}
		if v := q.Get("since"); v != "" {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				filter.Since = &t
			}
		}
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}

		interactions, err := store.Interactions(r.Context(), filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, interactions)
	}
}

// interactionRequest is the body the widget posts for a tracked event.
type interactionRequest struct {
	SessionID string `json:"session_id"`
	Event     Event  `json:"event"`
	Label     string `json:"label"`
}

func handlePostInteraction(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if !req.Event.Valid() {
			http.Error(w, "unknown event", http.StatusBadRequest)
			return
		}
		if req.SessionID == "" {
			req.SessionID = uuid.New().String()
		}

		in := Interaction{
			SessionID: req.SessionID,
			Event:     req.Event,
			Label:     req.Label,
		}
		if err := store.LogInteraction(r.Context(), in); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"session_id": req.SessionID})
	}
}

func handleTopHints(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		counts, err := store.TopHints(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
