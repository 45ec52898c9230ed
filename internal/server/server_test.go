package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/chatlog"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/engine"
	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

func newTestServer(t *testing.T) (*Server, *chatlog.Store) {
	t.Helper()

	database, err := chatlog.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := chatlog.NewStore(database)
	eng := engine.New(kb.Default(), engine.DefaultThresholds())
	return New(Config{Port: 0}, eng, store), store
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	eng := engine.New(kb.Default(), engine.DefaultThresholds())
	srv := New(Config{Port: 0, AllowAll: true}, eng, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestChatMessage(t *testing.T) {
	srv, store := newTestServer(t)

	body, _ := json.Marshal(messageRequest{Message: "Hoe kan ik meedoen?"})
	req := httptest.NewRequest("POST", "/api/chat/message", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp messageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.SessionID == "" {
		t.Error("expected a generated session_id")
	}
	if resp.ContextHint != "faq_deelname" {
		t.Errorf("context_hint = %q, want faq_deelname", resp.ContextHint)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("expected suggestions")
	}
	if resp.Action == nil {
		t.Fatal("expected an action for the sign-up question")
	}
	if resp.Action.Target != "/aanmelden" {
		t.Errorf("action target = %q, want /aanmelden", resp.Action.Target)
	}

	// Telemetry is written in the background.
	waitForTurns(t, store, 1)
}

func TestChatMessageInvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/chat/message", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChatIntro(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/chat/intro", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp introResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(resp.Response, "DKL Assistant") {
		t.Errorf("unexpected intro: %q", resp.Response)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("expected initial suggestions")
	}
}

func TestChatSuggestions(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/chat/suggestions?context=no_match", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp["suggestions"]) == 0 {
		t.Error("expected suggestions even for no_match")
	}
}

func TestScheduleFeed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/schedule", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []kb.ScheduleItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) == 0 {
		t.Error("expected schedule entries")
	}
}

func TestWebSocketChat(t *testing.T) {
	srv, _ := newTestServer(t)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsRequest{Type: "message", Content: "Hallo!"}); err != nil {
		t.Fatalf("writing message: %v", err)
	}

	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if resp.Type != "response" {
		t.Fatalf("type = %q, want response: %+v", resp.Type, resp)
	}
	if resp.SessionID == "" {
		t.Error("expected a generated session_id")
	}
	if resp.ContextHint != "greeting" {
		t.Errorf("context_hint = %q, want greeting", resp.ContextHint)
	}
}

func TestWebSocketUnknownType(t *testing.T) {
	srv, _ := newTestServer(t)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsRequest{Type: "bogus", Content: "x"}); err != nil {
		t.Fatalf("writing message: %v", err)
	}

	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if resp.Type != "error" {
		t.Errorf("type = %q, want error", resp.Type)
	}
}

// waitForTurns polls until the store holds want turns or the deadline passes.
func waitForTurns(t *testing.T, store *chatlog.Store, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		turns, err := store.Turns(context.Background(), chatlog.TurnFilter{})
		if err != nil {
			t.Fatalf("Turns failed: %v", err)
		}
		if len(turns) >= want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected %d logged turns, got %d", want, len(turns))
		}
		time.Sleep(10 * time.Millisecond)
	}
}
