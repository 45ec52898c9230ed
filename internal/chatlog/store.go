package chatlog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store provides persistence for chat turns and widget interactions.
type Store struct {
	db *DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *DB) *Store {
	return &Store{db: database}
}

// LogTurn inserts a question/answer exchange. If turn.ID is empty a UUID is
// generated.
func (s *Store) LogTurn(ctx context.Context, turn Turn) error {
	if turn.ID == "" {
		turn.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_turns (id, session_id, message, response, intent, context_hint)
		VALUES (?, ?, ?, ?, ?, ?)`,
		turn.ID,
		turn.SessionID,
		turn.Message,
		turn.Response,
		turn.Intent,
		turn.ContextHint,
	)
	if err != nil {
		return fmt.Errorf("inserting chat turn: %w", err)
	}
	return nil
}

// LogInteraction inserts a widget event. Unknown events are rejected.
func (s *Store) LogInteraction(ctx context.Context, in Interaction) error {
	if !in.Event.Valid() {
		return fmt.Errorf("unknown interaction event %q", in.Event)
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_interactions (id, session_id, event, label)
		VALUES (?, ?, ?, ?)`,
		in.ID,
		in.SessionID,
		string(in.Event),
		in.Label,
	)
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

// TurnFilter controls which chat turns are returned by Turns.
type TurnFilter struct {
	SessionID   string
	Intent      string
	ContextHint string
	Since       *time.Time
	Until       *time.Time
	Limit       int
	Offset      int
}

// Turns returns chat turns matching the filter, newest first.
func (s *Store) Turns(ctx context.Context, filter TurnFilter) ([]Turn, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.SessionID != "" {
		clauses = append(clauses, "session_id = ?")
		args = append(args, filter.SessionID)
	}
	if filter.Intent != "" {
		clauses = append(clauses, "intent = ?")
		args = append(args, filter.Intent)
	}
	if filter.ContextHint != "" {
		clauses = append(clauses, "context_hint = ?")
		args = append(args, filter.ContextHint)
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}
	if filter.Until != nil {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, filter.Until.UTC().Format(time.DateTime))
	}

	query := "SELECT id, timestamp, session_id, message, response, intent, context_hint FROM chat_turns"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chat turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var (
			t  Turn
			ts string
		)
		if err := rows.Scan(&t.ID, &ts, &t.SessionID, &t.Message, &t.Response, &t.Intent, &t.ContextHint); err != nil {
			return nil, err
		}
		t.Timestamp = parseTimestamp(ts)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// InteractionFilter controls which interactions are returned by Interactions.
type InteractionFilter struct {
	SessionID string
	Event     Event
	Since     *time.Time
	Limit     int
	Offset    int
}

// Interactions returns widget events matching the filter, newest first.
func (s *Store) Interactions(ctx context.Context, filter InteractionFilter) ([]Interaction, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.SessionID != "" {
		clauses = append(clauses, "session_id = ?")
		args = append(args, filter.SessionID)
	}
	if filter.Event != "" {
		clauses = append(clauses, "event = ?")
		args = append(args, string(filter.Event))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT id, timestamp, session_id, event, label FROM chat_interactions"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var interactions []Interaction
	for rows.Next() {
		var (
			in    Interaction
			ts    string
			event string
		)
		if err := rows.Scan(&in.ID, &ts, &in.SessionID, &event, &in.Label); err != nil {
			return nil, err
		}
		in.Timestamp = parseTimestamp(ts)
		in.Event = Event(event)
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

// HintCount is the number of turns that resolved to a given context hint.
type HintCount struct {
	ContextHint string `json:"context_hint"`
	Count       int    `json:"count"`
}

// TopHints returns the most frequent context hints, useful for spotting
// questions the knowledge base answers poorly (no_match, _lowconf).
func (s *Store) TopHints(ctx context.Context, limit int) ([]HintCount, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT context_hint, COUNT(*) AS n
		FROM chat_turns
		GROUP BY context_hint
		ORDER BY n DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying hint counts: %w", err)
	}
	defer rows.Close()

	var counts []HintCount
	for rows.Next() {
		var hc HintCount
		if err := rows.Scan(&hc.ContextHint, &hc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, hc)
	}
	return counts, rows.Err()
}

// DeleteBefore removes turns and interactions older than the given time.
// Returns the total number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	cutoff := before.UTC().Format(time.DateTime)

	var total int64
	for _, table := range []string{"chat_turns", "chat_interactions"} {
		res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE timestamp < ?", cutoff)
		if err != nil {
			return total, fmt.Errorf("deleting old rows from %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// parseTimestamp handles both SQLite datetime('now') output and RFC 3339.
func parseTimestamp(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
