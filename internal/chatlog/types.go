package chatlog

import "time"

// Event identifies a widget interaction reported by the frontend.
type Event string

const (
	EventWidgetOpened      Event = "widget_opened"
	EventWidgetClosed      Event = "widget_closed"
	EventMessageSent       Event = "message_sent"
	EventSuggestionClicked Event = "suggestion_clicked"
	EventActionClicked     Event = "action_clicked"
)

// validEvents is the set of events accepted from the frontend.
var validEvents = map[Event]bool{
	EventWidgetOpened:      true,
	EventWidgetClosed:      true,
	EventMessageSent:       true,
	EventSuggestionClicked: true,
	EventActionClicked:     true,
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool { return validEvents[e] }

// Turn is one question/answer exchange.
type Turn struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id"`
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	Intent      string    `json:"intent"`
	ContextHint string    `json:"context_hint"`
}

// Interaction is a single widget event, such as a suggestion chip click.
type Interaction struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Event     Event     `json:"event"`
	Label     string    `json:"label"`
}
