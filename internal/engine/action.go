package engine

import "strings"

// Action is the structured form of an action suffix. Target is the site route
// a recognized label navigates to; it is empty for unrecognized labels, which
// consumers treat as a no-op.
type Action struct {
	Label  string `json:"label"`
	Target string `json:"target,omitempty"`
}

// navigationTargets maps lowercased action labels to site routes.
var navigationTargets = map[string]string{
	"schrijf je nu in":      "/aanmelden",
	"open contactformulier": "/contact",
}

// ParseAction extracts the action suffix from a formatted response, if
// present. The marker format is fixed: "\n\nKlik hier om: <label>".
func ParseAction(response string) (Action, bool) {
	idx := strings.LastIndex(response, actionPrefix)
	if idx < 0 {
		return Action{}, false
	}
	label := strings.TrimSpace(response[idx+len(actionPrefix):])
	if label == "" {
		return Action{}, false
	}
	return Action{
		Label:  label,
		Target: navigationTargets[strings.ToLower(label)],
	}, true
}
