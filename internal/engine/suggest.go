package engine

// bootstrapSuggestions is the hardcoded last resort, shown when neither the
// hint nor the default key exists in the suggestion table. It doubles as the
// initial chip set before the first turn.
var bootstrapSuggestions = []string{
	"Wanneer is De Koninklijke Loop?",
	"Hoe kan ik meedoen?",
	"Welke afstanden zijn er?",
	"Is de route rolstoelvriendelijk?",
}

// Suggest returns the follow-up questions for a context hint. Lookup order:
// the hint itself, the table's "default" key, then the bootstrap list. It
// never returns an empty slice.
func (e *Engine) Suggest(contextHint string) []string {
	if items, ok := e.kb.Suggestions[contextHint]; ok && len(items) > 0 {
		return items
	}
	if items, ok := e.kb.Suggestions["default"]; ok && len(items) > 0 {
		return items
	}
	return bootstrapSuggestions
}

// InitialSuggestions returns the chips shown alongside the intro message.
func (e *Engine) InitialSuggestions() []string {
	return bootstrapSuggestions
}
