package engine

import (
	"strings"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

// Thresholds are the confidence cut-offs of the retrieval cascade. They are
// empirically chosen; keep overrides in config rather than editing code.
type Thresholds struct {
	// MinConfidence is the floor below which a FAQ match is discarded.
	MinConfidence float64
	// DirectConfidence is the bar for accepting a FAQ match on the primary
	// FAQ path without consulting the schedule.
	DirectConfidence float64
	// FallbackConfidence is the higher bar a FAQ match must clear when it is
	// only reached as a fallback from an empty schedule search.
	FallbackConfidence float64
}

// DefaultThresholds returns the production values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinConfidence:      0.3,
		DirectConfidence:   0.6,
		FallbackConfidence: 0.5,
	}
}

// Engine answers free-text questions from an immutable knowledge base. It
// holds no mutable state: Process is a pure function of the message, so an
// Engine is safe for concurrent use.
type Engine struct {
	kb         *kb.KnowledgeBase
	thresholds Thresholds
}

// Result is the outcome of one orchestration call. ContextHint is always
// non-empty and selects the next round of suggested follow-up questions.
type Result struct {
	Response    string `json:"response"`
	ContextHint string `json:"context_hint"`
}

// New creates an engine over the given knowledge base.
func New(base *kb.KnowledgeBase, thresholds Thresholds) *Engine {
	return &Engine{kb: base, thresholds: thresholds}
}

// KnowledgeBase exposes the engine's dataset for read-only consumers
// (schedule feed, HTML export).
func (e *Engine) KnowledgeBase() *kb.KnowledgeBase { return e.kb }

const (
	introText = "Welkom bij de DKL Assistant! 👋\n\nIk kan je helpen met vragen over De Koninklijke Loop. Vraag me gerust over het evenement, inschrijving, routes, of andere details!"

	greetingText = "Hoi! Leuk dat je contact opneemt. Waarmee kan ik je helpen rondom De Koninklijke Loop?"
	thanksText   = "Graag gedaan! Kan ik je nog ergens anders mee helpen?"
	farewellText = "Bedankt voor je berichtje! Als je later nog vragen hebt over De Koninklijke Loop, help ik je graag weer."
	helpText     = "Ik ben de DKL Assistant en kan je helpen met vragen over De Koninklijke Loop. Je kunt me vragen stellen over:\n\n• Het evenement (datum, locatie, etc.)\n• Deelname en inschrijving\n• De verschillende looproutes\n• Ondersteuning tijdens de loop\n• Doneren en sponsoring\n• Het programma en specifieke tijden"

	noAnswerText = "Excuses, ik kon geen duidelijk antwoord vinden op je vraag. Probeer het misschien anders te formuleren. Je kunt vragen naar het evenement, inschrijving, routes, ondersteuning of het programma."

	lowConfidencePrefix = "Ik denk dat dit je vraag beantwoordt:\n\n"
	lowConfidenceSuffix = "\n\nAls dit niet klopt, kun je je vraag misschien anders formuleren?"
)

// Intro returns the welcome message shown when the widget opens.
func (e *Engine) Intro() string { return introText }

// Process runs one dialogue turn: classify intent, retrieve from FAQ or
// schedule with a one-level fallback between them, and format the response.
// Every branch terminates with a defined response and a non-empty hint; no
// input, including the empty string, produces an error.
func (e *Engine) Process(message string) Result {
	if strings.TrimSpace(message) == "" {
		return Result{Response: noAnswerText, ContextHint: "no_match"}
	}

	// A verbatim stored question bypasses intent classification entirely:
	// chip clicks must return their exact source answer even when the
	// question text happens to carry a schedule signal.
	if match := e.exactFAQ(message); match != nil {
		return Result{Response: formatFAQAnswer(match), ContextHint: match.ContextHint}
	}

	switch DetectIntent(message) {
	case IntentGreeting:
		return Result{Response: greetingText, ContextHint: "greeting"}
	case IntentThanks:
		return Result{Response: thanksText, ContextHint: "thanks"}
	case IntentFarewell:
		return Result{Response: farewellText, ContextHint: "farewell"}
	case IntentHelp:
		return Result{Response: helpText, ContextHint: "help"}
	case IntentSchedule:
		return e.processSchedule(message)
	default:
		return e.processFAQ(message)
	}
}

// processSchedule answers a schedule-intent message, falling back to the FAQ
// when the schedule search comes up empty. The fallback needs a higher
// confidence than the primary FAQ path since it is already a second choice.
func (e *Engine) processSchedule(message string) Result {
	scheduleResult := e.SearchSchedule(message)
	if len(scheduleResult.Items) > 0 {
		return Result{
			Response:    formatScheduleResponse(scheduleResult, message),
			ContextHint: scheduleResult.ContextHint,
		}
	}

	if faqResult := e.searchFAQ(message); faqResult != nil && faqResult.Confidence > e.thresholds.FallbackConfidence {
		return Result{
			Response:    formatFAQAnswer(faqResult),
			ContextHint: faqResult.ContextHint,
		}
	}

	return Result{Response: scheduleNotFoundText, ContextHint: "schedule_nomatch"}
}

// processFAQ answers a default-intent message. Low-confidence FAQ matches
// first yield to a schedule search; the full-schedule listing is never used
// as a silent fallback.
func (e *Engine) processFAQ(message string) Result {
	faqResult := e.searchFAQ(message)

	if faqResult != nil && faqResult.Confidence >= e.thresholds.DirectConfidence {
		return Result{
			Response:    formatFAQAnswer(faqResult),
			ContextHint: faqResult.ContextHint,
		}
	}

	scheduleResult := e.SearchSchedule(message)
	if len(scheduleResult.Items) > 0 && scheduleResult.ContextHint != "schedule_full" {
		return Result{
			Response:    formatScheduleResponse(scheduleResult, message),
			ContextHint: scheduleResult.ContextHint,
		}
	}

	if faqResult != nil && faqResult.Confidence > e.thresholds.MinConfidence {
		return Result{
			Response:    lowConfidencePrefix + formatFAQAnswer(faqResult) + lowConfidenceSuffix,
			ContextHint: faqResult.ContextHint + "_lowconf",
		}
	}

	return Result{Response: noAnswerText, ContextHint: "no_match"}
}
