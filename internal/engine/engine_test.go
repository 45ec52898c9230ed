package engine

import (
	"strings"
	"testing"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

func TestProcessDeterministic(t *testing.T) {
	e := newTestEngine(t)

	queries := []string{
		"Wanneer is De Koninklijke Loop?",
		"starttijd 10km",
		"Hallo!",
		"iets onbegrijpelijks",
	}
	for _, q := range queries {
		first := e.Process(q)
		for i := 0; i < 3; i++ {
			if got := e.Process(q); got != first {
				t.Errorf("Process(%q) not deterministic: %+v vs %+v", q, got, first)
			}
		}
	}
}

// Every stored question must round-trip to its exact stored answer when sent
// verbatim, the way suggestion chips do.
func TestProcessExactMatchRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	for _, category := range e.kb.FAQ {
		for _, item := range category.Questions {
			result := e.Process(item.Question)
			want := item.Answer
			if item.Action && item.ActionText != "" {
				want += "\n\nKlik hier om: " + item.ActionText
			}
			if result.Response != want {
				t.Errorf("Process(%q) = %q, want stored answer", item.Question, result.Response)
			}
		}
	}
}

func TestProcessEventDate(t *testing.T) {
	e := newTestEngine(t)

	result := e.Process("Wanneer is De Koninklijke Loop?")
	if !strings.Contains(result.Response, "zaterdag 17 mei 2025") {
		t.Errorf("expected the stored event date, got %q", result.Response)
	}
	if result.ContextHint != "faq_over_het_evenement" {
		t.Errorf("ContextHint = %q, want faq_over_het_evenement", result.ContextHint)
	}
}

func TestProcessCannedIntents(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		message  string
		wantHint string
	}{
		{"Hallo!", "greeting"},
		{"Bedankt!", "thanks"},
		{"Doei", "farewell"},
		{"help", "help"},
	}
	for _, tt := range tests {
		result := e.Process(tt.message)
		if result.ContextHint != tt.wantHint {
			t.Errorf("Process(%q).ContextHint = %q, want %q", tt.message, result.ContextHint, tt.wantHint)
		}
		if result.Response == "" {
			t.Errorf("Process(%q) returned an empty response", tt.message)
		}
	}
}

func TestProcessFullSchedule(t *testing.T) {
	e := newTestEngine(t)

	result := e.Process("Wat is het volledige programma?")
	if result.ContextHint != "schedule_full" {
		t.Fatalf("ContextHint = %q, want schedule_full", result.ContextHint)
	}
	for _, item := range e.kb.Schedule {
		bullet := "• " + item.Time + ": " + item.EventDescription
		if c := strings.Count(result.Response, bullet); c != 1 {
			t.Errorf("entry %q appears %d times, want exactly once", bullet, c)
		}
	}
	if !strings.Contains(result.Response, "Tijden zijn indicatief") {
		t.Error("full listing should end with the disclaimer")
	}
}

func TestProcessScheduleSingleItemPhrasing(t *testing.T) {
	e := newTestEngine(t)

	result := e.Process("Hoe laat is de start van de 6km?")
	if result.ContextHint != "schedule_start_6km" {
		t.Fatalf("ContextHint = %q, want schedule_start_6km", result.ContextHint)
	}
	if !strings.HasPrefix(result.Response, `De "`) || !strings.Contains(result.Response, "is om 11:00") {
		t.Errorf("expected conversational time phrasing, got %q", result.Response)
	}
}

func TestProcessDistanceTypePrecision(t *testing.T) {
	base := &kb.KnowledgeBase{
		Schedule: []kb.ScheduleItem{
			{Time: "10:30", EventDescription: "10km vertrek", Category: "start"},
			{Time: "13:30", EventDescription: "10km aankomst", Category: "finish"},
		},
	}
	e := New(base, DefaultThresholds())

	result := e.Process("starttijd 10km")
	if result.ContextHint != "schedule_start_10km" {
		t.Errorf("ContextHint = %q, want schedule_start_10km", result.ContextHint)
	}
	if strings.Contains(result.Response, "aankomst") {
		t.Errorf("finish entry leaked into the response: %q", result.Response)
	}
	if !strings.Contains(result.Response, "10km vertrek") {
		t.Errorf("start entry missing from the response: %q", result.Response)
	}
}

func TestProcessScheduleFallsBackToFAQ(t *testing.T) {
	e := newTestEngine(t)

	// Schedule intent, no schedule entry matches, but the FAQ knows the
	// answer with high confidence.
	result := e.Process("vervoer startpunten regelen")
	if !strings.Contains(result.Response, "pendelbussen") {
		t.Errorf("expected the FAQ fallback answer, got %q", result.Response)
	}
	if result.ContextHint != "faq_praktische_informatie" {
		t.Errorf("ContextHint = %q, want faq_praktische_informatie", result.ContextHint)
	}
}

func TestProcessFAQNeverFallsBackToFullSchedule(t *testing.T) {
	e := newTestEngine(t)

	// No FAQ entry mentions this, and the residual token matches nothing in
	// the schedule either; the engine must not dump the full programme.
	result := e.Process("kaboutertjes")
	if result.ContextHint == "schedule_full" {
		t.Error("full schedule leaked through the FAQ fallback")
	}
	if result.ContextHint != "no_match" {
		t.Errorf("ContextHint = %q, want no_match", result.ContextHint)
	}
	if result.Response != noAnswerText {
		t.Errorf("Response = %q, want the no-answer text", result.Response)
	}
}

func TestProcessLowConfidenceHedging(t *testing.T) {
	base := &kb.KnowledgeBase{
		FAQ: []kb.FAQCategory{{
			Title: "Testcategorie",
			Questions: []kb.FAQItem{{
				Question: "Welke afstanden wandelroute heuvels?",
				Answer:   "Testantwoord.",
			}},
		}},
	}
	e := New(base, DefaultThresholds())

	// Two of five query tokens overlap: 0.4 is between the minimum and the
	// direct-accept threshold, so the answer is hedged.
	result := e.Process("afstanden heuvels bos paden bomen")
	if !strings.HasPrefix(result.Response, "Ik denk dat dit je vraag beantwoordt:") {
		t.Fatalf("expected hedged answer, got %q", result.Response)
	}
	if !strings.HasSuffix(result.ContextHint, "_lowconf") {
		t.Errorf("ContextHint = %q, want a _lowconf suffix", result.ContextHint)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	e := newTestEngine(t)

	for _, q := range []string{"", "   ", "\n\t"} {
		result := e.Process(q)
		if result.Response == "" {
			t.Errorf("Process(%q) returned an empty response", q)
		}
		if result.ContextHint != "no_match" {
			t.Errorf("Process(%q).ContextHint = %q, want no_match", q, result.ContextHint)
		}
	}
}

func TestProcessContextHintNeverEmpty(t *testing.T) {
	e := newTestEngine(t)

	queries := []string{
		"", "Hallo", "Bedankt", "starttijd 10km", "Wat is het programma?",
		"Hoe kan ik doneren?", "xyzzy", "Is er hulp tijdens de loop?",
	}
	for _, q := range queries {
		if result := e.Process(q); result.ContextHint == "" {
			t.Errorf("Process(%q) produced an empty context hint", q)
		}
	}
}

func TestIntro(t *testing.T) {
	e := newTestEngine(t)
	if !strings.Contains(e.Intro(), "DKL Assistant") {
		t.Errorf("unexpected intro: %q", e.Intro())
	}
}
