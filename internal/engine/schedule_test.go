package engine

import (
	"strings"
	"testing"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(kb.Default(), DefaultThresholds())
}

func TestExtractScheduleKeywords(t *testing.T) {
	tests := []struct {
		query        string
		wantDistance string
		wantType     string
	}{
		{"starttijd 10km", "10", "start"},
		{"wanneer is de finish", "", "finish"},
		{"eindtijd van de loop", "", "finish"},
		{"waar is het rustpunt van de 15 km", "15", "rustpunt"},
		{"hoe laat is het feest", "", "feest"},
		{"vertrek pendelbus", "", "vertrek"},
		{"iets heel anders", "", ""},
		{"6 kilometer", "6", ""},
	}
	for _, tt := range tests {
		kw := extractScheduleKeywords(Normalize(tt.query))
		if kw.distance != tt.wantDistance {
			t.Errorf("extractScheduleKeywords(%q).distance = %q, want %q", tt.query, kw.distance, tt.wantDistance)
		}
		if kw.typ != tt.wantType {
			t.Errorf("extractScheduleKeywords(%q).typ = %q, want %q", tt.query, kw.typ, tt.wantType)
		}
	}
}

func TestExtractScheduleKeywordsSingleType(t *testing.T) {
	// Only the highest-priority type is kept.
	kw := extractScheduleKeywords("start en finish")
	if kw.typ != "start" {
		t.Errorf("typ = %q, want start", kw.typ)
	}
}

func TestSearchScheduleFullListing(t *testing.T) {
	e := newTestEngine(t)

	for _, query := range []string{
		"Wat is het volledige programma?",
		"Toon het schema",
		"Alle tijden graag",
		"de gehele dag",
	} {
		result := e.SearchSchedule(query)
		if result.ContextHint != "schedule_full" {
			t.Errorf("SearchSchedule(%q).ContextHint = %q, want schedule_full", query, result.ContextHint)
		}
		if len(result.Items) != len(e.kb.Schedule) {
			t.Errorf("SearchSchedule(%q) returned %d items, want all %d", query, len(result.Items), len(e.kb.Schedule))
		}
	}
}

func TestSearchScheduleDistanceAndType(t *testing.T) {
	base := &kb.KnowledgeBase{
		Schedule: []kb.ScheduleItem{
			{Time: "10:30", EventDescription: "10km vertrek", Category: "start"},
			{Time: "13:30", EventDescription: "10km aankomst", Category: "finish"},
		},
	}
	e := New(base, DefaultThresholds())

	result := e.SearchSchedule("starttijd 10km")
	if len(result.Items) != 1 {
		t.Fatalf("expected exactly 1 item, got %d", len(result.Items))
	}
	if result.Items[0].Category != "start" {
		t.Errorf("matched category %q, want start", result.Items[0].Category)
	}
	if result.ContextHint != "schedule_start_10km" {
		t.Errorf("ContextHint = %q, want schedule_start_10km", result.ContextHint)
	}
}

func TestSearchScheduleDistanceOnly(t *testing.T) {
	e := newTestEngine(t)

	result := e.SearchSchedule("15 km")
	if len(result.Items) == 0 {
		t.Fatal("expected matches for the 15km distance")
	}
	for _, item := range result.Items {
		if !strings.Contains(Normalize(item.EventDescription), "15km") && !strings.Contains(Normalize(item.EventDescription), "15 km") {
			t.Errorf("unexpected item without 15km: %q", item.EventDescription)
		}
	}
	if result.ContextHint != "schedule_dist_15km" {
		t.Errorf("ContextHint = %q, want schedule_dist_15km", result.ContextHint)
	}
}

func TestSearchScheduleTypeOnly(t *testing.T) {
	e := newTestEngine(t)

	result := e.SearchSchedule("waar zijn de rustpunt locaties")
	if result.ContextHint != "schedule_type_rustpunt" {
		t.Errorf("ContextHint = %q, want schedule_type_rustpunt", result.ContextHint)
	}
	for _, item := range result.Items {
		if item.Category != "rustpunt" && !strings.Contains(Normalize(item.EventDescription), "rustpunt") {
			t.Errorf("unexpected non-rustpunt item: %q", item.EventDescription)
		}
	}
}

func TestSearchScheduleNoMatch(t *testing.T) {
	e := newTestEngine(t)

	result := e.SearchSchedule("regenboogeenhoorn")
	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
	if result.ContextHint != "schedule_nomatch" {
		t.Errorf("ContextHint = %q, want schedule_nomatch", result.ContextHint)
	}
}

