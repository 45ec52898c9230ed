package engine

import (
	"regexp"
	"strings"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

// ScheduleResult holds the schedule entries matching a query plus the context
// hint describing which filter combination produced them.
type ScheduleResult struct {
	Items       []kb.ScheduleItem
	ContextHint string
}

// scheduleKeywords are the distance and event-type tokens extracted from a
// normalized query. Either field may be empty.
type scheduleKeywords struct {
	distance string // "10", "2.5" — decimal comma normalized to a dot
	typ      string
}

var distanceRe = regexp.MustCompile(`\b\d+([,.]\d+)?\s?(km|kilometer)\b`)
var distanceNumRe = regexp.MustCompile(`\d+([,.]\d+)?`)

// typePriority is checked in order; only the first containment match is kept.
var typePriority = []struct {
	needles []string
	typ     string
}{
	{[]string{"start"}, "start"},
	{[]string{"finish", "eind"}, "finish"},
	{[]string{"aanvang"}, "aanvang"},
	{[]string{"vertrek"}, "vertrek"},
	{[]string{"rustpunt"}, "rustpunt"},
	{[]string{"feest"}, "feest"},
	{[]string{"aanwezig"}, "aanwezig"},
	{[]string{"aankomst"}, "aankomst"},
}

func extractScheduleKeywords(normalizedQuery string) scheduleKeywords {
	var kw scheduleKeywords

	if m := distanceRe.FindString(normalizedQuery); m != "" {
		if num := distanceNumRe.FindString(m); num != "" {
			kw.distance = strings.ReplaceAll(num, ",", ".")
		}
	}

	for _, candidate := range typePriority {
		for _, needle := range candidate.needles {
			if strings.Contains(normalizedQuery, needle) {
				kw.typ = candidate.typ
				return kw
			}
		}
	}
	return kw
}

// fullScheduleTriggers request the entire programme regardless of other
// keywords in the query.
var fullScheduleTriggers = []string{"schema", "programma", "tijden", "gehele"}

// SearchSchedule filters the schedule dataset by the keywords extracted from
// query. Filter policy: an extracted distance or type is mandatory; residual
// tokens only constrain the result when at most one of the two was extracted.
func (e *Engine) SearchSchedule(query string) ScheduleResult {
	normalizedQuery := Normalize(query)
	residual := FilterStopwords(strings.Fields(normalizedQuery))
	keywords := extractScheduleKeywords(normalizedQuery)

	for _, trigger := range fullScheduleTriggers {
		if strings.Contains(normalizedQuery, trigger) {
			return ScheduleResult{Items: e.kb.Schedule, ContextHint: "schedule_full"}
		}
	}

	var entryDistanceRe *regexp.Regexp
	if keywords.distance != "" {
		// "2.5" must match "2.5km", "2,5 km" and "2.5 kilometer" in entries.
		pattern := `\b` + strings.Replace(keywords.distance, ".", `[.,]`, 1) + `\s?(km|kilometer)\b`
		entryDistanceRe = regexp.MustCompile(pattern)
	}

	var results []kb.ScheduleItem
	for _, item := range e.kb.Schedule {
		description := Normalize(item.EventDescription)
		category := Normalize(item.Category)

		distanceMatch := true
		if entryDistanceRe != nil {
			distanceMatch = entryDistanceRe.MatchString(description)
		}

		typeMatch := true
		if keywords.typ != "" {
			typeMatch = strings.Contains(category, keywords.typ) ||
				strings.Contains(description, keywords.typ)
		}

		residualMatch := len(residual) == 0
		for _, word := range residual {
			if strings.Contains(description, word) || strings.Contains(category, word) {
				residualMatch = true
				break
			}
		}

		var include bool
		switch {
		case keywords.distance != "" && keywords.typ != "":
			include = distanceMatch && typeMatch
		case keywords.distance != "":
			include = distanceMatch && residualMatch
		case keywords.typ != "":
			include = typeMatch && residualMatch
		default:
			include = residualMatch || strings.Contains(description, normalizedQuery)
		}
		if include {
			results = append(results, item)
		}
	}

	return ScheduleResult{Items: results, ContextHint: scheduleContextHint(keywords, len(results), len(e.kb.Schedule))}
}

// scheduleContextHint derives the hint in priority order: type+distance,
// distance only, type only, filtered subset, and finally nomatch for an empty
// result. Decimal dots become underscores so hints stay valid identifiers
// (schedule_dist_2_5km).
func scheduleContextHint(keywords scheduleKeywords, resultCount, totalCount int) string {
	if resultCount == 0 {
		return "schedule_nomatch"
	}
	dist := strings.ReplaceAll(keywords.distance, ".", "_")
	switch {
	case keywords.distance != "" && keywords.typ != "":
		return "schedule_" + keywords.typ + "_" + dist + "km"
	case keywords.distance != "":
		return "schedule_dist_" + dist + "km"
	case keywords.typ != "":
		return "schedule_type_" + keywords.typ
	case resultCount < totalCount:
		return "schedule_filtered"
	}
	return "schedule_general"
}
