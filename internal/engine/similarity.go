package engine

import "strings"

// Similarity scores how well a free-text query matches a stored FAQ question,
// in [0,1]. The cascade is ordered so that exact and substring matches always
// dominate the token-overlap heuristic:
//
//  1. normalized equality           -> 1.0
//  2. raw equality (suggestion chip round-trips) -> 1.0
//  3. substring containment either direction     -> 0.9
//  4. matched query tokens / total query tokens
func Similarity(query, question string) float64 {
	normQuery := Normalize(query)
	normQuestion := Normalize(question)

	if normQuestion == normQuery {
		return 1.0
	}
	if query == question {
		return 1.0
	}
	if strings.Contains(normQuestion, normQuery) || strings.Contains(normQuery, normQuestion) {
		return 0.9
	}

	queryTokens := FilterStopwords(strings.Fields(normQuery))
	questionTokens := FilterStopwords(strings.Fields(normQuestion))
	if len(queryTokens) == 0 {
		return 0
	}

	matched := 0
	for _, qt := range queryTokens {
		for _, wt := range questionTokens {
			if tokensMatch(qt, wt) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

// tokensMatch reports whether two tokens count as a match: equal, or one
// contains the other while the contained token is longer than 3 characters.
func tokensMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) > 3 && strings.Contains(b, a) {
		return true
	}
	if len(b) > 3 && strings.Contains(a, b) {
		return true
	}
	return false
}
