package engine

import (
	"regexp"
	"strings"
)

// FAQMatch is the result of a FAQ lookup.
type FAQMatch struct {
	Answer      string
	Action      bool
	ActionText  string
	Category    string
	Confidence  float64
	ContextHint string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// faqContextHint derives a context hint from a category title:
// normalized, spaces collapsed to underscores, prefixed "faq_".
func faqContextHint(categoryTitle string) string {
	if categoryTitle == "" {
		return "faq_general"
	}
	return "faq_" + whitespaceRe.ReplaceAllString(Normalize(categoryTitle), "_")
}

// exactFAQ returns the entry whose stored question equals the raw query
// verbatim, with confidence 1.0, or nil. This fast path guarantees that
// suggestion chips round-trip to their exact source answer.
func (e *Engine) exactFAQ(query string) *FAQMatch {
	for _, category := range e.kb.FAQ {
		for _, item := range category.Questions {
			if item.Question == query {
				return &FAQMatch{
					Answer:      item.Answer,
					Action:      item.Action,
					ActionText:  item.ActionText,
					Category:    category.Title,
					Confidence:  1.0,
					ContextHint: faqContextHint(category.Title),
				}
			}
		}
	}
	return nil
}

// searchFAQ finds the best-matching FAQ entry for query, or nil when nothing
// scores above the minimum confidence. An entry whose stored question equals
// the raw query verbatim short-circuits with confidence 1.0, so suggestion
// chips always round-trip to their source answer. Ties go to the earliest
// entry in authored order.
func (e *Engine) searchFAQ(query string) *FAQMatch {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	if match := e.exactFAQ(query); match != nil {
		return match
	}

	var best *FAQMatch
	highest := 0.0
	for _, category := range e.kb.FAQ {
		for _, item := range category.Questions {
			score := Similarity(query, item.Question)
			if score > highest && score > e.thresholds.MinConfidence {
				highest = score
				best = &FAQMatch{
					Answer:      item.Answer,
					Action:      item.Action,
					ActionText:  item.ActionText,
					Category:    category.Title,
					Confidence:  score,
					ContextHint: faqContextHint(category.Title),
				}
			}
		}
	}
	return best
}
