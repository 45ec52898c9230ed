package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips diacritics (NFD decomposition followed by
// removal of combining marks), drops punctuation and trims surrounding
// whitespace. It is total: any input, including the empty string, yields a
// valid result.
func Normalize(s string) string {
	s = norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// dutchStopwords are filler words that carry no signal for matching.
var dutchStopwords = map[string]struct{}{
	"de": {}, "het": {}, "een": {}, "en": {}, "is": {}, "dat": {}, "dit": {},
	"van": {}, "te": {}, "in": {}, "op": {}, "voor": {}, "met": {}, "zijn": {},
	"er": {}, "aan": {}, "niet": {}, "ook": {}, "om": {}, "als": {}, "dan": {},
	"bij": {}, "nog": {}, "maar": {}, "of": {}, "wel": {}, "door": {},
}

// FilterStopwords removes Dutch stopwords and tokens of length <= 2,
// preserving order.
func FilterStopwords(tokens []string) []string {
	out := tokens[:0:0]
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := dutchStopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// tokenize normalizes s and returns its stopword-filtered tokens.
func tokenize(s string) []string {
	return FilterStopwords(strings.Fields(Normalize(s)))
}
