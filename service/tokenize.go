package service

import (
	"strings"
	"unicode"
)

// English stopwords stripped before learning and classification, mirroring
// the vectorizer configuration the model was tuned with.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {}, "this": {},
	"they": {}, "their": {}, "them": {}, "there": {}, "then": {}, "than": {},
	"but": {}, "not": {}, "had": {}, "have": {}, "his": {}, "her": {},
	"she": {}, "you": {}, "your": {}, "we": {}, "our": {}, "i": {}, "my": {},
	"me": {}, "so": {}, "if": {}, "do": {}, "did": {}, "done": {},
}

// tokenize lowercases the text, splits it on non-alphanumeric runs, drops
// stopwords and single characters, and appends adjacent-word bigrams so
// short phrases like "bus ticket" carry weight as a unit.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	unigrams := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, skip := stopwords[w]; skip {
			continue
		}
		unigrams = append(unigrams, w)
	}

	tokens := make([]string, 0, 2*len(unigrams))
	tokens = append(tokens, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		tokens = append(tokens, unigrams[i]+"_"+unigrams[i+1])
	}
	return tokens
}
