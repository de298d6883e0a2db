package jd

import (
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// stopWords filters common English words that add noise to single-token
// candidate extraction.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "years": true,
	"experience": true, "strong": true, "good": true, "able": true,
	"skills": true, "knowledge": true, "plus": true, "must": true,
}

// tokenize splits normalized text into lowercase tokens, treating + # . /
// as word characters so "c++", "c#", "node.js" and "ci/cd" survive intact.
// Trailing dots (sentence punctuation) are trimmed.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '/' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// baseForm strips common plural suffixes so "databases" can hit the
// "database" synonym. It only ever feeds an extra exact-lookup attempt, so
// an over-stripped form is harmless.
func baseForm(token string) string {
	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return strings.TrimSuffix(token, "ies") + "y"
	case strings.HasSuffix(token, "ss"):
		return token
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return strings.TrimSuffix(token, "s")
	}
	return token
}

// nounTokens tags the text with prose and returns the set of token strings
// tagged as common or proper nouns (NN, NNS, NNP, NNPS). Tagging failure
// degrades to an empty set: the noun check is a recall booster, and every
// candidate it admits is still filtered at resolution time.
func nounTokens(text string) map[string]bool {
	nouns := make(map[string]bool)
	if text == "" {
		return nouns
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nouns
	}

	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") {
			nouns[strings.ToLower(tok.Text)] = true
		}
	}
	return nouns
}
