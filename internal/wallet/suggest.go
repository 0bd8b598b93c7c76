package wallet

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxSuggestDistance is the largest Levenshtein distance at which a word
// list entry is still offered as a correction.
const MaxSuggestDistance = 2

// WordSuggestion describes a rejected mnemonic word and its closest
// word-list match, for the word-by-word entry flow.
type WordSuggestion struct {
	// Position is the 0-based index of the word in the mnemonic.
	Position int
	// Word is the rejected input.
	Word string
	// Suggestion is the closest list word, or "" if nothing is close.
	Suggestion string
	// Distance is the Levenshtein distance to Suggestion.
	Distance int
}

// SuggestWord returns the word-list entry closest to input, or "" when
// no entry is within MaxSuggestDistance.
func SuggestWord(input string, list *Wordlist) string {
	input = strings.ToLower(input)
	if list.Contains(input) {
		return input
	}

	best := math.MaxInt
	var suggestion string
	for _, word := range list.words {
		if d := levenshtein.ComputeDistance(input, word); d < best {
			best = d
			suggestion = word
		}
	}

	if best <= MaxSuggestDistance {
		return suggestion
	}
	return ""
}

// FindInvalidWords returns a suggestion entry for every word of the
// mnemonic that is not in the list.
func FindInvalidWords(words []string, list *Wordlist) []WordSuggestion {
	var out []WordSuggestion
	for i, word := range words {
		if list.Contains(word) {
			continue
		}
		suggestion := SuggestWord(word, list)
		distance := 0
		if suggestion != "" {
			distance = levenshtein.ComputeDistance(word, suggestion)
		}
		out = append(out, WordSuggestion{
			Position:   i,
			Word:       word,
			Suggestion: suggestion,
			Distance:   distance,
		})
	}
	return out
}
