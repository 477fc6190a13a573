package scorer

import (
	"unicode/utf8"

	"github.com/gnames/levenshtein"
)

var lvh = levenshtein.NewLevenshtein()

// StringSimilarity is the Levenshtein distance normalized to [0, 1], where 1
// means equal.
func StringSimilarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(lvh.Compare(a, b).EditDist)/float64(longest)
}

// Similarity scores every candidate against query.
func Similarity(query string, candidates []string) *Scorer[string, float64] {
	s := New[string, float64](Options[float64]{})
	for _, c := range candidates {
		s.Set(c, StringSimilarity(query, c))
	}

	return s
}
