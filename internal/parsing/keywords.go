package parsing

import "sort"

// TokenFrequencies counts each significant token in text.
func TokenFrequencies(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}
	return counts
}

// RankByFrequency orders the tokens of a frequency map most-frequent first,
// breaking ties alphabetically so the output is stable.
func RankByFrequency(counts map[string]int) []string {
	ranked := make([]string, 0, len(counts))
	for tok := range counts {
		ranked = append(ranked, tok)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// TopKeywords returns up to limit of the most frequent significant tokens in
// text. A limit of zero or less returns all of them.
func TopKeywords(text string, limit int) []string {
	ranked := RankByFrequency(TokenFrequencies(text))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
