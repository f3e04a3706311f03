package wordcloud

import "sort"

// RankedWord is one distinct word together with how many times it occurred
// in the source text.
type RankedWord struct {
	Text  string
	Count int
}

// RankedWords is the external input type WriteContent expects: a list of
// distinct words with their occurrence counts, sorted by descending count
// as Rank returns it. WriteContent treats its first entries as the top
// words.
type RankedWords []RankedWord

// Rank tallies the occurrences of each string in words and returns them
// sorted by descending count, adapted from the original's rank2 (count via
// a map, then sort descending).
func Rank(words []string) RankedWords {
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make(RankedWords, len(order))
	for i, w := range order {
		ranked[i] = RankedWord{Text: w, Count: counts[w]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
