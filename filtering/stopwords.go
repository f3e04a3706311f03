// Package filtering removes common stop words from tokenized input before
// it is ranked and laid out, grounded on original_source/src/filtering's
// StopWords (a script-keyed word set). This is CLI-harness scaffolding: the
// core wordcloud package never imports it.
package filtering

import (
	"strings"
	"unicode"
)

// StopWords keeps one word set per Unicode script, so the same literal
// string in two different scripts is tracked independently.
type StopWords struct {
	bySript map[string]map[string]struct{}
}

// New returns an empty StopWords database.
func New() *StopWords {
	return &StopWords{bySript: map[string]map[string]struct{}{}}
}

// NewEnglish returns a StopWords database preloaded with a small built-in
// list of common English stop words (the retrieval pack carries no
// bundled stopwords-json asset tree, so this list is hand-picked rather
// than loaded from disk, unlike the original's asset-embedded default).
func NewEnglish() *StopWords {
	sw := New()
	sw.AppendWords(englishStopWords)
	return sw
}

// AppendWords adds words to the database, trimmed, lowercased, and keyed
// by the script of their first rune.
func (sw *StopWords) AppendWords(words []string) {
	for _, w := range words {
		trimmed := strings.ToLower(strings.TrimSpace(w))
		if trimmed == "" {
			continue
		}
		script := scriptOf(trimmed)
		bucket, ok := sw.bySript[script]
		if !ok {
			bucket = map[string]struct{}{}
			sw.bySript[script] = bucket
		}
		bucket[trimmed] = struct{}{}
	}
}

// IsIncluded reports whether word (after trim/lowercase) is a known stop
// word in its own script's bucket.
func (sw *StopWords) IsIncluded(word string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(word))
	bucket, ok := sw.bySript[scriptOf(trimmed)]
	if !ok {
		return false
	}
	_, found := bucket[trimmed]
	return found
}

// RemoveStopWords filters words against sw, preserving order.
func RemoveStopWords(words []string, sw *StopWords) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !sw.IsIncluded(w) {
			out = append(out, w)
		}
	}
	return out
}

func scriptOf(s string) string {
	r, _ := utf8DecodeFirst(s)
	if r == 0 {
		return "Unknown"
	}
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			return name
		}
	}
	return "Unknown"
}

func utf8DecodeFirst(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

var englishStopWords = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "did", "do", "does",
	"doing", "down", "during", "each", "few", "for", "from", "further", "had",
	"has", "have", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "ourselves", "out", "over", "own", "same", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "until", "up", "very", "was", "we",
	"were", "what", "when", "where", "which", "while", "who", "whom", "why",
	"will", "with", "you", "your", "yours", "yourself", "yourselves",
}
