package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopWords_IsIncluded_CaseAndWhitespaceInsensitive(t *testing.T) {
	sw := NewEnglish()

	assert.True(t, sw.IsIncluded("The"))
	assert.True(t, sw.IsIncluded("  the  "))
	assert.False(t, sw.IsIncluded("wordcloud"))
}

func TestStopWords_AppendWords_AddsCustomEntries(t *testing.T) {
	sw := New()
	assert.False(t, sw.IsIncluded("foo"))

	sw.AppendWords([]string{"Foo", "BAR"})

	assert.True(t, sw.IsIncluded("foo"))
	assert.True(t, sw.IsIncluded("bar"))
}

func TestStopWords_AppendWords_SkipsBlankEntries(t *testing.T) {
	sw := New()
	sw.AppendWords([]string{"   ", ""})

	assert.False(t, sw.IsIncluded(""))
}

func TestStopWords_ScriptsAreTrackedIndependently(t *testing.T) {
	sw := New()
	sw.AppendWords([]string{"the"})   // Latin
	sw.AppendWords([]string{"и"})     // Cyrillic, a common Russian stop word

	assert.True(t, sw.IsIncluded("the"))
	assert.True(t, sw.IsIncluded("и"))
	assert.False(t, sw.IsIncluded("a"))
}

func TestRemoveStopWords_FiltersPreservingOrder(t *testing.T) {
	sw := NewEnglish()
	words := []string{"the", "quick", "brown", "fox", "is", "fast"}

	filtered := RemoveStopWords(words, sw)

	assert.Equal(t, []string{"quick", "brown", "fox", "fast"}, filtered)
}

func TestRemoveStopWords_EmptyInput(t *testing.T) {
	assert.Empty(t, RemoveStopWords(nil, NewEnglish()))
}
