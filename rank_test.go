package wordcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_SortsByDescendingCount(t *testing.T) {
	ranked := Rank([]string{"go", "rust", "go", "go", "rust", "zig"})

	assert.Equal(t, RankedWords{
		{Text: "go", Count: 3},
		{Text: "rust", Count: 2},
		{Text: "zig", Count: 1},
	}, ranked)
}

func TestRank_PreservesFirstSeenOrderForTies(t *testing.T) {
	ranked := Rank([]string{"b", "a", "c"})

	assert.Equal(t, RankedWords{
		{Text: "b", Count: 1},
		{Text: "a", Count: 1},
		{Text: "c", Count: 1},
	}, ranked)
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestScaleFor_FloorsAtTen(t *testing.T) {
	scale := scaleFor(1, 1000, 10, 1000, 200)
	assert.Equal(t, 10.0, scale)
}

func TestScaleFor_MostFrequentWordGetsUpperBoundAtMaxCount(t *testing.T) {
	// when count == maxCount, log2(count)/log2(maxCount) == 1, so the
	// word's scale is exactly the canvas upper bound for its length.
	canvasWidth := 1000.0
	textLen := 5
	scale := scaleFor(100, 100, 6.643856189774724, canvasWidth, textLen)
	assert.InDelta(t, canvasWidth*0.8/float64(textLen), scale, 1e-9)
}

func TestScaleFor_LessFrequentWordScalesDown(t *testing.T) {
	canvasWidth := 1000.0
	log2Max := 6.643856189774724 // log2(100)
	frequent := scaleFor(100, 100, log2Max, canvasWidth, 5)
	rare := scaleFor(2, 100, log2Max, canvasWidth, 5)

	assert.Less(t, rare, frequent)
}
