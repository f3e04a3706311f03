package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree_InsertReturnsStrictlyIncreasingHandles(t *testing.T) {
	tr := New[string](4)

	h1, ok := tr.Insert(Area{X: 0, Y: 0, W: 1, H: 1}, "a")
	assert.True(t, ok)
	h2, ok := tr.Insert(Area{X: 1, Y: 1, W: 1, H: 1}, "b")
	assert.True(t, ok)

	assert.Less(t, h1, h2)
}

func TestTree_InsertRejectsAreaOutsideBounds(t *testing.T) {
	tr := New[string](2) // covers [0,4)x[0,4)

	_, ok := tr.Insert(Area{X: 10, Y: 10, W: 1, H: 1}, "out of bounds")
	assert.False(t, ok)
}

func TestTree_QueryFindsOverlappingEntries(t *testing.T) {
	tr := New[string](4)
	tr.Insert(Area{X: 0, Y: 0, W: 2, H: 2}, "near")
	tr.Insert(Area{X: 10, Y: 10, W: 2, H: 2}, "far")

	found := tr.Query(Area{X: 1, Y: 1, W: 1, H: 1})

	assert.Len(t, found, 1)
	assert.Equal(t, "near", found[0].Value)
}

func TestTree_DeleteRemovesEntry(t *testing.T) {
	tr := New[string](4)
	h, _ := tr.Insert(Area{X: 0, Y: 0, W: 1, H: 1}, "a")

	assert.True(t, tr.Delete(h))
	assert.Equal(t, 0, tr.Len())

	_, ok := tr.Get(h)
	assert.False(t, ok)

	found := tr.Query(Area{X: 0, Y: 0, W: 1, H: 1})
	assert.Empty(t, found)
}

func TestTree_DeleteUnknownHandleIsNoop(t *testing.T) {
	tr := New[string](4)
	assert.False(t, tr.Delete(999))
}

func TestTree_AllReturnsInsertionOrder(t *testing.T) {
	tr := New[string](4)
	tr.Insert(Area{X: 0, Y: 0, W: 1, H: 1}, "first")
	tr.Insert(Area{X: 1, Y: 1, W: 1, H: 1}, "second")
	tr.Insert(Area{X: 2, Y: 2, W: 1, H: 1}, "third")

	entries := tr.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Value)
	assert.Equal(t, "second", entries[1].Value)
	assert.Equal(t, "third", entries[2].Value)
}

func TestTree_AllSkipsDeletedEntries(t *testing.T) {
	tr := New[string](4)
	tr.Insert(Area{X: 0, Y: 0, W: 1, H: 1}, "keep")
	h, _ := tr.Insert(Area{X: 1, Y: 1, W: 1, H: 1}, "drop")
	tr.Insert(Area{X: 2, Y: 2, W: 1, H: 1}, "keep-too")
	tr.Delete(h)

	entries := tr.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "keep", entries[0].Value)
	assert.Equal(t, "keep-too", entries[1].Value)
}

func TestArea_Intersects(t *testing.T) {
	a := Area{X: 0, Y: 0, W: 4, H: 4}
	overlapping := Area{X: 3, Y: 3, W: 4, H: 4}
	disjoint := Area{X: 10, Y: 10, W: 2, H: 2}

	assert.True(t, a.Intersects(overlapping))
	assert.False(t, a.Intersects(disjoint))
}

func TestArea_Contains(t *testing.T) {
	outer := Area{X: 0, Y: 0, W: 10, H: 10}
	inner := Area{X: 2, Y: 2, W: 4, H: 4}
	crossing := Area{X: 8, Y: 8, W: 4, H: 4}

	assert.True(t, outer.Contains(inner))
	assert.False(t, outer.Contains(crossing))
}

// TestTree_ManyEntriesStayQueryable exercises subdivision across several
// quadrants at once, since a shallow tree never forces entries past the
// root node.
func TestTree_ManyEntriesStayQueryable(t *testing.T) {
	tr := New[int](6) // covers [0,64)x[0,64)
	for i := 0; i < 50; i++ {
		x := uint64(i % 60)
		y := uint64((i * 7) % 60)
		_, ok := tr.Insert(Area{X: x, Y: y, W: 1, H: 1}, i)
		assert.True(t, ok)
	}
	assert.Equal(t, 50, tr.Len())

	found := tr.Query(Area{X: 0, Y: 0, W: 64, H: 64})
	assert.Len(t, found, 50)
}
