// Package quadtree implements a generic region quadtree keyed by integer
// cell coordinates, used both as the placement engine's spatial index of
// placed words and as the forbidden-region index built from background
// image edges. No third-party quadtree package exists anywhere in the
// example corpus this module was grounded on, so this is a hand-rolled
// stdlib-only (generics only) component.
package quadtree

// Area is an axis-aligned integer region: cells [X, X+W) x [Y, Y+H).
type Area struct {
	X, Y, W, H uint64
}

// MaxX returns the exclusive right edge of a.
func (a Area) MaxX() uint64 { return a.X + a.W }

// MaxY returns the exclusive bottom edge of a.
func (a Area) MaxY() uint64 { return a.Y + a.H }

// Intersects reports whether a and b share at least one cell.
func (a Area) Intersects(b Area) bool {
	return a.X < b.MaxX() && b.X < a.MaxX() && a.Y < b.MaxY() && b.Y < a.MaxY()
}

// Contains reports whether b lies entirely within a.
func (a Area) Contains(b Area) bool {
	return a.X <= b.X && a.Y <= b.Y && a.MaxX() >= b.MaxX() && a.MaxY() >= b.MaxY()
}

// Entry is one stored value together with the handle and area it was
// inserted under.
type Entry[V any] struct {
	Handle uint64
	Area   Area
	Value  V
}

type node[V any] struct {
	region   Area
	depth    int
	entries  []*Entry[V]
	children [4]*node[V]
}

// Tree is a generic region quadtree over [0, 2^depth) x [0, 2^depth).
// Insert returns strictly increasing handles for the lifetime of a tree, a
// guarantee the placement engine's two-phase commit protocol relies on to
// re-scan only the tail of newly inserted entries without a side-channel
// buffer.
type Tree[V any] struct {
	root       *node[V]
	maxDepth   int
	nextHandle uint64
	byHandle   map[uint64]*Entry[V]
	location   map[uint64]*node[V]
	order      []uint64
}

// New returns an empty Tree spanning 2^depth cells on each axis.
func New[V any](depth int) *Tree[V] {
	if depth < 0 {
		depth = 0
	}
	size := uint64(1) << uint(depth)
	return &Tree[V]{
		root:       &node[V]{region: Area{0, 0, size, size}},
		maxDepth:   depth,
		nextHandle: 1,
		byHandle:   map[uint64]*Entry[V]{},
		location:   map[uint64]*node[V]{},
	}
}

// Insert stores value under area, returning a new monotonically increasing
// handle. ok is false, with no insertion performed, when area does not fit
// within the tree's bounds.
func (t *Tree[V]) Insert(area Area, value V) (uint64, bool) {
	if !t.root.region.Contains(area) {
		return 0, false
	}

	handle := t.nextHandle
	t.nextHandle++

	e := &Entry[V]{Handle: handle, Area: area, Value: value}
	n := t.root.insert(e, t.maxDepth)

	t.byHandle[handle] = e
	t.location[handle] = n
	t.order = append(t.order, handle)

	return handle, true
}

func (n *node[V]) insert(e *Entry[V], maxDepth int) *node[V] {
	if n.depth < maxDepth {
		if idx, ok := n.quadrantFor(e.Area); ok {
			return n.child(idx).insert(e, maxDepth)
		}
	}
	n.entries = append(n.entries, e)
	return n
}

// quadrantFor reports which of the node's four children fully contains
// area, or false if area straddles more than one quadrant (or the node has
// no room left to subdivide), in which case it must be stored here.
func (n *node[V]) quadrantFor(a Area) (int, bool) {
	half := n.region.W / 2
	if half == 0 {
		return 0, false
	}
	midX := n.region.X + half
	midY := n.region.Y + n.region.H/2

	left := a.MaxX() <= midX
	right := a.X >= midX
	top := a.MaxY() <= midY
	bottom := a.Y >= midY

	switch {
	case left && top:
		return 0, true
	case right && top:
		return 1, true
	case left && bottom:
		return 2, true
	case right && bottom:
		return 3, true
	default:
		return 0, false
	}
}

func (n *node[V]) child(idx int) *node[V] {
	if n.children[idx] != nil {
		return n.children[idx]
	}
	half := n.region.W / 2
	var x, y uint64
	switch idx {
	case 0:
		x, y = n.region.X, n.region.Y
	case 1:
		x, y = n.region.X+half, n.region.Y
	case 2:
		x, y = n.region.X, n.region.Y+half
	case 3:
		x, y = n.region.X+half, n.region.Y+half
	}
	c := &node[V]{region: Area{x, y, half, half}, depth: n.depth + 1}
	n.children[idx] = c
	return c
}

// Query returns every live entry whose area intersects area.
func (t *Tree[V]) Query(area Area) []Entry[V] {
	var out []Entry[V]
	t.root.query(area, &out)
	return out
}

func (n *node[V]) query(area Area, out *[]Entry[V]) {
	if !n.region.Intersects(area) {
		return
	}
	for _, e := range n.entries {
		if e.Area.Intersects(area) {
			*out = append(*out, *e)
		}
	}
	for _, c := range n.children {
		if c != nil {
			c.query(area, out)
		}
	}
}

// Delete removes the entry stored under handle, if any.
func (t *Tree[V]) Delete(handle uint64) bool {
	n, ok := t.location[handle]
	if !ok {
		return false
	}
	for i, e := range n.entries {
		if e.Handle == handle {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			break
		}
	}
	delete(t.byHandle, handle)
	delete(t.location, handle)
	return true
}

// Get returns the value stored under handle.
func (t *Tree[V]) Get(handle uint64) (V, bool) {
	e, ok := t.byHandle[handle]
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// Len reports the number of live entries.
func (t *Tree[V]) Len() int {
	return len(t.byHandle)
}

// All returns every live entry in insertion order.
func (t *Tree[V]) All() []Entry[V] {
	out := make([]Entry[V], 0, len(t.byHandle))
	for _, h := range t.order {
		if e, ok := t.byHandle[h]; ok {
			out = append(out, *e)
		}
	}
	return out
}
