package wordcloud

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/wordcloud-go/wordcloud/quadtree"
)

// PlacementOutcome is the terminal state a word reaches in the placement
// engine's per-word state machine.
type PlacementOutcome int

const (
	Placed PlacementOutcome = iota
	GaveUp
)

// PlacedTree indexes already-placed words by their Cell-space bounding box.
type PlacedTree = quadtree.Tree[*Word]

// Engine lays words out on a canvas, avoiding both previously placed words
// and a forbidden region built from a background image. It is safe for
// concurrent use: the placed tree is guarded by a reader-writer lock per
// spec §5's reader-writer discipline (teacher precedent: none, caire has
// no analog to a shared spatial index guarded across goroutines; grounded
// directly against the spec text, matching the original's parking_lot::RwLock
// with Go's standard sync.RWMutex).
type Engine struct {
	Canvas    Rect[float32]
	Fonts     *FontSet
	Forbidden *ForbiddenTree

	// Workers overrides the placement worker count used by PlaceAll. Zero
	// (the default) means availableParallelism().
	Workers int

	placed *PlacedTree
	mu     sync.RWMutex
}

// NewEngine returns an Engine over a canvas of the given dimensions. A nil
// forbidden tree means no background-derived exclusion zones.
func NewEngine(dims Dimensions, fonts *FontSet, forbidden *ForbiddenTree) *Engine {
	depth := NeededTreeDepth(dims.Width, dims.Height)
	return &Engine{
		Canvas:    Rect[float32]{Max: Point[float32]{X: float32(dims.Width), Y: float32(dims.Height)}},
		Fonts:     fonts,
		Forbidden: forbidden,
		placed:    quadtree.New[*Word](depth),
	}
}

// Placed returns every word the engine has successfully placed so far.
func (e *Engine) Placed() []*Word {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entries := e.placed.All()
	out := make([]*Word, len(entries))
	for i, entry := range entries {
		out[i] = entry.Value
	}
	return out
}

// cellArea converts a canvas-space rectangle into Cell-space quadtree
// coordinates, per spec §4.3: ceil(min/Cell) for the anchor, ceil(size/Cell)
// for the dimensions.
func cellArea(bbox Rect[float32]) quadtree.Area {
	minX := ceilDiv(bbox.Min.X)
	minY := ceilDiv(bbox.Min.Y)
	return quadtree.Area{
		X: minX,
		Y: minY,
		W: ceilDiv(bbox.Width()),
		H: ceilDiv(bbox.Height()),
	}
}

// searchCellArea grows a cellArea by one cell on every side, used for the
// pre-check's neighbor query.
func searchCellArea(bbox Rect[float32]) quadtree.Area {
	a := cellArea(bbox)
	x, y := a.X, a.Y
	if x > 0 {
		x--
	}
	if y > 0 {
		y--
	}
	return quadtree.Area{X: x, Y: y, W: a.W + 2, H: a.H + 2}
}

func ceilDiv(v float32) uint64 {
	if v < 0 {
		v = 0
	}
	return uint64(math.Ceil(float64(v) / Cell))
}

// Place runs word through the spiral-search state machine until it lands
// in the Placed or GaveUp state, using rng for reseeds and decay rotation.
func (e *Engine) Place(word *Word, rng *rand.Rand) PlacementOutcome {
	word.MoveWord(Point[float32]{
		X: rng.Float32() * e.Canvas.Width(),
		Y: rng.Float32() * e.Canvas.Height(),
	})

	spiral := NewSpiral(5)
	iters := 0
	decayedOnce := false

	for {
		if e.Canvas.Contains(word.BoundingBox) {
			if outcome, placed := e.tryCommit(word); placed {
				return outcome
			}
		}

		iters++
		nextOffCanvas := !e.Canvas.Contains(word.BoundingBox.Add(spiral.PeekNext()))
		if iters%10 == 0 || nextOffCanvas {
			word.MoveWord(legalReseedOffset(e.Canvas, word, rng))
			spiral.Reset()
		} else {
			spiral.Advance()
			word.MoveWord(spiral.Position().Add(word.Offset))
		}

		if iters%25 == 0 {
			if word.Scale <= 10 && decayedOnce {
				return GaveUp
			}
			decayedOnce = true

			rebuilt, err := BuildWord(word.Text, e.Fonts, word.Scale-5, word.Offset, RandomRotation(rng.Intn(2) == 0))
			if err == nil {
				word = rebuilt
				if !e.Canvas.Contains(word.BoundingBox) {
					word.MoveWord(legalReseedOffset(e.Canvas, word, rng))
				}
			}
		}
	}
}

// legalReseedOffset samples a new Offset for word uniformly from its legal
// positioning range per spec: the canvas shrunk by the word's own
// (rotated) bounding-box size on each axis, so a freshly reseeded word's
// bbox starts fully on-canvas whenever that range is non-empty.
func legalReseedOffset(canvas Rect[float32], word *Word, rng *rand.Rand) Point[float32] {
	rotatedMin := word.BoundingBox.Min.Sub(word.Offset)

	maxX := canvas.Width() - word.BoundingBox.Width()
	maxY := canvas.Height() - word.BoundingBox.Height()
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}

	target := Point[float32]{X: rng.Float32() * maxX, Y: rng.Float32() * maxY}
	return target.Sub(rotatedMin)
}

// tryCommit runs the two-phase pre-check/commit protocol for word's current
// position. ok is true when word was placed (outcome is always Placed in
// that case); ok is false when the position was rejected and the caller
// should keep searching.
func (e *Engine) tryCommit(word *Word) (PlacementOutcome, bool) {
	insertArea := cellArea(word.BoundingBox)
	searchArea := searchCellArea(word.BoundingBox)

	if e.Forbidden != nil && len(e.Forbidden.Query(insertArea)) > 0 {
		return 0, false
	}

	e.mu.RLock()
	lenBefore := e.placed.Len()
	intersected := false
	for _, entry := range e.placed.Query(searchArea) {
		if word.WordIntersect(entry.Value) {
			intersected = true
			break
		}
	}
	e.mu.RUnlock()

	if intersected {
		return 0, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	currentLen := e.placed.Len()
	if currentLen > lenBefore {
		all := e.placed.All()
		for _, entry := range all[lenBefore:currentLen] {
			if word.WordIntersect(entry.Value) {
				return 0, false
			}
		}
	}

	if _, ok := e.placed.Insert(insertArea, word); !ok {
		panic("wordcloud: placed-tree insert rejected a bounding box already validated against the canvas")
	}
	return Placed, true
}

// availableParallelism returns the target runtime's hardware parallelism,
// falling back to 4 (teacher precedent: cmd/caire/main.go's
// flag.Int("conc", runtime.NumCPU(), ...) worker count).
func availableParallelism() int {
	if p := runtime.NumCPU(); p > 0 {
		return p
	}
	return 4
}

// PlaceAll places words, sorted by descending scale: the first 20 (or
// fewer) sequentially, the remainder striped across availableParallelism
// workers, each with its own seeded PRNG. seed is the base seed; worker k
// is seeded deterministically from seed and k so a fixed seed and worker
// count reproduce the same layout.
func (e *Engine) PlaceAll(words []*Word, seed int64) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Scale > words[j].Scale
	})

	first, rest := words, []*Word(nil)
	if len(words) > 20 {
		first, rest = words[:20], words[20:]
	}

	seqRNG := rand.New(rand.NewSource(seed))
	for _, w := range first {
		e.Place(w, seqRNG)
	}

	if len(rest) == 0 {
		return
	}

	p := e.Workers
	if p <= 0 {
		p = availableParallelism()
	}
	var wg sync.WaitGroup
	for k := 0; k < p; k++ {
		k := k
		wg.Add(1)
		go func() {
			defer wg.Done()
			workerRNG := rand.New(rand.NewSource(seed + int64(k) + 1))
			for i := k; i < len(rest); i += p {
				e.Place(rest[i], workerRNG)
			}
		}()
	}
	wg.Wait()
}
