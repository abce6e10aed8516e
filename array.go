package tegenome

import (
	"slices"
	"strings"
	"sync"
)

// arrayCell is one genome position in the dense backend: the element
// occupying it (0 for none) and whether that element has been disabled.
type arrayCell struct {
	te       TEID
	disabled bool
}

// ArrayGenome is the dense reference backend: one cell per position,
// O(current length) per operation. It implements the same contract as
// RingGenome and exists mainly so tests can replay identical scripts
// against both and compare, but it is a complete backend in its own
// right.
type ArrayGenome struct {
	mu      sync.Mutex
	cells   []arrayCell
	lengths map[TEID]int64
	active  map[TEID]struct{}
	nextID  TEID
}

var _ Genome = (*ArrayGenome)(nil)

// NewArray creates an array-backed genome of n empty positions.
func NewArray(n int64) (*ArrayGenome, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	return &ArrayGenome{
		cells:   make([]arrayCell, n),
		lengths: make(map[TEID]int64),
		active:  make(map[TEID]struct{}),
	}, nil
}

// InsertTE inserts a new active element at pos. See Genome.InsertTE.
func (a *ArrayGenome) InsertTE(pos, length int64) (TEID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if length <= 0 {
		return 0, ErrInvalidLength
	}
	if pos < 0 || pos >= int64(len(a.cells)) {
		return 0, ErrOutOfRange
	}
	return a.insertAt(pos, length), nil
}

// CopyTE duplicates element te at a signed circular offset from its
// first position. See Genome.CopyTE.
func (a *ArrayGenome) CopyTE(te TEID, offset int64) (TEID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.active[te]; !ok {
		return 0, ErrElementNotActive
	}
	length := a.lengths[te]
	if length <= 0 {
		return 0, ErrInvalidLength
	}

	start := a.firstIndexOf(te)
	n := int64(len(a.cells))
	target := ((start+offset)%n + n) % n
	return a.insertAt(target, length), nil
}

// DisableTE disables element te in place; idempotent for unknown or
// already-disabled ids.
func (a *ArrayGenome) DisableTE(te TEID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.active[te]; ok {
		a.disable(te)
	}
}

// ActiveTEs returns the active element ids in ascending order.
func (a *ArrayGenome) ActiveTEs() []TEID {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]TEID, 0, len(a.active))
	for te := range a.active {
		ids = append(ids, te)
	}
	slices.Sort(ids)
	return ids
}

// Length returns the current total genome length.
func (a *ArrayGenome) Length() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int64(len(a.cells))
}

// Render returns the linear view of the genome starting at position 0.
func (a *ArrayGenome) Render() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	b.Grow(len(a.cells))
	for _, c := range a.cells {
		switch {
		case c.te == 0:
			b.WriteByte('-')
		case c.disabled:
			b.WriteByte('x')
		default:
			b.WriteByte('A')
		}
	}
	return b.String()
}

// insertAt commits a new active element at pos: collision kill first,
// then the cell insertion that shifts everything at and after pos.
func (a *ArrayGenome) insertAt(pos, length int64) TEID {
	if occ := a.cells[pos]; occ.te != 0 && !occ.disabled {
		a.disable(occ.te)
	}

	a.nextID++
	te := a.nextID
	ins := make([]arrayCell, length)
	for i := range ins {
		ins[i] = arrayCell{te: te}
	}
	a.cells = slices.Insert(a.cells, int(pos), ins...)
	a.lengths[te] = length
	a.active[te] = struct{}{}
	return te
}

// disable marks every cell of element te disabled and drops it from the
// active set. An active element is always one contiguous run, so the
// footprint starts at its first cell.
func (a *ArrayGenome) disable(te TEID) {
	delete(a.active, te)
	start := a.firstIndexOf(te)
	if start < 0 {
		return
	}
	for i := start; i < start+a.lengths[te]; i++ {
		a.cells[i].disabled = true
	}
}

// firstIndexOf returns the lowest position occupied by te, or -1.
func (a *ArrayGenome) firstIndexOf(te TEID) int64 {
	for i, c := range a.cells {
		if c.te == te {
			return int64(i)
		}
	}
	return -1
}
