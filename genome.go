package tegenome

import (
	"slices"
	"strings"
	"sync"
)

// RingGenome is the run-length-encoded backend. It keeps the genome as a
// circular ring of uniform segments plus an id index over the active
// elements, so every operation costs time proportional to the segment
// count and never materializes per-position storage.
//
// Segments are only ever added: disabling keeps the element's material in
// place, and every split leaves its remnants in the ring permanently. See
// the package comment for the resulting growth caveat.
type RingGenome struct {
	mu     sync.Mutex
	ring   *segmentRing
	active elementIndex
	nextID TEID
	length int64
}

var _ Genome = (*RingGenome)(nil)

// New creates a ring-backed genome of n empty positions.
func New(n int64) (*RingGenome, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	return &RingGenome{
		ring:   newSegmentRing(n),
		active: make(elementIndex),
		length: n,
	}, nil
}

// InsertTE inserts a new active element of the given length at position
// pos. See Genome.InsertTE for the contract.
func (g *RingGenome) InsertTE(pos, length int64) (TEID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if length <= 0 {
		return 0, ErrInvalidLength
	}
	if pos < 0 || pos >= g.length {
		return 0, ErrOutOfRange
	}

	n, offset := g.ring.locate(pos)
	return g.insertAt(n, offset, length), nil
}

// CopyTE duplicates element te at a signed circular offset from its start.
// See Genome.CopyTE for the contract.
func (g *RingGenome) CopyTE(te TEID, offset int64) (TEID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.active.lookup(te)
	if !ok {
		return 0, ErrElementNotActive
	}
	length := g.ring.nodes[src].seg.Length
	if length <= 0 {
		return 0, ErrInvalidLength
	}

	n, within := g.ring.walk(src, offset)
	return g.insertAt(n, within, length), nil
}

// DisableTE disables element te in place; unknown or already-disabled ids
// are a silent no-op, which makes the call idempotent.
func (g *RingGenome) DisableTE(te TEID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.active.lookup(te); ok {
		g.disableNode(n)
	}
}

// ActiveTEs returns the active element ids in ascending order.
func (g *RingGenome) ActiveTEs() []TEID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]TEID, 0, len(g.active))
	for te := range g.active {
		ids = append(ids, te)
	}
	slices.Sort(ids)
	return ids
}

// Length returns the current total genome length.
func (g *RingGenome) Length() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.length
}

// Render returns the linear view of the genome starting at position 0.
// Internal cost is proportional to the segment count; the output is one
// character per genome position.
func (g *RingGenome) Render() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(int(g.length))
	for n := g.ring.nodes[sentinelRef].next; n != sentinelRef; n = g.ring.nodes[n].next {
		seg := g.ring.nodes[n].seg
		b.WriteString(strings.Repeat(seg.Kind.glyph(), int(seg.Length)))
	}
	return b.String()
}

// insertAt commits a new active element of the given length at offset
// within node n, handling the collision kill, the split, the index
// registration, and the length bookkeeping as one step. Callers hold the
// lock and have validated the arguments; insertAt cannot fail, so the
// operation is all-or-nothing at the public surface.
func (g *RingGenome) insertAt(n nodeRef, offset, length int64) TEID {
	if g.ring.nodes[n].seg.Kind == KindActive {
		// Collision: the new element disrupts whatever active element
		// occupied the landing position. The whole covering segment is
		// disabled before the split, so both remnants come out disabled.
		g.disableNode(n)
	}

	g.nextID++
	te := g.nextID
	nn := g.ring.splitInsert(n, offset, Segment{Kind: KindActive, Length: length}, te)
	g.active.register(te, nn)
	g.length += length
	return te
}

// disableNode marks node n's segment disabled and drops its element from
// the index in the same step.
func (g *RingGenome) disableNode(n nodeRef) {
	g.ring.nodes[n].seg.Kind = KindDisabled
	g.active.unregister(g.ring.nodes[n].te)
}
