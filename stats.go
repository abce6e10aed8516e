package tegenome

import "fmt"

// Stats summarizes the internal shape of a genome: how many segments of
// each kind it carries and how many elements remain active. For a
// RingGenome the segment counts expose the documented unbounded growth:
// they only ever increase, regardless of how little the rendered genome
// changes.
type Stats struct {
	Length           int64
	Segments         int
	EmptySegments    int
	ActiveSegments   int
	DisabledSegments int
	ActiveElements   int
}

// Stats returns current shape statistics for the ring backend.
func (g *RingGenome) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Stats{
		Length:         g.length,
		ActiveElements: len(g.active),
	}
	for n := g.ring.nodes[sentinelRef].next; n != sentinelRef; n = g.ring.nodes[n].next {
		s.Segments++
		switch g.ring.nodes[n].seg.Kind {
		case KindEmpty:
			s.EmptySegments++
		case KindActive:
			s.ActiveSegments++
		case KindDisabled:
			s.DisabledSegments++
		}
	}
	return s
}

// Stats returns current shape statistics for the array backend, counting
// maximal uniform runs as segments so the numbers are comparable with the
// ring backend's broad shape (the ring deliberately keeps same-kind
// neighbors split, so its segment count is at least this one).
func (a *ArrayGenome) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Stats{
		Length:         int64(len(a.cells)),
		ActiveElements: len(a.active),
	}
	kindOf := func(c arrayCell) Kind {
		switch {
		case c.te == 0:
			return KindEmpty
		case c.disabled:
			return KindDisabled
		}
		return KindActive
	}
	for i, c := range a.cells {
		if i > 0 && kindOf(c) == kindOf(a.cells[i-1]) {
			continue
		}
		s.Segments++
		switch kindOf(c) {
		case KindEmpty:
			s.EmptySegments++
		case KindActive:
			s.ActiveSegments++
		case KindDisabled:
			s.DisabledSegments++
		}
	}
	return s
}

// CheckIntegrity verifies every structural invariant of the ring backend:
// the cycle is closed and consistent in both directions, all content
// segments have positive length, the segment lengths sum to the tracked
// total, and the element index is in exact bijection with the active
// segments. It returns an error wrapping ErrIntegrity on the first
// violation found, or nil.
func (g *RingGenome) CheckIntegrity() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[nodeRef]bool, g.ring.contentCount())
	activeSegs := make(map[nodeRef]TEID)
	var total int64

	n := g.ring.nodes[sentinelRef].next
	for n != sentinelRef {
		if seen[n] {
			return fmt.Errorf("%w: node %d visited twice in forward walk", ErrIntegrity, n)
		}
		seen[n] = true

		node := g.ring.nodes[n]
		if g.ring.nodes[node.next].prev != n {
			return fmt.Errorf("%w: node %d next/prev links disagree", ErrIntegrity, n)
		}
		if node.seg.Length <= 0 {
			return fmt.Errorf("%w: node %d has non-positive length %d", ErrIntegrity, n, node.seg.Length)
		}
		if node.seg.Kind == KindActive {
			if node.te == 0 {
				return fmt.Errorf("%w: active node %d has no element id", ErrIntegrity, n)
			}
			activeSegs[n] = node.te
		}
		if node.te > g.nextID {
			return fmt.Errorf("%w: node %d carries unissued id %d", ErrIntegrity, n, node.te)
		}
		total += node.seg.Length
		n = node.next
	}

	if g.ring.nodes[g.ring.nodes[sentinelRef].prev].next != sentinelRef {
		return fmt.Errorf("%w: sentinel prev link broken", ErrIntegrity)
	}
	if len(seen) != g.ring.contentCount() {
		return fmt.Errorf("%w: %d of %d content nodes unreachable from sentinel",
			ErrIntegrity, g.ring.contentCount()-len(seen), g.ring.contentCount())
	}
	if total != g.length {
		return fmt.Errorf("%w: segment lengths sum to %d, tracked length is %d",
			ErrIntegrity, total, g.length)
	}

	// Index <-> active-segment bijection, both directions.
	for te, n := range g.active {
		if !seen[n] {
			return fmt.Errorf("%w: index entry %d points outside the ring", ErrIntegrity, te)
		}
		node := g.ring.nodes[n]
		if node.seg.Kind != KindActive || node.te != te {
			return fmt.Errorf("%w: index entry %d points at a stale segment", ErrIntegrity, te)
		}
		delete(activeSegs, n)
	}
	for n, te := range activeSegs {
		return fmt.Errorf("%w: active segment %d (element %d) missing from index", ErrIntegrity, n, te)
	}

	return nil
}
