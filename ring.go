package tegenome

// segmentRing is a circular doubly linked sequence of segments backed by
// an arena. Slot 0 holds the sentinel; content nodes occupy the remaining
// slots in allocation order, which is unrelated to ring order.
//
// The sentinel sits between the last and the first position of the
// genome. Traversal helpers skip it transparently, which is what makes
// the genome circular: walking off either end lands on the other with no
// special case at position 0.
type segmentRing struct {
	nodes []ringNode
}

// newSegmentRing creates a ring holding a single empty segment of length n.
func newSegmentRing(n int64) *segmentRing {
	r := &segmentRing{nodes: make([]ringNode, 1, 8)}
	first := r.alloc(Segment{Kind: KindEmpty, Length: n}, 0)
	r.linkAfter(sentinelRef, first)
	return r
}

// alloc appends a fresh unlinked node to the arena and returns its
// reference. Callers must not hold node pointers across a call: the
// append may relocate the arena.
func (r *segmentRing) alloc(seg Segment, te TEID) nodeRef {
	n := nodeRef(len(r.nodes))
	r.nodes = append(r.nodes, ringNode{seg: seg, te: te})
	return n
}

// linkAfter splices node n into the cycle immediately after node at.
func (r *segmentRing) linkAfter(at, n nodeRef) {
	nx := r.nodes[at].next
	r.nodes[n].prev = at
	r.nodes[n].next = nx
	r.nodes[at].next = n
	r.nodes[nx].prev = n
}

// linkBefore splices node n into the cycle immediately before node at.
func (r *segmentRing) linkBefore(at, n nodeRef) {
	r.linkAfter(r.nodes[at].prev, n)
}

// nextContent returns the content node following n in ring order,
// skipping the sentinel.
func (r *segmentRing) nextContent(n nodeRef) nodeRef {
	n = r.nodes[n].next
	if n == sentinelRef {
		n = r.nodes[n].next
	}
	return n
}

// prevContent returns the content node preceding n in ring order,
// skipping the sentinel.
func (r *segmentRing) prevContent(n nodeRef) nodeRef {
	n = r.nodes[n].prev
	if n == sentinelRef {
		n = r.nodes[n].prev
	}
	return n
}

// locate finds the segment covering position pos and the offset of pos
// within it. The caller guarantees 0 <= pos < total length. Cost is
// proportional to the segment count, not to pos.
func (r *segmentRing) locate(pos int64) (nodeRef, int64) {
	var end int64
	for n := r.nodes[sentinelRef].next; n != sentinelRef; n = r.nodes[n].next {
		end += r.nodes[n].seg.Length
		if pos < end {
			return n, pos - (end - r.nodes[n].seg.Length)
		}
	}
	// Unreachable for a valid pos; the sentinel result makes a caller
	// bug fail loudly in CheckIntegrity rather than corrupt the ring.
	return sentinelRef, 0
}

// walk advances delta positions from the start of node start, forward for
// positive delta and backward for negative, wrapping through the sentinel
// as often as needed. It returns the landing node and the offset within
// it, normalized so that 0 <= offset < landing segment length. A delta of
// zero lands on start itself at offset 0.
func (r *segmentRing) walk(start nodeRef, delta int64) (nodeRef, int64) {
	n := start
	if delta >= 0 {
		for delta >= r.nodes[n].seg.Length {
			delta -= r.nodes[n].seg.Length
			n = r.nextContent(n)
		}
		return n, delta
	}
	for delta < 0 {
		n = r.prevContent(n)
		delta += r.nodes[n].seg.Length
	}
	return n, delta
}

// splitInsert splits node at at the given offset and links a new segment
// there, producing remnant-A (same kind, length offset), the new segment,
// and remnant-B (same kind, remaining length) in ring order. Remnant-A is
// the original node shrunk in place; at offset 0 it is not created at all
// and the new segment links directly before at, so segment lengths stay
// strictly positive. Returns the new segment's node. Total ring length
// grows by exactly seg.Length.
//
// splitInsert is purely topological: collision kills and index updates
// are the caller's job and must happen before the split.
func (r *segmentRing) splitInsert(at nodeRef, offset int64, seg Segment, te TEID) nodeRef {
	n := r.alloc(seg, te)
	if offset == 0 {
		r.linkBefore(at, n)
		return n
	}
	kind := r.nodes[at].seg.Kind
	owner := r.nodes[at].te
	rest := r.nodes[at].seg.Length - offset
	r.nodes[at].seg.Length = offset
	r.linkAfter(at, n)
	if rest > 0 {
		b := r.alloc(Segment{Kind: kind, Length: rest}, owner)
		r.linkAfter(n, b)
	}
	return n
}

// contentCount returns the number of content nodes in the arena.
func (r *segmentRing) contentCount() int {
	return len(r.nodes) - 1
}
