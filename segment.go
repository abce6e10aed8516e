package tegenome

// Segment describes one maximal run of uniform genome material: its kind
// and its length in positions. A segment is owned by exactly one ring
// node and is never shared.
type Segment struct {
	Kind   Kind
	Length int64 // always > 0 for content segments
}

// nodeRef addresses a ring node within its owning arena. References stay
// valid for the life of the genome: nodes are appended, never removed or
// relocated.
type nodeRef int32

// sentinelRef is the arena slot of the sentinel node. The sentinel
// carries no content; it only anchors position 0 and closes the cycle.
const sentinelRef nodeRef = 0

// ringNode is one arena record: a segment plus its neighbors in ring
// order. Links are arena indices rather than pointers, so the arena owns
// every record and the ring merely encodes traversal order over them.
type ringNode struct {
	seg Segment

	// te is the element occupying this segment, or 0 for empty material.
	// The field is kept after the element is disabled or the segment is
	// split; it records provenance, while activity is tracked solely by
	// the element index.
	te TEID

	prev, next nodeRef
}
