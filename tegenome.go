// Package tegenome models a circular genome subjected to insertion,
// duplication, and deactivation of transposable elements (TEs).
//
// Two interchangeable backends implement the same contract. RingGenome is
// the primary one: it run-length-encodes the genome as a circular doubly
// linked sequence of uniform segments, so arbitrarily long runs cost one
// node and every operation is proportional to the segment count rather
// than the genome length. ArrayGenome stores one cell per position and
// serves as a naive reference, mainly for cross-checking in tests.
//
// Neither backend ever merges adjacent same-kind segments or reclaims
// disabled ones, so the segment count of a RingGenome grows without bound
// over long operation sequences. That is an accepted property of the
// model, not a defect; callers driving very long scripts should expect
// per-operation cost to grow with the number of mutations performed.
package tegenome

// TEID uniquely identifies a transposable element within one genome.
// IDs are assigned from a counter starting at 1 and are never reused,
// not even after the element is disabled.
type TEID uint64

// Kind classifies a run of genome positions.
type Kind int

const (
	// KindEmpty is genome material carrying no transposable element.
	KindEmpty Kind = iota

	// KindActive is material occupied by an active (copyable) element.
	KindActive

	// KindDisabled is material occupied by a disabled element. Disabled
	// material is inert but keeps its place in the genome forever.
	KindDisabled
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindActive:
		return "active"
	case KindDisabled:
		return "disabled"
	}
	return "invalid"
}

// glyph returns the single-character rendering of one position of this kind.
func (k Kind) glyph() string {
	switch k {
	case KindActive:
		return "A"
	case KindDisabled:
		return "x"
	}
	return "-"
}

// Genome is the operation set shared by both backends.
//
// Implementations guard every method with one coarse per-instance lock: a
// mutation rewrites several adjacent links, so a concurrent reader could
// otherwise observe a torn topology. A single instance is still meant to
// be driven by one caller at a time.
type Genome interface {
	// InsertTE inserts a new active element of the given length starting
	// at position pos and returns its id. If pos falls inside an existing
	// active element, that element is disabled first (a collision).
	// Fails with ErrOutOfRange unless 0 <= pos < Length(), and with
	// ErrInvalidLength unless length > 0.
	InsertTE(pos, length int64) (TEID, error)

	// CopyTE duplicates the element te at a signed circular offset from
	// its current start position, wrapping past either end of the genome.
	// The source element is left untouched. Collisions at the landing
	// position behave as for InsertTE; a copy landing on its own source
	// disables the source. Returns the new id, or ErrElementNotActive if
	// te is unknown, disabled, or collision-killed.
	CopyTE(te TEID, offset int64) (TEID, error)

	// DisableTE disables the element te in place: its material remains in
	// the genome but renders as disabled and can no longer be copied.
	// Disabling an unknown or already-disabled element is a no-op.
	DisableTE(te TEID)

	// ActiveTEs returns the ids of all currently active elements in
	// ascending order.
	ActiveTEs() []TEID

	// Length returns the current total genome length. It never decreases.
	Length() int64

	// Render returns a linear view of the circular genome starting at
	// position 0: '-' for empty positions, 'A' for active element
	// material, and 'x' for disabled element material.
	Render() string
}
