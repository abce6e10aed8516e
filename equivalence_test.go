package tegenome

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptOp is one step of a generated operation script.
type scriptOp struct {
	op     string // insert, copy, disable
	pos    int64
	length int64
	te     TEID
	offset int64
}

func (s scriptOp) String() string {
	switch s.op {
	case "insert":
		return fmt.Sprintf("insert(%d, %d)", s.pos, s.length)
	case "copy":
		return fmt.Sprintf("copy(%d, %d)", s.te, s.offset)
	}
	return fmt.Sprintf("disable(%d)", s.te)
}

// applyOp runs one step against a backend and reports whether it
// mutated the genome.
func applyOp(t *testing.T, g Genome, op scriptOp) bool {
	t.Helper()
	switch op.op {
	case "insert":
		_, err := g.InsertTE(op.pos, op.length)
		return err == nil
	case "copy":
		_, err := g.CopyTE(op.te, op.offset)
		return err == nil
	case "disable":
		g.DisableTE(op.te)
		return true
	}
	t.Fatalf("unknown op %q", op.op)
	return false
}

// randomOp draws a plausible next step given the current state; it
// deliberately includes out-of-range positions, inactive ids, and
// lapping offsets so declined operations get exercised too.
func randomOp(rng *rand.Rand, length int64, issued TEID) scriptOp {
	switch rng.Intn(10) {
	case 0, 1, 2, 3:
		return scriptOp{
			op:     "insert",
			pos:    rng.Int63n(length+2) - 1, // occasionally invalid
			length: int64(rng.Intn(6)),       // occasionally zero
		}
	case 4, 5, 6, 7:
		return scriptOp{
			op:     "copy",
			te:     TEID(rng.Int63n(int64(issued) + 2)), // occasionally unknown
			offset: rng.Int63n(4*length+1) - 2*length,   // laps both ways
		}
	default:
		return scriptOp{op: "disable", te: TEID(rng.Int63n(int64(issued) + 2))}
	}
}

// TestBackendEquivalence replays seeded random scripts against the ring
// backend and the dense oracle, requiring identical observables after
// every single step.
func TestBackendEquivalence(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))

			ring := mustNew(t, 20)
			oracle := mustNewArray(t, 20)

			var issued TEID
			for step := 0; step < 300; step++ {
				op := randomOp(rng, ring.Length(), issued)

				ringOK := applyOp(t, ring, op)
				oracleOK := applyOp(t, oracle, op)
				require.Equal(t, oracleOK, ringOK, "step %d %v: backends disagree on success", step, op)
				if ringOK && op.op != "disable" {
					issued++
				}

				require.Equal(t, oracle.Length(), ring.Length(), "step %d %v: length", step, op)
				require.Equal(t, oracle.Render(), ring.Render(), "step %d %v: rendering", step, op)
				require.Equal(t, oracle.ActiveTEs(), ring.ActiveTEs(), "step %d %v: active set", step, op)
				require.NoError(t, ring.CheckIntegrity(), "step %d %v", step, op)
			}
		})
	}
}

// TestActiveSetMatchesHistory checks the bookkeeping property against an
// independent model: the active set is exactly the ids created and not
// subsequently disabled or collision-killed.
func TestActiveSetMatchesHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := mustNew(t, 25)

	created := map[TEID]bool{}
	var issued TEID

	for step := 0; step < 400; step++ {
		op := randomOp(rng, g.Length(), issued)

		// Work out which element, if any, the step will kill. A
		// successful insert or copy kills the active occupant of its
		// landing position; render exposes occupancy only by glyph, so
		// resolve the victim through the backend's own index first.
		switch op.op {
		case "insert":
			if te, err := g.InsertTE(op.pos, op.length); err == nil {
				issued++
				created[te] = true
				reconcile(t, g, created)
			}
		case "copy":
			if te, err := g.CopyTE(op.te, op.offset); err == nil {
				issued++
				created[te] = true
				reconcile(t, g, created)
			}
		case "disable":
			g.DisableTE(op.te)
			delete(created, op.te)
		}

		want := make([]TEID, 0, len(created))
		for te := range created {
			want = append(want, te)
		}
		assert.ElementsMatch(t, want, g.ActiveTEs(), "step %d %v", step, op)
	}
}

// reconcile drops from the model any id the genome reports inactive;
// only a collision during the step just applied can have removed one,
// and at most one element can be killed per step.
func reconcile(t *testing.T, g Genome, created map[TEID]bool) {
	t.Helper()
	live := map[TEID]bool{}
	for _, te := range g.ActiveTEs() {
		live[te] = true
	}
	killed := 0
	for te := range created {
		if !live[te] {
			delete(created, te)
			killed++
		}
	}
	require.LessOrEqual(t, killed, 1, "one step killed %d elements", killed)
}

// TestCollisionGranularityAgreement pins the canonical collision rule of
// both backends: an insertion anywhere inside an active element's
// footprint disables the whole element, not just the struck position.
// The two backends phrase the check differently (covering segment versus
// occupant cell), so the agreement is asserted rather than assumed.
func TestCollisionGranularityAgreement(t *testing.T) {
	const elemStart, elemLen = 4, 5

	for off := int64(0); off < elemLen; off++ {
		t.Run(fmt.Sprintf("offset%d", off), func(t *testing.T) {
			ring := mustNew(t, 20)
			oracle := mustNewArray(t, 20)

			rte := mustInsert(t, ring, elemStart, elemLen)
			ote := mustInsert(t, oracle, elemStart, elemLen)
			require.Equal(t, rte, ote)

			rNew := mustInsert(t, ring, elemStart+off, 2)
			oNew := mustInsert(t, oracle, elemStart+off, 2)

			// The struck element is gone from both active sets.
			assert.Equal(t, []TEID{rNew}, ring.ActiveTEs())
			assert.Equal(t, []TEID{oNew}, oracle.ActiveTEs())

			// Its entire footprint renders disabled except where the new
			// element overwrote nothing (insertion shifts, never erases):
			// all elemLen original positions must still be present as 'x'.
			require.Equal(t, oracle.Render(), ring.Render())
			xs := 0
			for _, c := range ring.Render() {
				if c == 'x' {
					xs++
				}
			}
			assert.Equal(t, int(elemLen), xs, "whole footprint disabled")
		})
	}
}

// TestLengthAccounting checks the bookkeeping contract across both
// backends: final length equals the initial size plus the lengths of
// every operation that did not fail.
func TestLengthAccounting(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, newGenome := range []func() Genome{
		func() Genome { return mustNew(t, 15) },
		func() Genome { return mustNewArray(t, 15) },
	} {
		g := newGenome()
		want := int64(15)
		var issued TEID

		for step := 0; step < 200; step++ {
			op := randomOp(rng, g.Length(), issued)
			switch op.op {
			case "insert":
				if _, err := g.InsertTE(op.pos, op.length); err == nil {
					issued++
					want += op.length
				}
			case "copy":
				if _, err := g.CopyTE(op.te, op.offset); err == nil {
					issued++
					want += copyLength(g)
				}
			case "disable":
				g.DisableTE(op.te)
			}
			require.Equal(t, want, g.Length())
		}
	}
}

// copyLength recovers the length assigned to the most recently created
// element; both backends give a copy exactly its source's length.
func copyLength(g Genome) int64 {
	switch b := g.(type) {
	case *RingGenome:
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.ring.nodes[b.active[b.nextID]].seg.Length
	case *ArrayGenome:
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.lengths[b.nextID]
	}
	return 0
}
