package tegenome

// elementIndex maps an element id to the ring node currently holding it.
// It is a pure lookup table: entries exist exactly for active elements
// and confer no ownership. Every ring mutation that creates, disables,
// or collision-kills an element updates the index in the same step, so
// no entry ever points at a stale active segment.
type elementIndex map[TEID]nodeRef

func (ix elementIndex) register(te TEID, n nodeRef) {
	ix[te] = n
}

func (ix elementIndex) lookup(te TEID) (nodeRef, bool) {
	n, ok := ix[te]
	return n, ok
}

func (ix elementIndex) unregister(te TEID) {
	delete(ix, te)
}
