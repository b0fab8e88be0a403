package suite

// resolveTree recomputes every node's effective skip from scratch. It runs
// over the whole tree after every insertion; the only-wins rule depends on
// global knowledge, so the full rescan is deliberate and must not be
// replaced with incremental state.
//
// Rules:
//  1. When any node in the tree carries the only mark, every node's
//     effective skip is true unless that node is itself marked only.
//  2. An explicit skip mark always forces effective skip, even on a node
//     that also carries only.
//  3. With no only mark anywhere, effective skip equals each node's own
//     explicit skip mark.
func resolveTree(root *Node) {
	onlyExists := false
	for n := range root.All() {
		if n.opts.Only {
			onlyExists = true
			break
		}
	}
	for n := range root.All() {
		switch {
		case n.opts.Skip:
			n.effectiveSkip = true
		case onlyExists:
			n.effectiveSkip = !n.opts.Only
		default:
			n.effectiveSkip = false
		}
	}
}
