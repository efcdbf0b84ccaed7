package layer

// Gate suppresses resyncs while a batch of edits runs.
//
// Forbid and Allow nest. While any Forbid is outstanding every Engine entry
// point returns immediately, and none of the tree or cache invariants hold
// until the caller allows and resyncs again. Not safe for concurrent use.
type Gate struct {
	depth int
}

// Forbid suppresses resyncs until the matching Allow.
func (g *Gate) Forbid() {
	g.depth++
}

// Allow releases one Forbid.
func (g *Gate) Allow() {
	if g.depth > 0 {
		g.depth--
	}
}

// Forbidden reports whether resyncs are currently suppressed.
func (g *Gate) Forbidden() bool {
	return g.depth > 0
}
