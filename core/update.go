package core

import (
	"fmt"
	"maps"

	"github.com/encodeous/vecsim/state"
)

// ApplyUpdates applies a batch of link edits to g in input order. A cost
// of state.RemoveLink deletes the link. An edit naming a node that was
// never declared is fatal; the graph is left untouched in that case.
func ApplyUpdates(g *state.Graph, edits []state.Edge) error {
	for _, e := range edits {
		for _, n := range []state.Node{e.A, e.B} {
			if !g.HasNode(n) {
				return fmt.Errorf("update references undeclared node %q", n)
			}
		}
	}
	for _, e := range edits {
		if err := g.SetLink(e.A, e.B, e.Cost); err != nil {
			return err
		}
	}
	return nil
}

// Reseed builds the table for a rebuilt index, warm-started from a prior
// converged table: best estimates and via rows are carried over by name
// for every pair present in both indices, and every other pair starts
// with no path. The warm start only saves rounds; a cold start converges
// to the identical fixed point.
func Reseed(ix *state.CostIndex, prev *Table) *Table {
	next := NewTable(ix)
	for _, a := range ix.Names() {
		if !prev.Index.Has(a) {
			continue
		}
		for _, b := range ix.Names() {
			if a == b || !prev.Index.Has(b) {
				continue
			}
			if est, ok := prev.Best[a][b]; ok {
				next.Best[a][b] = est
			}
			if row, ok := prev.Rows[a][b]; ok {
				next.Rows[a][b] = maps.Clone(row)
			}
		}
	}
	return next
}
