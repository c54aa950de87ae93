package core

import (
	"github.com/encodeous/vecsim/state"
)

// RouteEntry is one line of a node's routing table. NextHop is empty and
// Cost is Unreachable when no path exists.
type RouteEntry struct {
	Destination state.Node
	NextHop     state.Node
	Cost        state.Cost
}

// DeriveRoutingTables reads the converged best estimates into a
// per-source routing table, destinations in ascending alphabetical
// order. It is a pure read: the tie-break was already resolved during
// via selection and is not reapplied here.
func DeriveRoutingTables(tbl *Table) map[state.Node][]RouteEntry {
	names := tbl.Index.Names()
	out := make(map[state.Node][]RouteEntry, len(names))
	for _, src := range names {
		entries := make([]RouteEntry, 0, len(names)-1)
		for _, dst := range names {
			if dst == src {
				continue
			}
			est, ok := tbl.Best[src][dst]
			if !ok {
				entries = append(entries, RouteEntry{Destination: dst, Cost: state.Unreachable})
				continue
			}
			entries = append(entries, RouteEntry{Destination: dst, NextHop: est.Via, Cost: est.Cost})
		}
		out[src] = entries
	}
	return out
}
