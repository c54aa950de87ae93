package core

import (
	"errors"
	"fmt"

	"github.com/encodeous/vecsim/state"
)

// ErrNotConverged is reported when a run exceeds the round safety cap.
// It signals an algorithm failure (such as count-to-infinity after a
// warm-started disconnection), never an input error.
var ErrNotConverged = errors.New("relaxation did not reach a fixed point")

// Estimate is the currently selected route for a (source, destination)
// pair: the neighbor to hop through first and the total cost. The zero
// value means no path is known.
type Estimate struct {
	Via  state.Node
	Cost state.Cost
}

// ViaRow maps each candidate via to the cost of reaching a destination
// through it.
type ViaRow map[state.Node]state.Cost

// Table is the full relaxation state for one node set: per ordered
// (source, destination) pair, the via cost row and the selected best
// estimate. Self pairs are pinned at cost zero and never stored.
type Table struct {
	Index *state.CostIndex
	Best  map[state.Node]map[state.Node]Estimate
	Rows  map[state.Node]map[state.Node]ViaRow
}

// NewTable returns a cold-start table: every pair starts with no path
// and an empty via row.
func NewTable(ix *state.CostIndex) *Table {
	t := &Table{
		Index: ix,
		Best:  make(map[state.Node]map[state.Node]Estimate, ix.Len()),
		Rows:  make(map[state.Node]map[state.Node]ViaRow, ix.Len()),
	}
	for _, n := range ix.Names() {
		t.Best[n] = make(map[state.Node]Estimate)
		t.Rows[n] = make(map[state.Node]ViaRow)
	}
	return t
}

// BestCost is the cost a node believes it can reach a destination at.
// Self distance is always zero and lives outside the relaxation table.
func (t *Table) BestCost(from, to state.Node) state.Cost {
	if from == to {
		return state.Finite(0)
	}
	return t.Best[from][to].Cost
}

// RoundSnapshot is the observable state after one completed round: the
// full per-source via rows, plus the round counter value. The rows are
// shared with the round buffer, which is replaced wholesale and never
// mutated in place, so the snapshot stays valid.
type RoundSnapshot struct {
	Round int
	Rows  map[state.Node]map[state.Node]ViaRow
}

// RunToConvergence executes synchronous relaxation rounds over g until a
// round changes no (source, destination, via) cell. It returns one
// snapshot per non-final round, numbered from startRound, and the next
// counter value. The round cap only guards against runs that cannot
// converge; it never fires on a cold start.
func RunToConvergence(g *state.Graph, tbl *Table, startRound int) ([]RoundSnapshot, int, error) {
	limit := state.RoundCapFactor * tbl.Index.Len()
	round := startRound
	var snapshots []RoundSnapshot
	for executed := 0; ; executed++ {
		if executed > limit {
			return nil, round, fmt.Errorf("%w after %d rounds", ErrNotConverged, executed)
		}
		if !runRound(g, tbl) {
			return snapshots, round, nil
		}
		snapshots = append(snapshots, RoundSnapshot{Round: round, Rows: tbl.Rows})
		round++
	}
}

// runRound computes a complete new round buffer from the previous
// round's best estimates and swaps it in. Pairs computed within the
// same round never observe each other's new values.
func runRound(g *state.Graph, tbl *Table) bool {
	names := tbl.Index.Names()
	newBest := make(map[state.Node]map[state.Node]Estimate, len(names))
	newRows := make(map[state.Node]map[state.Node]ViaRow, len(names))
	changed := false

	for _, src := range names {
		newBest[src] = make(map[state.Node]Estimate, len(names)-1)
		newRows[src] = make(map[state.Node]ViaRow, len(names)-1)
		for _, dst := range names {
			if dst == src {
				continue
			}
			row := make(ViaRow, len(names)-1)
			for _, via := range names {
				if via == src {
					continue
				}
				direct := state.Unreachable
				if c, ok := g.LinkCost(src, via); ok {
					direct = state.Finite(c)
				}
				cost := direct.Add(tbl.BestCost(via, dst))
				row[via] = cost
				if prev, ok := tbl.Rows[src][dst][via]; !ok || prev != cost {
					changed = true
				}
			}
			newRows[src][dst] = row
			if est, ok := selectVia(names, row); ok {
				newBest[src][dst] = est
			}
		}
	}

	tbl.Best = newBest
	tbl.Rows = newRows
	return changed
}

// selectVia picks the minimum finite cost in a row. Candidates are
// scanned in ascending name order and only a strictly smaller cost
// displaces the current choice, so ties resolve to the alphabetically
// smallest via.
func selectVia(names []state.Node, row ViaRow) (Estimate, bool) {
	best := Estimate{Cost: state.Unreachable}
	found := false
	for _, via := range names {
		cost, ok := row[via]
		if !ok || !cost.IsFinite() {
			continue
		}
		if !found || cost.Less(best.Cost) {
			best = Estimate{Via: via, Cost: cost}
			found = true
		}
	}
	return best, found
}
