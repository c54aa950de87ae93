package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/encodeous/vecsim/state"
)

func converged(t *testing.T, g *state.Graph, ix *state.CostIndex) (*Table, int) {
	t.Helper()
	tbl := NewTable(ix)
	_, next, err := RunToConvergence(g, tbl, 0)
	require.NoError(t, err)
	return tbl, next
}

func TestApplyUpdates_RemoveLink(t *testing.T) {
	g, _ := triangle(t)
	err := ApplyUpdates(g, []state.Edge{{A: "B", B: "C", Cost: state.RemoveLink}})
	require.NoError(t, err)
	_, ok := g.LinkCost("B", "C")
	assert.False(t, ok)
}

func TestApplyUpdates_UnknownNode(t *testing.T) {
	g, _ := triangle(t)
	err := ApplyUpdates(g, []state.Edge{
		{A: "A", B: "B", Cost: 9},
		{A: "A", B: "Z", Cost: 1},
	})
	assert.ErrorContains(t, err, `undeclared node "Z"`)

	// the batch is rejected as a whole: the first edit must not land
	c, _ := g.LinkCost("A", "B")
	assert.Equal(t, 1, c)
}

func TestReseed_CarriesStateByName(t *testing.T) {
	g, ix := triangle(t)
	tbl, _ := converged(t, g, ix)

	ix2 := state.NewCostIndex(g.Nodes())
	next := Reseed(ix2, tbl)

	opt := cmp.AllowUnexported(state.Cost{})
	if diff := cmp.Diff(tbl.Best, next.Best, opt); diff != "" {
		t.Errorf("best estimates not carried over:\n%s", diff)
	}
	if diff := cmp.Diff(tbl.Rows, next.Rows, opt); diff != "" {
		t.Errorf("via rows not carried over:\n%s", diff)
	}

	// carried rows are copies, not aliases
	next.Rows["A"]["B"]["B"] = state.Unreachable
	assert.Equal(t, state.Finite(1), tbl.Rows["A"]["B"]["B"])
}

func TestWarmStart_RemoveLinkScenario(t *testing.T) {
	g, ix := triangle(t)
	tbl, round := converged(t, g, ix)
	require.Equal(t, 3, round)

	require.NoError(t, ApplyUpdates(g, []state.Edge{{A: "B", B: "C", Cost: state.RemoveLink}}))
	ix = state.NewCostIndex(g.Nodes())
	tbl = Reseed(ix, tbl)

	snapshots, _, err := RunToConvergence(g, tbl, round)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)
	assert.Equal(t, round, snapshots[0].Round)

	want := map[state.Node][]RouteEntry{
		"A": routes(
			RouteEntry{Destination: "B", NextHop: "B", Cost: state.Finite(1)},
			RouteEntry{Destination: "C", NextHop: "C", Cost: state.Finite(5)},
		),
		"B": routes(
			RouteEntry{Destination: "A", NextHop: "A", Cost: state.Finite(1)},
			RouteEntry{Destination: "C", NextHop: "A", Cost: state.Finite(6)},
		),
		"C": routes(
			RouteEntry{Destination: "A", NextHop: "A", Cost: state.Finite(5)},
			RouteEntry{Destination: "B", NextHop: "A", Cost: state.Finite(6)},
		),
	}
	if diff := cmp.Diff(want, DeriveRoutingTables(tbl), cmp.AllowUnexported(state.Cost{})); diff != "" {
		t.Errorf("post-update routing tables mismatch (-want +got):\n%s", diff)
	}
}

func TestWarmStart_EqualsColdStart(t *testing.T) {
	edits := []state.Edge{
		{A: "B", B: "C", Cost: state.RemoveLink},
		{A: "A", B: "C", Cost: 2},
	}

	// warm: converge, apply, reseed, re-converge
	g, ix := triangle(t)
	tbl, round := converged(t, g, ix)
	require.NoError(t, ApplyUpdates(g, edits))
	ix = state.NewCostIndex(g.Nodes())
	tbl = Reseed(ix, tbl)
	_, _, err := RunToConvergence(g, tbl, round)
	require.NoError(t, err)

	// cold: same post-update graph, blank table
	g2, _ := triangle(t)
	require.NoError(t, ApplyUpdates(g2, edits))
	ix2 := state.NewCostIndex(g2.Nodes())
	cold, _ := converged(t, g2, ix2)

	opt := cmp.AllowUnexported(state.Cost{})
	if diff := cmp.Diff(DeriveRoutingTables(cold), DeriveRoutingTables(tbl), opt); diff != "" {
		t.Errorf("warm-started tables diverge from cold start (-cold +warm):\n%s", diff)
	}
}

func TestWarmStart_CountToInfinityHitsCap(t *testing.T) {
	// removing B-C cuts C off entirely; the carried finite estimates to C
	// then count up forever, which the round cap must catch
	g, ix := buildGraph(t,
		[]state.Node{"A", "B", "C"},
		[]state.Edge{
			{A: "A", B: "B", Cost: 1},
			{A: "B", B: "C", Cost: 1},
		})
	tbl, round := converged(t, g, ix)

	require.NoError(t, ApplyUpdates(g, []state.Edge{{A: "B", B: "C", Cost: state.RemoveLink}}))
	ix = state.NewCostIndex(g.Nodes())
	tbl = Reseed(ix, tbl)

	_, _, err := RunToConvergence(g, tbl, round)
	assert.True(t, errors.Is(err, ErrNotConverged))
}
