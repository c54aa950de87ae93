// Package display renders round snapshots and routing tables produced by
// the core. It never recomputes routing state.
package display

import (
	"fmt"
	"io"

	"github.com/encodeous/vecsim/core"
	"github.com/encodeous/vecsim/state"
)

const colWidth = 5

// TextRenderer writes the canonical plain-text tables: width-padded
// columns, destinations across, one row per neighbor-as-via, and the
// literal token INF for unreachable costs.
type TextRenderer struct {
	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) DistanceTables(g *state.Graph, ix *state.CostIndex, snap core.RoundSnapshot) error {
	for _, src := range ix.Names() {
		if _, err := fmt.Fprintf(r.W, "Distance Table of router %s at t=%d:\n", src, snap.Round); err != nil {
			return err
		}
		pad(r.W, "")
		for _, dst := range ix.Names() {
			if dst != src {
				pad(r.W, string(dst))
			}
		}
		fmt.Fprintln(r.W)
		for _, via := range g.NeighborNames(src) {
			pad(r.W, string(via))
			for _, dst := range ix.Names() {
				if dst == src {
					continue
				}
				pad(r.W, snap.Rows[src][dst][via].String())
			}
			fmt.Fprintln(r.W)
		}
		if _, err := fmt.Fprintln(r.W); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) RoutingTables(ix *state.CostIndex, routes map[state.Node][]core.RouteEntry) error {
	for _, src := range ix.Names() {
		if _, err := fmt.Fprintf(r.W, "Routing Table of router %s:\n", src); err != nil {
			return err
		}
		for _, e := range routes[src] {
			nextHop := string(e.NextHop)
			if !e.Cost.IsFinite() {
				nextHop = state.Unreachable.String()
			}
			if _, err := fmt.Fprintf(r.W, "%s,%s,%s\n", e.Destination, nextHop, e.Cost); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.W); err != nil {
			return err
		}
	}
	return nil
}

func pad(w io.Writer, s string) {
	fmt.Fprintf(w, "%-*s", colWidth, s)
}
