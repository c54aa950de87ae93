package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/encodeous/vecsim/core"
	"github.com/encodeous/vecsim/state"
)

// PrettyRenderer draws the same tables as TextRenderer with pterm
// styling, for interactive use. The canonical text format is the
// machine-comparable one; this one is for humans.
type PrettyRenderer struct {
	W io.Writer
}

func NewPrettyRenderer(w io.Writer) *PrettyRenderer {
	return &PrettyRenderer{W: w}
}

func (r *PrettyRenderer) DistanceTables(g *state.Graph, ix *state.CostIndex, snap core.RoundSnapshot) error {
	for _, src := range ix.Names() {
		fmt.Fprint(r.W, pterm.DefaultSection.Sprintf("Distance table of router %s at t=%d", src, snap.Round))
		header := []string{"via \\ to"}
		for _, dst := range ix.Names() {
			if dst != src {
				header = append(header, string(dst))
			}
		}
		data := pterm.TableData{header}
		for _, via := range g.NeighborNames(src) {
			row := []string{string(via)}
			for _, dst := range ix.Names() {
				if dst == src {
					continue
				}
				row = append(row, snap.Rows[src][dst][via].String())
			}
			data = append(data, row)
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.W, out)
	}
	return nil
}

func (r *PrettyRenderer) RoutingTables(ix *state.CostIndex, routes map[state.Node][]core.RouteEntry) error {
	for _, src := range ix.Names() {
		fmt.Fprint(r.W, pterm.DefaultSection.Sprintf("Routing table of router %s", src))
		data := pterm.TableData{{"destination", "next hop", "cost"}}
		for _, e := range routes[src] {
			nextHop := string(e.NextHop)
			if !e.Cost.IsFinite() {
				nextHop = state.Unreachable.String()
			}
			data = append(data, []string{string(e.Destination), nextHop, e.Cost.String()})
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.W, out)
	}
	return nil
}
