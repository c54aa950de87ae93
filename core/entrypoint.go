package core

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"

	"github.com/encodeous/vecsim/state"
)

// Renderer receives the observable output of a simulation: one call per
// completed round, and one call per converged routing table set. It is
// the boundary to the display layer.
type Renderer interface {
	DistanceTables(g *state.Graph, ix *state.CostIndex, snap RoundSnapshot) error
	RoutingTables(ix *state.CostIndex, routes map[state.Node][]RouteEntry) error
}

type Options struct {
	Renderer   Renderer
	LogLevel   slog.Level
	LogPath    string // if not empty, logs are also written to this file
	RoutesOnly bool   // suppress per-round distance tables
}

func newLogger(opts Options) (*slog.Logger, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        opts.LogLevel,
			AddSource:    false,
			CustomPrefix: "vecsim",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if opts.LogPath != "" {
		err := os.MkdirAll(path.Dir(opts.LogPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.LogLevel}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Start runs a full simulation: converge on the initial topology, render
// each round and the routing tables, then, if the config carries an
// update batch, apply it, warm-start from the converged state and
// re-converge. The whole run is a one-shot batch; any error aborts it
// with no partial output beyond rounds already rendered.
func Start(cfg *state.TopologyCfg, opts Options) error {
	log, err := newLogger(opts)
	if err != nil {
		return err
	}

	g, err := state.BuildGraph(cfg.Nodes, cfg.Edges)
	if err != nil {
		return fmt.Errorf("building topology: %w", err)
	}
	ix := state.NewCostIndex(g.Nodes())
	log.Debug("topology built", "nodes", ix.Len(), "edges", len(cfg.Edges))

	tbl := NewTable(ix)
	round, err := converge(g, tbl, 0, opts)
	if err != nil {
		return err
	}
	log.Debug("initial convergence complete", "rounds", round)

	if len(cfg.Updates) == 0 {
		return nil
	}

	if err := ApplyUpdates(g, cfg.Updates); err != nil {
		return fmt.Errorf("applying updates: %w", err)
	}
	ix = state.NewCostIndex(g.Nodes())
	tbl = Reseed(ix, tbl)
	log.Debug("updates applied", "edits", len(cfg.Updates))

	next, err := converge(g, tbl, round, opts)
	if err != nil {
		return err
	}
	log.Debug("re-convergence complete", "rounds", next-round)
	return nil
}

func converge(g *state.Graph, tbl *Table, startRound int, opts Options) (int, error) {
	snapshots, next, err := RunToConvergence(g, tbl, startRound)
	if err != nil {
		return next, err
	}
	if !opts.RoutesOnly {
		for _, snap := range snapshots {
			if err := opts.Renderer.DistanceTables(g, tbl.Index, snap); err != nil {
				return next, err
			}
		}
	}
	if err := opts.Renderer.RoutingTables(tbl.Index, DeriveRoutingTables(tbl)); err != nil {
		return next, err
	}
	return next, nil
}
