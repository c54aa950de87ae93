package state

import (
	"fmt"
	"regexp"
	"slices"
)

var namePattern = regexp.MustCompile(`^[0-9A-Za-z._-]+$`)

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%q is not a valid node name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(%q) = %d > 100 is too long", s, len(s))
	}
	return nil
}

// TopologyConfigValidator checks a topology document before it is used:
// node names must be well formed and unique, and every edge or update
// must reference declared nodes with a cost that is either non-negative
// or the RemoveLink sentinel.
func TopologyConfigValidator(cfg *TopologyCfg) error {
	seen := make([]Node, 0, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		if err := NameValidator(string(n)); err != nil {
			return err
		}
		if slices.Contains(seen, n) {
			return fmt.Errorf("duplicate node declaration: %s", n)
		}
		seen = append(seen, n)
	}
	if err := validateEdges(cfg.Edges, seen, "edge"); err != nil {
		return err
	}
	return validateEdges(cfg.Updates, seen, "update")
}

func validateEdges(edges []Edge, nodes []Node, kind string) error {
	for _, e := range edges {
		if !slices.Contains(nodes, e.A) {
			return fmt.Errorf("%s references undeclared node %q", kind, e.A)
		}
		if !slices.Contains(nodes, e.B) {
			return fmt.Errorf("%s references undeclared node %q", kind, e.B)
		}
		if e.A == e.B {
			return fmt.Errorf("%s endpoints must be distinct, got %q twice", kind, e.A)
		}
		if e.Cost < RemoveLink {
			return fmt.Errorf("%s %s-%s has invalid cost %d", kind, e.A, e.B, e.Cost)
		}
	}
	return nil
}
