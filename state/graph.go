package state

import (
	"fmt"
	"maps"
	"slices"
)

// Edge is an undirected link description as it appears in input: two node
// names and a cost. A cost of RemoveLink deletes the link.
type Edge struct {
	A    Node `yaml:"a"`
	B    Node `yaml:"b"`
	Cost int  `yaml:"cost"`
}

// Graph is the set of declared nodes and the active undirected weighted
// links between them. At most one link exists per unordered pair.
type Graph struct {
	adj map[Node]map[Node]int
}

func NewGraph() *Graph {
	return &Graph{adj: make(map[Node]map[Node]int)}
}

// AddNode declares a node. Declaring the same node twice is a no-op.
func (g *Graph) AddNode(n Node) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[Node]int)
	}
}

func (g *Graph) HasNode(n Node) bool {
	_, ok := g.adj[n]
	return ok
}

// SetLink adds or overwrites the undirected link between u and v. A cost
// of RemoveLink deletes the link, silently doing nothing if it is absent.
// Both endpoints must already be declared.
func (g *Graph) SetLink(u, v Node, cost int) error {
	if u == v {
		return fmt.Errorf("link endpoints must be distinct, got %q twice", u)
	}
	for _, n := range []Node{u, v} {
		if !g.HasNode(n) {
			return fmt.Errorf("node %q not declared", n)
		}
	}
	if cost == RemoveLink {
		delete(g.adj[u], v)
		delete(g.adj[v], u)
		return nil
	}
	if cost < 0 {
		return fmt.Errorf("link %s-%s has negative cost %d", u, v, cost)
	}
	g.adj[u][v] = cost
	g.adj[v][u] = cost
	return nil
}

// LinkCost returns the cost of the direct link between u and v, if any.
func (g *Graph) LinkCost(u, v Node) (int, bool) {
	c, ok := g.adj[u][v]
	return c, ok
}

// Neighbors returns the nodes directly linked to u with their costs.
func (g *Graph) Neighbors(u Node) map[Node]int {
	return maps.Clone(g.adj[u])
}

// NeighborNames returns the names of u's direct neighbors in ascending
// alphabetical order.
func (g *Graph) NeighborNames(u Node) []Node {
	return slices.Sorted(maps.Keys(g.adj[u]))
}

// Nodes returns all declared nodes in ascending alphabetical order.
func (g *Graph) Nodes() []Node {
	return slices.Sorted(maps.Keys(g.adj))
}

// BuildGraph builds the initial graph from declared node names and edges.
// A RemoveLink cost during the initial build has no link to remove and is
// accepted as a no-op. Edges referencing undeclared nodes are an error.
func BuildGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		if err := g.SetLink(e.A, e.B, e.Cost); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// CostIndex is a fixed alphabetical ordering of a node set with a
// name-position bijection. It must be rebuilt, never patched, whenever
// the node set changes; carry-over across rebuilds is keyed by name.
type CostIndex struct {
	names []Node
	pos   map[Node]int
}

func NewCostIndex(nodes []Node) *CostIndex {
	names := slices.Clone(nodes)
	slices.Sort(names)
	names = slices.Compact(names)
	pos := make(map[Node]int, len(names))
	for i, n := range names {
		pos[n] = i
	}
	return &CostIndex{names: names, pos: pos}
}

// Names returns the node names in ascending order. The returned slice is
// shared and must not be mutated.
func (ix *CostIndex) Names() []Node {
	return ix.names
}

func (ix *CostIndex) Len() int {
	return len(ix.names)
}

func (ix *CostIndex) Has(n Node) bool {
	_, ok := ix.pos[n]
	return ok
}

func (ix *CostIndex) PositionOf(n Node) (int, bool) {
	p, ok := ix.pos[n]
	return p, ok
}
