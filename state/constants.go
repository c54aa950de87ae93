package state

// RemoveLink is the reserved cost sentinel that deletes a link instead of
// setting a cost. It is never stored in a Graph.
const RemoveLink = -1

var (
	// RoundCapFactor bounds a convergence run at RoundCapFactor * nodes
	// rounds. Genuine convergence needs at most nodes-1 rounds of change,
	// so hitting the cap means the run cannot reach a fixed point.
	RoundCapFactor = 3
)
