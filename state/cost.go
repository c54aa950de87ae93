package state

import "strconv"

// Node is the unique name of a router in the simulated topology.
type Node string

// Cost is the distance between two nodes. It is either a finite
// non-negative value or Unreachable; arithmetic never mixes the two.
// The zero value is Unreachable.
type Cost struct {
	finite bool
	value  int
}

// Unreachable is the explicit absence of a finite-cost path.
var Unreachable = Cost{}

func Finite(v int) Cost {
	return Cost{finite: true, value: v}
}

func (c Cost) IsFinite() bool {
	return c.finite
}

// Value returns the finite cost. It must not be called on Unreachable.
func (c Cost) Value() int {
	if !c.finite {
		panic("state: Value called on unreachable cost")
	}
	return c.value
}

// Add returns the sum of two costs. Any Unreachable operand absorbs.
func (c Cost) Add(o Cost) Cost {
	if !c.finite || !o.finite {
		return Unreachable
	}
	return Finite(c.value + o.value)
}

// Less reports whether c is strictly better than o. Every finite cost is
// better than Unreachable; two Unreachable costs are equal.
func (c Cost) Less(o Cost) bool {
	if !c.finite {
		return false
	}
	if !o.finite {
		return true
	}
	return c.value < o.value
}

func (c Cost) String() string {
	if !c.finite {
		return "INF"
	}
	return strconv.Itoa(c.value)
}
