package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleYaml = `
nodes: [A, B, C]
edges:
  - {a: A, b: B, cost: 1}
  - {a: B, b: C, cost: 1}
  - {a: A, b: C, cost: 5}
updates:
  - {a: B, b: C, cost: -1}
`

func TestParseTopologyCfg(t *testing.T) {
	cfg, err := ParseTopologyCfg([]byte(sampleYaml))
	assert.NoError(t, err)
	assert.Equal(t, []Node{"A", "B", "C"}, cfg.Nodes)
	assert.Len(t, cfg.Edges, 3)
	assert.Equal(t, []Edge{{A: "B", B: "C", Cost: -1}}, cfg.Updates)
}

func TestParseTopologyCfg_Invalid(t *testing.T) {
	_, err := ParseTopologyCfg([]byte("nodes: [A]\nedges:\n  - {a: A, b: Z, cost: 1}\n"))
	assert.ErrorContains(t, err, "undeclared node")

	_, err = ParseTopologyCfg([]byte("nodes: ["))
	assert.Error(t, err)
}
