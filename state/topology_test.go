package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleTopology = `A B C
START
A B 1
B C 1
A C 5
UPDATE
B C -1
END
`

func TestParseTopology(t *testing.T) {
	cfg, err := ParseTopology(strings.NewReader(sampleTopology))
	assert.NoError(t, err)
	assert.Equal(t, []Node{"A", "B", "C"}, cfg.Nodes)
	assert.Equal(t, []Edge{
		{A: "A", B: "B", Cost: 1},
		{A: "B", B: "C", Cost: 1},
		{A: "A", B: "C", Cost: 5},
	}, cfg.Edges)
	assert.Equal(t, []Edge{{A: "B", B: "C", Cost: -1}}, cfg.Updates)
}

func TestParseTopology_EmptyUpdates(t *testing.T) {
	cfg, err := ParseTopology(strings.NewReader("A B\nSTART\nA B 2\nUPDATE\nEND\n"))
	assert.NoError(t, err)
	assert.Empty(t, cfg.Updates)
}

func TestParseTopology_MalformedCost(t *testing.T) {
	_, err := ParseTopology(strings.NewReader("A B\nSTART\nA B x\nUPDATE\nEND\n"))
	assert.ErrorContains(t, err, "malformed cost token")
}

func TestParseTopology_MissingMarker(t *testing.T) {
	_, err := ParseTopology(strings.NewReader("A B C\n"))
	assert.ErrorContains(t, err, "before START")

	_, err = ParseTopology(strings.NewReader("A B\nSTART\nA B 1\n"))
	assert.ErrorContains(t, err, "before UPDATE")

	_, err = ParseTopology(strings.NewReader("A B\nSTART\nA B 1\nUPDATE\n"))
	assert.ErrorContains(t, err, "before END")
}

func TestParseTopology_UndeclaredNode(t *testing.T) {
	_, err := ParseTopology(strings.NewReader("A B\nSTART\nA Z 1\nUPDATE\nEND\n"))
	assert.ErrorContains(t, err, `undeclared node "Z"`)

	_, err = ParseTopology(strings.NewReader("A B\nSTART\nA B 1\nUPDATE\nA Z 2\nEND\n"))
	assert.ErrorContains(t, err, `undeclared node "Z"`)
}
