package state

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

/*
ParseTopology reads the whitespace-separated token protocol:

	A B C
	START
	A B 1
	B C 1
	A C 5
	UPDATE
	B C -1
	END

Node names are listed up to the START marker, initial links up to the
UPDATE marker, and link edits up to the END marker. The update section
may be empty. A malformed cost token or a missing marker is fatal.
*/
func ParseTopology(r io.Reader) (*TopologyCfg, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	cfg := &TopologyCfg{}
	for {
		tok, err := nextToken(sc, "START")
		if err != nil {
			return nil, err
		}
		if tok == "START" {
			break
		}
		cfg.Nodes = append(cfg.Nodes, Node(tok))
	}

	var err error
	cfg.Edges, err = parseEdgeSection(sc, "UPDATE")
	if err != nil {
		return nil, err
	}
	cfg.Updates, err = parseEdgeSection(sc, "END")
	if err != nil {
		return nil, err
	}

	if err := TopologyConfigValidator(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseEdgeSection(sc *bufio.Scanner, marker string) ([]Edge, error) {
	var edges []Edge
	for {
		tok, err := nextToken(sc, marker)
		if err != nil {
			return nil, err
		}
		if tok == marker {
			return edges, nil
		}
		u := tok
		v, err := nextToken(sc, marker)
		if err != nil {
			return nil, err
		}
		costTok, err := nextToken(sc, marker)
		if err != nil {
			return nil, err
		}
		cost, err := strconv.Atoi(costTok)
		if err != nil {
			return nil, fmt.Errorf("malformed cost token %q for link %s-%s", costTok, u, v)
		}
		edges = append(edges, Edge{A: Node(u), B: Node(v), Cost: cost})
	}
}

func nextToken(sc *bufio.Scanner, marker string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of input before %s marker", marker)
	}
	return sc.Text(), nil
}
