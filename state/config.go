package state

import (
	"github.com/goccy/go-yaml"
)

// TopologyCfg is a full simulation input: the declared node set, the
// initial links, and an optional batch of link edits applied after the
// first convergence.
type TopologyCfg struct {
	Nodes   []Node `yaml:"nodes"`
	Edges   []Edge `yaml:"edges"`
	Updates []Edge `yaml:"updates,omitempty"`
}

// ParseTopologyCfg decodes and validates a YAML topology document.
func ParseTopologyCfg(data []byte) (*TopologyCfg, error) {
	var cfg TopologyCfg
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := TopologyConfigValidator(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
