package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/encodeous/vecsim/state"
)

// readTopology loads the simulation input from the --file flag or stdin,
// in either the token protocol or YAML form.
func readTopology() (*state.TopologyCfg, error) {
	var r io.Reader = os.Stdin
	if inputPath != "" {
		file, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(file)
	}
	if yamlInput {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return state.ParseTopologyCfg(data)
	}
	return state.ParseTopology(r)
}
