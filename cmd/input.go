package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/csrd-engine/internal/engine"
)

// loadModuleInput reads a module input document from a JSON file, or from
// stdin when path is "-".
func loadModuleInput(path string) (*engine.ModuleInput, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "read input %s", path)
	}

	var in engine.ModuleInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, eris.Wrap(err, "parse input")
	}
	return &in, nil
}
