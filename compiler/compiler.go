// Package compiler provides the entry points for generating the quantity
// package from a quantity table.
package compiler

import (
	"fmt"

	"github.com/syssam/siunits/compiler/gen"
	"github.com/syssam/siunits/compiler/load"
)

// LoadGraph loads the quantity table at path and builds the graph with
// the given options. An empty path loads the built-in table.
func LoadGraph(path string, opts ...gen.Option) (*gen.Graph, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	tbl, err := load.Load(path)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, tbl)
}

// Generate runs the codegen on the quantity table at path.
func Generate(path string, opts ...gen.Option) error {
	graph, err := LoadGraph(path, opts...)
	if err != nil {
		return err
	}
	if err := graph.Gen(); err != nil {
		return fmt.Errorf("generate %s: %w", graph, err)
	}
	return nil
}
