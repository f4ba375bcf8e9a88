// Package gen provides code generation for typed SI quantities.
//
// This package turns the quantity table loaded by the load package into a
// Graph of quantity types and conversion edges, validates it, and generates
// a Go package holding one generic struct per quantity.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Quantity table (quantities.yaml)
//	        ↓
//	   load.Table
//	        ↓
//	   Graph (types, units, edges)
//	        ↓
//	   JenniferGenerator + TemplateWriter
//	        ↓
//	   Generated code (si/)
//
// # Key Types
//
//   - Graph: Holds all Type definitions and the conversion edges between them
//   - Type: A quantity type with its dimension, units and edges
//   - Unit: A unit of a type and its affine conversion to the canonical unit
//   - Edge: A conversion Left * Right = Result or Left / Right = Result
//   - Dimension: The exponents of a type over the SI base dimensions
//   - Config: Global configuration for code generation
//
// # Edges
//
// Edges come from two sources. Dimensional analysis adds an edge for every
// product or quotient of two graph types whose dimension belongs to a graph
// type. Laws listed in the table add edges between types that share a
// dimension with another type, such as torque and energy, and are therefore
// kept out of dimensional analysis.
//
// A graph is valid when it is closed: for every A * B = C it holds
// C / A = B and C / B = A, and for every A / B = C it holds A / C = B and
// C * B = A.
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - SchemaError: Quantity table errors
//   - ConfigError: Configuration errors
//   - EdgeError: Inconsistent, conflicting or unclosed edges
//   - GenerationError: Code generation errors
//   - ValidationError: Invalid unit factors
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, table)
//	if err != nil {
//	    if gen.IsEdgeError(err) {
//	        // Handle edge-specific error
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./si"),
//	    gen.WithFeatures(gen.FeatureUnitTable),
//	    gen.WithoutFeatures("stringer"),
//	)
//
// # Usage
//
//	table, err := load.Load("quantities.yaml")
//	graph, err := gen.NewGraph(config, table)
//	err = graph.Gen()
//
// The quantity files are generated with Jennifer, one file per category.
// Graph templates of enabled features and user templates are executed
// afterwards and formatted with goimports.
package gen
