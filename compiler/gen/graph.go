package gen

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"sort"

	"github.com/syssam/siunits/compiler/load"
)

// DefaultNumPackage is the import path of the numeric capability package
// the generated types are parameterized over.
const DefaultNumPackage = "github.com/syssam/siunits/num"

// DefaultHeader is the header comment of generated files.
const DefaultHeader = "Code generated by sigen. DO NOT EDIT."

type (
	// Config holds the global codegen configuration to be
	// shared between all generated nodes.
	Config struct {
		// Package is the import path of the generated package,
		// for example "github.com/org/project/si".
		Package string
		// Target is the directory generated files are written to.
		Target string
		// Header is the comment placed at the top of generated files.
		// Empty means DefaultHeader.
		Header string
		// NumPackage is the import path of the numeric capability package.
		// Empty means DefaultNumPackage.
		NumPackage string
		// Features holds the features enabled on top of the defaults.
		Features []Feature
		// Disabled holds the names of default features that were turned off.
		Disabled []string
		// Hooks wrap the generator, the first hook is the outermost.
		Hooks []Hook
		// Templates are executed on the graph and written to <name>.go.
		Templates []*Template
		// Workers bounds parallel file generation. Zero means GOMAXPROCS.
		Workers int
		// Generator replaces the default generator.
		Generator Generator
	}

	// Graph holds the quantity types, their units and the conversion
	// edges between them.
	Graph struct {
		*Config
		// Nodes are the quantity types, in table order.
		Nodes []*Type
		// Table the graph was built from.
		Table *load.Table

		types   map[string]*Type // by Go name and by label.
		edges   map[edgeKey]*Edge
		order   []*Edge
		metrics *writerStats
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the code for the given graph.
		Generate(*Graph) error
	}

	// The GenerateFunc type is an adapter to allow the use of ordinary
	// function as Generator. If f is a function with the appropriate signature,
	// GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(*Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(g *Graph) error {
	//			fmt.Println("Graph:", g)
	//			return next.Generate(g)
	//		})
	//	}
	Hook func(Generator) Generator
)

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// PackageName returns the name of the generated package.
func (c Config) PackageName() string {
	switch {
	case c.Package != "":
		return path.Base(c.Package)
	case c.Target != "":
		dir := c.Target
		// "." and ".." name no package; use the directory they resolve to.
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		return filepath.Base(dir)
	default:
		return "si"
	}
}

// HeaderComment returns the header comment of generated files.
func (c Config) HeaderComment() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

// NumPkg returns the import path of the numeric capability package.
func (c Config) NumPkg() string {
	if c.NumPackage != "" {
		return c.NumPackage
	}
	return DefaultNumPackage
}

// NewGraph creates a new graph from the quantity table. Types are created
// in table order, edges are derived by dimensional analysis and from the
// table laws, and the result is validated before it is returned.
func NewGraph(c *Config, tbl *load.Table) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if tbl == nil {
		return nil, NewConfigError("Table", nil, "table cannot be nil")
	}
	g := &Graph{
		Config:  c,
		Table:   tbl,
		types:   make(map[string]*Type),
		edges:   make(map[edgeKey]*Edge),
		metrics: &writerStats{},
	}
	for _, q := range tbl.Quantities {
		if err := g.addNode(q); err != nil {
			return nil, err
		}
	}
	if err := g.checkDimensions(); err != nil {
		return nil, err
	}
	if err := g.deriveEdges(); err != nil {
		return nil, err
	}
	for _, s := range tbl.Laws {
		if err := g.addLaw(s); err != nil {
			return nil, err
		}
	}
	if err := g.resolveInverses(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) addNode(q *load.Quantity) error {
	t, err := NewType(g.Config, q, g.Table)
	if err != nil {
		return err
	}
	if _, ok := g.types[t.Name]; ok {
		return NewSchemaError(q.Name, "", fmt.Sprintf("type name %q is already defined", t.Name), nil)
	}
	g.types[t.Name] = t
	g.types[t.Label] = t
	g.Nodes = append(g.Nodes, t)
	return nil
}

// checkDimensions checks that no two types in the graph share a dimension.
// Dimensional analysis could not tell them apart.
func (g *Graph) checkDimensions() error {
	seen := make(map[Dimension]*Type)
	for _, t := range g.Nodes {
		if !t.InGraph {
			continue
		}
		if prev, ok := seen[t.Dimension]; ok {
			return NewSchemaError(t.Label, "", fmt.Sprintf("dimension %s is already used by %s; set graph: false on one of them", t.Dimension, prev.Label), nil)
		}
		seen[t.Dimension] = t
	}
	return nil
}

// deriveEdges adds an edge for every product and quotient of two graph
// types whose dimension is the dimension of a graph type.
func (g *Graph) deriveEdges() error {
	byDim := make(map[Dimension]*Type)
	for _, t := range g.Nodes {
		if t.InGraph {
			byDim[t.Dimension] = t
		}
	}
	for _, a := range g.Nodes {
		if !a.InGraph {
			continue
		}
		for _, b := range g.Nodes {
			if !b.InGraph {
				continue
			}
			if c, ok := byDim[a.Dimension.Mul(b.Dimension)]; ok {
				if err := g.AddEdge(&Edge{Left: a, Op: OpMul, Right: b, Result: c, Source: SourceDimension}); err != nil {
					return err
				}
			}
			if c, ok := byDim[a.Dimension.Div(b.Dimension)]; ok {
				if err := g.AddEdge(&Edge{Left: a, Op: OpDiv, Right: b, Result: c, Source: SourceDimension}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// addLaw adds the edges of a physical law and the inverse edges that
// close it under division.
func (g *Graph) addLaw(s string) error {
	l, err := load.ParseLaw(s)
	if err != nil {
		return NewSchemaError("", "", "invalid law", err)
	}
	var operands [3]*Type
	for i, name := range []string{l.Left, l.Right, l.Result} {
		t, ok := g.Type(name)
		if !ok {
			return NewSchemaError(name, "", fmt.Sprintf("unknown quantity in law %q", s), nil)
		}
		operands[i] = t
	}
	a, b, c := operands[0], operands[1], operands[2]
	var edges []*Edge
	switch l.Op {
	case "*":
		edges = []*Edge{
			{Left: a, Op: OpMul, Right: b, Result: c},
			{Left: b, Op: OpMul, Right: a, Result: c},
			{Left: c, Op: OpDiv, Right: a, Result: b},
			{Left: c, Op: OpDiv, Right: b, Result: a},
		}
	default:
		edges = []*Edge{
			{Left: a, Op: OpDiv, Right: b, Result: c},
			{Left: a, Op: OpDiv, Right: c, Result: b},
			{Left: b, Op: OpMul, Right: c, Result: a},
			{Left: c, Op: OpMul, Right: b, Result: a},
		}
	}
	if !edges[0].consistent() {
		return NewEdgeError(a.Name, l.Op, b.Name, fmt.Sprintf("law %q is dimensionally inconsistent", s), nil)
	}
	for _, e := range edges {
		e.Source = l.String()
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// resolveInverses sets the scalar inverse of each type: the type named as
// its reciprocal, or else the first graph type with the inverse dimension.
func (g *Graph) resolveInverses() error {
	byDim := make(map[Dimension]*Type)
	for _, t := range g.Nodes {
		if _, ok := byDim[t.Dimension]; !ok && t.InGraph {
			byDim[t.Dimension] = t
		}
	}
	for _, t := range g.Nodes {
		if name := t.def.Reciprocal; name != "" {
			r, ok := g.Type(name)
			if !ok {
				return NewSchemaError(t.Label, "", fmt.Sprintf("unknown reciprocal %q", name), nil)
			}
			t.Inverse = r
			continue
		}
		t.Inverse = byDim[t.Dimension.Inverse()]
	}
	return nil
}

// AddEdge adds e to the graph. Adding an edge that is already present is a
// no-op; adding an edge whose key is present with another result fails.
func (g *Graph) AddEdge(e *Edge) error {
	if e.Left == nil || e.Right == nil || e.Result == nil {
		return NewEdgeError("", e.Op.String(), "", "incomplete edge", nil)
	}
	if prev, ok := g.edges[e.key()]; ok {
		if prev.Result == e.Result {
			return nil
		}
		return NewEdgeError(e.Left.Name, e.Op.String(), e.Right.Name,
			fmt.Sprintf("conflicting results %s (%s) and %s (%s)", prev.Result.Name, prev.Source, e.Result.Name, e.Source), nil)
	}
	g.edges[e.key()] = e
	g.order = append(g.order, e)
	e.Left.Edges = append(e.Left.Edges, e)
	sort.SliceStable(e.Left.Edges, func(i, j int) bool {
		a, b := e.Left.Edges[i], e.Left.Edges[j]
		if a.Op != b.Op {
			return a.Op < b.Op
		}
		return a.Right.Name < b.Right.Name
	})
	return nil
}

// Lookup returns the edge left op right.
func (g *Graph) Lookup(left *Type, op Op, right *Type) (*Edge, bool) {
	e, ok := g.edges[edgeKey{left: left.Name, right: right.Name, op: op}]
	return e, ok
}

// Edges returns all edges in the order they were added.
func (g *Graph) Edges() []*Edge {
	return slices.Clone(g.order)
}

// Type returns the type with the given Go name or table label.
func (g *Graph) Type(name string) (*Type, bool) {
	t, ok := g.types[name]
	return t, ok
}

// Categories returns the sorted category names of the graph.
func (g *Graph) Categories() []string {
	var cats []string
	for _, t := range g.Nodes {
		if !slices.Contains(cats, t.Category) {
			cats = append(cats, t.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// NodesIn returns the types of the given category, in table order.
func (g *Graph) NodesIn(category string) []*Type {
	var nodes []*Type
	for _, t := range g.Nodes {
		if t.Category == category {
			nodes = append(nodes, t)
		}
	}
	return nodes
}

// Validate checks that every edge agrees with dimensional analysis, that
// the graph is closed under division, and that scalar inverses have the
// inverse dimension. It returns the first problem found.
//
// For every A * B = C the graph must hold C / A = B and C / B = A, and for
// every A / B = C it must hold A / C = B and C * B = A.
func (g *Graph) Validate() error {
	for _, e := range g.order {
		if !e.consistent() {
			return NewEdgeError(e.Left.Name, e.Op.String(), e.Right.Name,
				fmt.Sprintf("result %s has dimension %s", e.Result.Name, e.Result.Dimension), nil)
		}
		for _, want := range inverseEdges(e) {
			got, ok := g.Lookup(want.Left, want.Op, want.Right)
			switch {
			case !ok:
				return NewEdgeError(e.Left.Name, e.Op.String(), e.Right.Name, fmt.Sprintf("missing inverse edge %s", want), nil)
			case got.Result != want.Result:
				return NewEdgeError(e.Left.Name, e.Op.String(), e.Right.Name, fmt.Sprintf("inverse edge is %s, expect %s", got, want), nil)
			}
		}
	}
	for _, t := range g.Nodes {
		if t.Inverse != nil && t.Inverse.Dimension != t.Dimension.Inverse() {
			return NewSchemaError(t.Label, "", fmt.Sprintf("reciprocal %s has dimension %s, expect %s", t.Inverse.Label, t.Inverse.Dimension, t.Dimension.Inverse()), nil)
		}
	}
	return nil
}

// inverseEdges returns the edges that must exist for e to be closed.
func inverseEdges(e *Edge) []*Edge {
	a, b, c := e.Left, e.Right, e.Result
	if e.Op == OpMul {
		return []*Edge{
			{Left: c, Op: OpDiv, Right: a, Result: b},
			{Left: c, Op: OpDiv, Right: b, Result: a},
		}
	}
	return []*Edge{
		{Left: a, Op: OpDiv, Right: c, Result: b},
		{Left: c, Op: OpMul, Right: b, Result: a},
	}
}

// Gen generates the artifacts for the graph.
func (g *Graph) Gen() error {
	if g.metrics != nil {
		g.metrics.reset()
	}
	var gen Generator = GenerateFunc(generate)
	if g.Generator != nil {
		gen = g.Generator
	}
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(g)
}

// Metrics returns the metrics of the last generation.
func (g *Graph) Metrics() WriterMetrics {
	return g.metrics.snapshot()
}

// generate is the default Generator: the quantity package by Jennifer,
// then the graph templates.
func generate(g *Graph) error {
	if g.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := cleanupFeatures(g.Config); err != nil {
		return NewGenerationError("cleanup", "", "removing disabled feature files", err)
	}
	ctx := context.Background()
	jg := NewJenniferGenerator(g, g.Target).
		WithWorkers(g.Workers).
		WithPackage(g.PackageName())
	if err := jg.Generate(ctx); err != nil {
		return err
	}
	w := NewTemplateWriter(g, g.Target).WithWorkers(g.Workers)
	if err := w.GenerateGraph(ctx); err != nil {
		return NewGenerationError("templates", "", "", err)
	}
	return nil
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(%d types, %d edges)", len(g.Nodes), len(g.order))
}
