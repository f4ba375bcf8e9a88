// Package load reads the quantity tables that drive code generation.
package load

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed quantities.yaml
var defaultTable []byte

// Table is the data table the quantity graph is built from.
type Table struct {
	Prefixes   []*Prefix   `yaml:"prefixes,omitempty" json:"prefixes,omitempty"`
	Quantities []*Quantity `yaml:"quantities" json:"quantities"`
	Laws       []string    `yaml:"laws,omitempty" json:"laws,omitempty"`
	// Path of the file the table was read from. Empty for the embedded table.
	Path string `yaml:"-" json:"-"`
}

// Prefix is an SI scale prefix, such as milli or kilo.
type Prefix struct {
	Name   string  `yaml:"name" json:"name"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Factor float64 `yaml:"factor" json:"factor"`
}

// Quantity is the definition of one quantity type.
type Quantity struct {
	Name      string `yaml:"name" json:"name"`
	Desc      string `yaml:"desc,omitempty" json:"desc,omitempty"`
	Category  string `yaml:"category" json:"category"`
	Dimension string `yaml:"dimension" json:"dimension"`
	// Field is the name of the struct field holding the canonical value.
	Field  string `yaml:"field" json:"field"`
	Unit   string `yaml:"unit" json:"unit"`
	Plural string `yaml:"plural,omitempty" json:"plural,omitempty"`
	Symbol string `yaml:"symbol" json:"symbol"`
	// Inverse marks a reciprocal unit (1/F). Prefix factors are inverted and
	// prefixed names read "inverse millifarads".
	Inverse  bool     `yaml:"inverse,omitempty" json:"inverse,omitempty"`
	Prefixes []string `yaml:"prefixes,omitempty" json:"prefixes,omitempty"`
	Aliases  []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Units    []*Unit  `yaml:"units,omitempty" json:"units,omitempty"`
	// Graph reports whether the quantity takes part in dimensional derivation.
	// Nil means true.
	Graph *bool `yaml:"graph,omitempty" json:"graph,omitempty"`
	// Reciprocal names the quantity returned by dividing a scalar by this one,
	// for quantities that cannot be paired by dimension.
	Reciprocal string `yaml:"reciprocal,omitempty" json:"reciprocal,omitempty"`
}

// InGraph reports whether the quantity takes part in dimensional derivation.
func (q *Quantity) InGraph() bool {
	return q.Graph == nil || *q.Graph
}

// Unit is an extra unit of a quantity: canonical = (value + Offset) * Slope.
type Unit struct {
	Name   string  `yaml:"name" json:"name"`
	Plural string  `yaml:"plural,omitempty" json:"plural,omitempty"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Slope  float64 `yaml:"slope" json:"slope"`
	Offset float64 `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// Default returns the built-in SI quantity table.
func Default() (*Table, error) {
	t, err := Parse(defaultTable)
	if err != nil {
		return nil, fmt.Errorf("load: embedded table: %w", err)
	}
	return t, nil
}

// Load reads the table at path. An empty path loads the built-in table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading table: %w", err)
	}
	t, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Parse decodes a YAML table and checks its structure. Physical consistency
// is checked later, when the graph is built.
func Parse(buf []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(buf, t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

// Quantity returns the quantity with the given name.
func (t *Table) Quantity(name string) (*Quantity, bool) {
	for _, q := range t.Quantities {
		if q.Name == name {
			return q, true
		}
	}
	return nil, false
}

// Prefix returns the prefix with the given name.
func (t *Table) Prefix(name string) (*Prefix, bool) {
	for _, p := range t.Prefixes {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (t *Table) check() error {
	if len(t.Quantities) == 0 {
		return fmt.Errorf("table has no quantities")
	}
	seen := make(map[string]bool, len(t.Quantities))
	for i, q := range t.Quantities {
		switch {
		case q.Name == "":
			return fmt.Errorf("quantity #%d: missing name", i)
		case seen[q.Name]:
			return fmt.Errorf("quantity %q: defined twice", q.Name)
		case q.Dimension == "":
			return fmt.Errorf("quantity %q: missing dimension", q.Name)
		case q.Field == "":
			return fmt.Errorf("quantity %q: missing field", q.Name)
		case q.Unit == "" || q.Symbol == "":
			return fmt.Errorf("quantity %q: missing canonical unit", q.Name)
		case q.Category == "":
			return fmt.Errorf("quantity %q: missing category", q.Name)
		}
		seen[q.Name] = true
		for _, p := range q.Prefixes {
			if _, ok := t.Prefix(p); !ok {
				return fmt.Errorf("quantity %q: unknown prefix %q", q.Name, p)
			}
		}
		for _, u := range q.Units {
			if u.Name == "" || u.Symbol == "" {
				return fmt.Errorf("quantity %q: unit without name or symbol", q.Name)
			}
		}
	}
	for _, q := range t.Quantities {
		if q.Reciprocal != "" && !seen[q.Reciprocal] {
			return fmt.Errorf("quantity %q: unknown reciprocal %q", q.Name, q.Reciprocal)
		}
	}
	for _, s := range t.Laws {
		l, err := ParseLaw(s)
		if err != nil {
			return err
		}
		for _, name := range []string{l.Left, l.Right, l.Result} {
			if !seen[name] {
				return fmt.Errorf("law %q: unknown quantity %q", s, name)
			}
		}
	}
	return nil
}

// Law is a physical law relating three quantities: Left Op Right = Result.
type Law struct {
	Left   string
	Op     string
	Right  string
	Result string
}

// ParseLaw parses laws written as "a * b = c" or "a / b = c".
func ParseLaw(s string) (*Law, error) {
	lhs, result, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("law %q: missing '='", s)
	}
	for _, op := range []string{"*", "/"} {
		left, right, ok := strings.Cut(lhs, op)
		if !ok {
			continue
		}
		l := &Law{
			Left:   strings.TrimSpace(left),
			Op:     op,
			Right:  strings.TrimSpace(right),
			Result: strings.TrimSpace(result),
		}
		if l.Left == "" || l.Right == "" || l.Result == "" {
			return nil, fmt.Errorf("law %q: empty operand", s)
		}
		return l, nil
	}
	return nil, fmt.Errorf("law %q: expect '*' or '/'", s)
}

// String formats l the way ParseLaw reads it.
func (l *Law) String() string {
	return l.Left + " " + l.Op + " " + l.Right + " = " + l.Result
}
