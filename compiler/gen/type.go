package gen

import (
	"fmt"
	"go/token"
	"math"
	"slices"
	"strconv"

	"github.com/syssam/siunits/compiler/load"
)

// The following types and their exported methods are used by the codegen
// to generate the quantity package.
type (
	// Type represents one quantity type in the graph, its units and the
	// conversion edges it is the left-hand side of.
	Type struct {
		*Config
		def *load.Quantity
		// Name holds the Go type name, e.g. "MagneticFluxDensity".
		Name string
		// Label holds the lower-case name from the table, e.g. "magnetic flux density".
		Label string
		// Desc is the descriptive name used in docs.
		Desc string
		// Category selects the generated file the type lives in.
		Category string
		// Dimension of the canonical unit.
		Dimension Dimension
		// Field is the struct field holding the canonical value.
		Field string
		// Units holds all units of the type. The canonical unit comes first.
		Units []*Unit
		// InGraph reports whether the type takes part in dimensional derivation.
		InGraph bool
		// Inverse is the type of 1/q, if any.
		Inverse *Type
		// Edges holds the conversion edges with this type on the left,
		// multiplications first, each group ordered by right-hand type name.
		Edges []*Edge
	}

	// Unit is a named unit of a quantity type.
	Unit struct {
		// Name is the lower-case plural name, e.g. "millifarads".
		Name string
		// Symbol is the display symbol, e.g. "mF".
		Symbol string
		// Slope and Offset convert to the canonical unit:
		// canonical = (value + Offset) * Slope.
		Slope  float64
		Offset float64
		// Kind tells how the unit was derived.
		Kind UnitKind
	}
)

// UnitKind tells how a unit was derived from its table entry.
type UnitKind uint8

const (
	// Canonical is the SI unit the value is stored in.
	Canonical UnitKind = iota
	// Alias is another name of the canonical unit.
	Alias
	// Prefixed is the canonical unit scaled by an SI prefix.
	Prefixed
	// Extra is a unit listed explicitly in the table.
	Extra
)

// String implements fmt.Stringer.
func (k UnitKind) String() string {
	switch k {
	case Canonical:
		return "canonical"
	case Alias:
		return "alias"
	case Prefixed:
		return "prefixed"
	case Extra:
		return "extra"
	default:
		return fmt.Sprintf("UnitKind(%d)", k)
	}
}

// reserved method names of the generated types.
var reserved = []string{
	"Add", "Sub", "Neg", "MulScalar", "DivScalar", "Ratio",
	"Inv", "ScalarDiv", "String", "UnitName", "UnitSymbol",
}

// NewType creates a type from its table definition.
func NewType(c *Config, q *load.Quantity, tbl *load.Table) (*Type, error) {
	dim, err := ParseDimension(q.Dimension)
	if err != nil {
		return nil, NewSchemaError(q.Name, "", "invalid dimension", err)
	}
	if dim.IsZero() {
		return nil, NewSchemaError(q.Name, "", "dimensionless quantity", nil)
	}
	t := &Type{
		Config:    c,
		def:       q,
		Name:      pascal(q.Name),
		Label:     q.Name,
		Desc:      q.Desc,
		Category:  q.Category,
		Dimension: dim,
		Field:     q.Field,
		InGraph:   q.InGraph(),
	}
	if t.Desc == "" {
		t.Desc = q.Name
	}
	if err := ValidName(t.Name); err != nil {
		return nil, NewSchemaError(q.Name, "", "invalid type name", err)
	}
	if !token.IsExported(t.Field) || !token.IsIdentifier(t.Field) || slices.Contains(reserved, t.Field) {
		return nil, NewSchemaError(q.Name, "", fmt.Sprintf("invalid field name %q", t.Field), nil)
	}
	t.Units = append(t.Units, t.canonical())
	for _, a := range q.Aliases {
		t.Units = append(t.Units, &Unit{Name: a, Symbol: t.Units[0].Symbol, Slope: 1, Kind: Alias})
	}
	for _, name := range q.Prefixes {
		p, ok := tbl.Prefix(name)
		if !ok {
			return nil, NewSchemaError(q.Name, name, "unknown prefix", nil)
		}
		t.Units = append(t.Units, t.prefixed(p))
	}
	for _, u := range q.Units {
		plural := u.Plural
		if plural == "" {
			plural = pluralize(u.Name)
		}
		t.Units = append(t.Units, &Unit{Name: plural, Symbol: u.Symbol, Slope: u.Slope, Offset: u.Offset, Kind: Extra})
	}
	if err := t.checkUnits(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Type) canonical() *Unit {
	u := &Unit{Name: t.unitPlural(), Symbol: t.def.Symbol, Slope: 1, Kind: Canonical}
	if t.def.Inverse {
		u.Name = "inverse " + u.Name
		u.Symbol = "1/" + u.Symbol
	}
	return u
}

func (t *Type) prefixed(p *load.Prefix) *Unit {
	u := &Unit{Name: p.Name + t.unitPlural(), Symbol: p.Symbol + t.def.Symbol, Slope: p.Factor, Kind: Prefixed}
	if t.def.Inverse {
		u.Name = "inverse " + u.Name
		u.Symbol = "1/" + u.Symbol
		u.Slope = reciprocal(p.Factor)
	}
	return u
}

// reciprocal returns 1/x rounded to 15 significant digits, so that the
// inverse of a decimal prefix is emitted as an exact literal: 1/1e-9 is
// 1e+09, not 999999999.9999999.
func reciprocal(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(1/x, 'g', 15, 64), 64)
	return r
}

func (t *Type) unitPlural() string {
	if t.def.Plural != "" {
		return t.def.Plural
	}
	return pluralize(t.def.Unit)
}

// checkUnits checks that unit factors are usable and that the generated
// function names do not collide.
func (t *Type) checkUnits() error {
	names := make(map[string]string, len(t.Units))
	for _, u := range t.Units {
		if u.Slope == 0 || math.IsInf(u.Slope, 0) || math.IsNaN(u.Slope) {
			return NewValidationError(t.Label, u.Name, u.Slope, "slope must be finite and non-zero")
		}
		if math.IsInf(u.Offset, 0) || math.IsNaN(u.Offset) {
			return NewValidationError(t.Label, u.Name, u.Offset, "offset must be finite")
		}
		code := u.CodeName()
		if err := ValidName(code); err != nil {
			return NewSchemaError(t.Label, u.Name, "invalid unit name", err)
		}
		if prev, ok := names[code]; ok {
			return NewSchemaError(t.Label, u.Name, fmt.Sprintf("conflicts with unit %q", prev), nil)
		}
		names[code] = u.Name
	}
	return nil
}

// Canonical returns the canonical unit of the type.
func (t Type) Canonical() *Unit { return t.Units[0] }

// TypeName returns the instantiated type name used in generated code, Name[T].
func (t Type) TypeName() string { return t.Name + "[T]" }

// FileName returns the name of the generated file holding the type.
func (t Type) FileName() string { return t.Category + ".go" }

// FromFunc returns the name of the constructor of the type from unit u.
func (t Type) FromFunc(u *Unit) string { return t.Name + "From" + u.CodeName() }

// ToMethod returns the name of the accessor of the type in unit u.
func (t Type) ToMethod(u *Unit) string { return "To" + u.CodeName() }

// MulEdges returns the multiplication edges of the type.
func (t Type) MulEdges() []*Edge { return t.edgesBy(OpMul) }

// DivEdges returns the division edges of the type.
func (t Type) DivEdges() []*Edge { return t.edgesBy(OpDiv) }

func (t Type) edgesBy(op Op) []*Edge {
	var edges []*Edge
	for _, e := range t.Edges {
		if e.Op == op {
			edges = append(edges, e)
		}
	}
	return edges
}

// Unit returns the unit with the given name.
func (t Type) Unit(name string) (*Unit, bool) {
	for _, u := range t.Units {
		if u.Name == name {
			return u, true
		}
	}
	return nil, false
}

// CodeName returns the unit name as used in generated identifiers.
func (u Unit) CodeName() string { return pascal(u.Name) }

// Exact reports whether conversion to the unit is a plain copy.
func (u Unit) Exact() bool { return u.Kind == Canonical || u.Kind == Alias }

// ValidName reports an error if name cannot be used as an exported Go identifier.
func ValidName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty name")
	case !token.IsIdentifier(name):
		return fmt.Errorf("%q is not a valid Go identifier", name)
	case !token.IsExported(name):
		return fmt.Errorf("%q is not exported", name)
	}
	return nil
}
