package gen

import "fmt"

// Op is the operator of a conversion edge.
type Op uint8

const (
	// OpMul is multiplication: Left * Right = Result.
	OpMul Op = iota + 1
	// OpDiv is division: Left / Right = Result.
	OpDiv
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", o)
	}
}

// Name returns the operator name used as method prefix.
func (o Op) Name() string {
	if o == OpDiv {
		return "Div"
	}
	return "Mul"
}

// ParseOp parses an operator symbol.
func ParseOp(s string) (Op, error) {
	switch s {
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", s)
	}
}

// Edge is a conversion between quantity types: Left Op Right = Result.
type Edge struct {
	Left   *Type
	Op     Op
	Right  *Type
	Result *Type
	// Source records where the edge came from: "dimension" for edges found
	// by dimensional analysis, or the text of a law.
	Source string
}

// SourceDimension marks edges derived by dimensional analysis.
const SourceDimension = "dimension"

// MethodName returns the name of the method generated on the left type.
func (e Edge) MethodName() string { return e.Op.Name() + e.Right.Name }

// String implements fmt.Stringer.
func (e Edge) String() string {
	return fmt.Sprintf("%s %s %s = %s", e.Left.Name, e.Op, e.Right.Name, e.Result.Name)
}

// consistent reports whether the edge agrees with dimensional analysis.
func (e Edge) consistent() bool {
	if e.Op == OpDiv {
		return e.Left.Dimension.Div(e.Right.Dimension) == e.Result.Dimension
	}
	return e.Left.Dimension.Mul(e.Right.Dimension) == e.Result.Dimension
}

// edgeKey identifies an edge: the graph holds one result per key.
type edgeKey struct {
	left, right string
	op          Op
}

func (e Edge) key() edgeKey {
	return edgeKey{left: e.Left.Name, right: e.Right.Name, op: e.Op}
}
