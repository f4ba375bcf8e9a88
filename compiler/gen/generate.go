package gen

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

const assertPkg = "github.com/stretchr/testify/assert"

// JenniferGenerator generates the quantity package with Jennifer: one file
// per category holding its types, their unit conversions and arithmetic,
// and the test file of the package.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
	numPkg  string
}

// NewJenniferGenerator creates a new Jennifer-based generator.
//
// Example:
//
//	gen := gen.NewJenniferGenerator(graph, outDir).WithWorkers(4)
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		numPkg:  g.NumPkg(),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the package name of the generated files.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// Generate writes the category files, and the test file if the tests
// feature is enabled.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("quantities", g.outDir, "create output directory", err)
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	for _, cat := range g.graph.Categories() {
		cat := cat
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := cat + ".go"
			if err := g.writeFile(g.genCategory(cat), name); err != nil {
				return NewGenerationError("quantities", name, "write category file", err)
			}
			return nil
		})
	}
	if g.featureEnabled(FeatureTests) {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.writeFile(g.genTests(), TestsFile); err != nil {
				return NewGenerationError("tests", TestsFile, "write test file", err)
			}
			return nil
		})
	}
	return errg.Wait()
}

// genCategory generates the types of one category.
func (g *JenniferGenerator) genCategory(cat string) *jen.File {
	f := g.newFile(g.pkg)
	for _, t := range g.graph.NodesIn(cat) {
		g.genType(f, t)
	}
	return f
}

// genType generates the struct of t and all its methods.
func (g *JenniferGenerator) genType(f *jen.File, t *Type) {
	c := t.Canonical()
	f.Commentf("%s is the %s quantity type, stored in %s (%s).", t.Name, t.Desc, c.Name, c.Symbol)
	f.Type().Id(t.Name).Add(g.typeParams()).Struct(
		jen.Commentf("%s is the value in %s.", t.Field, c.Name),
		jen.Id(t.Field).Id("T"),
	)

	for _, u := range t.Units {
		f.Line()
		f.Commentf("%s returns %s %s of v %s.", t.FromFunc(u), article(t.Name), t.Name, u.Name)
		f.Func().Id(t.FromFunc(u)).Add(g.typeParams()).Params(jen.Id("v").Id("T")).Add(self(t)).Block(
			jen.Return(value(t, g.fromUnit(u))),
		)
		f.Line()
		f.Commentf("%s returns the value in %s.", t.ToMethod(u), u.Name)
		f.Func().Add(recv(t)).Id(t.ToMethod(u)).Params().Id("T").Block(
			jen.Return(g.toUnit(t, u)),
		)
	}

	f.Line()
	f.Comment("UnitName returns the name of the canonical unit.")
	f.Func().Add(recv(t)).Id("UnitName").Params().String().Block(
		jen.Return(jen.Lit(c.Name)),
	)
	f.Line()
	f.Comment("UnitSymbol returns the symbol of the canonical unit.")
	f.Func().Add(recv(t)).Id("UnitSymbol").Params().String().Block(
		jen.Return(jen.Lit(c.Symbol)),
	)
	if g.featureEnabled(FeatureStringer) {
		f.Line()
		f.Comment("String implements fmt.Stringer.")
		f.Func().Add(recv(t)).Id("String").Params().String().Block(
			jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit("%v %s"), field(t), jen.Id("q").Dot("UnitSymbol").Call())),
		)
	}

	g.genArith(f, t)
	if t.Inverse != nil {
		g.genInverse(f, t)
	}
	for _, e := range t.Edges {
		f.Line()
		f.Commentf("%s returns q %s rhs.", e.MethodName(), e.Op)
		f.Func().Add(recv(t)).Id(e.MethodName()).Params(jen.Id("rhs").Add(self(e.Right))).Add(self(e.Result)).Block(
			jen.Return(value(e.Result, field(t).Op(e.Op.String()).Id("rhs").Dot(e.Right.Field))),
		)
	}
	f.Line()
}

// genArith generates the arithmetic of t with itself and with scalars.
func (g *JenniferGenerator) genArith(f *jen.File, t *Type) {
	binary := []struct {
		name, doc, op string
	}{
		{"Add", "Add returns q + rhs.", "+"},
		{"Sub", "Sub returns q - rhs.", "-"},
	}
	for _, b := range binary {
		f.Line()
		f.Comment(b.doc)
		f.Func().Add(recv(t)).Id(b.name).Params(jen.Id("rhs").Add(self(t))).Add(self(t)).Block(
			jen.Return(value(t, field(t).Op(b.op).Id("rhs").Dot(t.Field))),
		)
	}
	f.Line()
	f.Comment("Neg returns -q.")
	f.Func().Add(recv(t)).Id("Neg").Params().Add(self(t)).Block(
		jen.Return(value(t, jen.Op("-").Add(field(t)))),
	)
	scalar := []struct {
		name, doc, op string
	}{
		{"MulScalar", "MulScalar returns q scaled by k.", "*"},
		{"DivScalar", "DivScalar returns q divided by k.", "/"},
	}
	for _, s := range scalar {
		f.Line()
		f.Comment(s.doc)
		f.Func().Add(recv(t)).Id(s.name).Params(jen.Id("k").Id("T")).Add(self(t)).Block(
			jen.Return(value(t, field(t).Op(s.op).Id("k"))),
		)
	}
	f.Line()
	f.Comment("Ratio returns the dimensionless ratio q / rhs.")
	f.Func().Add(recv(t)).Id("Ratio").Params(jen.Id("rhs").Add(self(t))).Id("T").Block(
		jen.Return(field(t).Op("/").Id("rhs").Dot(t.Field)),
	)
}

// genInverse generates the scalar inverse methods of t.
func (g *JenniferGenerator) genInverse(f *jen.File, t *Type) {
	inv := t.Inverse
	f.Line()
	f.Commentf("Inv returns 1 / q as %s %s.", article(inv.Name), inv.Name)
	f.Func().Add(recv(t)).Id("Inv").Params().Add(self(inv)).Block(
		jen.Return(value(inv, jen.Lit(1).Op("/").Add(field(t)))),
	)
	f.Line()
	f.Commentf("ScalarDiv returns x / q as %s %s.", article(inv.Name), inv.Name)
	f.Func().Add(recv(t)).Id("ScalarDiv").Params(jen.Id("x").Id("T")).Add(self(inv)).Block(
		jen.Return(value(inv, jen.Id("x").Op("/").Add(field(t)))),
	)
}

// fromUnit returns the conversion of v from u to the canonical unit.
func (g *JenniferGenerator) fromUnit(u *Unit) jen.Code {
	if u.Exact() {
		return jen.Id("v")
	}
	return jen.Qual(g.numPkg, "Affine").Call(jen.Id("v"), jen.Lit(u.Slope), offset(u))
}

// toUnit returns the conversion of q from the canonical unit to u.
func (g *JenniferGenerator) toUnit(t *Type, u *Unit) jen.Code {
	if u.Exact() {
		return field(t)
	}
	return jen.Qual(g.numPkg, "InverseAffine").Call(field(t), jen.Lit(u.Slope), offset(u))
}

// genTests generates the test file of the package.
func (g *JenniferGenerator) genTests() *jen.File {
	f := g.newFile(g.pkg)

	f.Func().Id("TestUnitRoundTrip").Params(testingT()).BlockFunc(func(grp *jen.Group) {
		for _, t := range g.graph.Nodes {
			grp.Id("t").Dot("Run").Call(jen.Lit(t.Name), jen.Func().Params(testingT()).BlockFunc(func(body *jen.Group) {
				for _, u := range t.Units {
					got := jen.Id(t.FromFunc(u)).Call(jen.Lit(3.5)).Dot(t.ToMethod(u)).Call()
					if u.Exact() {
						body.Qual(assertPkg, "Equal").Call(jen.Id("t"), jen.Lit(3.5), got)
					} else {
						body.Qual(assertPkg, "InEpsilon").Call(jen.Id("t"), jen.Lit(3.5), got, jen.Lit(1e-9))
					}
				}
			}))
		}
	})

	var mul, div []*Edge
	for _, e := range g.graph.Edges() {
		if e.Op == OpMul {
			mul = append(mul, e)
		} else {
			div = append(div, e)
		}
	}

	// A * B = C implies C / B = A and C / A = B.
	f.Line()
	f.Func().Id("TestMultiplicationClosure").Params(testingT()).BlockFunc(func(grp *jen.Group) {
		for _, e := range mul {
			grp.Id("t").Dot("Run").Call(jen.Lit(e.String()), jen.Func().Params(testingT()).Block(
				jen.Id("a").Op(":=").Add(construct(e.Left, 3.0)),
				jen.Id("b").Op(":=").Add(construct(e.Right, 5.0)),
				jen.Id("c").Op(":=").Id("a").Dot(e.MethodName()).Call(jen.Id("b")),
				inEpsilon(15.0, jen.Id("c").Dot(e.Result.Field)),
				inEpsilon(3.0, jen.Id("c").Dot("Div"+e.Right.Name).Call(jen.Id("b")).Dot(e.Left.Field)),
				inEpsilon(5.0, jen.Id("c").Dot("Div"+e.Left.Name).Call(jen.Id("a")).Dot(e.Right.Field)),
			))
		}
	})

	// A / B = C implies C * B = A and A / C = B.
	f.Line()
	f.Func().Id("TestDivisionClosure").Params(testingT()).BlockFunc(func(grp *jen.Group) {
		for _, e := range div {
			grp.Id("t").Dot("Run").Call(jen.Lit(e.String()), jen.Func().Params(testingT()).Block(
				jen.Id("a").Op(":=").Add(construct(e.Left, 15.0)),
				jen.Id("b").Op(":=").Add(construct(e.Right, 5.0)),
				jen.Id("c").Op(":=").Id("a").Dot(e.MethodName()).Call(jen.Id("b")),
				inEpsilon(3.0, jen.Id("c").Dot(e.Result.Field)),
				inEpsilon(15.0, jen.Id("c").Dot("Mul"+e.Right.Name).Call(jen.Id("b")).Dot(e.Left.Field)),
				inEpsilon(5.0, jen.Id("a").Dot("Div"+e.Result.Name).Call(jen.Id("c")).Dot(e.Right.Field)),
			))
		}
	})

	f.Line()
	f.Func().Id("TestScalarInverse").Params(testingT()).BlockFunc(func(grp *jen.Group) {
		for _, t := range g.graph.Nodes {
			if t.Inverse == nil {
				continue
			}
			grp.Id("t").Dot("Run").Call(jen.Lit(t.Name), jen.Func().Params(testingT()).Block(
				jen.Id("q").Op(":=").Add(construct(t, 4.0)),
				inEpsilon(0.25, jen.Id("q").Dot("Inv").Call().Dot(t.Inverse.Field)),
				inEpsilon(0.5, jen.Id("q").Dot("ScalarDiv").Call(jen.Lit(2.0)).Dot(t.Inverse.Field)),
			))
		}
	})
	return f
}

// writeFile renders the Jennifer file and writes it to the output directory.
func (g *JenniferGenerator) writeFile(f *jen.File, filename string) error {
	start := time.Now()
	var buf bytes.Buffer
	// Jennifer renders with correct imports and formatting
	if err := f.Render(&buf); err != nil {
		return err
	}
	rendered := time.Since(start)

	start = time.Now()
	if err := os.WriteFile(filepath.Join(g.outDir, filename), buf.Bytes(), 0o644); err != nil {
		return err
	}
	if g.graph.metrics != nil {
		g.graph.metrics.add(WriterMetrics{
			FilesGenerated: 1,
			TotalBytes:     int64(buf.Len()),
			TemplateTime:   rendered,
			WriteTime:      time.Since(start),
		})
	}
	return nil
}

// newFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(g.graph.HeaderComment())
	f.ImportName(g.numPkg, path.Base(g.numPkg))
	f.ImportName(assertPkg, "assert")
	return f
}

func (g *JenniferGenerator) featureEnabled(f Feature) bool {
	ok, _ := g.graph.FeatureEnabled(f.Name)
	return ok
}

// typeParams returns the type parameter list [T num.Scalar].
func (g *JenniferGenerator) typeParams() *jen.Statement {
	return jen.Types(jen.Id("T").Qual(g.numPkg, "Scalar"))
}

// self returns the instantiated type t[T].
func self(t *Type) *jen.Statement {
	return jen.Id(t.Name).Types(jen.Id("T"))
}

// recv returns the method receiver (q t[T]).
func recv(t *Type) *jen.Statement {
	return jen.Params(jen.Id("q").Add(self(t)))
}

// field returns q.<Field>.
func field(t *Type) *jen.Statement {
	return jen.Id("q").Dot(t.Field)
}

// value returns the literal t[T]{<Field>: v}.
func value(t *Type, v jen.Code) *jen.Statement {
	return self(t).Values(jen.Id(t.Field).Op(":").Add(v))
}

func offset(u *Unit) jen.Code {
	if u.Offset == 0 {
		return jen.Lit(0)
	}
	return jen.Lit(u.Offset)
}

// construct returns a call to the canonical constructor of t.
func construct(t *Type, v float64) *jen.Statement {
	return jen.Id(t.FromFunc(t.Canonical())).Call(jen.Lit(v))
}

func inEpsilon(want float64, got jen.Code) *jen.Statement {
	return jen.Qual(assertPkg, "InEpsilon").Call(jen.Id("t"), jen.Lit(want), got, jen.Lit(1e-9))
}

func testingT() *jen.Statement {
	return jen.Id("t").Op("*").Qual("testing", "T")
}
