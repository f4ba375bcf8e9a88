package gen

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"text/template"
)

type (
	// Template wraps the standard template.Template to
	// provide additional functionality for sigen extensions.
	Template struct {
		*template.Template
		FuncMap   template.FuncMap
		condition func(*Graph) bool
	}

	// GraphTemplate specifies a template that is executed with
	// the Graph object.
	GraphTemplate struct {
		Name   string            // template name.
		Format string            // file name format.
		Skip   func(*Graph) bool // skip condition.
	}
)

// Funcs are the functions available to every template.
var Funcs = template.FuncMap{
	"title":   title,
	"pascal":  pascal,
	"plural":  pluralize,
	"article": article,
	"lower":   strings.ToLower,
	"upper":   strings.ToUpper,
	"join":    strings.Join,
	"quote":   strconv.Quote,
}

var (
	//go:embed template/*.tmpl
	templateDir embed.FS

	baseOnce sync.Once
	baseTmpl *Template
	errParse error
)

// NewTemplate creates an empty template with the standard codegen functions.
func NewTemplate(name string) *Template {
	t := &Template{Template: template.New(name)}
	return t.Funcs(Funcs)
}

// Funcs merges the given funcMap with the template functions.
func (t *Template) Funcs(funcMap template.FuncMap) *Template {
	t.Template.Funcs(funcMap)
	if t.FuncMap == nil {
		t.FuncMap = template.FuncMap{}
	}
	for name, f := range funcMap {
		if _, ok := t.FuncMap[name]; !ok {
			t.FuncMap[name] = f
		}
	}
	return t
}

// SkipIf allows registering a function to determine if the template needs to be skipped or not.
func (t *Template) SkipIf(cond func(*Graph) bool) *Template {
	t.condition = cond
	return t
}

// Parse parses text as a template body for t.
func (t *Template) Parse(text string) (*Template, error) {
	if _, err := t.Template.Parse(text); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFiles parses a list of files as templates and associate them with t.
// Each file can be a standalone template.
func (t *Template) ParseFiles(filenames ...string) (*Template, error) {
	if _, err := t.Template.ParseFiles(filenames...); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseGlob parses the files that match the given pattern as templates and
// associate them with t.
func (t *Template) ParseGlob(pattern string) (*Template, error) {
	if _, err := t.Template.ParseGlob(pattern); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFS is like ParseFiles or ParseGlob but reads from the file system fsys
// instead of the host operating system's file system.
func (t *Template) ParseFS(fsys fs.FS, patterns ...string) (*Template, error) {
	if _, err := t.Template.ParseFS(fsys, patterns...); err != nil {
		return nil, err
	}
	return t, nil
}

// skip reports whether the template should be skipped for g.
func (t *Template) skip(g *Graph) bool {
	return t.condition != nil && t.condition(g)
}

// MustParse is a helper that wraps a call to a function returning (*Template, error)
// and panics if the error is non-nil.
func MustParse(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// baseTemplates returns the templates embedded in the package.
func baseTemplates() (*Template, error) {
	baseOnce.Do(func() {
		baseTmpl, errParse = NewTemplate("base").ParseFS(templateDir, "template/*.tmpl")
		if errParse != nil {
			errParse = fmt.Errorf("parse base templates: %w", errParse)
		}
	})
	return baseTmpl, errParse
}
