package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pascal converts a lower-case name to its exported Go form:
// "magnetic flux density" becomes "MagneticFluxDensity".
func pascal(s string) string {
	return inflect.Camelize(s)
}

// pluralize returns the plural form of a unit name.
func pluralize(s string) string {
	return inflect.Pluralize(s)
}

// title capitalizes every word of s. A Caser is stateful, so a new one is
// created per call; templates execute concurrently.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// article returns the indefinite article for a type name.
func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}
