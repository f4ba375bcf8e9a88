package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// TestsFile is the name of the generated test file.
const TestsFile = "quantities_test.go"

var (
	// FeatureTests provides a feature-flag for generating a test file that
	// checks the unit round trips and the closure of every conversion edge.
	FeatureTests = Feature{
		Name:        "tests",
		Stage:       Stable,
		Default:     true,
		Description: "Generates tests for unit round trips, scalar inverses and the closure of every conversion edge",
		cleanup: func(c *Config) error {
			return remove(c.Target, TestsFile)
		},
	}

	// FeatureDoc provides a feature-flag for generating the package documentation.
	FeatureDoc = Feature{
		Name:        "doc",
		Stage:       Stable,
		Default:     true,
		Description: "Generates doc.go listing every quantity type and its canonical unit",
		GraphTemplates: []GraphTemplate{
			{
				Name:   "doc",
				Format: "doc.go",
			},
		},
		cleanup: func(c *Config) error {
			return remove(c.Target, "doc.go")
		},
	}

	// FeatureStringer provides a feature-flag for generating String methods
	// that render quantities as "<value> <symbol>".
	FeatureStringer = Feature{
		Name:        "stringer",
		Stage:       Stable,
		Default:     true,
		Description: "Generates fmt.Stringer implementations rendering \"<value> <symbol>\"",
	}

	// FeatureUnitTable provides a feature-flag for generating a table of
	// every unit, for lookup by name or symbol at runtime.
	FeatureUnitTable = Feature{
		Name:        "unittable",
		Stage:       Alpha,
		Default:     false,
		Description: "Generates units.go, a table of every unit with its quantity, symbol and factors",
		GraphTemplates: []GraphTemplate{
			{
				Name:   "units",
				Format: "units.go",
			},
		},
		cleanup: func(c *Config) error {
			return remove(c.Target, "units.go")
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureTests,
		FeatureDoc,
		FeatureStringer,
		FeatureUnitTable,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished, but
	// whose generated API may still change.
	Alpha

	// Beta features are Alpha features that were documented, and no
	// breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// String implements fmt.Stringer.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("FeatureStage(%d)", int(s))
	}
}

// A Feature of the sigen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// GraphTemplates defines optional templates to be executed on the graph
	// and will their output will be written to the configured destination.
	GraphTemplates []GraphTemplate

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureEnabled reports if the given feature name is enabled.
// A default feature is enabled unless disabled; other features must be
// listed in Features.
func (c Config) FeatureEnabled(name string) (bool, error) {
	f, ok := FeatureByName(name)
	if !ok {
		return false, fmt.Errorf("unexpected feature name %q", name)
	}
	if slices.Contains(c.Disabled, name) {
		return false, nil
	}
	if f.Default {
		return true, nil
	}
	return slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == name }), nil
}

// EnabledFeatures returns the enabled features, in AllFeatures order.
func (c Config) EnabledFeatures() []Feature {
	var features []Feature
	for _, f := range AllFeatures {
		if ok, _ := c.FeatureEnabled(f.Name); ok {
			features = append(features, f)
		}
	}
	return features
}

// cleanupFeatures removes the files of features that are not enabled.
func cleanupFeatures(c *Config) error {
	for _, f := range AllFeatures {
		if f.cleanup == nil {
			continue
		}
		if ok, _ := c.FeatureEnabled(f.Name); ok {
			continue
		}
		if err := f.cleanup(c); err != nil {
			return fmt.Errorf("cleanup %q feature assets: %w", f.Name, err)
		}
	}
	return nil
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
