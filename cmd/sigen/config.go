package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/siunits/compiler/gen"
)

// DefaultConfigFile is read by generate when --config is not given.
const DefaultConfigFile = ".sigen.yaml"

const (
	DefaultTarget  = "si"
	DefaultWorkers = 0
)

// Config is the content of a .sigen.yaml file. Command line flags override it.
type Config struct {
	Table      string   `yaml:"table"`
	Target     string   `yaml:"target"`
	Package    string   `yaml:"package"`
	Header     string   `yaml:"header"`
	NumPackage string   `yaml:"num_package"`
	Workers    int      `yaml:"workers"`
	Features   []string `yaml:"features"`
	Disable    []string `yaml:"disable"`
}

func DefaultConfig() *Config {
	return &Config{
		Target:  DefaultTarget,
		Workers: DefaultWorkers,
	}
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// loadOptional is Load for the default config file, which may be absent.
func loadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Options returns the generator options for the config.
func (c *Config) Options() []gen.Option {
	var opts []gen.Option
	if c.Target != "" {
		opts = append(opts, gen.WithTarget(c.Target))
	}
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	if c.NumPackage != "" {
		opts = append(opts, gen.WithNumPackage(c.NumPackage))
	}
	if c.Workers != 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	if len(c.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(c.Features...))
	}
	if len(c.Disable) > 0 {
		opts = append(opts, gen.WithoutFeatures(c.Disable...))
	}
	return opts
}
