// sigen generates the typed SI quantity package from a quantity table.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/syssam/siunits/compiler"
	"github.com/syssam/siunits/compiler/gen"
)

var (
	tablePath  string
	configFile string
	// generate
	target   string
	pkg      string
	header   string
	numPkg   string
	workers  int
	features []string
	disable  []string
	watch    bool
	// graph
	format   string
	diffFile string
)

func main() {
	defer glog.Flush()
	// glog writes to files under os.TempDir by default.
	_ = flag.Set("logtostderr", "true")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sigen",
		Short:        "generate typed SI quantities",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// Mark the go flags parsed; pflag already set their values.
			return flag.CommandLine.Parse(nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "quantity table (default: built-in SI table)")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate the quantity package",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&configFile, "config", DefaultConfigFile, "config file path (yaml)")
	generateCmd.Flags().StringVar(&target, "target", DefaultTarget, "output directory")
	generateCmd.Flags().StringVar(&pkg, "package", "", "import path of the generated package")
	generateCmd.Flags().StringVar(&header, "header", "", "header comment of generated files")
	generateCmd.Flags().StringVar(&numPkg, "num-package", "", "import path of the numeric capability package")
	generateCmd.Flags().IntVar(&workers, "workers", DefaultWorkers, "files generated in parallel (0: GOMAXPROCS)")
	generateCmd.Flags().StringSliceVar(&features, "feature", nil, "enable a feature ("+featureNames()+")")
	generateCmd.Flags().StringSliceVar(&disable, "disable", nil, "disable a default feature")
	generateCmd.Flags().BoolVar(&watch, "watch", false, "regenerate when the table changes")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "validate the quantity table and its conversion graph",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "print the conversion graph",
		Args:  cobra.NoArgs,
		RunE:  runGraph,
	}
	graphCmd.Flags().StringVar(&format, "format", "text", "output format (text, yaml, json, msgpack)")
	graphCmd.Flags().StringVar(&diffFile, "diff", "", "print the edges added or removed since a saved snapshot")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list quantities and their units",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	rootCmd.AddCommand(generateCmd, checkCmd, graphCmd, listCmd)
	return rootCmd
}

func featureNames() string {
	names := make([]string, len(gen.AllFeatures))
	for i, f := range gen.AllFeatures {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

// generateConfig merges the config file with the flags set on cmd.
func generateConfig(cmd *cobra.Command) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = Load(configFile)
	} else {
		cfg, err = loadOptional(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("table") || cfg.Table == "" {
		cfg.Table = tablePath
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("package") {
		cfg.Package = pkg
	}
	if flags.Changed("header") {
		cfg.Header = header
	}
	if flags.Changed("num-package") {
		cfg.NumPackage = numPkg
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("feature") {
		cfg.Features = features
	}
	if flags.Changed("disable") {
		cfg.Disable = disable
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := generateConfig(cmd)
	if err != nil {
		return err
	}
	if err := generate(cfg); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	if cfg.Table == "" {
		return fmt.Errorf("--watch needs a --table file")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	w, err := newWatcher(cfg.Table)
	if err != nil {
		return err
	}
	defer w.Close()
	glog.Infof("watching %s", cfg.Table)
	return watchLoop(ctx, w, cfg.Table, func() {
		if err := generate(cfg); err != nil {
			glog.Errorf("regenerate: %v", err)
		}
	})
}

func generate(cfg *Config) error {
	g, err := compiler.LoadGraph(cfg.Table, cfg.Options()...)
	if err != nil {
		return err
	}
	if err := g.Gen(); err != nil {
		return fmt.Errorf("generate %s: %w", g, err)
	}
	m := g.Metrics()
	glog.Infof("generated %s into %s: %d files, %d bytes", g, g.Target, m.FilesGenerated, m.TotalBytes)
	glog.V(1).Infof("template %v, format %v, write %v", m.TemplateTime, m.FormatTime, m.WriteTime)
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	g, err := compiler.LoadGraph(tablePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", g)
	return nil
}

func runGraph(cmd *cobra.Command, _ []string) error {
	g, err := compiler.LoadGraph(tablePath)
	if err != nil {
		return err
	}
	s := g.Snapshot()
	out := cmd.OutOrStdout()
	if diffFile != "" {
		return printDiff(out, s, diffFile)
	}
	if format == "text" {
		for _, e := range s.Edges {
			fmt.Fprintf(out, "%s %s %s = %s (%s)\n", e.Left, e.Op, e.Right, e.Result, e.Source)
		}
		return nil
	}
	return s.Encode(out, format)
}

// printDiff compares the graph with the snapshot saved at path. The
// snapshot format follows the file extension.
func printDiff(out io.Writer, cur *gen.Snapshot, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	old, err := gen.DecodeSnapshot(f, snapshotFormat(path))
	if err != nil {
		return err
	}
	for _, line := range old.Diff(cur) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func snapshotFormat(path string) string {
	switch filepath.Ext(path) {
	case ".json":
		return gen.FormatJSON
	case ".msgpack", ".mp":
		return gen.FormatMsgpack
	default:
		return gen.FormatYAML
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	g, err := compiler.LoadGraph(tablePath)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tUNIT\tSYMBOL\tKIND")
	for _, t := range g.Nodes {
		for _, u := range t.Units {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name, u.Name, u.Symbol, u.Kind)
		}
	}
	return w.Flush()
}
