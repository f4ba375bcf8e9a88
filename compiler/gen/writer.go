package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// TemplateWriter executes the graph templates of the enabled features and
// the user templates in parallel, and formats their output with goimports.
type TemplateWriter struct {
	graph   *Graph
	outDir  string
	workers int
	stats   *writerStats
}

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	TemplateTime   time.Duration
	FormatTime     time.Duration
	WriteTime      time.Duration
}

// writerStats is shared by the generators of one graph.
type writerStats struct {
	mu sync.Mutex
	m  WriterMetrics
}

func (s *writerStats) add(m WriterMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.FilesGenerated += m.FilesGenerated
	s.m.TotalBytes += m.TotalBytes
	s.m.TemplateTime += m.TemplateTime
	s.m.FormatTime += m.FormatTime
	s.m.WriteTime += m.WriteTime
}

func (s *writerStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = WriterMetrics{}
}

func (s *writerStats) snapshot() WriterMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m
}

// NewTemplateWriter creates a new template-based writer.
func NewTemplateWriter(g *Graph, outDir string) *TemplateWriter {
	stats := g.metrics
	if stats == nil {
		stats = &writerStats{}
	}
	return &TemplateWriter{
		graph:   g,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		stats:   stats,
	}
}

// WithWorkers sets the number of parallel workers.
func (w *TemplateWriter) WithWorkers(n int) *TemplateWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the generation metrics.
func (w *TemplateWriter) Metrics() WriterMetrics {
	return w.stats.snapshot()
}

// fileTask represents a single file generation task.
type fileTask struct {
	name     string    // output file path (relative to outDir)
	tmpl     *Template // template set
	template string    // template name to execute
}

// GenerateGraph generates all graph-level files.
func (w *TemplateWriter) GenerateGraph(ctx context.Context) error {
	files, err := w.tasks()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.generateFile(f)
			}
		})
	}
	return eg.Wait()
}

// tasks collects the graph templates of the enabled features and the
// templates of the config.
func (w *TemplateWriter) tasks() ([]fileTask, error) {
	var files []fileTask
	for _, f := range w.graph.EnabledFeatures() {
		if len(f.GraphTemplates) == 0 {
			continue
		}
		base, err := baseTemplates()
		if err != nil {
			return nil, err
		}
		for _, gt := range f.GraphTemplates {
			if gt.Skip != nil && gt.Skip(w.graph) {
				continue
			}
			files = append(files, fileTask{name: gt.Format, tmpl: base, template: gt.Name})
		}
	}
	for _, t := range w.graph.Templates {
		if t.skip(w.graph) {
			continue
		}
		files = append(files, fileTask{name: t.Name() + ".go", tmpl: t, template: t.Name()})
	}
	return files, nil
}

// generateFile generates a single file.
func (w *TemplateWriter) generateFile(f fileTask) error {
	var m WriterMetrics

	// 1. Execute template
	start := time.Now()
	var buf bytes.Buffer
	if err := f.tmpl.ExecuteTemplate(&buf, f.template, w.graph); err != nil {
		return fmt.Errorf("execute template %q for %s: %w", f.template, f.name, err)
	}
	m.TemplateTime = time.Since(start)

	// 2. Format using goimports (removes unused imports and adds missing ones)
	start = time.Now()
	fullPath := filepath.Join(w.outDir, f.name)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Unformatted output is kept next to the target for debugging.
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return fmt.Errorf("format %s: %w (unformatted written to %s)", f.name, err, debugPath)
	}
	m.FormatTime = time.Since(start)

	// 3. Write file
	start = time.Now()
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.name, err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.name, err)
	}
	m.WriteTime = time.Since(start)

	m.FilesGenerated = 1
	m.TotalBytes = int64(len(formatted))
	w.stats.add(m)
	return nil
}
