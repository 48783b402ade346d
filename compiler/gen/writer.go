package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FileWriter writes generated files to an output directory with
// parallel execution.
type FileWriter struct {
	outDir  string
	header  string
	workers int
	check   bool
	logger  *slog.Logger

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks write results.
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	TotalBytes     int64
	// Stale lists, in check mode, the files that would be rewritten.
	Stale []string
}

// NewFileWriter creates a new writer for the given output directory.
func NewFileWriter(outDir string) *FileWriter {
	return &FileWriter{
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *FileWriter) WithWorkers(n int) *FileWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithHeader sets the text written at the top of each file.
func (w *FileWriter) WithHeader(header string) *FileWriter {
	w.header = header
	return w
}

// WithCheck enables check mode.
func (w *FileWriter) WithCheck(check bool) *FileWriter {
	w.check = check
	return w
}

// WithLogger sets the writer logger.
func (w *FileWriter) WithLogger(l *slog.Logger) *FileWriter {
	if l != nil {
		w.logger = l
	}
	return w
}

// Metrics returns the write metrics.
func (w *FileWriter) Metrics() *WriterMetrics {
	return w.metrics
}

// WriteAll writes all files in parallel. Files whose on-disk content is
// already up to date are left untouched. In check mode nothing is written
// and ErrStale is returned if any file is out of date.
func (w *FileWriter) WriteAll(ctx context.Context, files []*File) error {
	if !w.check {
		if err := os.MkdirAll(w.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if len(w.metrics.Stale) > 0 {
		sort.Strings(w.metrics.Stale)
		return fmt.Errorf("%w: %s", ErrStale, strings.Join(w.metrics.Stale, ", "))
	}
	return nil
}

// content returns the bytes written for f.
func (w *FileWriter) content(f *File) []byte {
	if w.header == "" {
		return []byte(f.Contents)
	}
	return []byte(strings.TrimRight(w.header, "\n") + "\n" + f.Contents)
}

// writeFile writes a single file.
func (w *FileWriter) writeFile(f *File) error {
	if !filepath.IsLocal(f.Name) {
		return NewGenerationError("write", f.Name, "file name escapes the output directory", nil)
	}
	fullPath := filepath.Join(w.outDir, f.Name)
	buf := w.content(f)

	// 1. Compare with the current file
	current, err := os.ReadFile(fullPath)
	switch {
	case err == nil && bytes.Equal(current, buf):
		w.mu.Lock()
		w.metrics.FilesUnchanged++
		w.mu.Unlock()
		w.logger.Debug("file up to date", "file", f.Name)
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return NewGenerationError("write", f.Name, "read current file", err)
	}

	// 2. Report drift in check mode
	if w.check {
		w.mu.Lock()
		w.metrics.Stale = append(w.metrics.Stale, f.Name)
		w.mu.Unlock()
		w.logger.Warn("file is stale", "file", f.Name)
		return nil
	}

	// 3. Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError("write", f.Name, "create directory", err)
	}

	// 4. Write file
	if err := os.WriteFile(fullPath, buf, 0o644); err != nil {
		return NewGenerationError("write", f.Name, "", err)
	}

	// Update metrics
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(buf))
	w.mu.Unlock()
	w.logger.Debug("wrote file", "file", f.Name, "bytes", len(buf))

	return nil
}
