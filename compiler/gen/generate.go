package gen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/veloxts/compiler/load"
)

// Generate generates the model files of the given schemas. Schemas are
// generated concurrently; the returned files follow the order of schemas.
// The first failure aborts the run and no files are returned.
func Generate(ctx context.Context, cfg *Config, schemas ...*Schema) ([]*File, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "missing generation config")
	}
	cfg.defaults()
	if err := checkNames(schemas); err != nil {
		return nil, err
	}
	files := make([]*File, len(schemas))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, s := range schemas {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			f, err := NewModelGenerator(s).WithRuntimeModule(cfg.RuntimeModule).Gen()
			if err != nil {
				return NewGenerationError("model", s.FileName(), "", err)
			}
			cfg.Logger.Debug("generated model", "model", s.ModelTypeName(), "file", f.Name, "bytes", len(f.Contents))
			files[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// checkNames fails if two schemas produce the same model type.
func checkNames(schemas []*Schema) error {
	seen := make(map[string]*Schema, len(schemas))
	for _, s := range schemas {
		name := s.ModelTypeName()
		if prev, ok := seen[name]; ok {
			return NewSchemaError(name, "", fmt.Sprintf("model declared twice (%s, %s)", posOf(prev), posOf(s)), nil)
		}
		seen[name] = s
	}
	return nil
}

func posOf(s *Schema) string {
	if s.Pos != "" {
		return s.Pos
	}
	return s.Name
}

// Run converts loaded schemas, generates their model files and writes
// them to the config target. It returns the writer metrics.
func Run(ctx context.Context, cfg *Config, loaded ...*load.Schema) (*WriterMetrics, error) {
	if cfg == nil || cfg.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	cfg.defaults()
	schemas := make([]*Schema, 0, len(loaded))
	for _, ls := range loaded {
		s, err := NewSchema(ls)
		if err != nil {
			return nil, NewGenerationError("load", ls.Pos, "", err)
		}
		schemas = append(schemas, s)
	}
	files, err := Generate(ctx, cfg, schemas...)
	if err != nil {
		return nil, err
	}
	w := NewFileWriter(cfg.Target).
		WithHeader(cfg.Header).
		WithWorkers(cfg.Workers).
		WithCheck(cfg.Check).
		WithLogger(cfg.Logger)
	if err := w.WriteAll(ctx, files); err != nil {
		return w.Metrics(), err
	}
	m := w.Metrics()
	cfg.Logger.Info("generation finished",
		"models", len(files),
		"written", m.FilesWritten,
		"unchanged", m.FilesUnchanged,
	)
	return m, nil
}
