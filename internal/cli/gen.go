package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/veloxts/compiler/gen"
	"github.com/syssam/veloxts/compiler/load"
)

// DefaultHeader is written at the top of generated files.
const DefaultHeader = "// Code generated by velox-ts. DO NOT EDIT."

type genOptions struct {
	schemaDir string
	target    string
	header    string
	runtime   string
	workers   int
	check     bool
	watch     bool
}

func newGenCmd() *cobra.Command {
	opts := genOptions{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate TypeScript models from schema documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.check && opts.watch {
				return wrapError("gen: --check cannot be combined with --watch", nil, "", 2)
			}
			logger := newLogger(cmd.ErrOrStderr())
			cfg, err := opts.config(logger)
			if err != nil {
				return wrapError(fmt.Sprintf("gen: %v", err), err, "", 2)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if opts.watch {
				return watch(ctx, opts.schemaDir, logger, func() error {
					return runGen(ctx, cmd, cfg, opts.schemaDir)
				})
			}
			return runGen(ctx, cmd, cfg, opts.schemaDir)
		},
	}
	cmd.Flags().StringVarP(&opts.schemaDir, "schema", "s", "./schema", "Directory holding the schema documents")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "./generated", "Output directory of the generated models")
	cmd.Flags().StringVar(&opts.header, "header", DefaultHeader, "Header written at the top of each generated file")
	cmd.Flags().StringVar(&opts.runtime, "runtime", gen.DefaultRuntimeModule, "Module the Model base class is imported from")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 uses GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if generated files are out of date instead of writing them")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when schema documents change")
	return cmd
}

func (o genOptions) config(logger *slog.Logger) (*gen.Config, error) {
	opts := []gen.Option{
		gen.WithTarget(o.target),
		gen.WithHeader(o.header),
		gen.WithRuntimeModule(o.runtime),
		gen.WithCheck(o.check),
		gen.WithLogger(logger),
	}
	if o.workers != 0 {
		opts = append(opts, gen.WithWorkers(o.workers))
	}
	return gen.NewConfig(opts...)
}

func runGen(ctx context.Context, cmd *cobra.Command, cfg *gen.Config, schemaDir string) error {
	schemas, err := load.Dir(schemaDir)
	if err != nil {
		return wrapError(fmt.Sprintf("gen: load schemas: %v", err), err, "Check that --schema points to a directory of .yaml, .json or .msgpack documents.", 1)
	}
	if len(schemas) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no schema documents found in %s\n", schemaDir)
		return nil
	}
	m, err := gen.Run(ctx, cfg, schemas...)
	switch {
	case errors.Is(err, gen.ErrStale):
		return wrapError(fmt.Sprintf("gen: %v", err), err, "Run `velox-ts gen` without --check to update them.", 3)
	case err != nil:
		return wrapError(fmt.Sprintf("gen: generation failed: %v", err), err, "Resolve the schema issue above and re-run `velox-ts gen`.", 1)
	}
	out := cmd.OutOrStdout()
	if cfg.Check {
		fmt.Fprintf(out, "%d models up to date\n", m.FilesUnchanged)
		return nil
	}
	fmt.Fprintf(out, "generated %d models into %s (%d written, %d unchanged)\n",
		len(schemas), cfg.Target, m.FilesWritten, m.FilesUnchanged)
	return nil
}
