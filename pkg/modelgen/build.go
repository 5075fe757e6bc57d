package modelgen

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"mvdan.cc/gofumpt/format"

	"genetics/pkg/schemas"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Emitter produces the content of one model's output file.
type Emitter interface {
	Emit(m *schemas.Model) ([]byte, error)
}

// Build emits every model of sch and writes it to opts.OutputPath(model),
// overwriting existing files.
//
// Colliding output names fail before anything is written. After that a model
// that cannot be emitted or written does not stop the others: every failure
// is returned as a *WriteError, combined in schema order.
func Build(sch *schemas.Schema, em Emitter, opts Options) error {
	opts = opts.withDefaults()

	if err := sch.CheckOutputNames(); err != nil {
		return err
	}

	models := sch.Models()
	if len(models) == 0 {
		return nil
	}

	if err := os.MkdirAll(opts.OutputDir, dirPerm); err != nil {
		return &WriteError{Path: opts.OutputDir, Err: err}
	}

	errs := make([]error, len(models))

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, m := range models {
		i, m := i, m
		g.Go(func() error {
			errs[i] = writeModel(em, m, opts)
			return nil
		})
	}
	_ = g.Wait()

	return multierr.Combine(errs...)
}

func writeModel(em Emitter, m *schemas.Model, opts Options) error {
	path := opts.OutputPath(m)

	content, err := em.Emit(m)
	if err != nil {
		return &WriteError{Model: m.ID(), Path: path, Err: err}
	}
	content = formatSource(content, path, opts.Logger)

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return &WriteError{Model: m.ID(), Path: path, Err: err}
	}

	opts.Logger.Printf("wrote %s (model %q)", path, m.ID())
	return nil
}

// formatSource runs gofumpt over Go output. Anything else, and Go that does
// not parse, is returned unchanged.
func formatSource(content []byte, path string, logger *log.Logger) []byte {
	if filepath.Ext(path) != ".go" {
		return content
	}
	formatted, err := format.Source(content, format.Options{})
	if err != nil {
		logger.Printf("gofumpt %s: %v", path, err)
		return content
	}
	return formatted
}
