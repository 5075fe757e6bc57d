package modelgen

import (
	"fmt"

	"github.com/thorn-jmh/errorst"
)

var ErrInvalidStructure = errorst.NewError("model cannot be declared")

// TemplateNotFoundError reports a template file that could not be read.
type TemplateNotFoundError struct {
	Path string
	Err  error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Path, e.Err)
}

func (e *TemplateNotFoundError) Unwrap() error { return e.Err }

// TemplateError reports a template that does not parse, or that fails while
// rendering a model. Model is empty for parse failures.
type TemplateError struct {
	Path  string
	Model string
	Err   error
}

func (e *TemplateError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("template %s: render %q: %v", e.Path, e.Model, e.Err)
	}
	return fmt.Sprintf("template %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// WriteError reports one model whose output file could not be produced.
// Build collects one per failing model instead of stopping at the first.
type WriteError struct {
	Model string
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("write %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("write %s for model %q: %v", e.Path, e.Model, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
