package schemas

import (
	"fmt"
	"strings"
)

// ParseError reports schema text that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse schema: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaShapeError reports valid JSON that is not shaped like
// {"models": {"<model>": {"<attr>": "<token>"}}}.
type SchemaShapeError struct {
	Model  string // empty when the problem is at the top level
	Reason string
}

func (e *SchemaShapeError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("schema shape: model %q: %s", e.Model, e.Reason)
	}
	return "schema shape: " + e.Reason
}

// DuplicateModelNameError reports models whose output names collide, which
// would make one model's file overwrite another's.
type DuplicateModelNameError struct {
	OutputName string
	Models     []string
}

func (e *DuplicateModelNameError) Error() string {
	return fmt.Sprintf("models %s all map to output name %q", strings.Join(e.Models, ", "), e.OutputName)
}
