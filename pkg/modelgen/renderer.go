package modelgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"genetics/pkg/schemas"
)

// Renderer renders every model of a schema through one text/template.
//
// The template receives a schemas.Context:
//
//	struct {{.OutputName}} {
//	{{- range .Attributes}}
//	    let {{lowerCamel .Name}}: {{if .Kind.IsInt}}Int{{else}}String{{end}}{{if .Optional}}?{{end}}
//	{{- end}}
//	}
type Renderer struct {
	path   string
	schema *schemas.Schema
	tmpl   *template.Template
	opts   Options
}

// NewRenderer reads and parses the template at templatePath once.
func NewRenderer(templatePath string, schema *schemas.Schema, opts ...Option) (*Renderer, error) {
	src, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, &TemplateNotFoundError{Path: templatePath, Err: err}
	}

	tmpl, err := template.New(filepath.Base(templatePath)).
		Funcs(TemplateFuncs()).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return nil, &TemplateError{Path: templatePath, Err: err}
	}

	r := &Renderer{
		path:   templatePath,
		schema: schema,
		tmpl:   tmpl,
		opts:   DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r, nil
}

// Render executes the template for one model and trims surrounding whitespace.
func (r *Renderer) Render(m *schemas.Model) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, m.Context()); err != nil {
		return "", &TemplateError{Path: r.path, Model: m.ID(), Err: err}
	}
	return strings.TrimSpace(buf.String()), nil
}

// Emit implements Emitter.
func (r *Renderer) Emit(m *schemas.Model) ([]byte, error) {
	out, err := r.Render(m)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Build writes one rendered file per model of the renderer's schema.
func (r *Renderer) Build() error {
	return Build(r.schema, r, r.opts)
}
