package modelgen

import (
	"bytes"

	"github.com/dave/jennifer/jen"
	"github.com/thorn-jmh/errorst"

	"genetics/pkg/schemas"
)

const generatedHeader = "Code generated by genetics. DO NOT EDIT."

// GoEmitter writes each model as a Go struct, without a template file.
type GoEmitter struct {
	Package string
}

func NewGoEmitter(pkg string) *GoEmitter {
	return &GoEmitter{Package: pkg}
}

// Emit implements Emitter.
func (e *GoEmitter) Emit(m *schemas.Model) ([]byte, error) {
	f := jen.NewFile(e.Package)
	f.HeaderComment(generatedHeader)

	if err := GenerateObject(m).Gen(f); err != nil {
		return nil, errorst.Wrap(err, "failed to generate model<%s>", m.ID())
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errorst.Wrap(err, "failed to render model %s", m.ID())
	}
	return buf.Bytes(), nil
}

func (d *Object) Gen(f *jen.File) error {
	// attribute keys are unique, but their Go names may still collide
	seen := make(map[string]bool, len(d.Fields))
	for _, field := range d.Fields {
		if seen[field.Name] {
			return errorst.Wrap(ErrInvalidStructure, "duplicate field %s in %s", field.Name, d.Name)
		}
		seen[field.Name] = true
	}

	var fieldsDecl = func(g *jen.Group) {
		for _, field := range d.Fields {
			stat := declType(g.Id(field.Name), field.Type)
			if field.Tags != nil {
				stat.Tag(field.Tags)
			}
			if field.Comment != "" {
				stat.Comment(field.Comment)
			}
		}
	}

	f.Comment(d.Comment)
	f.Type().Id(d.Name).StructFunc(fieldsDecl)
	return nil
}

func declType(s *jen.Statement, typ Type) *jen.Statement {
	if typ.Elem != nil {
		return declType(s.Index(), *typ.Elem)
	}
	if typ.NilAble {
		s.Op("*")
	}
	if typ.Domain != "" {
		return s.Qual(typ.Domain, typ.Name)
	}
	return s.Id(typ.Name)
}
