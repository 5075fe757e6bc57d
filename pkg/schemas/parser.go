package schemas

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/thorn-jmh/errorst"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Schema is the parsed input document: its models in declaration order.
type Schema struct {
	models []*Model
}

// FromJSONFile reads from a JSON file and returns a Schema.
func FromJSONFile(filePath string) (*Schema, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to open file %s", filePath)
	}

	defer func() {
		_ = f.Close()
	}()

	return FromJSON(f)
}

// FromJSON reads from a JSON reader and returns a Schema.
func FromJSON(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errorst.Wrap(err, "failed to read schema")
	}
	return Parse(data)
}

// Parse builds a Schema from JSON text shaped like
//
//	{"models": {"<model>": {"<attr>": "<token>", ...}, ...}}
//
// Models and attributes keep the order of their keys in the text.
func Parse(data []byte) (*Schema, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Err: err}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return nil, &SchemaShapeError{Reason: "top-level value must be an object"}
	}
	models, ok := top["models"]
	if !ok {
		return nil, &SchemaShapeError{Reason: `missing top-level "models" key`}
	}
	if !isObject(models) {
		return nil, &SchemaShapeError{Reason: `"models" must be an object`}
	}

	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(models, raw); err != nil {
		return nil, &SchemaShapeError{Reason: "decode models: " + err.Error()}
	}

	sch := &Schema{models: make([]*Model, 0, raw.Len())}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		if !isObject(pair.Value) {
			return nil, &SchemaShapeError{Model: pair.Key, Reason: "content must be an object of attribute tokens"}
		}

		content := orderedmap.New[string, any]()
		if err := json.Unmarshal(pair.Value, content); err != nil {
			return nil, &SchemaShapeError{Model: pair.Key, Reason: err.Error()}
		}
		sch.models = append(sch.models, NewModel(pair.Key, content))
	}

	return sch, nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// Models returns the schema's models in declaration order.
func (s *Schema) Models() []*Model {
	return s.models
}

// CheckOutputNames fails if a model has no usable output name, or if two
// models would be written to the same file. Names are compared
// case-insensitively since "ID.swift" and "Id.swift" collide on some
// filesystems.
func (s *Schema) CheckOutputNames() error {
	seen := make(map[string][]string, len(s.models))
	first := make(map[string]string, len(s.models))
	var order []string
	for _, m := range s.models {
		name := m.OutputName()
		if name == "" {
			return &SchemaShapeError{Model: m.ID(), Reason: "id has no letters or digits to build an output name from"}
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; !ok {
			order = append(order, key)
			first[key] = name
		}
		seen[key] = append(seen[key], m.ID())
	}

	for _, key := range order {
		if ids := seen[key]; len(ids) > 1 {
			return &DuplicateModelNameError{OutputName: first[key], Models: ids}
		}
	}
	return nil
}

func (s *Schema) String() string {
	parts := make([]string, 0, len(s.models))
	for _, m := range s.models {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, "\n\n")
}
