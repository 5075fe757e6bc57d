// Package config loads the optional YAML file that sets generation defaults.
package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/thorn-jmh/errorst"
	"gopkg.in/yaml.v3"
)

const (
	LangTemplate = "template"
	LangGo       = "go"
)

var ErrInvalidConfig = errorst.NewError("invalid config")

// Config holds one generation run's settings.
//
//	template: template.swift.tmpl
//	output: results
//	extension: .swift  # defaults to .swift, or .go for lang go
//	lang: template
//	package: model
//	jobs: 1
type Config struct {
	Template  string `yaml:"template"`
	Output    string `yaml:"output"`
	Extension string `yaml:"extension"`
	Lang      string `yaml:"lang"`    // "template" renders Template, "go" emits Go structs
	Package   string `yaml:"package"` // package clause for lang "go"
	Jobs      int    `yaml:"jobs"`
}

func Default() Config {
	return Config{
		Template: "template.swift.tmpl",
		Output:   "results",
		Lang:     LangTemplate,
		Package:  "model",
		Jobs:     1,
	}
}

// OutputExtension is Extension, or the conventional one for Lang when unset.
func (c Config) OutputExtension() string {
	if c.Extension != "" {
		return c.Extension
	}
	if c.Lang == LangGo {
		return ".go"
	}
	return ".swift"
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errorst.Wrap(err, "failed to read config %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errorst.Wrap(err, "failed to decode config")
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Lang {
	case LangTemplate:
		if c.Template == "" {
			return errorst.Wrap(ErrInvalidConfig, "lang %q needs a template", c.Lang)
		}
	case LangGo:
		if c.Package == "" {
			return errorst.Wrap(ErrInvalidConfig, "lang %q needs a package name", c.Lang)
		}
	default:
		return errorst.Wrap(ErrInvalidConfig, "unknown lang %q", c.Lang)
	}

	if c.Jobs < 0 {
		return errorst.Wrap(ErrInvalidConfig, "jobs must not be negative, got %d", c.Jobs)
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return errorst.Wrap(ErrInvalidConfig, "extension %q must start with a dot", c.Extension)
	}
	return nil
}
