package modelgen

import (
	"io"
	"log"
	"path/filepath"

	"genetics/pkg/schemas"
)

const (
	DefaultOutputDir = "results"
	DefaultExtension = ".swift"
)

// Options control where and how Build writes its files.
type Options struct {
	OutputDir string      // created if missing
	Extension string      // appended to each model's output name, e.g. ".swift"
	Workers   int         // models rendered concurrently; < 1 means 1
	Logger    *log.Logger // one line per written file; nil discards
}

func DefaultOptions() Options {
	return Options{
		OutputDir: DefaultOutputDir,
		Extension: DefaultExtension,
		Workers:   1,
	}
}

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// OutputPath is the file a model is written to: <OutputDir>/<OutputName><Extension>.
func (o Options) OutputPath(m *schemas.Model) string {
	o = o.withDefaults()
	return filepath.Join(o.OutputDir, m.OutputName()+o.Extension)
}

type Option func(*Options)

func WithOutputDir(dir string) Option {
	return func(o *Options) { o.OutputDir = dir }
}

func WithExtension(ext string) Option {
	return func(o *Options) { o.Extension = ext }
}

func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOptions replaces every option at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}
