package main

import (
	"log"
	"os"

	"github.com/thorn-jmh/errorst"

	"genetics/pkg/config"
	"genetics/pkg/modelgen"
	"genetics/pkg/schemas"
)

func gen(cfg config.Config, schemaPath string, logger *log.Logger) error {
	if _, err := os.Stat(schemaPath); err != nil {
		return errorst.Wrap(err, "schema file %s", schemaPath)
	}

	sch, err := schemas.FromJSONFile(schemaPath)
	if err != nil {
		return err
	}

	opts := modelgen.Options{
		OutputDir: cfg.Output,
		Extension: cfg.OutputExtension(),
		Workers:   cfg.Jobs,
		Logger:    logger,
	}

	if cfg.Lang == config.LangGo {
		return modelgen.Build(sch, modelgen.NewGoEmitter(cfg.Package), opts)
	}

	renderer, err := modelgen.NewRenderer(cfg.Template, sch, modelgen.WithOptions(opts))
	if err != nil {
		return err
	}
	return renderer.Build()
}
