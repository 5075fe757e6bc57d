package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"genetics/pkg/config"
)

type flags struct {
	configPath   string
	templatePath string
	outputDir    string
	extension    string
	lang         string
	packageName  string
	jobs         int
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:           "genetics [-t <template>] [-o <outputDir>] [-l template|go] <schema.json>",
		Short:         "Generate one source file per model of a JSON schema",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			return gen(cfg, args[0], f.logger(cmd.ErrOrStderr()))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log every written file")
	rootCmd.Flags().StringVarP(&f.templatePath, "template", "t", config.Default().Template, "template file")
	rootCmd.Flags().StringVarP(&f.outputDir, "output", "o", config.Default().Output, "output directory")
	rootCmd.Flags().StringVarP(&f.extension, "ext", "e", "", "output file extension (default .swift, .go for --lang go)")
	rootCmd.Flags().StringVarP(&f.lang, "lang", "l", config.Default().Lang, `"template" or "go"`)
	rootCmd.Flags().StringVarP(&f.packageName, "package", "p", config.Default().Package, "package name for --lang go")
	rootCmd.Flags().IntVarP(&f.jobs, "jobs", "j", config.Default().Jobs, "models rendered in parallel")

	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

// config loads --config, then applies every flag set on the command line.
func (f *flags) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	set := cmd.Flags().Changed
	if set("template") {
		cfg.Template = f.templatePath
	}
	if set("output") {
		cfg.Output = f.outputDir
	}
	if set("ext") {
		cfg.Extension = f.extension
	}
	if set("lang") {
		cfg.Lang = f.lang
	}
	if set("package") {
		cfg.Package = f.packageName
	}
	if set("jobs") {
		cfg.Jobs = f.jobs
	}
	return cfg, cfg.Validate()
}

func (f *flags) logger(w io.Writer) *log.Logger {
	if !f.verbose {
		return nil
	}
	return log.New(w, "genetics: ", 0)
}
