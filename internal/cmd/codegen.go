package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/xcode/ff2c/internal/codegen/generator"
)

type Codegen struct {
	Files       []string `arg:"" name:"model" help:"Model files (.json, .yaml, .yml, .toml)"`
	Output      string   `help:"Output directory for the generated _ff.h and _ff.c files" default:"." env:"FF2C_OUTPUT"`
	GuardPrefix string   `help:"Prefix of derived include guards" default:"m0" env:"FF2C_GUARD_PREFIX"`
	Guard       string   `help:"Include guard override (single model only)"`
	Base        string   `help:"Base name override (single model only)"`
	Stdout      bool     `help:"Write header and source to stdout instead of files"`

	out io.Writer `kong:"-"`
}

// Run is called by Kong when the gen command is executed.
func (c *Codegen) Run(logger *slog.Logger) error {
	logger.Info("Starting xcode C generation", "models", len(c.Files), "output", c.Output)

	cfg := generator.Config{
		OutputDir:   c.Output,
		GuardPrefix: c.GuardPrefix,
		BaseName:    c.Base,
		Guard:       c.Guard,
	}
	if c.Stdout {
		cfg.Stdout = c.stdout()
	}
	return generator.New(cfg, logger).GenAll(c.Files)
}

func (c *Codegen) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
