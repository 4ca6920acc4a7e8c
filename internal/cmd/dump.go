package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xcode/ff2c/internal/xcode/loader"
)

// Dump prints a model after the loader filled in its defaults.
type Dump struct {
	File   string `arg:"" name:"model" help:"Model file" type:"existingfile"`
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`

	out io.Writer `kong:"-"`
}

// Run is called by Kong when the dump command is executed.
func (d *Dump) Run(logger *slog.Logger) error {
	format, err := loader.ParseFormat(d.Format)
	if err != nil {
		return err
	}
	s, err := loader.Load(d.File)
	if err != nil {
		return err
	}
	data, err := loader.Encode(loader.FromSchema(s), format)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	logger.Debug("Dumping model", "file", d.File, "types", len(s.Types), "format", format)

	w := d.out
	if w == nil {
		w = os.Stdout
	}
	_, err = w.Write(data)
	return err
}
