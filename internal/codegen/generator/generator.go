package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xcode/ff2c/internal/codegen/common"
	cgen "github.com/xcode/ff2c/internal/codegen/generator/c"
	"github.com/xcode/ff2c/internal/xcode/loader"
	"github.com/xcode/ff2c/internal/xcode/model"
)

// Config controls where and under which names the C documents are written.
type Config struct {
	OutputDir string
	// GuardPrefix is prepended to derived include guards, e.g. "m0".
	GuardPrefix string
	// BaseName and Guard override the values derived from the model path.
	BaseName string
	Guard    string
	// Stdout, when set, receives header and source back to back instead of files.
	Stdout io.Writer
}

type Generator struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// ErrOverrideMultiple is returned when a base name or guard override is
// combined with more than one model file.
var ErrOverrideMultiple = errors.New("--base and --guard apply to a single model file")

// GenAll generates the header and source of every model file in order.
func (g *Generator) GenAll(paths []string) error {
	if len(paths) > 1 && (g.cfg.BaseName != "" || g.cfg.Guard != "") {
		return ErrOverrideMultiple
	}
	for _, p := range paths {
		if err := g.GenerateFile(p); err != nil {
			return fmt.Errorf("generate %s: %w", p, err)
		}
	}
	return nil
}

// GenerateFile loads one model file and generates its C documents.
func (g *Generator) GenerateFile(path string) error {
	g.logger.Debug("Loading model", "path", path)
	s, err := loader.Load(path)
	if err != nil {
		return err
	}
	g.logger.Info("Loaded model",
		"path", path,
		"types", len(s.Types),
		"public", len(s.PublicTypes()),
		"escapes", len(s.Escapes))

	base := g.cfg.BaseName
	if base == "" {
		base = common.BaseName(path)
	}
	guard := g.cfg.Guard
	if guard == "" {
		guard = common.GuardName(g.cfg.GuardPrefix, base)
	}
	return g.GenerateSchema(s, base, guard)
}

// GenerateSchema renders both documents of s. Each document is rendered in
// full before anything is written.
func (g *Generator) GenerateSchema(s *model.Schema, base, guard string) error {
	var header, source bytes.Buffer
	if err := cgen.GenerateHeader(s, cgen.GenOptions{Out: &header, BaseName: base, GuardName: guard}); err != nil {
		return err
	}
	if err := cgen.GenerateSource(s, cgen.GenOptions{Out: &source, BaseName: base, GuardName: guard}); err != nil {
		return err
	}

	if g.cfg.Stdout != nil {
		if _, err := g.cfg.Stdout.Write(header.Bytes()); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if _, err := g.cfg.Stdout.Write(source.Bytes()); err != nil {
			return fmt.Errorf("write source: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, doc := range []struct {
		name string
		data []byte
	}{
		{common.HeaderFile(base), header.Bytes()},
		{common.SourceFile(base), source.Bytes()},
	} {
		out := filepath.Join(g.cfg.OutputDir, doc.name)
		if err := os.WriteFile(out, doc.data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", doc.name, err)
		}
		g.logger.Info("Generated file", "file", out, "guard", guard)
	}
	return nil
}
