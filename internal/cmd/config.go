package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/xcode/ff2c/internal/codegen/common"
	"github.com/xcode/ff2c/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"gen"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Dest    string `help:"Destination file path (defaults to <command>.<format> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template dynamically via reflection of the command structs and tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	var root map[string]any
	switch c.Command {
	case "gen":
		root = buildMapFromStruct(reflect.TypeOf(Codegen{}), "")
	default:
		return errors.New("unknown command; expected 'gen'")
	}

	dest := c.Dest
	if dest == "" {
		dest = c.Command + "." + format
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	// kong.JSON looks flags up at the top level with '_' separators, the
	// YAML and TOML loaders below a table named after the command.
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(underscoreKeys(root), "", "  ")
	case "yaml":
		data, err = yaml.Marshal(map[string]any{c.Command: root})
	case "toml":
		data, err = toml.Marshal(map[string]any{c.Command: underscoreKeys(root)})
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// flagName spells a field the way kong names its flag.
func flagName(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return name
	}
	return strings.ReplaceAll(common.ToSnakeCase(f.Name), "_", "-")
}

func underscoreKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ReplaceAll(k, "-", "_")] = v
	}
	return out
}

func buildMapFromStruct(t reflect.Type, prefix string) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			for k, v := range buildMapFromStruct(f.Type, prefix+f.Tag.Get("prefix")) {
				out[k] = v
			}
			continue
		}

		val := defaultValueForField(f.Type, f.Tag.Get("default"))
		if val != nil {
			out[prefix+flagName(f)] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		if def == "" {
			return false
		}
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Slice:
		if def == "" {
			return []string{}
		}
		return strings.Split(def, ",")
	default:
		return nil
	}
}
