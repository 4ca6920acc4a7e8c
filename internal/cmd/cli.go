package cmd

import "github.com/alecthomas/kong"

// CLI is the root command tree of ff2c.
type CLI struct {
	ConfigFile string           `name:"config" help:"Path to a JSON/YAML/TOML configuration file" env:"FF2C_CONFIG" type:"path"`
	Log        LogConfig        `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Gen    Codegen       `cmd:"" help:"Generate the C header and source of xcode model files"`
	Dump   Dump          `cmd:"" help:"Print a model file with all defaults resolved"`
	Config ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// LogConfig holds the global logging flags.
type LogConfig struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"FF2C_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"FF2C_LOG_FILE"`
}
