// Package config holds the settings shared by the richparams commands. Values
// come from an optional YAML file and are overlaid by the flags the user set
// explicitly on the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultAddr     = ":8080"
	DefaultRenderer = "vanilla"
	DefaultOutput   = "json"
	DefaultLogLevel = "info"
)

// Flag names bound by BindFlags.
const (
	FlagConfig      = "config"
	FlagSource      = "source"
	FlagTemplateID  = "template-id"
	FlagAddr        = "addr"
	FlagRenderer    = "renderer"
	FlagReadOnly    = "read-only"
	FlagShowOptions = "show-options"
	FlagValuesFile  = "values-file"
	FlagOutput      = "output"
	FlagLogLevel    = "log-level"
	FlagOrigins     = "allowed-origins"
)

// ErrMissingSource is returned when no schema source is configured.
var ErrMissingSource = errors.New("config: source is required")

// Config is the resolved command configuration.
type Config struct {
	Source      string `yaml:"source"`
	TemplateID  string `yaml:"template_id"`
	Addr        string `yaml:"addr"`
	Renderer    string `yaml:"renderer"`
	ReadOnly    bool   `yaml:"read_only"`
	ShowOptions bool   `yaml:"show_options"`
	ValuesFile  string `yaml:"values_file"`
	Output      string `yaml:"output"`
	LogLevel    string `yaml:"log_level"`

	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:     DefaultAddr,
		Renderer: DefaultRenderer,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of the defaults. Keys missing from the
// document keep their default value.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// BindFlags registers the config flags on fs with default values.
func BindFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(FlagConfig, "", "YAML config file")
	fs.String(FlagSource, def.Source, "parameter schema source (path or http(s) URL)")
	fs.String(FlagTemplateID, def.TemplateID, "template id the variables are submitted for")
	fs.String(FlagAddr, def.Addr, "listen address for the console")
	fs.String(FlagRenderer, def.Renderer, "renderer name (vanilla or tui)")
	fs.Bool(FlagReadOnly, def.ReadOnly, "disable every field")
	fs.Bool(FlagShowOptions, def.ShowOptions, "render reset-to-default actions")
	fs.String(FlagValuesFile, def.ValuesFile, "YAML file with name: value pairs used to pre-fill fields")
	fs.String(FlagOutput, def.Output, "terminal output format (json, form or pretty)")
	fs.String(FlagLogLevel, def.LogLevel, "log level (trace, debug, info, warn, error, none)")
	fs.StringSlice(FlagOrigins, def.AllowedOrigins, "origins allowed to call the console (CORS)")
}

// Resolve builds the configuration for a command: defaults, then the file
// named by --config when present, then every flag the user changed.
func Resolve(fs *pflag.FlagSet) (Config, error) {
	cfg := Default()
	if path, err := fs.GetString(FlagConfig); err == nil && strings.TrimSpace(path) != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(cfg.apply)
	return cfg, nil
}

func (c *Config) apply(f *pflag.Flag) {
	value := f.Value.String()
	switch f.Name {
	case FlagSource:
		c.Source = value
	case FlagTemplateID:
		c.TemplateID = value
	case FlagAddr:
		c.Addr = value
	case FlagRenderer:
		c.Renderer = value
	case FlagValuesFile:
		c.ValuesFile = value
	case FlagOutput:
		c.Output = value
	case FlagLogLevel:
		c.LogLevel = value
	case FlagReadOnly:
		c.ReadOnly = value == "true"
	case FlagShowOptions:
		c.ShowOptions = value == "true"
	case FlagOrigins:
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			c.AllowedOrigins = sv.GetSlice()
		}
	}
}

// RequireSource reports ErrMissingSource when Source is blank.
func (c Config) RequireSource() error {
	if strings.TrimSpace(c.Source) == "" {
		return ErrMissingSource
	}
	return nil
}

// ParsedTemplateID parses TemplateID. A blank id yields uuid.Nil.
func (c Config) ParsedTemplateID() (uuid.UUID, error) {
	raw := strings.TrimSpace(c.TemplateID)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("config: template id %q: %w", raw, err)
	}
	return id, nil
}
