// Package config loads graphconv defaults from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/graphconv/config.toml (or the platform
// equivalent reported by [os.UserConfigDir]) unless a path is given
// explicitly. Every key is optional; command-line flags take precedence.
//
//	indent = "\t"
//	node_prefix = "v"
//	lenient = true
//	spool_threshold = 16777216
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

// FileName is the config file name inside the app config directory.
const FileName = "config.toml"

// AppDir is the directory name under the user config directory.
const AppDir = "graphconv"

// Config holds file-level defaults for conversions.
type Config struct {
	Indent         string `toml:"indent"`
	NodePrefix     string `toml:"node_prefix"`
	RawIDs         bool   `toml:"raw_ids"`
	Lenient        bool   `toml:"lenient"`
	KeepNaN        bool   `toml:"keep_nan"`
	SpoolDir       string `toml:"spool_dir"`
	SpoolThreshold int64  `toml:"spool_threshold"`
	LabelAttr      string `toml:"label_attr"`
	Detailed       bool   `toml:"detailed"`
	NoCache        bool   `toml:"no_cache"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Load reads the config at path. A missing file yields an empty config
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %s",
			path, strings.Join(names, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that can be checked without a conversion.
func (c *Config) Validate() error {
	if err := errors.ValidateNodePrefix(c.NodePrefix); err != nil {
		return err
	}
	if strings.TrimLeft(c.Indent, " \t") != "" {
		return errors.New(errors.ErrCodeInvalidConfig, "indent must be spaces or tabs: %q", c.Indent)
	}
	return nil
}

// Apply copies the configured values into opts.
func (c *Config) Apply(opts *pipeline.Options) {
	if c.Indent != "" {
		opts.Indent = c.Indent
	}
	if c.NodePrefix != "" {
		opts.NodePrefix = c.NodePrefix
	}
	if c.SpoolDir != "" {
		opts.SpoolDir = c.SpoolDir
	}
	if c.SpoolThreshold != 0 {
		opts.SpoolThreshold = c.SpoolThreshold
	}
	if c.LabelAttr != "" {
		opts.LabelAttr = c.LabelAttr
	}
	opts.RawIDs = opts.RawIDs || c.RawIDs
	opts.Lenient = opts.Lenient || c.Lenient
	opts.KeepNaN = opts.KeepNaN || c.KeepNaN
	opts.Detailed = opts.Detailed || c.Detailed
}
