package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPrompt       = "DIYLispy > "
	DefaultHistorySize  = 500
	DefaultMaxDepth     = 10000
	DefaultMaxLineBytes = 1 << 20
	ConfigFileName      = "lispy.toml"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`
	LispyHome string `toml:"-"`

	Prompt       string `toml:"prompt"`
	Color        bool   `toml:"color"`
	HistoryDSN   string `toml:"history"`
	HistorySize  int    `toml:"history_size"`
	MaxDepth     int    `toml:"max_depth"`
	MaxLineBytes int    `toml:"max_line_bytes"`
	DebugTxtAST  bool   `toml:"debug_ast"`
	DebugJsonAST bool   `toml:"debug_ast_json"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Prompt:       DefaultPrompt,
		Color:        true,
		HistorySize:  DefaultHistorySize,
		MaxDepth:     DefaultMaxDepth,
		MaxLineBytes: DefaultMaxLineBytes,
		LogLevel:     "none",
	}
}

// ConfigPath returns the file LoadConfigFile reads when no explicit path is given.
func (c Configuration) ConfigPath() string {
	if c.LispyHome == "" {
		return ""
	}
	return filepath.Join(c.LispyHome, ConfigFileName)
}

// LoadConfigFile overlays the TOML file at path onto c. A missing file is not an
// error when optional is set, which is how the $LISPY_HOME default is read.
func LoadConfigFile(c *Configuration, path string, optional bool) error {
	if path == "" {
		return nil
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return c.Validate()
}

func (c Configuration) Validate() error {
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative, got %d", c.HistorySize)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	return nil
}

// HomeFromEnv resolves LISPY_HOME, falling back to ~/.lispy.
func HomeFromEnv() string {
	if home := os.Getenv("LISPY_HOME"); home != "" {
		return home
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ".lispy")
}
