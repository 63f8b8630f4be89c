package swatch

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the optional per-project configuration file.
const ConfigFile = "swatch.toml"

// Config holds the settings shared by the swatch CLI and the swatchd
// server. Flags override it; it overrides the defaults.
type Config struct {
	// Results is the directory the packer writes result tables into.
	Results string `toml:"results"`

	Server ServerConfig `toml:"server"`
}

type ServerConfig struct {
	// Addr is the listen address for swatchd.
	Addr string `toml:"addr"`
	// Docroot is the directory swatchd serves static files from.
	Docroot string `toml:"docroot"`
}

// DefaultConfig matches what the packing scripts have always assumed:
// a Results directory next to the invocation, a server on :8000 serving
// static files from its own directory.
func DefaultConfig() Config {
	return Config{
		Results: "Results",
		Server: ServerConfig{
			Addr:    ":8000",
			Docroot: ".",
		},
	}
}

// LoadConfig reads swatch.toml from dir. A missing file is not an error;
// the defaults apply. Fields left unset in the file keep their defaults.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	bs, err := os.ReadFile(path.Join(dir, ConfigFile))
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(bs, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate collects every problem with the config before reporting any of
// them.
func (cfg Config) Validate() error {
	var problems []string

	if cfg.Results == "" {
		problems = append(problems, "results must not be empty")
	}
	if cfg.Server.Addr == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	if cfg.Server.Docroot == "" {
		problems = append(problems, "server.docroot must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid %s:\n%s", ConfigFile, strings.Join(problems, "\n"))
	}
	return nil
}
