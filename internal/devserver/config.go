// Package devserver provides a local static file server for previewing the
// site during development.
package devserver

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the TCP port the server listens on when none is configured.
	DefaultPort = 8080
	// DefaultName is the site name shown in the startup banner.
	DefaultName = "promptsandmore.com"
)

// Config holds the settings the server is started with.
// It is fixed once at startup and never mutated while serving.
type Config struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string `toml:"host" yaml:"host"`
	// Port is the TCP port to bind. Zero picks a free port.
	Port int `toml:"port" yaml:"port"`
	// Root is the document root. Empty means it is resolved by ResolveRoot.
	Root string `toml:"root" yaml:"root"`
	// Name is the site name printed in the startup banner.
	Name string `toml:"name" yaml:"name"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Port: DefaultPort,
		Name: DefaultName,
	}
}

// LoadConfig reads a configuration file on top of DefaultConfig.
//
// The format is chosen by extension: .toml or .yaml/.yml. Keys missing from
// the file keep their default values. A relative root is resolved against
// the directory containing the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}

	return cfg, cfg.Validate()
}

// Validate reports whether the configuration can be used to start a server.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

// Addr returns the host:port the server binds.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
