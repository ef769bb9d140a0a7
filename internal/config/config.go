// Package config assembles the checker configuration from three layers:
// built-in defaults, an optional YAML configuration file, and environment
// variables. Later layers win.
package config

import (
	"errors"
	"io"
	"os"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables consumed at startup. Reporting stays disabled when
// the endpoint variable is unset.
const (
	EnvEndpointURL = "RUNTIME_ERROR_ENDPOINT_URL"
	EnvBoardID     = "BOARD_ID"
)

// DefaultConfigPath is where Load looks for a configuration file when the
// caller does not name one.
const DefaultConfigPath = ".syncheck.yaml"

// Config holds everything the checker reads from its environment.
// EndpointURL and BoardID come from environment variables only; the rest
// can be set in the configuration file.
type Config struct {
	EndpointURL string   `koanf:"endpoint-url" yaml:"-"`
	BoardID     string   `koanf:"board-id" yaml:"-"`
	Extensions  []string `koanf:"extensions" yaml:"extensions"`
	Excludes    []string `koanf:"excludes" yaml:"excludes"`
}

// Default returns the built-in configuration: Go source extensions and the
// usual dependency, VCS and build-artifact directories.
func Default() Config {
	return Config{
		Extensions: []string{".go", ".gno"},
		Excludes:   []string{"vendor", "node_modules", ".git", "testdata", ".cache"},
	}
}

// Load builds the effective configuration. A missing configuration file is
// not an error; a present but unparseable one is.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, err
	}

	if configPath != "" {
		fileMap, err := readConfigFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if len(fileMap) > 0 {
			if err := k.Load(confmap.Provider(fileMap, "."), nil); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{TransformFunc: envTransform}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envTransform maps the two recognized environment variables onto config
// keys and drops every other variable.
func envTransform(key, value string) (string, any) {
	switch key {
	case EnvEndpointURL:
		return "endpoint-url", value
	case EnvBoardID:
		return "board-id", value
	}
	return "", nil
}

func readConfigFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m map[string]any
	if err := yaml.NewDecoder(f).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}
