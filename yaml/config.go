// Package yaml loads the run configuration with gopkg.in/yaml.v3.
// Files ending in .json are decoded as JSON.
package yaml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/obfeed"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the configuration file read when none is given.
const DefaultConfigPath = "config.json"

// Ensure ConfigLoader implements obfeed.ConfigLoader at compile time.
var _ obfeed.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader reads configuration files from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new ConfigLoader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// Load reads and validates the configuration at path. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func (l *ConfigLoader) Load(ctx context.Context, path string) (*obfeed.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, obfeed.Errorf(obfeed.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return nil, err
	}

	cfg, err := Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, obfeed.Errorf(obfeed.EINVALID, "parse config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses configuration data, as JSON when asJSON is set and as
// YAML otherwise. An empty document decodes to an empty Config.
func Decode(data []byte, asJSON bool) (*obfeed.Config, error) {
	var cfg obfeed.Config
	if asJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}
