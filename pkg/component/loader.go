package component

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyConfig is returned when a config document has no content.
var ErrEmptyConfig = errors.New("component: config document is empty")

// LoadConfig decodes a config document written as JSON or YAML.
func LoadConfig(data []byte) (Config, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Config{}, ErrEmptyConfig
	}

	var cfg Config
	jsonErr := json.Unmarshal(data, &cfg)
	if jsonErr == nil {
		return cfg, nil
	}

	cfg = Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("component: parse config: invalid JSON (%v) or YAML: %w", jsonErr, err)
	}
	return cfg, nil
}

// LoadConfigFS reads and decodes a config document from fsys.
func LoadConfigFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("component: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("component: read %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("component: %s: %w", path, err)
	}
	return cfg, nil
}
