package runtimeconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a configuration document, layering it over the defaults
// so omitted keys keep their baseline values. The decoded configuration is
// validated before being returned.
func FromYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("statici18n config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and decodes a YAML configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("statici18n config: read %s: %w", path, err)
	}
	return FromYAML(data)
}
