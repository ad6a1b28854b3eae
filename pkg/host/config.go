package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a filesystem summary store.
type Config struct {
	// BasePath is prepended to relative file paths.
	BasePath string `yaml:"basePath"`
	// SourceRoots are the directories whose files classify as source
	// files.  Everything else is library territory.
	SourceRoots []string `yaml:"sourceRoots"`
	// ExcludeGlobs removes files from the source set even when they sit
	// under a source root (doublestar patterns).
	ExcludeGlobs []string `yaml:"excludeGlobs"`
	// CacheSize bounds the raw-content cache.  Zero means the default.
	CacheSize int `yaml:"cacheSize"`
}

// LoadConfig reads a yaml host configuration file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", filename, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", filename, err)
	}
	return &c, nil
}
