// Package project locates and loads the optional routelint.toml manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the config file searched for upward from the scan root.
const ManifestName = "routelint.toml"

// Config is the parsed manifest. Every section is optional.
type Config struct {
	Project ProjectSection `toml:"project"`
	Scan    ScanSection    `toml:"scan"`
	Rules   RulesSection   `toml:"rules"`
	Output  OutputSection  `toml:"output"`
}

type ProjectSection struct {
	Name string `toml:"name"`
}

type ScanSection struct {
	// SkipDirs is appended to the built-in directory denylist.
	SkipDirs []string `toml:"skip_dirs"`
}

type RulesSection struct {
	// Disable lists rule IDs that should not run.
	Disable []string `toml:"disable"`
}

type OutputSection struct {
	// Dir overrides the default HTML report directory.
	Dir string `toml:"dir"`
}

// Manifest couples a parsed config with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks up from startDir to locate routelint.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses a manifest file.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest manifest above startDir.
// A missing manifest is not an error; ok is false and the zero Config
// applies.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
