// Package config loads the optional per-project .fdc.toml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// FileName is looked up in the scanned directory.
const FileName = ".fdc.toml"

// Config tunes a scan.
//
//	exclude = ["vendor", "node_modules"]
//	roots   = ["includes/loader.php"]
type Config struct {
	// Exclude lists directory names skipped during discovery, at any depth.
	Exclude []string `toml:"exclude"`
	// Roots lists files, relative to the scanned directory, that are always live.
	Roots []string `toml:"roots"`
}

// Parse decodes TOML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse %s: unknown key %q", FileName, undecoded[0].String())
	}
	return &cfg, nil
}

// Load reads root/.fdc.toml. A missing file yields an empty Config.
func Load(fsys afero.Fs, root string) (*Config, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(root, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Excluded reports whether a directory with this base name is skipped.
func (c *Config) Excluded(name string) bool {
	for _, e := range c.Exclude {
		if e == name {
			return true
		}
	}
	return false
}
