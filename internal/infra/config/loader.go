// Package config loads the optional seqtools config file. A missing file
// yields the defaults; a malformed file is an error.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/seqtools/internal/domain"
)

// DefaultPath returns the per-user config location
// (e.g. ~/.config/seqtools/config.yaml), or "" if the user config dir is
// unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "seqtools", "config.yaml")
}

// Load reads the config at path. path == "" means DefaultPath. A missing
// file is not an error.
func Load(path string) (domain.Config, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return domain.DefaultConfig(), nil
		}
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return domain.Config{}, &domain.OpError{Op: "config.load", Kind: domain.KindIO, Err: err}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{Op: "config.load", Kind: domain.KindIO, Err: err}
	}

	return mapConfig(path, dto)
}
