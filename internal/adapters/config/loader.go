// Package config provides the configuration loader for deplist.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
//
// Sources are applied in order of increasing precedence: built-in defaults, the YAML file,
// the .env file in the working directory and finally the process environment.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load builds the configuration for a run started in cwd.
// An empty path selects domain.ConfigFileName in cwd, which may be absent.
func (l *Loader) Load(cwd, path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := l.applyFile(&cfg, cwd, path); err != nil {
		return domain.Config{}, err
	}

	if err := loadDotEnv(filepath.Join(cwd, domain.DotEnvFileName)); err != nil {
		return domain.Config{}, err
	}

	if err := envconfig.Process(domain.EnvPrefix, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", domain.ErrConfigEnvFailed, err)
	}

	if cfg.Cache.PathEntries <= 0 {
		l.logger.Warn(fmt.Sprintf("cache.path_entries must be positive, using %d", domain.DefaultPathCacheEntries))
		cfg.Cache.PathEntries = domain.DefaultPathCacheEntries
	}

	return cfg, nil
}

func (l *Loader) applyFile(cfg *domain.Config, cwd, path string) error {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	if err := decode(data, cfg); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}
	return nil
}

// decode overlays the keys present in data onto cfg. Unknown keys are rejected.
func decode(data []byte, cfg *domain.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadDotEnv loads path into the process environment when it exists.
// Variables already set in the environment keep their values.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrDotEnvFailed, err), "path", path)
	}
	return nil
}
