package core

import (
	"fmt"
	"os"
	"path/filepath"

	uber_config "go.uber.org/config"
	"go.uber.org/fx"
)

const (
	_envConfigDir     = "POLYSYNC_CONFIG_DIR"
	_defaultConfigDir = "src/polysync/config"
	_metaFile         = "meta.yaml"
)

// ConfigModule provides the merged YAML configuration.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

// Config is a named config.Provider.
type Config struct {
	provider uber_config.Provider
}

// Get returns the value at the given dotted path.
func (c Config) Get(path string) uber_config.Value {
	return c.provider.Get(path)
}

// Name implements config.Provider.
func (c Config) Name() string {
	return "config"
}

// NewConfig loads the configuration files listed in meta.yaml of the configuration directory.
func NewConfig() (uber_config.Provider, error) {
	return loadConfig(getConfigDir())
}

func loadConfig(configDir string) (uber_config.Provider, error) {
	// meta.yaml lists the files to merge, in priority order.
	metaPath := filepath.Join(configDir, _metaFile)
	metaProvider, err := uber_config.NewYAML(
		uber_config.File(metaPath),
		uber_config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta configuration: %w", err)
	}

	var configFiles []string
	if err := metaProvider.Get("files").Populate(&configFiles); err != nil {
		return nil, fmt.Errorf("failed to read files list from %s: %w", _metaFile, err)
	}

	// Files that are listed but absent, such as local.yaml, are skipped.
	var options []uber_config.YAMLOption
	for _, file := range configFiles {
		fullPath := filepath.Join(configDir, file)
		if _, err := os.Stat(fullPath); err == nil {
			options = append(options, uber_config.File(fullPath))
		}
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", configDir)
	}
	options = append(options, uber_config.Expand(os.LookupEnv))

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return Config{provider: provider}, nil
}

// getConfigDir returns the path to the configuration directory
func getConfigDir() string {
	if configDir := os.Getenv(_envConfigDir); configDir != "" {
		return configDir
	}

	// Relative to the repository root.
	return _defaultConfigDir
}
