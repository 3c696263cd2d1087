package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		expectError bool
		check       func(t *testing.T, c Config)
	}{
		{
			name: "merges listed files in order",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n  - local.yaml\n",
				"base.yaml": "sync:\n  template: petstore\n  defaultSyntax: openapi\n",
				"local.yaml": "sync:\n  template: bookstore\n",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "bookstore", c.Get("sync.template").String())
				assert.Equal(t, "openapi", c.Get("sync.defaultSyntax").String())
			},
		},
		{
			name: "skips listed files that do not exist",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n  - local.yaml\n",
				"base.yaml": "sync:\n  template: petstore\n",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "petstore", c.Get("sync.template").String())
				assert.False(t, c.Get("nonexistent.path").HasValue())
			},
		},
		{
			name: "expands environment variables",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n",
				"base.yaml": "jsonrpc:\n  address: ${POLYSYNC_TEST_ADDRESS:localhost:7770}\n",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "localhost:9999", c.Get("jsonrpc.address").String())
			},
		},
		{
			name: "no listed file exists",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n",
			},
			expectError: true,
		},
		{
			name:        "missing meta file",
			files:       map[string]string{},
			expectError: true,
		},
	}

	t.Setenv("POLYSYNC_TEST_ADDRESS", "localhost:9999")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigDir(t, tt.files)

			provider, err := loadConfig(dir)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			c, ok := provider.(Config)
			require.True(t, ok)
			assert.Equal(t, "config", c.Name())
			tt.check(t, c)
		})
	}
}

func TestNewConfigFromEnvironment(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
		"base.yaml": "logging:\n  level: info\n",
	})
	t.Setenv(_envConfigDir, dir)

	provider, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", provider.Get("logging.level").String())
}

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name           string
		envValue       string
		expectedResult string
	}{
		{
			name:           "returns environment variable when set",
			envValue:       "/custom/config/path",
			expectedResult: "/custom/config/path",
		},
		{
			name:           "returns default path when environment variable not set",
			envValue:       "",
			expectedResult: "src/polysync/config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_envConfigDir, tt.envValue)
			assert.Equal(t, tt.expectedResult, getConfigDir())
		})
	}
}
