package serverinfofile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/polysync/idl/mock/configmock"
	"github.com/uber/polysync/src/polysync/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name    string
		config  string
		wantErr bool
	}{
		{
			name:   "all required params are present",
			config: "valid",
		},
		{
			name:    "config processing error",
			config:  "missingKey",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			f, err := New(Params{
				Config:    newMockConfigProvider(ctrl, tt.config),
				FS:        fs.New(),
				Lifecycle: lc,
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/my/sample/path/.polysync", f.Path())
		})
	}
}

func TestLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".polysync")
	provider, err := config.NewStaticProvider(map[string]interface{}{
		_configKeyInfoFile: path,
	})
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	f, err := New(Params{
		Config:    provider,
		FS:        fs.New(),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	lc.RequireStart()

	require.NoError(t, f.UpdateField("ui-address", "tcp://127.0.0.1:5859"))
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ui-address":"tcp://127.0.0.1:5859"}`, string(contents))

	lc.RequireStop()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		tempFile, err := os.CreateTemp(t.TempDir(), "test")
		require.NoError(t, err)
		tempFile.Close()

		m := module{
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
			infofile: tempFile.Name(),
		}

		assert.NoError(t, m.OnStop(context.Background()))
		_, err = os.Stat(tempFile.Name())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file never written", func(t *testing.T) {
		m := module{
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
			infofile: filepath.Join(t.TempDir(), "missing"),
		}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("file removal error", func(t *testing.T) {
		// A non-empty directory cannot be removed with os.Remove.
		tempDir := t.TempDir()
		_, err := os.CreateTemp(tempDir, "test")
		require.NoError(t, err)

		m := module{
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
			infofile: tempDir,
		}
		assert.Error(t, m.OnStop(context.Background()))
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "info")
		m := module{
			fs:           fs.New(),
			infofile:     path,
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}

		steps := []struct {
			key        string
			value      string
			expectJSON string
		}{
			{
				key:        "ui-address",
				value:      "tcp://127.0.0.1:5859",
				expectJSON: `{"ui-address":"tcp://127.0.0.1:5859"}`,
			},
			{
				key:        "ui-address",
				value:      "ws://127.0.0.1:5859/",
				expectJSON: `{"ui-address":"ws://127.0.0.1:5859/"}`,
			},
			{
				key:        "ui-transport",
				value:      "websocket",
				expectJSON: `{"ui-address":"ws://127.0.0.1:5859/","ui-transport":"websocket"}`,
			},
		}

		for _, step := range steps {
			require.NoError(t, m.UpdateField(step.key, step.value))
			assert.Equal(t, step.value, m.fileContents[step.key])
			contents, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, step.expectJSON, string(contents))
		}
	})

	t.Run("file write failure", func(t *testing.T) {
		// A directory cannot be written as a file.
		m := module{
			fs:           fs.New(),
			infofile:     t.TempDir(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		assert.Error(t, m.UpdateField("key", "value"))
	})
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		configKey   string
		wantErr     bool
		errorString string
	}{
		{
			name:      "valid configuration",
			configKey: "valid",
		},
		{
			name:        "missing path key",
			configKey:   "missingKey",
			wantErr:     true,
			errorString: "missing field \"serverInfoFilePath\" in config",
		},
		{
			name:        "missing path value",
			configKey:   "missingValue",
			wantErr:     true,
			errorString: "missing field \"serverInfoFilePath\" in config",
		},
		{
			name:        "incorrectly formatted entry",
			configKey:   "formatProblem",
			wantErr:     true,
			errorString: "getting config field \"serverInfoFilePath\": yaml: unmarshal errors:\n  line 1: cannot unmarshal !!map into string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gomockCtrl := gomock.NewController(t)
			cfg := newMockConfigProvider(gomockCtrl, tt.configKey)

			m := module{
				logger: zap.NewNop().Sugar(),
			}
			err := m.processConfig(cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errorString, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMockConfigProvider(ctrl *gomock.Controller, configKey string) config.Provider {
	configs := map[string]string{
		"valid": `
serverInfoFilePath: /my/sample/path/.polysync
`,
		"missingKey": `
otherKey: /my/sample/path/.polysync
`,
		"missingValue": `
serverInfoFilePath:
otherKey: sample
`,
		"formatProblem": `
serverInfoFilePath:
  infofile: /sample/.file
  address:
    key: val`,
	}

	yamlProv, _ := config.NewYAML(config.Source(strings.NewReader(configs[configKey])))
	configProviderMock := configmock.NewMockProvider(ctrl)
	configProviderMock.EXPECT().Get(_configKeyInfoFile).Return(yamlProv.Get(_configKeyInfoFile)).AnyTimes()
	return configProviderMock
}
