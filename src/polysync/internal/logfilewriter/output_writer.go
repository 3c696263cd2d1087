// Package logfilewriter provides human readable output files that a UI client can tail.
package logfilewriter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uber/polysync/src/polysync/internal/fs"
	"github.com/uber/polysync/src/polysync/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const _fmtOutputKey = "output:%s"

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	fx.In

	FS             fs.EditorFS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// SetupOutputWriter creates a writer backed by a file in a directory named after name under the user's temp directory.
// The file path is published in the server info file as "output:<name>" and the file is removed on shutdown.
func SetupOutputWriter(p Params, name string) (io.Writer, error) {
	dir := filepath.Join(os.TempDir(), name)
	if err := p.FS.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	file, err := p.FS.TempFile(dir, "")
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}

	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, name), file.Name()); err != nil {
		file.Close()
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(file),
		zap.InfoLevel,
	)
	logger := zap.New(core).Sugar()

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Sync()
			file.Close()
			return p.FS.Remove(file.Name())
		},
	})

	return &loggerWriter{logger: logger}, nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
}

// Write logs each non-empty line of p as its own entry.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(string(p), "\n") {
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}
	return len(p), nil
}
