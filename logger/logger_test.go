package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordlab/bitword.go/logger"
)

func TestNewRootLoggerInvalidConfig(t *testing.T) {
	cfg := logger.DefaultCfg
	cfg.Level = "not-a-level"
	_, err := logger.NewRootLogger(cfg)
	require.Error(t, err)

	cfg = logger.DefaultCfg
	cfg.Encoding = "not-an-encoding"
	_, err = logger.NewRootLogger(cfg)
	require.Error(t, err)
}

func TestNewRootLoggerWritesOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")

	cfg := logger.DefaultCfg
	cfg.OutputPaths = []string{logPath}

	root, err := logger.NewRootLogger(cfg)
	require.NoError(t, err)

	root.Infof("parsed word %s", "0x00000000000000FF")
	require.NoError(t, root.Sync())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "parsed word 0x00000000000000FF")
}

func TestNamedLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")

	cfg := logger.DefaultCfg
	cfg.OutputPaths = []string{logPath}

	root, err := logger.NewRootLogger(cfg)
	require.NoError(t, err)

	logger.SetGlobalLogger(root)

	sub := logger.NewLogger("inspector")
	sub.Info("ready")
	require.NoError(t, sub.Sync())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "inspector")
}
