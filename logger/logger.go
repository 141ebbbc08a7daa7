// Package logger provides a zap based root logger with named sub-loggers.
package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wordlab/bitword.go/syncutils"
)

// Logger instances are used to log messages. It is a type alias, so that zap
// loggers obtained from elsewhere can be used interchangeably.
type Logger = zap.SugaredLogger

var (
	mu   syncutils.Mutex
	root = zap.NewNop().Sugar()
)

// NewRootLogger creates a new root logger from the given configuration.
func NewRootLogger(cfg Config, opts ...zap.Option) (*Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(defaultEncoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(defaultEncoderConfig)
	default:
		return nil, errors.Newf("unknown encoding %q", cfg.Encoding)
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	sink, _, err := zap.Open(outputPaths...)
	if err != nil {
		return nil, err
	}

	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(encoder, sink, level)

	return zap.New(core, opts...).Sugar(), nil
}

// SetGlobalLogger sets the provided logger as the root of all loggers created
// via NewLogger.
func SetGlobalLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()

	root = logger
}

// NewLogger returns a child of the global root logger with the given name.
func NewLogger(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()

	return root.Named(name)
}
