package logger

import "go.uber.org/zap/zapcore"

const (
	// ConfigurationKeyLevel is the config key for the minimum enabled logging level.
	ConfigurationKeyLevel = "logger.level"
	// ConfigurationKeyDisableCaller is the config key for disabling caller annotation.
	ConfigurationKeyDisableCaller = "logger.disableCaller"
	// ConfigurationKeyEncoding is the config key for the logger's encoding.
	ConfigurationKeyEncoding = "logger.encoding"
	// ConfigurationKeyOutputPaths is the config key for the logger's output paths.
	ConfigurationKeyOutputPaths = "logger.outputPaths"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `json:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, all logs are annotated.
	DisableCaller bool `json:"disableCaller"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `json:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stdout"].
	OutputPaths []string `json:"outputPaths"`
}

// DefaultCfg holds the default logger configuration.
var DefaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}
