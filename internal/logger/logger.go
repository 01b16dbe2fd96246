package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/sdkpath/internal/env"
)

const (
	defaultLogFile    = "logs/sdkpath.log"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

type options struct {
	level     slog.Leveler
	output    io.Writer
	logToFile bool
	logFile   string
}

// Option configures the logger.
type Option func(*options)

// WithLogToFile enables writing logs to a rotating file in addition to the console.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path used when file logging is enabled.
func WithLogFile(path string) Option {
	return func(o *options) {
		if path != "" {
			o.logFile = path
		}
	}
}

// WithLevel overrides the level derived from the environment.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput sets the console writer. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// New creates a logger for the environment.
// Development logs debug and above in color; production logs info and above.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	o := &options{
		level:   slog.LevelInfo,
		output:  os.Stderr,
		logFile: defaultLogFile,
	}
	if environment.IsDevelopment() {
		o.level = slog.LevelDebug
	}
	for _, opt := range opts {
		opt(o)
	}

	w := o.output
	noColor := !environment.IsDevelopment()
	if o.logToFile {
		w = io.MultiWriter(o.output, &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   true,
		})
		noColor = true
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      o.level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
}
