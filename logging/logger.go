package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps routine runs quiet on stderr.
const DefaultLevel = logrus.WarnLevel

// Options carries the per-invocation inputs that are not part of the
// configuration file.
type Options struct {
	// Verbose forces debug level.
	Verbose bool
	// LevelOverride comes from HYPRDISPATCH_LOG_LEVEL.
	LevelOverride string
	// Stderr is the diagnostic stream. Defaults to os.Stderr.
	Stderr io.Writer
}

// New creates a logger for a component from the logging configuration.
// The returned closer releases the file sink, if one was opened.
func New(component string, cfg Config, opts Options) (*logrus.Entry, func() error) {
	logger := logrus.New()
	closer := func() error { return nil }

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger.SetLevel(resolveLevel(cfg, opts))

	if cfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch cfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: cfg.Format})
	}

	var writers []io.Writer

	if cfg.File.Enabled && cfg.File.Path != "" {
		path := expandPath(cfg.File.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			logger.Warnf("Failed to create log directory %s: %v", filepath.Dir(path), err)
		} else if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			logger.Warnf("Failed to open log file %s: %v", path, err)
		} else {
			writers = append(writers, file)
			closer = file.Close
		}
	}

	if shouldLogToStderr(cfg.Format.StructuredToStderr, logger.GetLevel(), stderr) {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component), closer
}

// resolveLevel applies precedence: verbose flag, environment override,
// configuration, default.
func resolveLevel(cfg Config, opts Options) logrus.Level {
	if opts.Verbose {
		return logrus.DebugLevel
	}
	levelStr := cfg.Level
	if opts.LevelOverride != "" {
		levelStr = opts.LevelOverride
	}
	if levelStr == "" {
		return DefaultLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return DefaultLevel
	}
	return level
}

// shouldLogToStderr decides whether structured logs share stderr with the
// user-facing diagnostics. In "auto" mode they do when debugging, or when
// stderr is not an interactive terminal.
func shouldLogToStderr(mode string, level logrus.Level, stderr io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if level >= logrus.DebugLevel {
		return true
	}
	f, ok := stderr.(*os.File)
	if !ok {
		return false
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
