package logging

// Config defines the "logging" section of the configuration file.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the HYPRDISPATCH_LOG_LEVEL environment variable.
	Level string `yaml:"level,omitempty"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool `yaml:"report_caller,omitempty"`

	// File configures logging to a file.
	File FileSinkConfig `yaml:"file,omitempty"`

	// Format configures the appearance of the log output.
	Format FormatConfig `yaml:"format,omitempty"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled,omitempty"`
	// Path is the full path to the log file.
	Path string `yaml:"path,omitempty"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `yaml:"preset,omitempty"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `yaml:"disable_timestamp,omitempty"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `yaml:"disable_component,omitempty"`
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string `yaml:"structured_to_stderr,omitempty"`
}
