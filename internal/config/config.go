package config

// Config represents the application configuration
type Config struct {
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Exports     ExportsConfig     `mapstructure:"exports" yaml:"exports"`
	Scan        ScanConfig        `mapstructure:"scan" yaml:"scan"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains manifest-writing settings
type OutputConfig struct {
	// OutDir is the build output directory name used as the path prefix
	// of every generated export path
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// DryRun simulates the run without touching package.json
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`

	// Backup writes a package.json.bak next to the rewritten manifest
	Backup bool `mapstructure:"backup" yaml:"backup"`
}

// ExportsConfig contains exports-map generation settings
type ExportsConfig struct {
	Enabled bool     `mapstructure:"enabled" yaml:"enabled"`
	Folders []string `mapstructure:"folders" yaml:"folders"`
}

// ScanConfig contains output-directory scanning settings
type ScanConfig struct {
	// ChunkPatterns are regexes marking scanned files as shared chunks
	ChunkPatterns []string `mapstructure:"chunk_patterns" yaml:"chunk_patterns"`

	// ReportFile overrides the probed report filenames
	ReportFile string `mapstructure:"report_file" yaml:"report_file"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and falls back to defaults for
// out-of-range values
func (c *Config) Validate() error {
	if c.Output.OutDir == "" {
		c.Output.OutDir = DefaultOutDir
	}
	if c.Concurrency.Workers < 1 {
		c.Concurrency.Workers = DefaultWorkers
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
