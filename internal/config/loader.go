package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/packdist/distmap/internal/scanner"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (DISTMAP_*)
	v.SetEnvPrefix("DISTMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.out_dir", DefaultOutDir)
	v.SetDefault("output.dry_run", false)
	v.SetDefault("output.backup", false)

	v.SetDefault("exports.enabled", true)
	v.SetDefault("exports.folders", []string{})

	v.SetDefault("scan.chunk_patterns", scanner.DefaultChunkPatterns)
	v.SetDefault("scan.report_file", "")

	v.SetDefault("concurrency.workers", DefaultWorkers)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
