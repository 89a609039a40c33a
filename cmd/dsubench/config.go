package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/disjointset/internal/workload"
)

// Config holds runtime configuration for a dsubench invocation.
// Values are populated from .dsubench.yaml, DSUBENCH_* env vars, and CLI
// flags, in rising order of precedence.
type Config struct {
	Scenarios string `mapstructure:"scenarios"`
	Out       string `mapstructure:"out"`
	NoColor   bool   `mapstructure:"no_color"`
}

// loadConfig reads configuration from viper, applying built-in defaults
// for any values not set by config file or environment.
func loadConfig() Config {
	viper.SetDefault("scenarios", workload.DefaultSuitePath)
	viper.SetDefault("out", "")
	viper.SetDefault("no_color", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *Config) {
	if v, _ := cmd.Flags().GetString("scenarios"); v != "" {
		cfg.Scenarios = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Out = v
	}
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		cfg.NoColor = true
	}
}

// applySuiteOverrides applies CLI flag values to the loaded suite.
func applySuiteOverrides(cmd *cobra.Command, suite *workload.Suite) {
	if cmd.Flags().Changed("n") {
		suite.N, _ = cmd.Flags().GetInt("n")
	}
	if cmd.Flags().Changed("ops") {
		suite.Ops, _ = cmd.Flags().GetInt("ops")
	}
	if cmd.Flags().Changed("seed") {
		suite.Seed, _ = cmd.Flags().GetInt64("seed")
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".dsubench")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("DSUBENCH")
	viper.AutomaticEnv()

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}
