/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cli.go
Description: Command-line entry point for test executables built on Akaylee
TestKit. Provides execution order, seed, color and logging flags with
configuration management, then hands the registered suites to the runner
and exits with its status code.
*/

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/logging"
	"github.com/kleascm/akaylee-testkit/pkg/registry"
	"github.com/kleascm/akaylee-testkit/pkg/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the Akaylee TestKit runtime, reported by --version.
const Version = "1.0.0"

var (
	// Configuration
	configFile string

	// Execution configuration
	order string
	seed  uint64

	// Output configuration
	coloredOutput string

	// Logging configuration
	logLevel  string
	logFormat string
	logDir    string
)

// Execute parses the command line, runs every registered suite and returns
// the process exit code. Help and version requests return success without
// running any tests; unparseable flags or invalid values return failure.
func Execute(reg *registry.Registry) int {
	exitCode := runner.ExitSuccess

	rootCmd := &cobra.Command{
		Use:   filepath.Base(os.Args[0]),
		Short: "Akaylee TestKit - Lightweight test runtime with reproducible shuffling",
		Long: `Akaylee TestKit runs the suites registered by this test executable,
sequentially or in a seeded random order, and reports per-test results,
wall and CPU times, and an overall summary. Random orders print their
seed so any run can be reproduced exactly.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				viper.SetConfigFile(configFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", configFile, err)
				}
			}
			config, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := buildLogger(config)
			if err != nil {
				return err
			}

			r := runner.New(reg, config)
			if logger != nil {
				defer logger.Close()
				r.SetLogger(logger)
			}
			_, exitCode = r.Run()
			return nil
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&order, "order", "sequential", "Execution order (sequential, random)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for random execution order (default: current time)")
	rootCmd.PersistentFlags().StringVar(&coloredOutput, "colored-output", "enabled", "Colored report output (enabled, disabled)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic logging level (debug, info, warn, error; empty = off)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = stderr only)")

	// Bind flags to viper
	viper.BindPFlag("order", rootCmd.PersistentFlags().Lookup("order"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("colored_output", rootCmd.PersistentFlags().Lookup("colored-output"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	// Allow environment overrides, e.g. AKAYLEE_TESTKIT_ORDER=random
	viper.SetEnvPrefix("AKAYLEE_TESTKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return runner.ExitFailure
	}
	return exitCode
}

// Main is the canonical entry point for a test executable: register suites,
// then hand them over. Never returns.
func Main(reg *registry.Registry) {
	os.Exit(Execute(reg))
}

// buildConfig assembles the run configuration from flags and environment.
func buildConfig(cmd *cobra.Command) (*interfaces.RunConfig, error) {
	config := interfaces.DefaultRunConfig()

	parsedOrder, err := interfaces.ParseOrder(viper.GetString("order"))
	if err != nil {
		return nil, err
	}
	config.Order = parsedOrder

	parsedColor, err := interfaces.ParseColorMode(viper.GetString("colored_output"))
	if err != nil {
		return nil, err
	}
	config.Color = parsedColor

	if cmd.Flags().Changed("seed") {
		config.Seed = seed
		config.SeedSet = true
	} else if viper.IsSet("seed") && viper.GetUint64("seed") != 0 {
		config.Seed = viper.GetUint64("seed")
		config.SeedSet = true
	}

	config.LogLevel = viper.GetString("log_level")
	return config, nil
}

// buildLogger creates the diagnostic logger, or nil when logging is off.
func buildLogger(config *interfaces.RunConfig) (*logging.Logger, error) {
	if config.LogLevel == "" {
		return nil, nil
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     config.LogLevel,
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		Colors:    config.Color.Enabled(),
	})
}
