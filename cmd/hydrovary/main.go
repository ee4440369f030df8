// SPDX-License-Identifier: MIT

// Command hydrovary expands a parameter variation settings file into a set
// of simulation datapoints.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hydrovary/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		settingsFile   string
		nonInteractive bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:           "hydrovary",
		Short:         "Generate internally consistent simulation datapoints from a settings file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := viper.New()
			config.SetEnvPrefix("HYDROVARY")
			config.AutomaticEnv()

			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Warn("could not load .env file", "err", err)
			}

			logger := log.NewWithOptions(os.Stderr, log.Options{
				Level: log.InfoLevel,
			})
			if verbose || config.GetBool("VERBOSE") {
				logger.SetLevel(log.DebugLevel)
			}

			if settingsFile == "" {
				settingsFile = config.GetString("SETTINGS_FILE")
			}
			if config.GetBool("NON_INTERACTIVE") {
				nonInteractive = true
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			err := pipeline.Run(ctx, logger, pipeline.Options{
				SettingsFile:   settingsFile,
				NonInteractive: nonInteractive,
			})
			if err != nil {
				logger.Error(err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&settingsFile, "settings-file", "", "YAML settings file defining the run")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "disable all confirmation prompts")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
