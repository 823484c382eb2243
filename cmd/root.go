package cmd

import (
	"os"

	"github.com/djcass44/go-utils/logging"
	"github.com/djcass44/ipm/cmd/cache"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var command = &cobra.Command{
	Use:          "ipm",
	Short:        "inspect package repositories and package metadata",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)
		quiet, _ := cmd.Flags().GetBool(flagQuiet)

		if quiet {
			cmd.SetContext(logr.NewContext(cmd.Context(), logr.Discard()))
			return
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
}

const (
	flagLogLevel = "v"
	flagQuiet    = "quiet"
	flagConfig   = "config"
)

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	command.PersistentFlags().BoolP(flagQuiet, "q", false, "suppress all log output")
	command.PersistentFlags().StringP(flagConfig, "c", "", "path to a configuration file")
	command.MarkFlagsMutuallyExclusive(flagLogLevel, flagQuiet)
	_ = command.MarkPersistentFlagFilename(flagConfig, ".yaml", ".yml", ".json")

	command.AddCommand(repoCmd, pkgCmd, cache.Command)
}

func Execute(version string) {
	command.Version = version
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
