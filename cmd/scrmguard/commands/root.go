// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/l3montree-dev/scrmguard/config"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigFilename = ".scrmguard"
	envPrefix             = "SCRMGUARD"
)

var cfgFile string

var rootCmd = &cobra.Command{
	SilenceUsage:      true,
	SilenceErrors:     true,
	Use:               "scrmguard",
	Short:             "Supply chain risk propagation and assessment",
	Version:           config.Version,
	DisableAutoGenTag: true,
	Long: `scrmguard tracks how vulnerabilities propagate through the dependency graph
of a project, manages the lifecycle of interconnection agreements and scores
vendor supply chain risk.

Configuration can be provided via a ./.scrmguard config file or environment
variables (prefix SCRMGUARD_). Database settings are read from POSTGRES_* and DB_*.`,
	Example: `  # Start the HTTP API
  scrmguard serve --addr :8080

  # Re-derive agreement statuses, e.g. from a nightly cron job
  scrmguard reconcile-agreements --project p1`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck

		level, err := cmd.Flags().GetString("logLevel")
		if err != nil {
			return err
		}
		switch level {
		case "debug":
			shared.InitLogger(slog.LevelDebug)
		case "warn":
			shared.InitLogger(slog.LevelWarn)
		case "error":
			shared.InitLogger(slog.LevelError)
		default:
			shared.InitLogger(slog.LevelInfo)
		}

		return initializeConfig(cmd)
	},
}

// Execute runs the root command. A failing command prints a single line and exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newServeCommand(),
		newReconcileAgreementsCommand(),
		newMigrateCommand(),
		newVersionCommand(),
	)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.scrmguard.yaml)")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/scrmguard/")
	}

	// a missing config file is fine, a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
	return nil
}

// bindFlags applies config file and environment values to every flag the user did not set.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))) // nolint: errcheck
		}
		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
