// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/config"
	"github.com/thatcatcamp/huekit/internal/db"
	"github.com/thatcatcamp/huekit/internal/logging"
)

var (
	verbosity int
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "huekit",
	Short: "huekit - accessible color themes from a brand color",
	Long: `huekit derives a complete set of semantic UI color tokens for light and
dark mode from one or two brand colors, enforces WCAG contrast on every
text/surface pair, and exports the result as CSS, design tokens, YAML or SVG.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logCloser = logging.Setup(verbosity, os.Stderr)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fail prints err the way every subcommand reports errors and exits
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// initConfig loads the config file, creating it on first run. A -v flag
// wins over log.verbosity.
func initConfig() error {
	if err := config.InitConfig(config.DefaultPath()); err != nil {
		return err
	}
	if v := config.GetInt("log.verbosity"); v > verbosity {
		verbosity = v
		if logCloser != nil {
			logCloser.Close()
		}
		logCloser = logging.Setup(verbosity, os.Stderr)
	}
	return nil
}

// initDB opens the project database named in the config
func initDB() error {
	if err := initConfig(); err != nil {
		return err
	}
	return db.InitDB(config.GetString("database.type"), config.GetString("database.path"))
}
