// Command sib checks, lists and interactively tests bind files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagProfile string
	flagActions []string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "sib",
	Short: "Input binding tool",
	Long: `sib works with bind files, the line-oriented files that map keys,
mouse buttons and controller inputs to named actions.

Action names come from a profile (-p) or are declared with -a.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(flagDebug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProfile, "profile", "p", "", "Profile file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagActions, "action", "a", nil, "Declare an action as name or name=id, can be repeated")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to logs/sib.log")

	rootCmd.AddCommand(checkCmd, dumpCmd, namesCmd, termCmd)
}
