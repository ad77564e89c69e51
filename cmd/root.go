package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/Sjlver/pa/internal/logging"
	"github.com/Sjlver/pa/internal/secrets"
	"github.com/Sjlver/pa/internal/ui"
	"github.com/Sjlver/pa/internal/utils"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "pa",
		Short: "pa - a simple password manager",
		Long: `pa is a password manager that stores each secret as an
age-encrypted file under a hierarchical namespace and records every
change in a git log.

Run 'pa help <command>' for more details on a specific command.`,
		// Unrecognized verbs land here and print usage; that is not an
		// error condition.
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing pa with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	handleInterrupts()

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗ ")+err.Error())
		os.Exit(1)
	}
}

// handleInterrupts guarantees cleanup on signal-delivered termination:
// terminal mode is restored and every live plaintext scratch directory
// is removed before the signal is re-raised with its default
// disposition, so the exit status still reflects the signal.
func handleInterrupts() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		utils.RestoreTerminal()
		secrets.ReleaseAll()
		signal.Reset(sig)
		if s, ok := sig.(syscall.Signal); ok {
			_ = syscall.Kill(os.Getpid(), s)
		}
		os.Exit(1)
	}()
}
