/*
Package main is the entry point for the platepilot CLI.

platepilot is a personalized license-plate lookup assistant: it learns what
you search for, asks a remote ranker for plate completions tuned to your
interests, and keeps an unanswered relevance question alive across restarts.

Usage:
  platepilot [command]

Available Commands:
  lookup      Look up a plate and update your interest profile
  suggest     Get ranked plate completions for partial input
  history     Show recent searches
  interests   Show your inferred interest profile
  search      Search your cached lookups
  scan        Read a plate from an image
  feedback    Answer a pending relevance question
  forget      Erase all stored preferences
  serve       Run the personalization engine behind an HTTP API
  help        Help about any command
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skovgaard/platepilot/internal/cli"
	"github.com/skovgaard/platepilot/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platepilot",
		Short: "Personalized license-plate lookup assistant",
		Long: `platepilot looks up license plates and personalizes the experience as you
go: it tracks which makes, models, fuel types, and years you search for,
sends that profile with every autocomplete request so the suggestions fit
you, and remembers an unanswered relevance question across restarts.`,
		Version: version.String(),
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(cli.NewLookupCmd())
	rootCmd.AddCommand(cli.NewSuggestCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
	rootCmd.AddCommand(cli.NewInterestsCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewScanCmd())
	rootCmd.AddCommand(cli.NewFeedbackCmd())
	rootCmd.AddCommand(cli.NewForgetCmd())
	rootCmd.AddCommand(cli.NewServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
