package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skovgaard/platepilot/internal/app"
)

// NewLookupCmd creates the 'lookup' command.
func NewLookupCmd() *cobra.Command {
	var skipFeedback bool

	cmd := &cobra.Command{
		Use:   "lookup PLATE",
		Short: "Look up a plate and update your interest profile",
		Long: `Fetch the vehicle record for a plate from the registry.

A successful lookup updates the search history, the interest profile, and the
local vehicle cache, and then asks whether the result was relevant. The
relevance question is saved before you answer, so it survives a crash and is
asked again on the next run.`,
		Example: `  platepilot lookup AB12345
  platepilot lookup ab12345 --no-feedback`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), args[0], skipFeedback)
		},
	}

	cmd.Flags().BoolVar(&skipFeedback, "no-feedback", false, "Skip the relevance question")
	return cmd
}

// runLookup executes the full lookup flow and the interactive feedback
// exchange.
func runLookup(ctx context.Context, raw string, skipFeedback bool) error {
	prompter := &terminalPrompter{}
	a, err := newApp(prompter)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.Lookup(ctx, raw)
	if err != nil {
		return err
	}

	fmt.Println()
	printRecord(rec)
	fmt.Println()
	printHistory(a.History.Snapshot())

	if !skipFeedback && prompter.plate != "" {
		askFeedback(ctx, a, prompter.plate)
	}
	return nil
}

// askFeedback runs the terminal version of the relevance prompt. Answering
// sends the judgment; any other input dismisses the prompt without clearing
// the persisted question, so it comes back next run.
func askFeedback(ctx context.Context, a *app.App, plate string) {
	fmt.Printf("Was the recommended plate %s relevant to you? [y/n/later]: ", plate)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		a.Feedback.Dismiss()
		return
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		if err := a.Feedback.Judge(ctx, true); err == nil {
			fmt.Println("Thanks, feedback recorded.")
		}
	case "n", "no":
		if err := a.Feedback.Judge(ctx, false); err == nil {
			fmt.Println("Thanks, feedback recorded.")
		}
	default:
		a.Feedback.Dismiss()
		fmt.Println("Okay, I'll ask again next time.")
	}
}

// printHistory writes the recent-search list.
func printHistory(entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Println("Recent searches:")
	for i, plate := range entries {
		fmt.Printf("  %d. %s\n", i+1, plate)
	}
}
