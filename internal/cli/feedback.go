package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFeedbackCmd creates the 'feedback' command.
func NewFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Answer a pending relevance question",
		Long: `Answer the relevance question left over from a previous lookup.

An unanswered question survives restarts: it was saved the moment it was
first shown and is re-asked here until you answer it.`,
		Example: `  platepilot feedback`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeedback(cmd)
		},
	}
	return cmd
}

func runFeedback(cmd *cobra.Command) error {
	prompter := &terminalPrompter{}
	a, err := newApp(prompter)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Feedback.Resume()
	if prompter.plate == "" {
		fmt.Println("No pending feedback.")
		return nil
	}

	askFeedback(cmd.Context(), a, prompter.plate)
	return nil
}
