package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skovgaard/platepilot/internal/suggest"
)

// NewSuggestCmd creates the 'suggest' command.
func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest PARTIAL",
		Short: "Get ranked plate completions for partial input",
		Long: `Ask the prediction service for ranked completions of a partial plate.

The request carries your most-frequent interests and search history, so the
ranking is personalized. Candidates render with confidence markers:
  ★★★  confidence 90 and above
  ★★   confidence 60-89
  ★    below 60
When the best candidate scores below 40, a low-confidence warning is shown.`,
		Example: `  platepilot suggest AB
  platepilot suggest ab1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runSuggest issues one prediction request and renders the view.
func runSuggest(ctx context.Context, partial string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := a.OnInput(ctx, partial)
	if err != nil {
		// Prediction failures never surface; the failure is already logged.
		return nil
	}

	printView(view)
	return nil
}

// printView renders a suggestion view for the terminal.
func printView(view suggest.View) {
	if view.LowConfidence {
		fmt.Println("Add more input to increase confidence")
	}
	if len(view.Items) == 0 {
		fmt.Println("No suggestions.")
		return
	}
	for _, item := range view.Items {
		fmt.Printf("  %-8s %s\n", item.Plate, item.Marker())
	}
	if view.Placeholder != "" {
		fmt.Printf("Best guess: %s\n", view.Placeholder)
	}
}
