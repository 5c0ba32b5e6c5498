package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command.
func NewHistoryCmd() *cobra.Command {
	var run int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Long: `Show the five most recent plate searches, newest first.

With --run N, re-submit the Nth entry as a fresh lookup (the same flow as
typing the plate yourself, not a cache replay).`,
		Example: `  platepilot history
  platepilot history --run 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, run)
		},
	}

	cmd.Flags().IntVar(&run, "run", 0, "Re-run the lookup for entry N")
	return cmd
}

func runHistory(cmd *cobra.Command, run int) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	entries := a.History.Snapshot()

	if run > 0 {
		a.Close()
		if run > len(entries) {
			return fmt.Errorf("history has only %d entries", len(entries))
		}
		return runLookup(cmd.Context(), entries[run-1], false)
	}
	defer a.Close()

	if len(entries) == 0 {
		fmt.Println("No searches yet.")
		return nil
	}
	printHistory(entries)

	if ls, ok := a.Store.LastSearch(); ok {
		fmt.Printf("\nLast search: %s\n", ls.License)
		printRecord(ls.Record)
	}
	return nil
}
