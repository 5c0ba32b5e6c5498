package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewForgetCmd creates the 'forget' command.
func NewForgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forget",
		Short: "Erase all stored preferences",
		Long: `Erase the search history, last search, interest profile, any pending
feedback question, and the cached vehicle records. Safe to run repeatedly.`,
		Example: `  platepilot forget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForget()
		},
	}
	return cmd
}

func runForget() error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Forget(); err != nil {
		return err
	}
	fmt.Println("User preferences have been forgotten.")
	return nil
}
