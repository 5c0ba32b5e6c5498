package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/skovgaard/platepilot/internal/profile"
)

// NewInterestsCmd creates the 'interests' command.
func NewInterestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interests",
		Short: "Show your inferred interest profile",
		Long: `Show the interest counts accumulated from your lookups, per category
(makes, fuel types, models, first-registration years), and the top value of
each category that personalizes plate suggestions.`,
		Example: `  platepilot interests`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterests()
		},
	}
	return cmd
}

func runInterests() error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	in := a.Tracker.Interests()
	if in.Total() == 0 {
		fmt.Println("No interests yet. Look up some plates first.")
		return nil
	}

	for _, cat := range profile.Categories() {
		counts := in[cat.Plural()]
		if len(counts) == 0 {
			continue
		}
		fmt.Printf("%s:\n", cat.Plural())

		values := make([]string, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		// Highest count first, ties alphabetically.
		sort.Slice(values, func(i, j int) bool {
			if counts[values[i]] != counts[values[j]] {
				return counts[values[i]] > counts[values[j]]
			}
			return values[i] < values[j]
		})
		for _, v := range values {
			fmt.Printf("  %-20s %d\n", v, counts[v])
		}
	}

	fmt.Println("\nMost frequent:")
	top := in.MostFrequent()
	for _, cat := range profile.Categories() {
		if v, ok := top[cat.Singular()]; ok {
			fmt.Printf("  %-12s %s\n", cat.Singular(), v)
		}
	}
	return nil
}
