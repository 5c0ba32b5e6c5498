package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the 'search' command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search your cached lookups",
		Long: `Full-text search over the vehicle records of your past lookups, by make,
model, fuel type, color, year, or plate prefix.`,
		Example: `  platepilot search toyota
  platepilot search diesel
  platepilot search AB1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "))
		},
	}
	return cmd
}

func runSearch(query string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	hits, err := a.SearchCached(query)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("No cached lookups match.")
		return nil
	}

	for _, hit := range hits {
		rec, ok := a.Store.CachedVehicle(hit.Plate)
		if !ok {
			fmt.Printf("  %s\n", hit.Plate)
			continue
		}
		summary := strings.TrimSpace(fmt.Sprintf("%s %s %s", rec.Make, rec.Model, rec.FuelType))
		fmt.Printf("  %-8s %s\n", hit.Plate, summary)
	}
	return nil
}
