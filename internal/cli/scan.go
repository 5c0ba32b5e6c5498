package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skovgaard/platepilot/internal/ocr"
)

// NewScanCmd creates the 'scan' command.
func NewScanCmd() *cobra.Command {
	var lookup bool

	cmd := &cobra.Command{
		Use:   "scan IMAGE",
		Short: "Read a plate from an image",
		Long: `Run text recognition (tesseract) against an image and extract a plate
candidate. When the recognition confidence is low you should verify the plate
before trusting it. With --lookup, the candidate is submitted as a lookup.`,
		Example: `  platepilot scan plate.jpg
  platepilot scan plate.jpg --lookup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), args[0], lookup)
		},
	}

	cmd.Flags().BoolVar(&lookup, "lookup", false, "Look up the recognized plate")
	return cmd
}

func runScan(ctx context.Context, imagePath string, lookup bool) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	result, err := a.Scan(ctx, imagePath)
	if err != nil {
		a.Close()
		return err
	}

	fmt.Printf("Recognized plate: %s (confidence %.0f)\n", result.Plate, result.Confidence)
	if result.LowConfidence() {
		fmt.Printf("Low confidence in text recognition (below %.0f), please verify the plate number.\n", ocr.AdvisoryThreshold)
	}

	a.Close()
	if lookup {
		return runLookup(ctx, result.Plate, false)
	}
	return nil
}
