package main

import (
	"fmt"

	"github.com/Reshigan/tradematch/internal/cli"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show engine statistics",
		Long: `Print observability data for the matching engine: the size of the
training buffer and match history, the current weight vector, and the
accuracy of the current weights against buffered feedback.`,
		RunE: runStats,
	}

	cmd.Flags().Bool("json", false, "Output statistics as JSON")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	engine, _, err := initEngine(ctx, store)
	if err != nil {
		return err
	}

	stats, err := engine.Statistics(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(stats)
	}

	fmt.Print(cli.RenderStatistics(stats))
	return nil
}
