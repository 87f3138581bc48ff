package main

import (
	"fmt"
	"log/slog"

	"github.com/Reshigan/tradematch/internal/cli"
	"github.com/Reshigan/tradematch/internal/model"
	"github.com/spf13/cobra"
)

func weightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show the current scoring weights",
		RunE:  runWeightsShow,
	}

	cmd.Flags().Bool("json", false, "Output weights as JSON")
	cmd.AddCommand(weightsResetCmd())

	return cmd
}

func weightsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset scoring weights to their defaults",
		RunE:  runWeightsReset,
	}
}

func runWeightsShow(cmd *cobra.Command, _ []string) error {
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

	weights := engine.Weights()
	if asJSON {
		return printJSON(weights)
	}

	fmt.Print(cli.RenderWeights(weights))
	return nil
}

func runWeightsReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	defaults := model.DefaultWeights()
	if err := store.SaveWeights(ctx, defaults); err != nil {
		return fmt.Errorf("failed to reset weights: %w", err)
	}

	slog.Info("Scoring weights reset to defaults")
	fmt.Print(cli.RenderWeights(defaults))
	return nil
}
