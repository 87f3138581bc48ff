package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Reshigan/tradematch/internal/common"
	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/train"
	"github.com/spf13/cobra"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback <features.json>",
		Short: "Record the real-world outcome of a past match decision",
		Long: `Report whether a previously scored pair turned out to be a true match.
The features file is the "features" object of a past decision (as printed
by "score --json"). Feedback feeds the weight trainer; once enough records
accumulate, scoring weights are recomputed and persisted.`,
		Args: cobra.ExactArgs(1),
		RunE: runFeedback,
	}

	cmd.Flags().Bool("match", false, "The pair was a true match")
	cmd.Flags().String("counterparty", "", "Counterparty ID for the match history log")
	cmd.Flags().StringSlice("products", nil, "Product IDs involved in the match")
	cmd.Flags().Float64("confidence", 0, "Confidence of the original decision")
	cmd.Flags().String("note", "", "Optional free-form feedback note")

	return cmd
}

func runFeedback(cmd *cobra.Command, args []string) error {
	matched, _ := cmd.Flags().GetBool("match")
	counterparty, _ := cmd.Flags().GetString("counterparty")
	products, _ := cmd.Flags().GetStringSlice("products")
	confidence, _ := cmd.Flags().GetFloat64("confidence")
	note, _ := cmd.Flags().GetString("note")
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0]) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return fmt.Errorf("failed to read features file: %w", err)
	}
	var features model.FeatureVector
	if err := json.Unmarshal(data, &features); err != nil {
		return common.NewUserError(fmt.Sprintf("invalid feature vector JSON in %s", args[0]), err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	engine, trainer, err := initEngine(ctx, store)
	if err != nil {
		return err
	}

	recordedAt := time.Now()
	fb := train.Feedback{
		Features:       features,
		ActualMatch:    matched,
		Feedback:       note,
		CounterpartyID: counterparty,
		ProductIDs:     products,
		Confidence:     confidence,
		RecordedAt:     recordedAt,
	}

	if err := engine.RecordFeedback(ctx, fb); err != nil {
		return fmt.Errorf("failed to record feedback: %w", err)
	}

	// Persist the record and whatever the trainer now believes the weights
	// to be, so the next invocation picks both up.
	record := model.TrainingRecord{
		Features:    features,
		ActualMatch: matched,
		Feedback:    note,
		RecordedAt:  recordedAt,
	}
	if err := store.SaveTrainingRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to persist training record: %w", err)
	}
	if err := store.SaveWeights(ctx, trainer.Weights()); err != nil {
		return fmt.Errorf("failed to persist weights: %w", err)
	}

	slog.Info("Feedback recorded",
		"actual_match", matched,
		"buffer_size", trainer.BufferSize(),
		"counterparty", counterparty)

	return nil
}
