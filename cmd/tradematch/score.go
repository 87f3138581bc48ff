package main

import (
	"fmt"

	"github.com/Reshigan/tradematch/internal/cli"
	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <document.json> <candidate.json>",
		Short: "Score a document against one candidate",
		Long: `Compare a financial document (invoice or deduction claim) against a
single counter-document (purchase order or agreement) and print the match
decision: score, calibrated confidence, recommended disposition and the
reasons behind it.`,
		Args: cobra.ExactArgs(2),
		RunE: runScore,
	}

	cmd.Flags().Bool("json", false, "Output the decision as JSON")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	ctx := cmd.Context()

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	candidate, err := loadDocument(args[1])
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	engine, _, err := initEngine(ctx, store)
	if err != nil {
		return err
	}

	decision := engine.ScoreMatch(ctx, doc, candidate)

	if asJSON {
		return printJSON(decision)
	}

	fmt.Print(cli.RenderDecision(decision))
	return nil
}
