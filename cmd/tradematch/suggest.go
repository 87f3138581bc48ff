package main

import (
	"fmt"
	"log/slog"

	"github.com/Reshigan/tradematch/internal/cli"
	"github.com/Reshigan/tradematch/internal/match"
	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <document.json> <candidates.json>",
		Short: "Rank candidate documents for a match",
		Long: `Score every candidate in the candidates file against the document and
print the top matches sorted by score. Ties keep the original candidate
order.`,
		Args: cobra.ExactArgs(2),
		RunE: runSuggest,
	}

	cmd.Flags().Int("limit", match.DefaultSuggestionLimit, "Maximum number of suggestions to return")
	cmd.Flags().Bool("json", false, "Output the decisions as JSON")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")
	ctx := cmd.Context()

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	candidates, err := loadDocuments(args[1])
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

	slog.Debug("Ranking candidates", "document", doc.ID, "candidates", len(candidates), "limit", limit)

	decisions := engine.SuggestMatches(ctx, doc, candidates, limit)

	if asJSON {
		return printJSON(decisions)
	}

	for i, decision := range decisions {
		fmt.Printf("%d. %s", i+1, cli.RenderDecision(decision))
	}
	if len(decisions) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No candidates supplied"))
	}
	return nil
}
