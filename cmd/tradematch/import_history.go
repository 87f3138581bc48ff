package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Reshigan/tradematch/internal/common"
	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-history <entries.jsonl>",
		Short: "Bulk-load match history entries",
		Long: `Import match history entries from a JSON-lines file (one entry per
line). Imported entries feed the historical-pattern feature of subsequent
comparisons.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportHistory,
	}
}

func runImportHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file, err := os.Open(args[0]) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat history file: %w", err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing match history...[reset]"),
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	imported, skipped, line := 0, 0, 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		_ = bar.Add(len(raw) + 1)
		if len(raw) == 0 {
			continue
		}

		var entry model.MatchHistoryEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			slog.Warn("Skipping malformed history entry", "line", line, "error", err)
			skipped++
			continue
		}
		if entry.RecordedAt.IsZero() {
			entry.RecordedAt = time.Now()
		}

		if err := store.Append(ctx, entry); err != nil {
			if errors.Is(err, storage.ErrInvalidEntry) {
				slog.Warn("Skipping invalid history entry", "line", line, "error", err)
				skipped++
				continue
			}
			return common.NewUserError(fmt.Sprintf("failed to import entry on line %d", line), err)
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	slog.Info("History import complete", "imported", imported, "skipped", skipped)
	return nil
}
