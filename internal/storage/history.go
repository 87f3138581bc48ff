package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Reshigan/tradematch/internal/model"
)

// Append adds a match history entry to the append-only log.
func (s *SQLiteStorage) Append(ctx context.Context, entry model.MatchHistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHistoryEntry(&entry); err != nil {
		return err
	}

	productIDs, err := json.Marshal(entry.ProductIDs)
	if err != nil {
		return fmt.Errorf("failed to encode product IDs: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO match_history (counterparty_id, product_ids, confidence, matched, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		model.NormalizeID(entry.CounterpartyID),
		string(productIDs),
		entry.Confidence,
		entry.Matched,
		entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match history entry: %w", err)
	}
	return nil
}

// ForCounterparty returns all history entries for a counterparty, oldest
// first.
func (s *SQLiteStorage) ForCounterparty(ctx context.Context, counterpartyID string) ([]model.MatchHistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(counterpartyID, "counterpartyID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT counterparty_id, product_ids, confidence, matched, recorded_at
		FROM match_history
		WHERE counterparty_id = ?
		ORDER BY recorded_at ASC, id ASC`,
		model.NormalizeID(counterpartyID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query match history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.MatchHistoryEntry
	for rows.Next() {
		var entry model.MatchHistoryEntry
		var productIDs string
		if err := rows.Scan(&entry.CounterpartyID, &productIDs, &entry.Confidence, &entry.Matched, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match history entry: %w", err)
		}
		if err := json.Unmarshal([]byte(productIDs), &entry.ProductIDs); err != nil {
			return nil, fmt.Errorf("failed to decode product IDs: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match history: %w", err)
	}

	return entries, nil
}

// Size returns the total number of history entries.
func (s *SQLiteStorage) Size(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM match_history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count match history: %w", err)
	}
	return count, nil
}
