package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: match history",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS match_history (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					counterparty_id TEXT NOT NULL,
					product_ids TEXT NOT NULL,
					confidence REAL NOT NULL DEFAULT 0,
					matched BOOLEAN NOT NULL DEFAULT 0,
					recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_match_history_counterparty ON match_history(counterparty_id)`,
				`CREATE INDEX idx_match_history_recorded ON match_history(recorded_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add training records for weight adjustment",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS training_records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					amount_similarity REAL NOT NULL DEFAULT 0,
					date_proximity REAL NOT NULL DEFAULT 0,
					vendor_match REAL NOT NULL DEFAULT 0,
					line_item_similarity REAL NOT NULL DEFAULT 0,
					product_similarity REAL NOT NULL DEFAULT 0,
					quantity_similarity REAL NOT NULL DEFAULT 0,
					historical_pattern REAL NOT NULL DEFAULT 0,
					anomaly_score REAL NOT NULL DEFAULT 0,
					actual_match BOOLEAN NOT NULL,
					feedback TEXT,
					recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_training_records_recorded ON training_records(recorded_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add weight vector persistence",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS weights (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					amount REAL NOT NULL,
					date REAL NOT NULL,
					vendor REAL NOT NULL,
					product_similarity REAL NOT NULL,
					quantity_similarity REAL NOT NULL,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)
			`)
			return err
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
