package storage

import (
	"context"
	"fmt"

	"github.com/Reshigan/tradematch/internal/model"
)

// SaveTrainingRecord appends a training record.
func (s *SQLiteStorage) SaveTrainingRecord(ctx context.Context, record model.TrainingRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if record.RecordedAt.IsZero() {
		return fmt.Errorf("%w: missing recorded_at", ErrInvalidRecord)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training_records (
			amount_similarity, date_proximity, vendor_match, line_item_similarity,
			product_similarity, quantity_similarity, historical_pattern, anomaly_score,
			actual_match, feedback, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Features.AmountSimilarity,
		record.Features.DateProximity,
		record.Features.VendorMatch,
		record.Features.LineItemSimilarity,
		record.Features.ProductSimilarity,
		record.Features.QuantitySimilarity,
		record.Features.HistoricalPattern,
		record.Features.AnomalyScore,
		record.ActualMatch,
		record.Feedback,
		record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert training record: %w", err)
	}
	return nil
}

// GetRecentTrainingRecords returns up to limit of the most recent training
// records, newest first.
func (s *SQLiteStorage) GetRecentTrainingRecords(ctx context.Context, limit int) ([]model.TrainingRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidRecord)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount_similarity, date_proximity, vendor_match, line_item_similarity,
			product_similarity, quantity_similarity, historical_pattern, anomaly_score,
			actual_match, feedback, recorded_at
		FROM training_records
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query training records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TrainingRecord
	for rows.Next() {
		var record model.TrainingRecord
		if err := rows.Scan(
			&record.Features.AmountSimilarity,
			&record.Features.DateProximity,
			&record.Features.VendorMatch,
			&record.Features.LineItemSimilarity,
			&record.Features.ProductSimilarity,
			&record.Features.QuantitySimilarity,
			&record.Features.HistoricalPattern,
			&record.Features.AnomalyScore,
			&record.ActualMatch,
			&record.Feedback,
			&record.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan training record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate training records: %w", err)
	}

	return records, nil
}
