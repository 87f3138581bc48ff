package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Reshigan/tradematch/internal/common"
	"github.com/Reshigan/tradematch/internal/model"
)

// SaveWeights upserts the single persisted weight vector.
func (s *SQLiteStorage) SaveWeights(ctx context.Context, weights model.WeightVector) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWeights(weights); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weights (id, amount, date, vendor, product_similarity, quantity_similarity, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			date = excluded.date,
			vendor = excluded.vendor,
			product_similarity = excluded.product_similarity,
			quantity_similarity = excluded.quantity_similarity,
			updated_at = CURRENT_TIMESTAMP`,
		weights.Amount,
		weights.Date,
		weights.Vendor,
		weights.ProductSimilarity,
		weights.QuantitySimilarity,
	)
	if err != nil {
		return fmt.Errorf("failed to save weights: %w", err)
	}
	return nil
}

// GetWeights returns the persisted weight vector, or common.ErrNotFound if
// none has been saved yet.
func (s *SQLiteStorage) GetWeights(ctx context.Context) (*model.WeightVector, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var weights model.WeightVector
	err := s.db.QueryRowContext(ctx, `
		SELECT amount, date, vendor, product_similarity, quantity_similarity
		FROM weights WHERE id = 1`).
		Scan(&weights.Amount, &weights.Date, &weights.Vendor, &weights.ProductSimilarity, &weights.QuantitySimilarity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}

	return &weights, nil
}
