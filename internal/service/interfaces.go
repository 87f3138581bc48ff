// Package service defines the interfaces shared between the engine and its
// collaborators.
package service

import (
	"context"

	"github.com/Reshigan/tradematch/internal/model"
)

// HistoryStore is an append-only log of past match outcomes. The
// historical-pattern feature reads it; the weight trainer is its only
// writer.
type HistoryStore interface {
	Append(ctx context.Context, entry model.MatchHistoryEntry) error
	ForCounterparty(ctx context.Context, counterpartyID string) ([]model.MatchHistoryEntry, error)
	Size(ctx context.Context) (int, error)
}

// Storage defines the contract for the persistence layer. The engine's
// in-memory model is the default; wiring a Storage makes weights and match
// history durable across restarts.
type Storage interface {
	HistoryStore

	// Weight vector persistence
	SaveWeights(ctx context.Context, weights model.WeightVector) error
	GetWeights(ctx context.Context) (*model.WeightVector, error)

	// Training record persistence
	SaveTrainingRecord(ctx context.Context, record model.TrainingRecord) error
	GetRecentTrainingRecords(ctx context.Context, limit int) ([]model.TrainingRecord, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Statistics summarizes engine state for observability.
type Statistics struct {
	Weights            model.WeightVector `json:"weights"`
	TrainingBufferSize int                `json:"training_buffer_size"`
	HistorySize        int                `json:"history_size"`
	Accuracy           float64            `json:"accuracy"`
}
