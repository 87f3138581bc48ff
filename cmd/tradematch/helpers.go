package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Reshigan/tradematch/internal/common"
	"github.com/Reshigan/tradematch/internal/config"
	"github.com/Reshigan/tradematch/internal/match"
	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/service"
	"github.com/Reshigan/tradematch/internal/storage"
	"github.com/Reshigan/tradematch/internal/train"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the matching engine on top of the persistent store:
// weights and the training window are rehydrated from the database so that
// the feedback loop carries across invocations.
func initEngine(ctx context.Context, store service.Storage) (*match.Engine, *train.Trainer, error) {
	weights := model.DefaultWeights()
	if saved, err := store.GetWeights(ctx); err == nil {
		weights = *saved
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to load weights: %w", err)
	}

	trainer, err := train.New(store, weights)
	if err != nil {
		return nil, nil, err
	}

	records, err := store.GetRecentTrainingRecords(ctx, train.WindowSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load training records: %w", err)
	}
	// Storage returns newest first; the trainer window wants oldest first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	trainer.Preload(records)

	engine, err := match.New(trainer, store)
	if err != nil {
		return nil, nil, err
	}
	return engine, trainer, nil
}

// loadDocument reads a single document from a JSON file.
func loadDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.NewUserError(fmt.Sprintf("invalid document JSON in %s", path), err)
	}
	return &doc, nil
}

// loadDocuments reads a JSON array of documents from a file.
func loadDocuments(path string) ([]*model.Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var docs []*model.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, common.NewUserError(fmt.Sprintf("invalid candidates JSON in %s", path), err)
	}
	return docs, nil
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
