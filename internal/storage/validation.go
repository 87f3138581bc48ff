package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Reshigan/tradematch/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidEntry   = errors.New("invalid match history entry")
	ErrInvalidRecord  = errors.New("invalid training record")
	ErrInvalidWeights = errors.New("invalid weight vector")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateHistoryEntry validates a match history entry before persisting.
// An empty counterparty is allowed: sparse feedback is still appended, and
// pattern lookups simply never find it.
func validateHistoryEntry(entry *model.MatchHistoryEntry) error {
	if entry.Confidence < 0 || entry.Confidence > 1 {
		return fmt.Errorf("%w: confidence %.4f out of range [0,1]", ErrInvalidEntry, entry.Confidence)
	}
	return nil
}

// validateWeights validates a weight vector before persisting.
func validateWeights(weights model.WeightVector) error {
	if err := weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeights, err)
	}
	return nil
}
