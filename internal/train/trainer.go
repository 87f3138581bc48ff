// Package train implements the online weight-adjustment loop driven by user
// feedback on past match decisions.
package train

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Reshigan/tradematch/internal/common"
	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/service"
)

// WindowSize is the sliding window of training records used for weight
// recomputation. Below this threshold adjustment is a no-op.
const WindowSize = 100

// Feedback is one outcome-labeled comparison reported by the caller.
type Feedback struct {
	RecordedAt     time.Time
	Feedback       string
	CounterpartyID string
	ProductIDs     []string
	Features       model.FeatureVector
	Confidence     float64
	ActualMatch    bool
}

// Trainer accumulates outcome-labeled feature vectors and recomputes the
// weight vector from feature/outcome correlation. It is the sole writer of
// the shared weight vector; scoring reads an immutable snapshot published
// through an atomic pointer swap, so a recomputation mid-flight never mixes
// old and new weights within one comparison.
type Trainer struct {
	history service.HistoryStore
	weights atomic.Pointer[model.WeightVector]

	mu     sync.Mutex
	buffer []model.TrainingRecord
}

// New creates a trainer starting from the given weight vector.
func New(history service.HistoryStore, initial model.WeightVector) (*Trainer, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidWeights, err)
	}

	t := &Trainer{history: history}
	t.weights.Store(&initial)
	return t, nil
}

// Weights returns an immutable snapshot of the current weight vector.
// Callers use one snapshot for a whole comparison.
func (t *Trainer) Weights() model.WeightVector {
	return *t.weights.Load()
}

// RecordOutcome appends a training record and a match history entry, then
// recomputes the weight vector once the sliding window is full.
func (t *Trainer) RecordOutcome(ctx context.Context, fb Feedback) error {
	recordedAt := fb.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	record := model.TrainingRecord{
		Features:    fb.Features,
		ActualMatch: fb.ActualMatch,
		Feedback:    fb.Feedback,
		RecordedAt:  recordedAt,
	}

	t.mu.Lock()
	t.buffer = append(t.buffer, record)
	if len(t.buffer) > WindowSize {
		t.buffer = t.buffer[len(t.buffer)-WindowSize:]
	}
	if len(t.buffer) >= WindowSize {
		t.adjustWeightsLocked()
	}
	t.mu.Unlock()

	if t.history != nil {
		entry := model.MatchHistoryEntry{
			CounterpartyID: model.NormalizeID(fb.CounterpartyID),
			ProductIDs:     fb.ProductIDs,
			Confidence:     fb.Confidence,
			Matched:        fb.ActualMatch,
			RecordedAt:     recordedAt,
		}
		if err := t.history.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append match history: %w", err)
		}
	}

	return nil
}

// Preload seeds the sliding window with previously persisted training
// records, oldest first, without triggering a weight recomputation. Only
// the most recent WindowSize records are kept.
func (t *Trainer) Preload(records []model.TrainingRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buffer = append(t.buffer, records...)
	if len(t.buffer) > WindowSize {
		t.buffer = t.buffer[len(t.buffer)-WindowSize:]
	}
}

// BufferSize returns the number of buffered training records.
func (t *Trainer) BufferSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buffer)
}

// Accuracy returns the share of buffered records whose weighted score under
// the current weights crosses the review threshold in agreement with the
// recorded outcome. Returns 0 when the buffer is empty.
func (t *Trainer) Accuracy() float64 {
	weights := t.Weights()

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.buffer) == 0 {
		return 0
	}

	agreed := 0
	for i := range t.buffer {
		predicted := t.buffer[i].Features.WeightedScore(weights) >= 70
		if predicted == t.buffer[i].ActualMatch {
			agreed++
		}
	}
	return float64(agreed) / float64(len(t.buffer))
}

// adjustWeightsLocked recomputes weights from the correlation between each
// weighted feature and the recorded outcomes. Caller holds t.mu.
func (t *Trainer) adjustWeightsLocked() {
	outcomes := make([]float64, len(t.buffer))
	for i := range t.buffer {
		if t.buffer[i].ActualMatch {
			outcomes[i] = 100
		}
	}

	var correlations [5]float64
	var totalAbs float64
	for f := 0; f < 5; f++ {
		values := make([]float64, len(t.buffer))
		for i := range t.buffer {
			values[i] = t.buffer[i].Features.WeightedValues()[f]
		}
		correlations[f] = pearson(values, outcomes)
		totalAbs += math.Abs(correlations[f])
	}

	// No signal in the window: keep the current weights rather than emit
	// NaN from a zero denominator.
	if totalAbs == 0 {
		slog.Debug("Weight adjustment skipped, no feature correlates with outcomes",
			"window", len(t.buffer))
		return
	}

	updated := model.WeightVector{
		Amount:             math.Abs(correlations[0]) / totalAbs,
		Date:               math.Abs(correlations[1]) / totalAbs,
		Vendor:             math.Abs(correlations[2]) / totalAbs,
		ProductSimilarity:  math.Abs(correlations[3]) / totalAbs,
		QuantitySimilarity: math.Abs(correlations[4]) / totalAbs,
	}

	t.weights.Store(&updated)

	slog.Info("Adjusted scoring weights from feedback",
		"window", len(t.buffer),
		"amount", updated.Amount,
		"date", updated.Date,
		"vendor", updated.Vendor,
		"product_similarity", updated.ProductSimilarity,
		"quantity_similarity", updated.QuantitySimilarity)
}

// pearson computes the Pearson correlation coefficient between two equal
// length series. Zero variance on either side yields 0, not a fault.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
