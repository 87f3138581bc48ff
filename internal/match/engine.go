package match

import (
	"context"
	"fmt"

	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/service"
	"github.com/Reshigan/tradematch/internal/train"
)

// Engine is the entry point for match scoring and feedback. Construct one
// per process with the dependencies injected; it holds no global state and
// is safe for concurrent use.
type Engine struct {
	extractor *FeatureExtractor
	trainer   *train.Trainer
	history   service.HistoryStore
}

// New creates an engine reading historical patterns from the given store
// and weights from the given trainer.
func New(trainer *train.Trainer, history service.HistoryStore) (*Engine, error) {
	if trainer == nil {
		return nil, fmt.Errorf("trainer is required")
	}
	if err := trainer.Weights().Validate(); err != nil {
		return nil, fmt.Errorf("engine misconfigured: %w", err)
	}

	return &Engine{
		extractor: NewFeatureExtractor(history),
		trainer:   trainer,
		history:   history,
	}, nil
}

// ScoreMatch compares a document against one candidate and returns the
// decision. Sparse or malformed documents degrade to low feature values;
// they never produce an error.
func (e *Engine) ScoreMatch(ctx context.Context, doc, candidate *model.Document) model.MatchDecision {
	weights := e.trainer.Weights()
	return e.scoreWith(ctx, doc, candidate, weights)
}

// scoreWith scores one pair under a fixed weight snapshot so that a weight
// update mid-flight never mixes old and new weights.
func (e *Engine) scoreWith(ctx context.Context, doc, candidate *model.Document, weights model.WeightVector) model.MatchDecision {
	features := e.extractor.Extract(ctx, doc, candidate)
	rawScore := Score(features, weights)

	decision := model.MatchDecision{
		Score:          rawScore / 100,
		Confidence:     Confidence(features, rawScore),
		Recommendation: Recommend(rawScore),
		Explanation:    Explain(features),
		Features:       features,
	}
	if candidate != nil {
		decision.CandidateID = candidate.ID
	}
	return decision
}

// RecordFeedback reports the real-world outcome of a past decision. It may
// trigger a weight recomputation as a side effect.
func (e *Engine) RecordFeedback(ctx context.Context, fb train.Feedback) error {
	return e.trainer.RecordOutcome(ctx, fb)
}

// Weights returns a snapshot of the current weight vector.
func (e *Engine) Weights() model.WeightVector {
	return e.trainer.Weights()
}

// Statistics reports engine state for observability.
func (e *Engine) Statistics(ctx context.Context) (service.Statistics, error) {
	stats := service.Statistics{
		Weights:            e.trainer.Weights(),
		TrainingBufferSize: e.trainer.BufferSize(),
		Accuracy:           e.trainer.Accuracy(),
	}

	if e.history != nil {
		size, err := e.history.Size(ctx)
		if err != nil {
			return service.Statistics{}, fmt.Errorf("failed to read history size: %w", err)
		}
		stats.HistorySize = size
	}

	return stats, nil
}
