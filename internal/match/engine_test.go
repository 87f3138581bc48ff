package match

import (
	"context"
	"testing"

	"github.com/Reshigan/tradematch/internal/history"
	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	store := history.NewMemoryStore()
	trainer, err := train.New(store, model.DefaultWeights())
	require.NoError(t, err)

	engine, err := New(trainer, store)
	require.NoError(t, err)
	return engine
}

func invoiceFixture() *model.Document {
	return &model.Document{
		ID:             "INV-1001",
		Type:           model.TypeInvoice,
		TotalAmount:    1000.00,
		IssueDate:      testDate(0),
		CounterpartyID: "VND-001",
		Lines: []model.LineItem{
			{ProductID: "P1", Quantity: 10, UnitPrice: 60},
			{ProductID: "P2", Quantity: 20, UnitPrice: 20},
		},
	}
}

func purchaseOrderFixture() *model.Document {
	return &model.Document{
		ID:             "PO-2001",
		Type:           model.TypePurchaseOrder,
		TotalAmount:    1000.00,
		IssueDate:      testDate(3),
		CounterpartyID: "VND-001",
		Lines: []model.LineItem{
			{ProductID: "P1", Quantity: 10, UnitPrice: 60},
			{ProductID: "P2", Quantity: 20, UnitPrice: 20},
		},
	}
}

func TestEngine_New_RejectsInvalidWeights(t *testing.T) {
	store := history.NewMemoryStore()

	_, err := train.New(store, model.WeightVector{Amount: 0.9})
	assert.Error(t, err)

	_, err = New(nil, store)
	assert.Error(t, err)
}

func TestEngine_ScoreMatch_PerfectPair(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	decision := engine.ScoreMatch(ctx, invoiceFixture(), purchaseOrderFixture())

	assert.Equal(t, "PO-2001", decision.CandidateID)
	assert.InDelta(t, 100, decision.Features.AmountSimilarity, 1e-9)
	assert.InDelta(t, 100, decision.Features.DateProximity, 1e-9)
	assert.InDelta(t, 100, decision.Features.VendorMatch, 1e-9)
	assert.InDelta(t, 100, decision.Features.ProductSimilarity, 1e-9)
	assert.InDelta(t, 100, decision.Features.QuantitySimilarity, 1e-9)
	assert.InDelta(t, 1.0, decision.Score, 1e-9)
	assert.Equal(t, model.RecommendAutoMatch, decision.Recommendation)
	assert.GreaterOrEqual(t, decision.Confidence, 0.90)
}

func TestEngine_ScoreMatch_LargeAmountGap(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	candidate := purchaseOrderFixture()
	candidate.TotalAmount = 1500.00

	decision := engine.ScoreMatch(ctx, invoiceFixture(), candidate)

	assert.LessOrEqual(t, decision.Features.AmountSimilarity, 50.0)
	assert.NotEqual(t, model.RecommendAutoMatch, decision.Recommendation)
}

func TestEngine_ScoreMatch_Idempotent(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	doc := invoiceFixture()
	candidate := purchaseOrderFixture()

	first := engine.ScoreMatch(ctx, doc, candidate)
	second := engine.ScoreMatch(ctx, doc, candidate)

	assert.Equal(t, first, second)
}

func TestEngine_ScoreMatch_SparseDocuments(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	decision := engine.ScoreMatch(ctx, &model.Document{}, &model.Document{})

	assert.Equal(t, model.RecommendReject, decision.Recommendation)
	assert.Zero(t, decision.Score)
	assert.Contains(t, decision.Explanation, "Significant amount difference")
	assert.Contains(t, decision.Explanation, "Vendor mismatch")
}

func TestEngine_SuggestMatches(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)
	doc := invoiceFixture()

	// Eight candidates with decreasing quality and one tied group.
	candidates := make([]*model.Document, 0, 8)
	perfect := purchaseOrderFixture()
	candidates = append(candidates, perfect)
	for i, amount := range []float64{990, 950, 950, 900, 800, 600, 300} {
		cand := purchaseOrderFixture()
		cand.ID = makeCandidateID(i)
		cand.TotalAmount = amount
		candidates = append(candidates, cand)
	}

	decisions := engine.SuggestMatches(ctx, doc, candidates, 5)

	require.Len(t, decisions, 5)
	for i := 1; i < len(decisions); i++ {
		assert.GreaterOrEqual(t, decisions[i-1].Score, decisions[i].Score,
			"decisions must be sorted by score descending")
	}
	assert.Equal(t, "PO-2001", decisions[0].CandidateID)

	// The two 950 candidates tie; the earlier one must come first.
	assert.Equal(t, makeCandidateID(1), decisions[2].CandidateID)
	assert.Equal(t, makeCandidateID(2), decisions[3].CandidateID)
}

func makeCandidateID(i int) string {
	return "PO-30" + string(rune('0'+i))
}

func TestEngine_SuggestMatches_LimitHandling(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)
	doc := invoiceFixture()

	candidates := []*model.Document{purchaseOrderFixture(), purchaseOrderFixture()}

	t.Run("limit larger than candidate list", func(t *testing.T) {
		decisions := engine.SuggestMatches(ctx, doc, candidates, 10)
		assert.Len(t, decisions, 2)
	})

	t.Run("zero limit uses default", func(t *testing.T) {
		decisions := engine.SuggestMatches(ctx, doc, candidates, 0)
		assert.Len(t, decisions, 2)
	})

	t.Run("no candidates", func(t *testing.T) {
		decisions := engine.SuggestMatches(ctx, doc, nil, 5)
		assert.Empty(t, decisions)
	})
}

func TestEngine_Statistics(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	stats, err := engine.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TrainingBufferSize)
	assert.Zero(t, stats.HistorySize)
	assert.Zero(t, stats.Accuracy)
	assert.NoError(t, stats.Weights.Validate())

	fb := train.Feedback{
		Features:       model.FeatureVector{AmountSimilarity: 100, VendorMatch: 100},
		ActualMatch:    true,
		CounterpartyID: "VND-001",
		ProductIDs:     []string{"P1"},
		Confidence:     0.95,
	}
	require.NoError(t, engine.RecordFeedback(ctx, fb))

	stats, err = engine.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TrainingBufferSize)
	assert.Equal(t, 1, stats.HistorySize)
}

func TestEngine_FeedbackInfluencesHistoricalPattern(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)
	doc := invoiceFixture()
	candidate := purchaseOrderFixture()

	before := engine.ScoreMatch(ctx, doc, candidate)
	assert.InDelta(t, 50, before.Features.HistoricalPattern, 1e-9)

	fb := train.Feedback{
		Features:       before.Features,
		ActualMatch:    true,
		CounterpartyID: doc.CounterpartyID,
		ProductIDs:     doc.ProductIDs(),
		Confidence:     before.Confidence,
	}
	require.NoError(t, engine.RecordFeedback(ctx, fb))

	after := engine.ScoreMatch(ctx, doc, candidate)
	assert.InDelta(t, before.Confidence*100, after.Features.HistoricalPattern, 1e-9)
}
