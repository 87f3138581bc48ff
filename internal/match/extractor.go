// Package match implements the core matching engine: feature extraction,
// weighted scoring, confidence calibration, explanations and candidate
// ranking for document/counter-document pairs.
package match

import (
	"context"
	"log/slog"
	"math"

	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/service"
)

// Line items match when product IDs agree and quantity and unit price are
// each within this relative tolerance.
const lineItemTolerance = 0.05

// FeatureExtractor computes the eight similarity and anomaly features for a
// document/candidate pair. Extraction never fails: missing or malformed
// fields degrade to a neutral feature value instead of an error.
type FeatureExtractor struct {
	history service.HistoryStore
}

// NewFeatureExtractor creates a feature extractor reading historical
// patterns from the given store.
func NewFeatureExtractor(history service.HistoryStore) *FeatureExtractor {
	return &FeatureExtractor{history: history}
}

// Extract computes the full feature vector for a document/candidate pair.
// Only the historical-pattern feature touches shared state, and only to read.
func (e *FeatureExtractor) Extract(ctx context.Context, doc, candidate *model.Document) model.FeatureVector {
	if doc == nil || candidate == nil {
		return model.FeatureVector{HistoricalPattern: neutralHistory, AnomalyScore: 100}
	}

	return model.FeatureVector{
		AmountSimilarity:   amountSimilarity(doc.TotalAmount, candidate.TotalAmount),
		DateProximity:      dateProximity(doc, candidate),
		VendorMatch:        vendorMatch(doc.CounterpartyID, candidate.CounterpartyID),
		LineItemSimilarity: lineItemSimilarity(doc.Lines, candidate.Lines),
		ProductSimilarity:  productSimilarity(doc.ProductIDs(), candidate.ProductIDs()),
		QuantitySimilarity: amountSimilarity(doc.TotalQuantity(), candidate.TotalQuantity()),
		HistoricalPattern:  e.historicalPattern(ctx, doc, candidate),
		AnomalyScore:       anomalyScore(doc, candidate),
	}
}

// amountSimilarity maps the percent difference between two totals onto a
// fixed staircase. Also used for quantity sums.
func amountSimilarity(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}

	pctDiff := percentGap(a, b)
	switch {
	case pctDiff == 0:
		return 100
	case pctDiff <= 1:
		return 95
	case pctDiff <= 2:
		return 90
	case pctDiff <= 5:
		return 80
	case pctDiff <= 10:
		return 60
	default:
		return math.Max(0, 50-pctDiff)
	}
}

// dateProximity maps the absolute day gap between issue dates onto a fixed
// staircase.
func dateProximity(doc, candidate *model.Document) float64 {
	if doc.IssueDate.IsZero() || candidate.IssueDate.IsZero() {
		return 0
	}

	days := math.Abs(doc.IssueDate.Sub(candidate.IssueDate).Hours() / 24)
	switch {
	case days <= 7:
		return 100
	case days <= 14:
		return 90
	case days <= 30:
		return 80
	case days <= 60:
		return 70
	case days <= 90:
		return 60
	default:
		return math.Max(0, 50-days/3)
	}
}

// vendorMatch is binary: identifiers either match after normalization or
// they do not. No fuzzy vendor-name comparison is performed.
func vendorMatch(a, b string) float64 {
	na, nb := model.NormalizeID(a), model.NormalizeID(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 100
	}
	return 0
}

// lineItemSimilarity counts document lines that find a candidate line with
// the same product, quantity within 5% and unit price within 5%, divided by
// the longer line count.
func lineItemSimilarity(docLines, candLines []model.LineItem) float64 {
	longest := len(docLines)
	if len(candLines) > longest {
		longest = len(candLines)
	}
	if longest == 0 {
		return 0
	}

	matched := 0
	for _, line := range docLines {
		for _, other := range candLines {
			if linesMatch(line, other) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(longest) * 100
}

func linesMatch(a, b model.LineItem) bool {
	if model.NormalizeID(a.ProductID) == "" || model.NormalizeID(a.ProductID) != model.NormalizeID(b.ProductID) {
		return false
	}
	return withinTolerance(a.Quantity, b.Quantity, lineItemTolerance) &&
		withinTolerance(a.UnitPrice, b.UnitPrice, lineItemTolerance)
}

func withinTolerance(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return true
	}
	return math.Abs(a-b)/largest <= tolerance
}

// productSimilarity is the Jaccard index of the two product-ID sets, scaled
// to [0,100].
func productSimilarity(docIDs, candIDs []string) float64 {
	if len(docIDs) == 0 || len(candIDs) == 0 {
		return 0
	}

	docSet := make(map[string]bool, len(docIDs))
	for _, id := range docIDs {
		docSet[id] = true
	}

	intersection := 0
	candSet := make(map[string]bool, len(candIDs))
	for _, id := range candIDs {
		if candSet[id] {
			continue
		}
		candSet[id] = true
		if docSet[id] {
			intersection++
		}
	}

	union := len(docSet) + len(candSet) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union) * 100
}

// neutralHistory is returned when no relevant history exists for the pair.
const neutralHistory = 50

// historicalPattern averages the confidence of past outcomes for the same
// counterparty that touched at least one of the document's products.
func (e *FeatureExtractor) historicalPattern(ctx context.Context, doc, candidate *model.Document) float64 {
	if e.history == nil {
		return neutralHistory
	}

	counterparty := model.NormalizeID(doc.CounterpartyID)
	if counterparty == "" {
		return neutralHistory
	}

	entries, err := e.history.ForCounterparty(ctx, counterparty)
	if err != nil {
		slog.Debug("History lookup failed, using neutral pattern score",
			"counterparty_id", counterparty, "error", err)
		return neutralHistory
	}

	products := doc.ProductIDs()
	if len(products) == 0 {
		products = candidate.ProductIDs()
	}

	var total float64
	count := 0
	for i := range entries {
		if !entries[i].SharesProduct(products) {
			continue
		}
		total += entries[i].Confidence
		count++
	}
	if count == 0 {
		return neutralHistory
	}
	return clamp(total/float64(count)*100, 0, 100)
}

// Anomaly penalties are independent and additive, not staircased.
const (
	amountAnomalyPenalty   = 30
	dateAnomalyPenalty     = 20
	quantityAnomalyPenalty = 25

	anomalyGapThreshold  = 20  // percent
	anomalyDateThreshold = 120 // days
)

// anomalyScore starts at 100 and subtracts fixed penalties for structural
// outliers; 100 means no anomaly.
func anomalyScore(doc, candidate *model.Document) float64 {
	score := 100.0

	if doc.TotalAmount > 0 && candidate.TotalAmount > 0 &&
		percentGap(doc.TotalAmount, candidate.TotalAmount) > anomalyGapThreshold {
		score -= amountAnomalyPenalty
	}

	if !doc.IssueDate.IsZero() && !candidate.IssueDate.IsZero() {
		days := math.Abs(doc.IssueDate.Sub(candidate.IssueDate).Hours() / 24)
		if days > anomalyDateThreshold {
			score -= dateAnomalyPenalty
		}
	}

	docQty, candQty := doc.TotalQuantity(), candidate.TotalQuantity()
	if docQty > 0 && candQty > 0 && percentGap(docQty, candQty) > anomalyGapThreshold {
		score -= quantityAnomalyPenalty
	}

	return math.Max(0, score)
}

// percentGap returns the relative difference between two positive values as
// a percentage of the larger one.
func percentGap(a, b float64) float64 {
	largest := math.Max(a, b)
	if largest == 0 {
		return 0
	}
	return math.Abs(a-b) / largest * 100
}

func clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
