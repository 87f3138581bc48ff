package model

import "time"

// TrainingRecord stores one piece of user feedback: the feature vector of a
// past comparison plus the real-world outcome.
type TrainingRecord struct {
	RecordedAt  time.Time     `json:"recorded_at"`
	Feedback    string        `json:"feedback,omitempty"`
	Features    FeatureVector `json:"features"`
	ActualMatch bool          `json:"actual_match"`
}

// MatchHistoryEntry records the outcome of a past match for one
// counterparty/product combination. The historical-pattern feature of later
// comparisons consults these entries read-only.
type MatchHistoryEntry struct {
	RecordedAt     time.Time `json:"recorded_at"`
	CounterpartyID string    `json:"counterparty_id"`
	ProductIDs     []string  `json:"product_ids"`
	Confidence     float64   `json:"confidence"`
	Matched        bool      `json:"matched"`
}

// SharesProduct reports whether the entry touches at least one of the given
// normalized product identifiers.
func (e *MatchHistoryEntry) SharesProduct(productIDs []string) bool {
	for _, id := range e.ProductIDs {
		norm := NormalizeID(id)
		for _, other := range productIDs {
			if norm == NormalizeID(other) {
				return true
			}
		}
	}
	return false
}
