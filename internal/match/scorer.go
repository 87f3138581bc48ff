package match

import "github.com/Reshigan/tradematch/internal/model"

// Disposition thresholds on the raw weighted score. These are fixed and do
// not depend on the weight vector.
const (
	autoMatchThreshold = 85.0
	reviewThreshold    = 70.0
)

// Score computes the raw weighted score in [0,100] from the five weighted
// features. Line-item similarity, historical pattern and the anomaly score
// contribute to confidence and explanations only.
func Score(features model.FeatureVector, weights model.WeightVector) float64 {
	return features.WeightedScore(weights)
}

// Recommend maps a raw weighted score onto a disposition.
func Recommend(rawScore float64) model.Recommendation {
	switch {
	case rawScore >= autoMatchThreshold:
		return model.RecommendAutoMatch
	case rawScore >= reviewThreshold:
		return model.RecommendReview
	default:
		return model.RecommendReject
	}
}
