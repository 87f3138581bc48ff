package match

import (
	"testing"

	"github.com/Reshigan/tradematch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		features model.FeatureVector
		rawScore float64
		want     float64
	}{
		{
			name: "perfect agreement at full score clamps to max",
			features: model.FeatureVector{
				AmountSimilarity:   100,
				DateProximity:      100,
				VendorMatch:        100,
				ProductSimilarity:  100,
				QuantitySimilarity: 100,
			},
			rawScore: 100,
			want:     0.99,
		},
		{
			name:     "zero features in full agreement",
			features: model.FeatureVector{},
			rawScore: 0,
			// consistency 100, so (0*0.7 + 100*0.3) / 100
			want: 0.30,
		},
		{
			name: "disagreeing features are trusted less",
			features: model.FeatureVector{
				AmountSimilarity: 100,
			},
			rawScore: 25,
			// stddev 40, consistency 60: (25*0.7 + 60*0.3) / 100
			want: 0.355,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Confidence(tt.features, tt.rawScore), 1e-9)
		})
	}
}

func TestConfidence_AlwaysInRange(t *testing.T) {
	vectors := []model.FeatureVector{
		{},
		{AmountSimilarity: 100, DateProximity: 0, VendorMatch: 100, ProductSimilarity: 0, QuantitySimilarity: 100},
		{AmountSimilarity: 100, DateProximity: 100, VendorMatch: 100, ProductSimilarity: 100, QuantitySimilarity: 100},
	}
	scores := []float64{0, 25, 50, 75, 100}

	for _, features := range vectors {
		for _, raw := range scores {
			confidence := Confidence(features, raw)
			assert.GreaterOrEqual(t, confidence, 0.01)
			assert.LessOrEqual(t, confidence, 0.99)
		}
	}
}

func TestConfidence_AgreementRaisesTrust(t *testing.T) {
	// Same raw score, produced once by agreeing features and once by
	// features that wildly disagree.
	agreeing := model.FeatureVector{
		AmountSimilarity:   60,
		DateProximity:      60,
		VendorMatch:        60,
		ProductSimilarity:  60,
		QuantitySimilarity: 60,
	}
	disagreeing := model.FeatureVector{
		AmountSimilarity:   100,
		DateProximity:      0,
		VendorMatch:        100,
		ProductSimilarity:  0,
		QuantitySimilarity: 100,
	}

	assert.Greater(t, Confidence(agreeing, 60), Confidence(disagreeing, 60))
}
