package match

import (
	"testing"

	"github.com/Reshigan/tradematch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		features model.FeatureVector
		want     []string
	}{
		{
			name: "perfect match",
			features: model.FeatureVector{
				AmountSimilarity:   100,
				DateProximity:      100,
				VendorMatch:        100,
				ProductSimilarity:  100,
				QuantitySimilarity: 100,
				AnomalyScore:       100,
			},
			want: []string{
				"Amount matches closely",
				"Vendor IDs match exactly",
				"Products match well",
			},
		},
		{
			name: "everything wrong, fixed order",
			features: model.FeatureVector{
				AmountSimilarity:  10,
				DateProximity:     20,
				VendorMatch:       0,
				ProductSimilarity: 30,
				AnomalyScore:      40,
			},
			want: []string{
				"Significant amount difference",
				"Vendor mismatch",
				"Product differences detected",
				"Large time gap between documents",
				"Unusual patterns detected",
			},
		},
		{
			name: "middling amount and products add no line",
			features: model.FeatureVector{
				AmountSimilarity:  80,
				DateProximity:     90,
				VendorMatch:       100,
				ProductSimilarity: 75,
				AnomalyScore:      100,
			},
			want: []string{
				"Vendor IDs match exactly",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.features))
		})
	}
}

func TestExplain_Deterministic(t *testing.T) {
	features := model.FeatureVector{
		AmountSimilarity:  95,
		VendorMatch:       0,
		ProductSimilarity: 50,
		DateProximity:     30,
		AnomalyScore:      60,
	}

	first := Explain(features)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Explain(features))
	}
}
