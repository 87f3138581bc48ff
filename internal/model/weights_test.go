package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	weights := DefaultWeights()

	require.NoError(t, weights.Validate())
	assert.InDelta(t, 1.0, weights.Sum(), WeightTolerance)
	assert.Equal(t, 0.25, weights.Amount)
	assert.Equal(t, 0.25, weights.ProductSimilarity)
}

func TestWeightVector_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights WeightVector
		wantErr bool
	}{
		{
			name:    "default weights are valid",
			weights: DefaultWeights(),
			wantErr: false,
		},
		{
			name: "uniform weights are valid",
			weights: WeightVector{
				Amount:             0.2,
				Date:               0.2,
				Vendor:             0.2,
				ProductSimilarity:  0.2,
				QuantitySimilarity: 0.2,
			},
			wantErr: false,
		},
		{
			name: "single feature carries all weight",
			weights: WeightVector{
				Amount: 1.0,
			},
			wantErr: false,
		},
		{
			name:    "zero vector does not sum to one",
			weights: WeightVector{},
			wantErr: true,
		},
		{
			name: "negative weight",
			weights: WeightVector{
				Amount:             -0.2,
				Date:               0.4,
				Vendor:             0.2,
				ProductSimilarity:  0.4,
				QuantitySimilarity: 0.2,
			},
			wantErr: true,
		},
		{
			name: "sum above one",
			weights: WeightVector{
				Amount:             0.5,
				Date:               0.5,
				Vendor:             0.5,
				ProductSimilarity:  0.5,
				QuantitySimilarity: 0.5,
			},
			wantErr: true,
		},
		{
			name: "NaN weight",
			weights: WeightVector{
				Amount:             math.NaN(),
				Date:               0.25,
				Vendor:             0.25,
				ProductSimilarity:  0.25,
				QuantitySimilarity: 0.25,
			},
			wantErr: true,
		},
		{
			name: "within floating tolerance",
			weights: WeightVector{
				Amount:             0.2,
				Date:               0.2,
				Vendor:             0.2,
				ProductSimilarity:  0.2,
				QuantitySimilarity: 0.2 + 5e-7,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
