package model

import (
	"fmt"
	"math"
)

// WeightTolerance is the permitted floating-point drift on the sum of a
// valid weight vector.
const WeightTolerance = 1e-6

// WeightVector maps each weighted feature to its contribution in the
// overall score. A valid vector has non-negative entries summing to 1.0.
type WeightVector struct {
	Amount             float64 `json:"amount"`
	Date               float64 `json:"date"`
	Vendor             float64 `json:"vendor"`
	ProductSimilarity  float64 `json:"product_similarity"`
	QuantitySimilarity float64 `json:"quantity_similarity"`
}

// DefaultWeights returns the weight vector the engine starts with before
// any feedback has been recorded.
func DefaultWeights() WeightVector {
	return WeightVector{
		Amount:             0.25,
		Date:               0.15,
		Vendor:             0.20,
		ProductSimilarity:  0.25,
		QuantitySimilarity: 0.15,
	}
}

// Sum returns the total of all weights.
func (w WeightVector) Sum() float64 {
	return w.Amount + w.Date + w.Vendor + w.ProductSimilarity + w.QuantitySimilarity
}

// Values returns the weights in canonical feature order: amount, date,
// vendor, product similarity, quantity similarity.
func (w WeightVector) Values() [5]float64 {
	return [5]float64{w.Amount, w.Date, w.Vendor, w.ProductSimilarity, w.QuantitySimilarity}
}

// Validate checks that all weights are non-negative and sum to 1.0 within
// tolerance. An invalid vector indicates engine mis-initialization, not bad
// input data, and must be surfaced to the caller.
func (w WeightVector) Validate() error {
	for i, v := range w.Values() {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("weight %s is %v, must be a non-negative number", weightNames[i], v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > WeightTolerance {
		return fmt.Errorf("weights sum to %.6f, must sum to 1.0", sum)
	}
	return nil
}

var weightNames = [5]string{"amount", "date", "vendor", "productSimilarity", "quantitySimilarity"}
