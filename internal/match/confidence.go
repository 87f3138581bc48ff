package match

import (
	"math"

	"github.com/Reshigan/tradematch/internal/model"
)

// Confidence bounds and blend ratio. A high score produced by features that
// wildly disagree is trusted less than the same score from features that
// agree, so the raw score is blended with a cross-feature consistency term.
const (
	minConfidence = 0.01
	maxConfidence = 0.99

	scoreBlend       = 0.7
	consistencyBlend = 0.3
)

// Confidence derives a calibrated confidence in [0.01,0.99] from the raw
// weighted score and the agreement between the five weighted features.
func Confidence(features model.FeatureVector, rawScore float64) float64 {
	consistency := math.Max(0, 100-populationStddev(features.WeightedValues()))
	confidence := (rawScore*scoreBlend + consistency*consistencyBlend) / 100
	return clamp(confidence, minConfidence, maxConfidence)
}

// populationStddev computes the population standard deviation of the five
// weighted-feature values.
func populationStddev(values [5]float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}
