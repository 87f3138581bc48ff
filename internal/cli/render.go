package cli

import (
	"fmt"
	"strings"

	"github.com/Reshigan/tradematch/internal/model"
	"github.com/Reshigan/tradematch/internal/service"
)

// RenderDecision formats a match decision for terminal output.
func RenderDecision(decision model.MatchDecision) string {
	var b strings.Builder

	if decision.CandidateID != "" {
		b.WriteString(BoldStyle.Render(fmt.Sprintf("Candidate %s", decision.CandidateID)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  Score:          %.3f\n", decision.Score))
	b.WriteString(fmt.Sprintf("  Confidence:     %.2f\n", decision.Confidence))
	b.WriteString(fmt.Sprintf("  Recommendation: %s\n", renderRecommendation(decision.Recommendation)))

	if len(decision.Explanation) > 0 {
		b.WriteString("  Reasons:\n")
		for _, reason := range decision.Explanation {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("    - %s", reason)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderRecommendation(rec model.Recommendation) string {
	switch rec {
	case model.RecommendAutoMatch:
		return SuccessStyle.Render(string(rec))
	case model.RecommendReview:
		return WarningStyle.Render(string(rec))
	default:
		return ErrorStyle.Render(string(rec))
	}
}

// RenderWeights formats a weight vector for terminal output.
func RenderWeights(weights model.WeightVector) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Scoring weights"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  amount:              %.4f\n", weights.Amount))
	b.WriteString(fmt.Sprintf("  date:                %.4f\n", weights.Date))
	b.WriteString(fmt.Sprintf("  vendor:              %.4f\n", weights.Vendor))
	b.WriteString(fmt.Sprintf("  product_similarity:  %.4f\n", weights.ProductSimilarity))
	b.WriteString(fmt.Sprintf("  quantity_similarity: %.4f\n", weights.QuantitySimilarity))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  sum: %.6f", weights.Sum())))
	b.WriteString("\n")
	return b.String()
}

// RenderStatistics formats engine statistics for terminal output.
func RenderStatistics(stats service.Statistics) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Engine statistics"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Training buffer: %d\n", stats.TrainingBufferSize))
	b.WriteString(fmt.Sprintf("  History entries: %d\n", stats.HistorySize))
	b.WriteString(fmt.Sprintf("  Accuracy:        %.2f%%\n", stats.Accuracy*100))
	b.WriteString(RenderWeights(stats.Weights))
	return b.String()
}
