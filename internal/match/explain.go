package match

import "github.com/Reshigan/tradematch/internal/model"

// Explanation text returned to reviewers. Rules are evaluated independently
// in a fixed order; each contributes at most one line.
const (
	reasonAmountClose    = "Amount matches closely"
	reasonAmountFar      = "Significant amount difference"
	reasonVendorExact    = "Vendor IDs match exactly"
	reasonVendorMismatch = "Vendor mismatch"
	reasonProductsClose  = "Products match well"
	reasonProductsFar    = "Product differences detected"
	reasonDateGap        = "Large time gap between documents"
	reasonAnomaly        = "Unusual patterns detected"
)

// Explain produces a deterministic, ordered list of human-readable reasons
// for a feature vector.
func Explain(features model.FeatureVector) []string {
	reasons := make([]string, 0, 5)

	switch {
	case features.AmountSimilarity >= 90:
		reasons = append(reasons, reasonAmountClose)
	case features.AmountSimilarity < 70:
		reasons = append(reasons, reasonAmountFar)
	}

	if features.VendorMatch == 100 {
		reasons = append(reasons, reasonVendorExact)
	} else {
		reasons = append(reasons, reasonVendorMismatch)
	}

	switch {
	case features.ProductSimilarity >= 90:
		reasons = append(reasons, reasonProductsClose)
	case features.ProductSimilarity < 70:
		reasons = append(reasons, reasonProductsFar)
	}

	if features.DateProximity < 70 {
		reasons = append(reasons, reasonDateGap)
	}

	if features.AnomalyScore < 70 {
		reasons = append(reasons, reasonAnomaly)
	}

	return reasons
}
