package model

// FeatureVector holds the eight similarity and anomaly signals computed for
// a single document/candidate comparison. All values lie in [0,100];
// AnomalyScore uses 100 to mean "no anomaly detected".
type FeatureVector struct {
	AmountSimilarity   float64 `json:"amount_similarity"`
	DateProximity      float64 `json:"date_proximity"`
	VendorMatch        float64 `json:"vendor_match"`
	LineItemSimilarity float64 `json:"line_item_similarity"`
	ProductSimilarity  float64 `json:"product_similarity"`
	QuantitySimilarity float64 `json:"quantity_similarity"`
	HistoricalPattern  float64 `json:"historical_pattern"`
	AnomalyScore       float64 `json:"anomaly_score"`
}

// WeightedValues returns the five weighted-feature values in canonical
// order: amount, date, vendor, product similarity, quantity similarity.
// LineItemSimilarity, HistoricalPattern and AnomalyScore inform confidence
// and explanations but never enter the weighted sum.
func (f FeatureVector) WeightedValues() [5]float64 {
	return [5]float64{
		f.AmountSimilarity,
		f.DateProximity,
		f.VendorMatch,
		f.ProductSimilarity,
		f.QuantitySimilarity,
	}
}

// WeightedScore computes the raw weighted score in [0,100] for this feature
// vector under the given weights.
func (f FeatureVector) WeightedScore(w WeightVector) float64 {
	return w.Amount*f.AmountSimilarity +
		w.Date*f.DateProximity +
		w.Vendor*f.VendorMatch +
		w.ProductSimilarity*f.ProductSimilarity +
		w.QuantitySimilarity*f.QuantitySimilarity
}
