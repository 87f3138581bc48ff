package model

// Recommendation indicates the disposition the engine suggests for a
// document/candidate pair.
type Recommendation string

// Recommendation constants. Thresholds on the raw weighted score are fixed:
// >=85 auto-match, >=70 review, otherwise reject.
const (
	RecommendAutoMatch Recommendation = "auto_match"
	RecommendReview    Recommendation = "review"
	RecommendReject    Recommendation = "reject"
)

// MatchDecision is the engine's verdict for one document/candidate pair.
type MatchDecision struct {
	CandidateID    string         `json:"candidate_id"`
	Recommendation Recommendation `json:"recommendation"`
	Explanation    []string       `json:"explanation"`
	Features       FeatureVector  `json:"features"`
	Score          float64        `json:"score"`
	Confidence     float64        `json:"confidence"`
}
