package match

import (
	"context"
	"sort"
	"sync"

	"github.com/Reshigan/tradematch/internal/model"
)

// DefaultSuggestionLimit is used when the caller passes limit <= 0.
const DefaultSuggestionLimit = 5

// SuggestMatches scores every candidate against the document and returns
// the top decisions sorted by score descending, truncated to limit. Ties
// keep the original candidate order. Per-candidate scoring fans out across
// goroutines under a single weight snapshot; sorting waits for all of them.
func (e *Engine) SuggestMatches(ctx context.Context, doc *model.Document, candidates []*model.Document, limit int) []model.MatchDecision {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	weights := e.trainer.Weights()
	decisions := make([]model.MatchDecision, len(candidates))

	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			decisions[i] = e.scoreWith(ctx, doc, candidates[i], weights)
		}(i)
	}
	wg.Wait()

	sort.SliceStable(decisions, func(a, b int) bool {
		return decisions[a].Score > decisions[b].Score
	})

	if len(decisions) > limit {
		decisions = decisions[:limit]
	}
	return decisions
}
