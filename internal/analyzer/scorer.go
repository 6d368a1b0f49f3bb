package analyzer

import (
	"sort"

	"github.com/heartmarshall/hanscope/internal/domain"
)

// Score classifies the filtered token sequence against the vocabulary and
// exclusion set and computes the comprehension report.
//
// A token is known when it is coverable by the vocabulary (direct member
// or all characters members) and not on the exclusion set. Unknown tokens
// are listed by frequency descending; equal counts keep first-occurrence
// order. Returns domain.ErrNoAnalyzableContent when no tokens remain.
func Score(tokens []string, vocab *Vocabulary, excluded ExclusionSet) (*domain.AnalysisReport, error) {
	total := len(tokens)
	if total == 0 {
		return nil, domain.ErrNoAnalyzableContent
	}

	counts := make(map[string]int, total)
	order := make([]string, 0, total)
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	known := 0
	unknown := make([]domain.UnknownWord, 0)
	for _, tok := range order {
		if vocab.Covers(tok) && !excluded.Contains(tok) {
			known += counts[tok]
			continue
		}
		unknown = append(unknown, domain.UnknownWord{Token: tok, Count: counts[tok]})
	}

	// Stable sort: ties keep first-occurrence order.
	sort.SliceStable(unknown, func(i, j int) bool {
		return unknown[i].Count > unknown[j].Count
	})

	percent := float64(known) / float64(total) * 100

	return &domain.AnalysisReport{
		TotalTokens:          total,
		DistinctTokens:       len(order),
		KnownTokens:          known,
		ComprehensionPercent: percent,
		Level:                domain.LevelForPercent(percent),
		UnknownWords:         unknown,
	}, nil
}
