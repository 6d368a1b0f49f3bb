package analyzer

import (
	"github.com/heartmarshall/hanscope/internal/domain"
)

// Analyzer ties the pipeline together: normalize, segment, filter, score.
// One Analyzer may serve concurrent analyses; all per-analysis state is
// local to the call.
type Analyzer struct {
	segmenter *Segmenter
}

// New creates an Analyzer backed by the given fallback segmenter.
func New(fallback FallbackSegmenter, maxWordLength int) *Analyzer {
	return &Analyzer{segmenter: NewSegmenter(fallback, maxWordLength)}
}

// Analyze runs the full pipeline on raw text. It never returns a partial
// report: domain.ErrEmptyInput when the text normalizes to nothing,
// domain.ErrNoAnalyzableContent when filtering leaves no tokens.
func (a *Analyzer) Analyze(text string, vocab *Vocabulary, excluded ExclusionSet) (*domain.AnalysisReport, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.ErrEmptyInput
	}

	tokens := a.segmenter.Segment(normalized, vocab)
	filtered := FilterTokens(tokens)

	return Score(filtered, vocab, excluded)
}
