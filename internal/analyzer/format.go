package analyzer

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/hanscope/internal/domain"
)

// PronunciationRenderer renders a token as tone-marked romanized
// syllables, one syllable per character.
type PronunciationRenderer interface {
	Render(token string) []string
}

// DefaultMaxUnknownDisplay caps how many unknown words a formatted report
// lists.
const DefaultMaxUnknownDisplay = 50

// FormatReport renders a report as display text: counts, comprehension
// percentage to one decimal place, and the highest-frequency unknown
// words annotated with pronunciation. Words beyond maxDisplay collapse
// into a remainder line. maxDisplay below 1 falls back to
// DefaultMaxUnknownDisplay.
func FormatReport(r *domain.AnalysisReport, renderer PronunciationRenderer, maxDisplay int) string {
	if maxDisplay < 1 {
		maxDisplay = DefaultMaxUnknownDisplay
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Word Count: %d\n", r.TotalTokens)
	fmt.Fprintf(&b, "Total Unique Words: %d\n", r.DistinctTokens)
	fmt.Fprintf(&b, "Comprehension: %.1f%%\n", r.ComprehensionPercent)
	fmt.Fprintf(&b, "Unique Unknown Words: %d\n", len(r.UnknownWords))

	if len(r.UnknownWords) == 0 {
		return b.String()
	}

	b.WriteString("\n=== Unknown Words (by frequency) ===\n")
	shown := r.UnknownWords
	if len(shown) > maxDisplay {
		shown = shown[:maxDisplay]
	}
	for _, w := range shown {
		annotation := w.Pinyin
		if annotation == "" && renderer != nil {
			annotation = strings.Join(renderer.Render(w.Token), " ")
		}
		fmt.Fprintf(&b, "%s (%s) : %d\n", w.Token, annotation, w.Count)
	}
	if rest := len(r.UnknownWords) - maxDisplay; rest > 0 {
		fmt.Fprintf(&b, "... and %d more\n", rest)
	}
	return b.String()
}
