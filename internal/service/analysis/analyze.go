package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hanscope/internal/analyzer"
	"github.com/heartmarshall/hanscope/internal/domain"
)

// AnalyzeText analyzes a single text against the stored word lists and
// returns a report with pronunciation-annotated unknown words.
func (s *Service) AnalyzeText(ctx context.Context, input AnalyzeInput) (*domain.AnalysisReport, error) {
	if err := input.Validate(s.cfg.MaxTextBytes); err != nil {
		return nil, err
	}

	vocab, excluded, err := s.loadVocabulary(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.analyzer.Analyze(input.Text, vocab, excluded)
	if err != nil {
		return nil, err
	}
	s.annotate(report)

	s.log.DebugContext(ctx, "text analyzed",
		"total_tokens", report.TotalTokens,
		"comprehension", report.ComprehensionPercent,
	)
	return report, nil
}

// DocumentResult pairs one batch document with its report. Err carries
// per-document analysis failures (empty input, nothing analyzable) so a
// single bad document does not fail the whole batch.
type DocumentResult struct {
	Name   string
	Report *domain.AnalysisReport
	Err    error
}

// AnalyzeDocuments analyzes several documents concurrently, sharing one
// read-only snapshot of the word lists. Results preserve input order.
func (s *Service) AnalyzeDocuments(ctx context.Context, input BatchInput) ([]DocumentResult, error) {
	if err := input.Validate(s.cfg.BatchMaxDocs, s.cfg.MaxTextBytes); err != nil {
		return nil, err
	}

	vocab, excluded, err := s.loadVocabulary(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]DocumentResult, len(input.Documents))
	g, gCtx := errgroup.WithContext(ctx)
	for i, doc := range input.Documents {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			report, err := s.analyzer.Analyze(doc.Text, vocab, excluded)
			if err != nil {
				if errors.Is(err, domain.ErrEmptyInput) || errors.Is(err, domain.ErrNoAnalyzableContent) {
					results[i] = DocumentResult{Name: doc.Name, Err: err}
					return nil
				}
				return fmt.Errorf("analyze document %q: %w", doc.Name, err)
			}
			s.annotate(report)
			results[i] = DocumentResult{Name: doc.Name, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "batch analyzed", "documents", len(results))
	return results, nil
}

// loadVocabulary fetches both word lists concurrently and builds the
// lookup structures shared by every analysis in the request.
func (s *Service) loadVocabulary(ctx context.Context) (*analyzer.Vocabulary, analyzer.ExclusionSet, error) {
	var known, excluded []string

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		known, err = s.words.ListWords(gCtx, domain.WordListKindKnown)
		return err
	})
	g.Go(func() error {
		var err error
		excluded, err = s.words.ListWords(gCtx, domain.WordListKindExcluded)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "failed to load word lists", "error", err)
		return nil, nil, fmt.Errorf("load word lists: %w", domain.ErrVocabularyUnavailable)
	}

	return analyzer.NewVocabulary(known), analyzer.NewExclusionSet(excluded), nil
}

// annotate fills pronunciation for every unknown word in the report.
func (s *Service) annotate(report *domain.AnalysisReport) {
	if s.renderer == nil {
		return
	}
	for i := range report.UnknownWords {
		report.UnknownWords[i].Pinyin = strings.Join(s.renderer.Render(report.UnknownWords[i].Token), " ")
	}
}
