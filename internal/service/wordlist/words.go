package wordlist

import (
	"context"
	"fmt"
	"strconv"

	"github.com/heartmarshall/hanscope/internal/domain"
)

// List returns every word on the given list, oldest first.
func (s *Service) List(ctx context.Context, kind domain.WordListKind) ([]string, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "invalid value (allowed: known, excluded)")
	}
	return s.words.ListWords(ctx, kind)
}

// ListEntries returns full entries for the given list, oldest first.
func (s *Service) ListEntries(ctx context.Context, kind domain.WordListKind) ([]domain.WordListEntry, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "invalid value (allowed: known, excluded)")
	}
	return s.words.ListEntries(ctx, kind)
}

// Add appends words to a list, skipping duplicates. Returns the number
// of words actually added.
func (s *Service) Add(ctx context.Context, input AddInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	if err := s.checkCapacity(ctx, input.Kind, len(input.Words)); err != nil {
		return 0, err
	}

	added, err := s.words.AddWords(ctx, input.Kind, dedupe(input.Words))
	if err != nil {
		return 0, fmt.Errorf("add words: %w", err)
	}

	s.log.InfoContext(ctx, "words added", "kind", input.Kind.String(), "added", added)
	return added, nil
}

// Remove deletes one word from a list.
func (s *Service) Remove(ctx context.Context, input RemoveInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.words.RemoveWord(ctx, input.Kind, input.Word); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "word removed", "kind", input.Kind.String(), "word", input.Word)
	return nil
}

// Replace atomically swaps the entire contents of a list. Readers never
// observe a half-replaced list.
func (s *Service) Replace(ctx context.Context, input AddInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	words := dedupe(input.Words)
	if s.cfg.MaxWordsPerList > 0 && len(words) > s.cfg.MaxWordsPerList {
		return 0, domain.NewValidationError("words",
			"too many (max "+strconv.Itoa(s.cfg.MaxWordsPerList)+" per list)")
	}

	var added int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.words.DeleteAll(ctx, input.Kind); err != nil {
			return fmt.Errorf("clear list: %w", err)
		}
		n, err := s.words.AddWords(ctx, input.Kind, words)
		if err != nil {
			return fmt.Errorf("add words: %w", err)
		}
		added = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "list replaced", "kind", input.Kind.String(), "words", added)
	return added, nil
}

// checkCapacity rejects an add that would push a list over its cap.
func (s *Service) checkCapacity(ctx context.Context, kind domain.WordListKind, adding int) error {
	if s.cfg.MaxWordsPerList <= 0 {
		return nil
	}
	count, err := s.words.Count(ctx, kind)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if count+adding > s.cfg.MaxWordsPerList {
		return domain.NewValidationError("words",
			"list full (max "+strconv.Itoa(s.cfg.MaxWordsPerList)+" per list)")
	}
	return nil
}

// dedupe drops repeated words while preserving first-seen order.
func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
