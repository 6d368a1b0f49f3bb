// Package analyzer implements the segmentation-and-scoring engine for
// Chinese comprehension analysis: a dynamic-programming tokenizer that
// maximizes coverage by known vocabulary, a content filter for
// non-lexical tokens, and a comprehension scorer.
package analyzer

// Vocabulary is the membership set of words and characters a reader is
// assumed to understand. It contains every base known word plus every
// individual character occurring in any base word: a learner who knows
// a word is assumed to know its characters.
//
// A Vocabulary is immutable after construction and safe for concurrent
// reads across parallel analyses.
type Vocabulary struct {
	words map[string]struct{}
}

// NewVocabulary builds a Vocabulary from base known words, expanding each
// word into its constituent characters. Empty strings are ignored.
func NewVocabulary(base []string) *Vocabulary {
	v := &Vocabulary{words: make(map[string]struct{}, 2*len(base))}
	for _, w := range base {
		if w == "" {
			continue
		}
		v.words[w] = struct{}{}
		for _, r := range w {
			v.words[string(r)] = struct{}{}
		}
	}
	return v
}

// Contains reports whether s is a direct member of the vocabulary.
func (v *Vocabulary) Contains(s string) bool {
	_, ok := v.words[s]
	return ok
}

// Covers reports whether token is coverable: a direct member, or composed
// entirely of member characters. A rare compound built from common
// characters is coverable by design; the exclusion set is the only guard
// against that.
func (v *Vocabulary) Covers(token string) bool {
	if v.Contains(token) {
		return true
	}
	for _, r := range token {
		if !v.Contains(string(r)) {
			return false
		}
	}
	return token != ""
}

// Len returns the number of entries, characters included.
func (v *Vocabulary) Len() int { return len(v.words) }

// ExclusionSet holds compounds that must never be classified as known,
// even when every one of their characters is in the vocabulary.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds an ExclusionSet from a word list.
func NewExclusionSet(words []string) ExclusionSet {
	s := make(ExclusionSet, len(words))
	for _, w := range words {
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether w is excluded.
func (s ExclusionSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}
