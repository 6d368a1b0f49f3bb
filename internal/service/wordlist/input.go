package wordlist

import (
	"strconv"
	"unicode"

	"github.com/heartmarshall/hanscope/internal/domain"
)

// AddInput holds the parameters for adding words to a list.
type AddInput struct {
	Kind  domain.WordListKind
	Words []string
}

// Validate checks all fields and collects all errors.
func (i *AddInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value (allowed: known, excluded)"})
	}
	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	}
	for idx, w := range i.Words {
		if msg := validateWord(w); msg != "" {
			errs = append(errs, domain.FieldError{
				Field:   "words[" + strconv.Itoa(idx) + "]",
				Message: msg,
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RemoveInput holds the parameters for removing one word from a list.
type RemoveInput struct {
	Kind domain.WordListKind
	Word string
}

// Validate checks all fields and collects all errors.
func (i *RemoveInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value (allowed: known, excluded)"})
	}
	if msg := validateWord(i.Word); msg != "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: msg})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateWord returns an error message for an invalid word entry, or "".
func validateWord(w string) string {
	if w == "" {
		return "required"
	}
	if len(w) > 100 {
		return "too long (max 100 bytes)"
	}
	for _, r := range w {
		if unicode.IsSpace(r) {
			return "must not contain whitespace"
		}
	}
	return ""
}
