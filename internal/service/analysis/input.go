package analysis

import (
	"strconv"

	"github.com/heartmarshall/hanscope/internal/domain"
)

// AnalyzeInput holds the parameters for analyzing a single text.
type AnalyzeInput struct {
	Text string
}

// Validate checks all fields and collects all errors. maxBytes below 1
// disables the size cap.
func (i *AnalyzeInput) Validate(maxBytes int) error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if maxBytes > 0 && len(i.Text) > maxBytes {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max " + strconv.Itoa(maxBytes) + " bytes)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Document is one named text in a batch analysis.
type Document struct {
	Name string
	Text string
}

// BatchInput holds the parameters for analyzing several texts at once.
type BatchInput struct {
	Documents []Document
}

// Validate checks all fields and collects all errors.
func (i *BatchInput) Validate(maxDocs, maxBytes int) error {
	var errs []domain.FieldError

	if len(i.Documents) == 0 {
		errs = append(errs, domain.FieldError{Field: "documents", Message: "required (at least 1)"})
	} else if maxDocs > 0 && len(i.Documents) > maxDocs {
		errs = append(errs, domain.FieldError{Field: "documents", Message: "too many (max " + strconv.Itoa(maxDocs) + ")"})
	}

	for idx, doc := range i.Documents {
		if doc.Text == "" {
			errs = append(errs, domain.FieldError{
				Field:   fieldIdx("documents", idx, "text"),
				Message: "required",
			})
		} else if maxBytes > 0 && len(doc.Text) > maxBytes {
			errs = append(errs, domain.FieldError{
				Field:   fieldIdx("documents", idx, "text"),
				Message: "too long (max " + strconv.Itoa(maxBytes) + " bytes)",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fieldIdx formats a nested field path like "documents[0].text".
func fieldIdx(parent string, idx int, field string) string {
	return parent + "[" + strconv.Itoa(idx) + "]." + field
}
