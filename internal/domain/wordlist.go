package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordListKind distinguishes the two user-managed word lists.
type WordListKind string

const (
	// WordListKindKnown holds the reader's known vocabulary.
	WordListKindKnown WordListKind = "known"
	// WordListKindExcluded holds compounds that must never be classified as
	// known, even when every one of their characters is.
	WordListKindExcluded WordListKind = "excluded"
)

func (k WordListKind) String() string { return string(k) }

func (k WordListKind) IsValid() bool {
	switch k {
	case WordListKindKnown, WordListKindExcluded:
		return true
	}
	return false
}

// WordListEntry is one persisted word on a word list.
type WordListEntry struct {
	ID        uuid.UUID    `db:"id"`
	Kind      WordListKind `db:"kind"`
	Word      string       `db:"word"`
	CreatedAt time.Time    `db:"created_at"`
}
