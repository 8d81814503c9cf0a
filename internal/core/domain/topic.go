package domain

import (
	"strings"
	"time"
)

// Caps applied when a topic is built from an imported document.
const (
	// MaxKeywordsPerTopic caps the keyword list stored on a topic.
	MaxKeywordsPerTopic = 20

	// MaxRawLen caps the raw text persisted with a topic. Longer
	// imports are truncated before storage; extraction still sees the
	// full (import-capped) text.
	MaxRawLen = 10_000

	// MaxImportLen caps how much text extraction processes per import.
	MaxImportLen = 50_000
)

// Topic is a named corpus of raw study text plus its extracted
// keywords and concepts. A topic is created once per imported
// document and is immutable from the matching pipeline's point of
// view: the pipeline only reads it.
type Topic struct {
	// ID is the unique identifier for the topic.
	ID string `json:"id"`

	// Name is the human-readable topic name, e.g. "Cell Biology".
	Name string `json:"name"`

	// Keywords are the top extracted keywords, at most
	// MaxKeywordsPerTopic entries.
	Keywords []string `json:"keywords"`

	// Concepts are the extracted concepts sorted by importance,
	// at most MaxConceptsPerTopic entries.
	Concepts []Concept `json:"concepts"`

	// Raw is the source text, truncated to MaxRawLen.
	Raw string `json:"raw"`

	// CreatedAt is when the topic was first imported.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the topic was last re-imported.
	UpdatedAt time.Time `json:"updated_at"`
}

// TruncateRaw returns text truncated to MaxRawLen for persistence.
func TruncateRaw(text string) string {
	if len(text) <= MaxRawLen {
		return text
	}
	return text[:MaxRawLen]
}

// TruncateImport returns text truncated to MaxImportLen before
// extraction.
func TruncateImport(text string) string {
	if len(text) <= MaxImportLen {
		return text
	}
	return text[:MaxImportLen]
}

// Concept returns the concept with the given term, or nil.
// Comparison is case-insensitive.
func (t *Topic) Concept(term string) *Concept {
	for i := range t.Concepts {
		if strings.EqualFold(t.Concepts[i].Term, term) {
			return &t.Concepts[i]
		}
	}
	return nil
}
