package domain

import (
	"regexp"
	"strings"
)

// Term and definition bounds enforced by Concept.Validate.
// Extraction drops candidates outside these limits rather than
// returning an error.
const (
	MinTermLen       = 4
	MaxTermLen       = 59
	MinDefinitionLen = 11
	MaxDefinitionLen = 999
)

// MaxConceptsPerTopic caps how many concepts a single extraction
// returns. Lower-importance concepts beyond the cap are dropped.
const MaxConceptsPerTopic = 50

// termPattern is the character set a valid term must match:
// capitalised first letter, then letters, digits, spaces, hyphens.
var termPattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9\s-]*$`)

// RelationType categorises how one concept relates to another.
type RelationType string

// Relationship types detected by the relationship analysis pass.
const (
	RelationCauses    RelationType = "causes"
	RelationDependsOn RelationType = "depends_on"
	RelationPartOf    RelationType = "part_of"
	RelationTypeOf    RelationType = "type_of"
	RelationProduces  RelationType = "produces"
)

// Relationship links a concept to another concept mentioned in the
// same source text.
type Relationship struct {
	// Target is the term of the related concept.
	Target string `json:"target"`

	// Type describes the relationship direction and kind.
	Type RelationType `json:"type"`

	// Strength is how often the relationship was observed, normalised
	// to [0,1].
	Strength float64 `json:"strength"`
}

// Concept is an extracted (term, definition) pair with heuristic
// ranking metadata. Concepts are created in batch by the extractor
// from one text blob and never mutated afterwards.
type Concept struct {
	// Term is the concept name, e.g. "Photosynthesis".
	Term string `json:"term"`

	// Definition is the explanatory text extracted alongside the term.
	Definition string `json:"definition"`

	// Difficulty is a 1..5 estimate derived from definition complexity.
	Difficulty int `json:"difficulty"`

	// Importance is the composite ranking score. Higher sorts first.
	Importance float64 `json:"importance"`

	// Domain is the detected subject area ("biology", "chemistry", ...).
	Domain string `json:"domain,omitempty"`

	// HierarchyLevel places the concept in the document's structure:
	// higher values mean more fundamental concepts.
	HierarchyLevel int `json:"hierarchy_level,omitempty"`

	// Relationships are links to other concepts in the same document.
	Relationships []Relationship `json:"relationships,omitempty"`
}

// Validate reports whether the concept satisfies the structural
// invariants: term length in (3,60) and matching the term character
// set, definition length in (10,1000), no embedded newlines, and the
// definition not being a near-verbatim repeat of the term.
func (c Concept) Validate() error {
	if len(c.Term) < MinTermLen || len(c.Term) > MaxTermLen {
		return ErrInvalidInput
	}
	if !termPattern.MatchString(c.Term) {
		return ErrInvalidInput
	}
	if strings.ContainsAny(c.Term, "\n\r") {
		return ErrInvalidInput
	}
	if len(c.Definition) < MinDefinitionLen || len(c.Definition) > MaxDefinitionLen {
		return ErrInvalidInput
	}
	if IsSelfReferential(c.Term, c.Definition) {
		return ErrInvalidInput
	}
	return nil
}

// IsSelfReferential reports whether a definition is mostly just the
// term repeated. Such definitions carry no information and are
// rejected during extraction.
func IsSelfReferential(term, definition string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	d := strings.ToLower(strings.TrimSpace(definition))
	if t == "" || d == "" {
		return false
	}
	if d == t {
		return true
	}

	// Count how much of the definition is the term itself.
	occurrences := strings.Count(d, t)
	if occurrences == 0 {
		return false
	}
	covered := float64(occurrences*len(t)) / float64(len(d))
	return covered > 0.9
}
