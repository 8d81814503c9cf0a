package extract

import (
	"strings"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// relationshipIndex records relationship verbs observed between
// capitalised term pairs, tracked only for terms mentioned at least
// twice in the document.
type relationshipIndex struct {
	// byTerm maps a lower-cased term to its outgoing relationships.
	byTerm map[string][]domain.Relationship

	// mentions counts term occurrences across the document.
	mentions map[string]int
}

// analyzeRelationships runs the sentence-level relationship pass over
// the whole text.
func analyzeRelationships(text string) *relationshipIndex {
	idx := &relationshipIndex{
		byTerm:   make(map[string][]domain.Relationship),
		mentions: make(map[string]int),
	}

	sentences := splitSentences(text)

	// First pass: count capitalised-term mentions.
	for _, sentence := range sentences {
		for _, p := range relationPatterns {
			for _, m := range p.re.FindAllStringSubmatch(sentence, -1) {
				idx.mentions[strings.ToLower(strings.TrimSpace(m[1]))]++
				idx.mentions[strings.ToLower(strings.TrimSpace(m[2]))]++
			}
		}
	}

	// Second pass: record relationships for terms mentioned >= 2
	// times. One-off pairs are usually noise.
	seen := make(map[string]map[string]struct{})
	for _, sentence := range sentences {
		for _, p := range relationPatterns {
			for _, m := range p.re.FindAllStringSubmatch(sentence, -1) {
				source := strings.ToLower(strings.TrimSpace(m[1]))
				target := strings.TrimSpace(m[2])

				if idx.mentions[source] < 2 {
					continue
				}
				if seen[source] == nil {
					seen[source] = make(map[string]struct{})
				}
				key := p.typ + "|" + strings.ToLower(target)
				if _, dup := seen[source][key]; dup {
					continue
				}
				seen[source][key] = struct{}{}

				strength := float64(idx.mentions[source])
				if strength > 5 {
					strength = 5
				}
				idx.byTerm[source] = append(idx.byTerm[source], domain.Relationship{
					Target:   target,
					Type:     domain.RelationType(p.typ),
					Strength: strength / 5,
				})
			}
		}
	}

	return idx
}

// relationshipsFor returns the recorded relationships for a term.
func (idx *relationshipIndex) relationshipsFor(term string) []domain.Relationship {
	return idx.byTerm[strings.ToLower(term)]
}

// score is the relationship contribution for a term: the number of
// distinct relationships, normalised to [0,1] at 4+.
func (idx *relationshipIndex) score(term string) float64 {
	n := len(idx.byTerm[strings.ToLower(term)])
	if n >= 4 {
		return 1
	}
	return float64(n) / 4
}

// splitSentences splits text into sentences on common terminators.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
