package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/logger"
	"github.com/studium-labs/studium-cli/internal/nlp/token"
)

// Concept resolution scoring.
const (
	exactMatchScore     = 15.0
	substringMatchScore = 10.0
	sharedWordWeight    = 5.0
	orderedContainBonus = 3.0
	pluralVariantScore  = 9.0
	wordExactBonus      = 3.0
	wordSubstringBonus  = 1.0
	wordPluralBonus     = 2.0
	lengthProximityMax  = 3.0
	specificityPenalty  = 5.0
	resolveThreshold    = 2.0
)

// ResolverRule adjusts a concept's score when the query hits its
// trigger, keeping subject-specific tuning out of the scoring code.
type ResolverRule struct {
	// Query that activates the rule, lower-cased.
	Query string

	// Terms mapping affected concept terms (lower-cased) to the
	// adjustment applied to their score.
	Terms map[string]float64
}

// DefaultResolverRules covers the general/specific split for cell
// biology material, where "cells" must beat "Animal cells" and
// "Plant cells".
func DefaultResolverRules() []ResolverRule {
	return []ResolverRule{
		{
			Query: "cells",
			Terms: map[string]float64{
				"cells":        20,
				"cell":         20,
				"animal cells": -15,
				"plant cells":  -15,
			},
		},
	}
}

// ConceptResolver picks the concept a query is asking about.
type ConceptResolver struct {
	rules []ResolverRule
}

// ResolverOption configures the resolver.
type ResolverOption func(*ConceptResolver)

// WithResolverRules replaces the default adjustment rules.
func WithResolverRules(rules []ResolverRule) ResolverOption {
	return func(r *ConceptResolver) {
		r.rules = rules
	}
}

// NewResolver creates a concept resolver with the default rules.
func NewResolver(opts ...ResolverOption) *ConceptResolver {
	r := &ConceptResolver{rules: DefaultResolverRules()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve scores every concept against the query and returns the
// best, or a zero ConceptMatch when nothing clears the activation
// threshold. Ties keep the first-seen concept.
func (r *ConceptResolver) Resolve(query string, concepts []domain.Concept) domain.ConceptMatch {
	query = strings.TrimSpace(query)
	if query == "" || len(concepts) == 0 {
		return domain.ConceptMatch{}
	}

	queryLower := strings.ToLower(StripQueryPrefix(strings.ToLower(query)))
	if queryLower == "" {
		return domain.ConceptMatch{}
	}

	logger.Section("Concept Resolution")
	logger.Debug("Resolving: %q", queryLower)

	type scored struct {
		concept *domain.Concept
		score   float64
	}
	ranked := make([]scored, 0, len(concepts))
	for i := range concepts {
		concept := &concepts[i]
		score := r.score(queryLower, concept)
		logger.Debug("Concept %q: %.1f", concept.Term, score)
		ranked = append(ranked, scored{concept: concept, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	best := ranked[0]
	if best.score <= resolveThreshold {
		logger.Debug("No concept above threshold (best %.1f)", best.score)
		return domain.ConceptMatch{}
	}
	logger.Info("Resolved concept: %q (%.1f)", best.concept.Term, best.score)
	return domain.ConceptMatch{Concept: best.concept, Score: best.score}
}

// score rates how well a single concept term answers the query.
func (r *ConceptResolver) score(queryLower string, concept *domain.Concept) float64 {
	termLower := strings.ToLower(strings.TrimSpace(concept.Term))
	if termLower == "" {
		return 0
	}

	var score float64
	switch {
	case termLower == queryLower:
		score = exactMatchScore
	case strings.Contains(termLower, queryLower) || strings.Contains(queryLower, termLower):
		score = substringMatchScore
	}

	queryWords := significantWords(queryLower)
	termWords := significantWords(termLower)

	// Shared significant words, scaled by coverage of the query.
	if score < exactMatchScore && len(queryWords) > 0 {
		shared := sharedCount(queryWords, termWords)
		if shared > 0 {
			fraction := float64(shared) / float64(len(queryWords))
			score += fraction * sharedWordWeight
			if len(termWords) >= len(queryWords) && strings.Contains(termLower, queryLower) {
				score += orderedContainBonus
			}
		}
	}

	// Singular/plural variants of the same term rate nearly as high
	// as an exact match.
	if score < pluralVariantScore && stripPlural(termLower) == stripPlural(queryLower) {
		score = pluralVariantScore
	}

	// Per-word pairwise bonuses.
	for _, qw := range queryWords {
		for _, tw := range termWords {
			switch {
			case qw == tw:
				score += wordExactBonus
			case stripPlural(qw) == stripPlural(tw):
				score += wordPluralBonus
			case strings.Contains(tw, qw) || strings.Contains(qw, tw):
				score += wordSubstringBonus
			}
		}
	}

	// Prefer terms close in length to the query. Only sweetens an
	// existing match, so proximity alone never clears the threshold.
	if score > 0 {
		diff := math.Abs(float64(len(termLower) - len(queryLower)))
		score += math.Max(0, lengthProximityMax-diff/10)
	}

	// A one-word query should resolve to the general concept, not a
	// more specific multi-word one that happens to contain it.
	if len(queryWords) == 1 && len(termWords) > 1 && containsWord(termWords, queryWords[0]) {
		score -= specificityPenalty
	}

	// Subject-specific adjustments.
	for _, rule := range r.rules {
		if rule.Query != queryLower {
			continue
		}
		if adj, ok := rule.Terms[termLower]; ok {
			score += adj
		}
	}

	return score
}

// significantWords splits text into non-stopword words.
func significantWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?'\"")
		if f == "" || token.IsStopword(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}

// sharedCount counts query words that also appear among term words.
func sharedCount(queryWords, termWords []string) int {
	var n int
	for _, qw := range queryWords {
		if containsWord(termWords, qw) {
			n++
		}
	}
	return n
}

func containsWord(words []string, w string) bool {
	for _, cand := range words {
		if cand == w {
			return true
		}
	}
	return false
}

// stripPlural reduces a word to a crude singular form for variant
// comparison.
func stripPlural(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && len(w) > 4 &&
		(strings.HasSuffix(w, "ses") || strings.HasSuffix(w, "xes") || strings.HasSuffix(w, "ches") || strings.HasSuffix(w, "shes")):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is") && len(w) > 3:
		return w[:len(w)-1]
	}
	return w
}
