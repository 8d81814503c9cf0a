// Package matcher scores free-text queries against the topic corpus
// and resolves the best concept within a matched topic. Topic
// matching reuses the similarity scorer plus substring boost
// heuristics; concept resolution uses its own precision-tuned scoring
// with a specificity penalty so "cells" does not resolve to "Animal
// cells".
package matcher

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/logger"
	"github.com/studium-labs/studium-cli/internal/nlp/similarity"
	"github.com/studium-labs/studium-cli/internal/nlp/token"
)

// Score adjustments applied on top of the base similarity, clamped to
// a total of 1.
const (
	nameContainBoost   = 0.3
	conceptTokenBoost  = 0.2
	keywordTokenBoost  = 0.1
	rawContentBoost    = 0.4
	residualQueryBoost = 0.3
	conceptDiceCutoff  = 0.8
	residualDiceCutoff = 0.9
)

// queryPrefixes are stripped from a query before the residual-query
// boost check: "what is osmosis" -> "osmosis".
var queryPrefixes = []string{
	"what is the", "what are the", "what is", "what are",
	"tell me about", "define", "explain", "describe",
	"how does", "how do", "why does", "why do",
}

// SignatureCache caches a topic's token signature between queries.
// Implementations must be safe for concurrent use.
type SignatureCache interface {
	// Get returns the cached signature for key, if present.
	Get(key string) ([]string, bool)

	// Add stores a signature under key.
	Add(key string, tokens []string)
}

// TopicMatcher finds the best-matching topic for a query.
type TopicMatcher struct {
	cache SignatureCache
}

// Option configures the matcher.
type Option func(*TopicMatcher)

// WithSignatureCache injects a cache for topic token signatures.
// Without one, signatures are rebuilt per query.
func WithSignatureCache(cache SignatureCache) Option {
	return func(m *TopicMatcher) {
		m.cache = cache
	}
}

// New creates a topic matcher.
func New(opts ...Option) *TopicMatcher {
	m := &TopicMatcher{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindBestMatch scores query against every topic and returns the
// winner. Ties keep the first-seen topic. An empty query, an empty
// corpus, or a query that tokenises to nothing yields the null
// sentinel.
func (m *TopicMatcher) FindBestMatch(query string, topics []domain.Topic) domain.MatchResult {
	ranked := m.rank(query, topics)
	if len(ranked) == 0 {
		return domain.NoMatch()
	}

	best := ranked[0]
	logger.Info("Best topic: %q (%.3f)", best.Topic.Name, best.Score)
	return domain.MatchResult{
		Topic:     best.Topic,
		Score:     best.Score,
		TopicName: best.Topic.Name,
	}
}

// RankedTopics returns up to limit topics ordered by descending
// adjusted score.
func (m *TopicMatcher) RankedTopics(query string, topics []domain.Topic, limit int) []domain.RankedTopic {
	ranked := m.rank(query, topics)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// rank computes adjusted scores for all topics, sorted descending
// with stable first-seen tie-break.
func (m *TopicMatcher) rank(query string, topics []domain.Topic) []domain.RankedTopic {
	query = strings.TrimSpace(query)
	if query == "" || len(topics) == 0 {
		return nil
	}

	queryTokens := token.Tokenize(query, token.DefaultOptions())
	if len(queryTokens) == 0 {
		logger.Debug("Query tokenised to nothing: %q", query)
		return nil
	}

	logger.Section("Topic Matching")
	logger.Debug("Query tokens: %v", queryTokens)

	ranked := make([]domain.RankedTopic, 0, len(topics))
	for i := range topics {
		topic := &topics[i]
		signature := m.signature(topic)
		score := similarity.Score(queryTokens, signature)
		score = m.adjust(score, query, queryTokens, topic)

		logger.Debug("Topic %q: %.3f", topic.Name, score)
		ranked = append(ranked, domain.RankedTopic{Topic: topic, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// signature builds (or fetches) the topic's token signature: its
// tokenised name, keywords, and concept terms.
func (m *TopicMatcher) signature(topic *domain.Topic) []string {
	key := signatureKey(topic)
	if m.cache != nil {
		if sig, ok := m.cache.Get(key); ok {
			return sig
		}
	}

	sig := token.Tokenize(topic.Name, token.DefaultOptions())
	for _, kw := range topic.Keywords {
		sig = append(sig, strings.ToLower(kw))
	}
	for i := range topic.Concepts {
		sig = append(sig, token.Tokenize(topic.Concepts[i].Term, token.DefaultOptions())...)
	}

	if m.cache != nil {
		m.cache.Add(key, sig)
	}
	return sig
}

// signatureKey derives a cache key from the signature's inputs, so a
// changed keyword or concept list invalidates the entry naturally.
func signatureKey(topic *domain.Topic) string {
	h := fnv.New64a()
	h.Write([]byte(topic.Name))
	for _, kw := range topic.Keywords {
		h.Write([]byte{0})
		h.Write([]byte(kw))
	}
	for i := range topic.Concepts {
		h.Write([]byte{1})
		h.Write([]byte(topic.Concepts[i].Term))
	}
	return fmt.Sprintf("%s:%x", topic.ID, h.Sum64())
}

// adjust applies the boost heuristics on top of the base similarity.
// Each boost is additive; the total is clamped to 1.
func (m *TopicMatcher) adjust(score float64, query string, queryTokens []string, topic *domain.Topic) float64 {
	queryLower := strings.ToLower(query)
	nameLower := strings.ToLower(topic.Name)

	// Exact substring relationship between query and topic name.
	if strings.Contains(queryLower, nameLower) || strings.Contains(nameLower, queryLower) {
		score += nameContainBoost
	}

	// A concept term lining up with a query token.
	if matchesAnyTerm(queryTokens, conceptTerms(topic), conceptDiceCutoff) {
		score += conceptTokenBoost
	}

	// A keyword lining up with a query token.
	if matchesAnyTerm(queryTokens, topic.Keywords, conceptDiceCutoff) {
		score += keywordTokenBoost
	}

	// A normalised query token appearing in the stored raw text. This
	// is the dominant signal for concept-specific queries.
	rawLower := strings.ToLower(topic.Raw)
	for _, qt := range queryTokens {
		if norm := similarity.Normalize(qt); norm != "" && strings.Contains(rawLower, norm) {
			score += rawContentBoost
			break
		}
	}

	// Residual query ("what is osmosis" -> "osmosis") against concept
	// terms.
	if residual := StripQueryPrefix(queryLower); residual != "" {
		for _, term := range conceptTerms(topic) {
			termLower := strings.ToLower(term)
			if strings.Contains(residual, termLower) || strings.Contains(termLower, residual) ||
				similarity.Dice(residual, termLower) > residualDiceCutoff {
				score += residualQueryBoost
				break
			}
		}
	}

	if score > 1 {
		return 1
	}
	return score
}

// StripQueryPrefix removes a leading question phrase from a
// lower-cased query, returning the trimmed residual.
func StripQueryPrefix(queryLower string) string {
	for _, prefix := range queryPrefixes {
		if strings.HasPrefix(queryLower, prefix+" ") {
			return strings.TrimSpace(strings.TrimPrefix(queryLower, prefix+" "))
		}
	}
	return strings.TrimSpace(queryLower)
}

// conceptTerms lists the topic's concept terms.
func conceptTerms(topic *domain.Topic) []string {
	terms := make([]string, len(topic.Concepts))
	for i := range topic.Concepts {
		terms[i] = topic.Concepts[i].Term
	}
	return terms
}

// matchesAnyTerm reports whether any term exact-normalises to a query
// token or fuzzy-matches one above the dice cutoff.
func matchesAnyTerm(queryTokens []string, terms []string, cutoff float64) bool {
	for _, term := range terms {
		termNorm := similarity.Normalize(term)
		for _, qt := range queryTokens {
			qtNorm := similarity.Normalize(qt)
			if termNorm == qtNorm {
				return true
			}
			if similarity.Dice(termNorm, qtNorm) > cutoff {
				return true
			}
		}
	}
	return false
}
