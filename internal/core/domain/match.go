package domain

// MinMatchScore is the threshold below which a topic match is
// considered too weak to act on.
const MinMatchScore = 0.1

// MatchResult is the outcome of scoring a query against the topic
// corpus. Produced fresh per query, never stored.
type MatchResult struct {
	// Topic is the best-matching topic, or nil when nothing matched.
	Topic *Topic

	// Score is the match confidence in [0,1].
	Score float64

	// TopicName is the name of the matched topic, or empty.
	TopicName string
}

// NoMatch is the null sentinel returned for empty queries, empty
// corpora, or queries that tokenize to nothing.
func NoMatch() MatchResult {
	return MatchResult{Topic: nil, Score: 0, TopicName: ""}
}

// IsGoodMatch reports whether the result clears the minimum
// acceptable score.
func (m MatchResult) IsGoodMatch() bool {
	return m.Score >= MinMatchScore
}

// RankedTopic pairs a topic with its adjusted match score, used for
// ranked topic lists.
type RankedTopic struct {
	// Topic is the scored topic.
	Topic *Topic

	// Score is the adjusted match score in [0,1].
	Score float64
}

// ConceptMatch pairs a concept with its resolver score. Unlike topic
// scores, resolver scores are unbounded ranks, not probabilities.
type ConceptMatch struct {
	// Concept is the matched concept, or nil when nothing cleared the
	// activation threshold.
	Concept *Concept

	// Score is the resolver rank. Higher is better.
	Score float64
}
