package domain

// Answer is the result of asking a question against the topic corpus.
type Answer struct {
	// Query is the original question.
	Query string `json:"query"`

	// Topic is the best-matching topic, nil when nothing matched.
	Topic *Topic `json:"topic,omitempty"`

	// TopicScore is the topic match score in [0,1].
	TopicScore float64 `json:"topic_score"`

	// Concept is the resolved concept within the topic, nil when the
	// query did not point at a specific concept.
	Concept *Concept `json:"concept,omitempty"`

	// ConceptScore is the concept resolution score.
	ConceptScore float64 `json:"concept_score"`
}

// Found reports whether the answer carries a usable topic match.
func (a *Answer) Found() bool {
	return a.Topic != nil && a.TopicScore >= MinMatchScore
}

// Definition returns the resolved concept's definition, or empty when
// no concept was resolved.
func (a *Answer) Definition() string {
	if a.Concept == nil {
		return ""
	}
	return a.Concept.Definition
}
