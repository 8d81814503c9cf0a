package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/core/ports/driven"
	"github.com/studium-labs/studium-cli/internal/core/ports/driving"
	"github.com/studium-labs/studium-cli/internal/logger"
	"github.com/studium-labs/studium-cli/internal/nlp/matcher"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService answers questions against the topic corpus.
type AskService struct {
	store    driven.TopicStore
	matcher  *matcher.TopicMatcher
	resolver *matcher.ConceptResolver
}

// NewAskService creates a new ask service. The cache may be nil, in
// which case topic signatures are rebuilt per query.
func NewAskService(store driven.TopicStore, cache matcher.SignatureCache) *AskService {
	var opts []matcher.Option
	if cache != nil {
		opts = append(opts, matcher.WithSignatureCache(cache))
	}
	return &AskService{
		store:    store,
		matcher:  matcher.New(opts...),
		resolver: matcher.NewResolver(),
	}
}

// Ask matches the query against stored topics and resolves the
// concept it refers to. A query that matches nothing still returns an
// Answer; check Answer.Found.
func (s *AskService) Ask(ctx context.Context, query string) (*domain.Answer, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}

	topics, err := s.store.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading topics: %w", err)
	}

	answer := &domain.Answer{Query: query}

	result := s.matcher.FindBestMatch(query, topics)
	if result.Topic == nil || !result.IsGoodMatch() {
		logger.Info("No topic matched %q", query)
		return answer, nil
	}
	answer.Topic = result.Topic
	answer.TopicScore = result.Score

	if match := s.resolver.Resolve(query, result.Topic.Concepts); match.Concept != nil {
		answer.Concept = match.Concept
		answer.ConceptScore = match.Score
	}
	return answer, nil
}

// RankTopics returns up to limit topics ranked by relevance.
func (s *AskService) RankTopics(ctx context.Context, query string, limit int) ([]domain.RankedTopic, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	topics, err := s.store.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading topics: %w", err)
	}
	return s.matcher.RankedTopics(query, topics, limit), nil
}
