package driving

import (
	"context"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// AskService answers free-text questions against the topic corpus.
type AskService interface {
	// Ask matches the query against stored topics and resolves the
	// concept it refers to.
	Ask(ctx context.Context, query string) (*domain.Answer, error)

	// RankTopics returns up to limit topics ranked by relevance to
	// the query.
	RankTopics(ctx context.Context, query string, limit int) ([]domain.RankedTopic, error)
}
