package driving

import (
	"context"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// StudyService manages the topic corpus: importing notes, extracting
// concepts, and maintaining stored topics.
type StudyService interface {
	// Import extracts concepts from text and stores the result as a
	// topic named name. An existing topic with the same name is
	// replaced.
	Import(ctx context.Context, name, text string) (*domain.Topic, error)

	// Reimport re-runs extraction over a stored topic's raw text,
	// refreshing its concepts and keywords.
	Reimport(ctx context.Context, name string) (*domain.Topic, error)

	// ListTopics returns all stored topics.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// GetTopic retrieves a topic by name.
	GetTopic(ctx context.Context, name string) (*domain.Topic, error)

	// DeleteTopic removes a topic by name.
	DeleteTopic(ctx context.Context, name string) error
}
