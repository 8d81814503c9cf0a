package driven

import (
	"context"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// TopicStore persists topics and their extracted concepts.
// Backed by SQLite for on-disk storage.
type TopicStore interface {
	// SaveTopic stores or updates a topic. Returns
	// domain.ErrAlreadyExists if another topic already uses the name.
	SaveTopic(ctx context.Context, topic *domain.Topic) error

	// GetTopic retrieves a topic by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetTopic(ctx context.Context, id string) (*domain.Topic, error)

	// GetTopicByName retrieves a topic by its name, case-insensitively.
	// Returns domain.ErrNotFound if it does not exist.
	GetTopicByName(ctx context.Context, name string) (*domain.Topic, error)

	// ListTopics returns all stored topics.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// DeleteTopic removes a topic by ID.
	// Returns domain.ErrNotFound if it does not exist.
	DeleteTopic(ctx context.Context, id string) error

	// Close releases store resources.
	Close() error
}
