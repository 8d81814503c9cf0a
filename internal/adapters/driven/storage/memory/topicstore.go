// Package memory provides in-memory implementations of driven ports,
// used in tests and as a fallback when on-disk storage is disabled.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/core/ports/driven"
)

// Ensure TopicStore implements the interface.
var _ driven.TopicStore = (*TopicStore)(nil)

// TopicStore is an in-memory implementation of driven.TopicStore.
type TopicStore struct {
	mu     sync.RWMutex
	topics map[string]domain.Topic
}

// NewTopicStore creates a new in-memory topic store.
func NewTopicStore() *TopicStore {
	return &TopicStore{
		topics: make(map[string]domain.Topic),
	}
}

// SaveTopic stores or updates a topic. Names are unique across
// topics, case-insensitively, matching the SQLite store's index.
func (s *TopicStore) SaveTopic(_ context.Context, topic *domain.Topic) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.topics {
		if id != topic.ID && strings.EqualFold(existing.Name, topic.Name) {
			return fmt.Errorf("topic %q: %w", topic.Name, domain.ErrAlreadyExists)
		}
	}
	s.topics[topic.ID] = *topic
	return nil
}

// GetTopic retrieves a topic by ID.
func (s *TopicStore) GetTopic(_ context.Context, id string) (*domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	topic, ok := s.topics[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &topic, nil
}

// GetTopicByName retrieves a topic by name, case-insensitively.
func (s *TopicStore) GetTopicByName(_ context.Context, name string) (*domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, topic := range s.topics {
		if strings.EqualFold(topic.Name, name) {
			t := topic
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListTopics returns all stored topics, ordered by name.
func (s *TopicStore) ListTopics(_ context.Context) ([]domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	topics := make([]domain.Topic, 0, len(s.topics))
	for _, topic := range s.topics {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name < topics[j].Name
	})
	return topics, nil
}

// DeleteTopic removes a topic by ID.
func (s *TopicStore) DeleteTopic(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.topics[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.topics, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *TopicStore) Close() error {
	return nil
}
