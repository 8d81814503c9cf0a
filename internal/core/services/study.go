package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/core/ports/driven"
	"github.com/studium-labs/studium-cli/internal/core/ports/driving"
	"github.com/studium-labs/studium-cli/internal/logger"
	"github.com/studium-labs/studium-cli/internal/nlp/extract"
)

// Ensure StudyService implements the interface.
var _ driving.StudyService = (*StudyService)(nil)

const defaultKeywordCount = 10

// StudyService manages the topic corpus.
type StudyService struct {
	store     driven.TopicStore
	extractor *extract.Extractor
}

// NewStudyService creates a new study service.
func NewStudyService(store driven.TopicStore, extractor *extract.Extractor) *StudyService {
	if extractor == nil {
		extractor = extract.New()
	}
	return &StudyService{
		store:     store,
		extractor: extractor,
	}
}

// Import extracts concepts from text and stores the result as a topic.
// An existing topic with the same name is replaced, keeping its ID.
func (s *StudyService) Import(ctx context.Context, name, text string) (*domain.Topic, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: topic name is required", domain.ErrInvalidInput)
	}

	logger.Section("Import")
	logger.Info("Importing topic %q (%d bytes)", name, len(text))

	now := time.Now()
	topic := &domain.Topic{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Replace rather than duplicate when the name is already taken.
	existing, err := s.store.GetTopicByName(ctx, name)
	switch {
	case err == nil:
		topic.ID = existing.ID
		topic.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		// New topic.
	default:
		return nil, fmt.Errorf("looking up topic %q: %w", name, err)
	}

	s.populate(topic, text)

	if err := s.store.SaveTopic(ctx, topic); err != nil {
		return nil, fmt.Errorf("saving topic %q: %w", name, err)
	}

	logger.Info("Stored topic %q with %d concepts", name, len(topic.Concepts))
	return topic, nil
}

// Reimport re-runs extraction over a stored topic's raw text.
func (s *StudyService) Reimport(ctx context.Context, name string) (*domain.Topic, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	topic, err := s.store.GetTopicByName(ctx, name)
	if err != nil {
		return nil, err
	}

	logger.Info("Reimporting topic %q", topic.Name)
	s.populate(topic, topic.Raw)

	if err := s.store.SaveTopic(ctx, topic); err != nil {
		return nil, fmt.Errorf("saving topic %q: %w", name, err)
	}
	return topic, nil
}

// ListTopics returns all stored topics.
func (s *StudyService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.ListTopics(ctx)
}

// GetTopic retrieves a topic by name.
func (s *StudyService) GetTopic(ctx context.Context, name string) (*domain.Topic, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.GetTopicByName(ctx, name)
}

// DeleteTopic removes a topic by name.
func (s *StudyService) DeleteTopic(ctx context.Context, name string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}

	topic, err := s.store.GetTopicByName(ctx, name)
	if err != nil {
		return err
	}
	return s.store.DeleteTopic(ctx, topic.ID)
}

// populate fills a topic's extracted fields from text.
func (s *StudyService) populate(topic *domain.Topic, text string) {
	topic.Concepts = s.extractor.Extract(text)
	topic.Keywords = s.extractor.Keywords(text, defaultKeywordCount)
	topic.Raw = domain.TruncateRaw(text)
	topic.UpdatedAt = time.Now()
}
