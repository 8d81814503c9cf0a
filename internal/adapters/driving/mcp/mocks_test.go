package mcp

import (
	"context"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/core/ports/driving"
)

// mockAskService implements driving.AskService for testing.
type mockAskService struct {
	answer *domain.Answer
	ranked []domain.RankedTopic
	err    error
}

var _ driving.AskService = (*mockAskService)(nil)

func (m *mockAskService) Ask(_ context.Context, query string) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.answer != nil {
		return m.answer, nil
	}
	return &domain.Answer{Query: query}, nil
}

func (m *mockAskService) RankTopics(_ context.Context, _ string, _ int) ([]domain.RankedTopic, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ranked, nil
}

// mockStudyService implements driving.StudyService for testing.
type mockStudyService struct {
	topics []domain.Topic
	err    error
}

var _ driving.StudyService = (*mockStudyService)(nil)

func (m *mockStudyService) Import(_ context.Context, name, text string) (*domain.Topic, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Topic{Name: name, Raw: text}, nil
}

func (m *mockStudyService) Reimport(_ context.Context, name string) (*domain.Topic, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Topic{Name: name}, nil
}

func (m *mockStudyService) ListTopics(_ context.Context) ([]domain.Topic, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

func (m *mockStudyService) GetTopic(_ context.Context, name string) (*domain.Topic, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.topics {
		if m.topics[i].Name == name {
			return &m.topics[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStudyService) DeleteTopic(_ context.Context, _ string) error {
	return m.err
}
