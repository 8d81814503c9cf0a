package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the resolved answer", func(t *testing.T) {
		mockAsk := &mockAskService{
			answer: &domain.Answer{
				Query: "what is the nucleus",
				Topic: &domain.Topic{Name: "Cell Biology"},
				Concept: &domain.Concept{
					Term:       "Nucleus",
					Definition: "The control center of the cell.",
				},
				TopicScore:   0.8,
				ConceptScore: 21,
			},
		}

		server, err := NewServer(&Ports{Ask: mockAsk})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Query: "what is the nucleus"})
		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "Cell Biology", output.Topic)
		assert.Equal(t, "Nucleus", output.Concept)
		assert.Equal(t, "The control center of the cell.", output.Definition)
		assert.Equal(t, 0.8, output.TopicScore)
	})

	t.Run("no match yields empty output", func(t *testing.T) {
		server, err := NewServer(&Ports{Ask: &mockAskService{}})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Query: "unrelated"})
		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Empty(t, output.Topic)
		assert.Empty(t, output.Definition)
	})

	t.Run("service errors propagate", func(t *testing.T) {
		mockAsk := &mockAskService{err: errors.New("store offline")}
		server, err := NewServer(&Ports{Ask: mockAsk})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Query: "anything"})
		assert.Error(t, err)
	})
}

func TestServer_handleExtract(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{Ask: &mockAskService{}})
	require.NoError(t, err)

	t.Run("extracts concepts from text", func(t *testing.T) {
		text := "Photosynthesis is the process by which plants convert sunlight into chemical energy."

		_, output, err := server.handleExtract(ctx, nil, ExtractInput{Text: text})
		require.NoError(t, err)
		require.NotZero(t, output.Count)
		assert.Len(t, output.Concepts, output.Count)
		assert.Equal(t, "Photosynthesis", output.Concepts[0].Term)
		assert.NotEmpty(t, output.Concepts[0].Definition)
	})

	t.Run("empty text yields no concepts", func(t *testing.T) {
		_, output, err := server.handleExtract(ctx, nil, ExtractInput{Text: "   "})
		require.NoError(t, err)
		assert.Zero(t, output.Count)
		assert.Empty(t, output.Concepts)
	})
}

func TestServer_handleTopicsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists topics as JSON", func(t *testing.T) {
		study := &mockStudyService{topics: []domain.Topic{
			{Name: "Cell Biology", Keywords: []string{"cell"}, Concepts: []domain.Concept{{Term: "Nucleus"}}},
		}}
		server, err := NewServer(&Ports{Ask: &mockAskService{}, Study: study})
		require.NoError(t, err)

		result, err := server.handleTopicsResource(ctx, readRequest(uriScheme+"topics"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Cell Biology")
	})

	t.Run("degrades without study service", func(t *testing.T) {
		server, err := NewServer(&Ports{Ask: &mockAskService{}})
		require.NoError(t, err)

		result, err := server.handleTopicsResource(ctx, readRequest(uriScheme+"topics"))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}
