package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

func TestTopicStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		store := NewTopicStore()
		topic := &domain.Topic{ID: "topic-1", Name: "Cell Biology"}
		require.NoError(t, store.SaveTopic(ctx, topic))

		got, err := store.GetTopic(ctx, "topic-1")
		require.NoError(t, err)
		assert.Equal(t, "Cell Biology", got.Name)
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		store := NewTopicStore()
		_, err := store.GetTopic(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("get by name is case-insensitive", func(t *testing.T) {
		store := NewTopicStore()
		require.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "topic-1", Name: "Cell Biology"}))

		got, err := store.GetTopicByName(ctx, "cell biology")
		require.NoError(t, err)
		assert.Equal(t, "topic-1", got.ID)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		store := NewTopicStore()
		require.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "b", Name: "Physics"}))
		require.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "a", Name: "Cell Biology"}))

		topics, err := store.ListTopics(ctx)
		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, "Cell Biology", topics[0].Name)
	})

	t.Run("conflicting name rejected", func(t *testing.T) {
		store := NewTopicStore()
		require.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "topic-1", Name: "Cell Biology"}))

		err := store.SaveTopic(ctx, &domain.Topic{ID: "topic-2", Name: "cell biology"})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		// Re-saving under the same ID is an update, not a conflict.
		assert.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "topic-1", Name: "Cell Biology"}))
	})

	t.Run("delete", func(t *testing.T) {
		store := NewTopicStore()
		require.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "topic-1", Name: "Cell Biology"}))

		require.NoError(t, store.DeleteTopic(ctx, "topic-1"))
		assert.ErrorIs(t, store.DeleteTopic(ctx, "topic-1"), domain.ErrNotFound)
	})

	t.Run("returned topic is a copy", func(t *testing.T) {
		store := NewTopicStore()
		require.NoError(t, store.SaveTopic(ctx, &domain.Topic{ID: "topic-1", Name: "Cell Biology"}))

		got, err := store.GetTopic(ctx, "topic-1")
		require.NoError(t, err)
		got.Name = "mutated"

		again, err := store.GetTopic(ctx, "topic-1")
		require.NoError(t, err)
		assert.Equal(t, "Cell Biology", again.Name)
	})
}
