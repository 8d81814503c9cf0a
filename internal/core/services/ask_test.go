package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/adapters/driven/storage/memory"
	"github.com/studium-labs/studium-cli/internal/core/domain"
)

const physicsNotes = `NEWTON'S LAWS

Inertia is the tendency of an object to resist changes in its state of motion.
Gravity is the force that attracts objects with mass toward each other.`

// seedCorpus imports two topics through the real extraction pipeline.
func seedCorpus(t *testing.T, store *memory.TopicStore) {
	t.Helper()
	svc := NewStudyService(store, nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, "Cell Biology", bioNotes)
	require.NoError(t, err)
	_, err = svc.Import(ctx, "Physics", physicsNotes)
	require.NoError(t, err)
}

func TestAskServiceAsk(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTopicStore()
	seedCorpus(t, store)
	svc := NewAskService(store, nil)

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := svc.Ask(ctx, "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("question finds topic and concept", func(t *testing.T) {
		answer, err := svc.Ask(ctx, "what is the nucleus")
		require.NoError(t, err)
		require.True(t, answer.Found())
		assert.Equal(t, "Cell Biology", answer.Topic.Name)
		require.NotNil(t, answer.Concept)
		assert.Equal(t, "Nucleus", answer.Concept.Term)
		assert.NotEmpty(t, answer.Definition())
	})

	t.Run("query routes to the right subject", func(t *testing.T) {
		answer, err := svc.Ask(ctx, "explain gravity")
		require.NoError(t, err)
		require.True(t, answer.Found())
		assert.Equal(t, "Physics", answer.Topic.Name)
	})

	t.Run("unrelated query returns an empty answer", func(t *testing.T) {
		answer, err := svc.Ask(ctx, "french revolution timeline")
		require.NoError(t, err)
		assert.False(t, answer.Found())
		assert.Nil(t, answer.Concept)
		assert.Empty(t, answer.Definition())
	})
}

func TestAskServiceRankTopics(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTopicStore()
	seedCorpus(t, store)
	svc := NewAskService(store, nil)

	ranked, err := svc.RankTopics(ctx, "what is the nucleus", 5)
	require.NoError(t, err)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "Cell Biology", ranked[0].Topic.Name)
}

func TestAskServiceNilStore(t *testing.T) {
	svc := NewAskService(nil, nil)
	_, err := svc.Ask(context.Background(), "what is the nucleus")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
