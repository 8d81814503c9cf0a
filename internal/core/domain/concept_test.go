package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConcept() Concept {
	return Concept{
		Term:       "Photosynthesis",
		Definition: "The process by which plants make food from light.",
		Difficulty: 2,
	}
}

func TestConceptValidate(t *testing.T) {
	t.Run("valid concept passes", func(t *testing.T) {
		require.NoError(t, validConcept().Validate())
	})

	t.Run("term too short", func(t *testing.T) {
		c := validConcept()
		c.Term = "ATP"
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("term too long", func(t *testing.T) {
		c := validConcept()
		c.Term = "A" + strings.Repeat("b", 70)
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("term must be capitalised", func(t *testing.T) {
		c := validConcept()
		c.Term = "photosynthesis"
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("term rejects markdown artifacts", func(t *testing.T) {
		c := validConcept()
		c.Term = "Photosynthesis**"
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("term rejects embedded newline", func(t *testing.T) {
		c := validConcept()
		c.Term = "Photo\nsynthesis"
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("definition too short", func(t *testing.T) {
		c := validConcept()
		c.Definition = "too short"
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("definition too long", func(t *testing.T) {
		c := validConcept()
		c.Definition = strings.Repeat("x", 1200)
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("self-referential definition rejected", func(t *testing.T) {
		c := validConcept()
		c.Definition = "Photosynthesis photosynthesis."
		assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
	})

	t.Run("hyphenated term allowed", func(t *testing.T) {
		c := validConcept()
		c.Term = "Acid-base balance"
		assert.NoError(t, c.Validate())
	})
}

func TestIsSelfReferential(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		definition string
		want       bool
	}{
		{"identical", "Mitosis", "mitosis", true},
		{"mostly term", "Mitosis", "Mitosis Mitosis!", true},
		{"real definition", "Mitosis", "The division of a cell nucleus into two identical nuclei.", false},
		{"term mentioned once in long text", "Mitosis", "Mitosis is the process of cell division in eukaryotes.", false},
		{"empty definition", "Mitosis", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSelfReferential(tt.term, tt.definition))
		})
	}
}

func TestTopicTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxRawLen+500)
	assert.Len(t, TruncateRaw(long), MaxRawLen)
	assert.Equal(t, "short", TruncateRaw("short"))

	huge := strings.Repeat("b", MaxImportLen+1)
	assert.Len(t, TruncateImport(huge), MaxImportLen)
}

func TestTopicConceptLookup(t *testing.T) {
	topic := Topic{
		Name: "Cell Biology",
		Concepts: []Concept{
			{Term: "Nucleus"},
			{Term: "Mitochondria"},
		},
	}

	require.NotNil(t, topic.Concept("nucleus"))
	assert.Equal(t, "Nucleus", topic.Concept("NUCLEUS").Term)
	assert.Nil(t, topic.Concept("ribosome"))
}

func TestMatchResult(t *testing.T) {
	assert.False(t, NoMatch().IsGoodMatch())
	assert.Nil(t, NoMatch().Topic)

	good := MatchResult{Score: 0.42, TopicName: "Cell Biology"}
	assert.True(t, good.IsGoodMatch())

	borderline := MatchResult{Score: MinMatchScore}
	assert.True(t, borderline.IsGoodMatch())
}
