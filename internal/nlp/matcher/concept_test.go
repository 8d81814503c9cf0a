package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

func cellConcepts() []domain.Concept {
	return []domain.Concept{
		{Term: "Cells", Definition: "The basic building blocks of all living organisms."},
		{Term: "Animal cells", Definition: "Cells that lack a cell wall and chloroplasts."},
		{Term: "Plant cells", Definition: "Cells with a rigid cell wall and chloroplasts."},
		{Term: "Nucleus", Definition: "The control center of the cell containing DNA."},
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver()

	t.Run("empty query resolves nothing", func(t *testing.T) {
		match := r.Resolve("", cellConcepts())
		assert.Nil(t, match.Concept)
	})

	t.Run("empty concept list resolves nothing", func(t *testing.T) {
		match := r.Resolve("nucleus", nil)
		assert.Nil(t, match.Concept)
	})

	t.Run("exact term wins", func(t *testing.T) {
		match := r.Resolve("nucleus", cellConcepts())
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Nucleus", match.Concept.Term)
	})

	t.Run("question prefix is stripped", func(t *testing.T) {
		match := r.Resolve("what is the nucleus", cellConcepts())
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Nucleus", match.Concept.Term)
	})

	t.Run("general term beats specific variants", func(t *testing.T) {
		match := r.Resolve("cells", cellConcepts())
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Cells", match.Concept.Term)
	})

	t.Run("specific variant still reachable by full name", func(t *testing.T) {
		match := r.Resolve("animal cells", cellConcepts())
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Animal cells", match.Concept.Term)
	})

	t.Run("singular query matches plural term", func(t *testing.T) {
		match := r.Resolve("cell", cellConcepts())
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Cells", match.Concept.Term)
	})

	t.Run("unrelated query resolves nothing", func(t *testing.T) {
		match := r.Resolve("quantum entanglement", cellConcepts())
		assert.Nil(t, match.Concept)
	})

	t.Run("multi-word term matches on shared words", func(t *testing.T) {
		concepts := []domain.Concept{
			{Term: "Cell theory", Definition: "The theory that all living things are made of cells."},
			{Term: "Photosynthesis", Definition: "The process plants use to convert light into energy."},
		}

		match := r.Resolve("explain cell theory", concepts)
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Cell theory", match.Concept.Term)
	})
}

func TestResolverRules(t *testing.T) {
	t.Run("custom rules replace the defaults", func(t *testing.T) {
		r := NewResolver(WithResolverRules([]ResolverRule{
			{Query: "bonds", Terms: map[string]float64{
				"ionic bonds":    -15,
				"chemical bonds": 20,
			}},
		}))
		concepts := []domain.Concept{
			{Term: "Ionic bonds", Definition: "Bonds formed by the transfer of electrons between atoms."},
			{Term: "Chemical bonds", Definition: "Attractive forces that hold atoms together in compounds."},
		}

		match := r.Resolve("bonds", concepts)
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Chemical bonds", match.Concept.Term)
	})

	t.Run("rules only fire on their trigger query", func(t *testing.T) {
		r := NewResolver()
		match := r.Resolve("plant cells", cellConcepts())
		require.NotNil(t, match.Concept)
		assert.Equal(t, "Plant cells", match.Concept.Term)
	})
}

func TestStripPlural(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"cells", "cell"},
		{"studies", "study"},
		{"boxes", "box"},
		{"processes", "process"},
		{"osmosis", "osmosis"},
		{"nucleus", "nucleus"},
		{"glass", "glass"},
		{"cell", "cell"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, stripPlural(tt.word))
		})
	}
}
