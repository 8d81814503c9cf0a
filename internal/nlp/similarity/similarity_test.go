package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyInputs(t *testing.T) {
	assert.Zero(t, Score(nil, nil))
	assert.Zero(t, Score([]string{"cell"}, nil))
	assert.Zero(t, Score(nil, []string{"cell"}))
	// Sets that reduce to nothing after stopword removal score zero.
	assert.Zero(t, Score([]string{"the", "and"}, []string{"cell"}))
}

func TestScore_SelfSimilarity(t *testing.T) {
	x := []string{"nucleus", "mitochondria", "membrane", "cytoplasm"}
	score := Score(x, x)
	assert.GreaterOrEqual(t, score, 0.9)
	assert.LessOrEqual(t, score, 1.0)
}

func TestScore_SelfSimilaritySmallSets(t *testing.T) {
	// Sets too small to accrue three fuzzy pairs still saturate.
	for _, x := range [][]string{
		{"mitochondria"},
		{"cell", "division"},
	} {
		score := Score(x, x)
		assert.InDelta(t, 1.0, score, 1e-9, "set %v", x)
	}
}

func TestScore_Bounds(t *testing.T) {
	pairs := [][2][]string{
		{{"cell", "division"}, {"mitosis", "phase"}},
		{{"gravity"}, {"cooking", "recipes"}},
		{{"photosynthesis", "plants", "light"}, {"photosynthesis"}},
		{{"osmosis"}, {"water", "diffusion"}},
	}
	for _, p := range pairs {
		score := Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScore_DisjointSets(t *testing.T) {
	score := Score([]string{"gravity", "momentum"}, []string{"poetry", "rhyme"})
	assert.Less(t, score, 0.1)
}

func TestScore_SynonymExpansion(t *testing.T) {
	// "osmosis" expands to "water diffusion", so the sets overlap.
	withSynonym := Score([]string{"osmosis"}, []string{"water", "diffusion"})
	assert.Greater(t, withSynonym, 0.0)
}

func TestScore_InflectedForms(t *testing.T) {
	// Normalisation lines up plurals with singulars.
	score := Score([]string{"cells", "divide"}, []string{"cell", "dividing"})
	assert.Greater(t, score, 0.5)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cells", "cell"},
		{"Dividing", "divid"},
		{"quickly", "quick"},
		{"osmosis", "osmosis"},
		{"nucleus", "nucleus"},
		{"process", "process"},
		{"jumped", "jump"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDice(t *testing.T) {
	assert.Equal(t, 1.0, Dice("osmosis", "osmosis"))
	assert.Equal(t, 0.0, Dice("ab", "cd"))
	assert.Equal(t, 0.0, Dice("a", "abc"))

	// Close spellings score high, unrelated words low.
	assert.Greater(t, Dice("photosynthesis", "photosynthesys"), 0.7)
	assert.Less(t, Dice("gravity", "poetry"), 0.4)
}
