// Package similarity computes a normalised [0,1] similarity score
// between two token sets. The score blends Jaccard overlap,
// importance-weighted overlap and a fuzzy bigram Dice bonus, with a
// synonym-expansion step so "osmosis" lines up with "water
// diffusion".
package similarity

import (
	"strings"

	"github.com/studium-labs/studium-cli/internal/nlp/token"
)

// Blend weights and fuzzy-match tuning. The fuzzy bonus accumulates
// dice*0.1 per matching pair and saturates at fuzzyCap, so an
// identical pair of sets scores 1.0.
const (
	jaccardWeight  = 0.3
	overlapWeight  = 0.4
	fuzzyPairBonus = 0.1
	fuzzyThreshold = 0.6
	fuzzyCap       = 0.3
	minFuzzyLen    = 4
)

// importantTerms get triple weight in the weighted-overlap component.
var importantTerms = map[string]struct{}{
	"cell": {}, "dna": {}, "rna": {}, "atp": {}, "gene": {},
	"nucleus": {}, "enzyme": {}, "protein": {}, "molecule": {},
	"atom": {}, "electron": {}, "energy": {}, "force": {},
	"gravity": {}, "acid": {}, "base": {}, "photosynthesis": {},
	"mitosis": {}, "meiosis": {}, "osmosis": {}, "diffusion": {},
	"evolution": {}, "equation": {}, "theorem": {}, "derivative": {},
}

// synonyms expands a token into related phrases. Phrases are
// re-tokenised and merged into the set before scoring.
var synonyms = map[string][]string{
	"osmosis":        {"water diffusion", "osmotic movement"},
	"photosynthesis": {"light synthesis", "plant food production"},
	"mitosis":        {"cell division"},
	"nucleus":        {"control center"},
	"atp":            {"energy currency"},
	"gravity":        {"gravitational force"},
	"speed":          {"velocity"},
	"velocity":       {"speed"},
}

// Score computes the similarity between two token lists, returning a
// value in [0,1]. Either input being empty yields 0.
func Score(a, b []string) float64 {
	setA := preprocess(a)
	setB := preprocess(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	jaccard := jaccardScore(setA, setB)
	weighted := weightedOverlap(setA, setB)
	fuzzy := fuzzyBonus(setA, setB)

	score := jaccardWeight*jaccard + overlapWeight*weighted + fuzzy
	if score > 1 {
		return 1
	}
	return score
}

// Normalize strips common suffixes (plural s, -ing, -ed, -ly) from a
// lower-cased token so inflected forms compare equal.
func Normalize(tok string) string {
	tok = strings.ToLower(tok)
	for _, suffix := range []string{"ing", "ed", "ly", "s"} {
		if strings.HasSuffix(tok, suffix) && len(tok)-len(suffix) >= 3 {
			// Latin/Greek endings are not plurals: osmosis, nucleus,
			// process.
			if suffix == "s" && (strings.HasSuffix(tok, "ss") ||
				strings.HasSuffix(tok, "is") || strings.HasSuffix(tok, "us")) {
				continue
			}
			return tok[:len(tok)-len(suffix)]
		}
	}
	return tok
}

// preprocess drops stopwords, normalises each token, and merges in
// synonym expansions.
func preprocess(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		lower := strings.ToLower(strings.TrimSpace(t))
		if lower == "" || token.IsStopword(lower) {
			continue
		}
		set[Normalize(lower)] = struct{}{}

		for _, phrase := range synonyms[lower] {
			for _, syn := range strings.Fields(phrase) {
				set[Normalize(syn)] = struct{}{}
			}
		}
	}
	return set
}

// jaccardScore is |intersection| / |union|.
func jaccardScore(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// weightedOverlap iterates set a, weighting important scientific
// terms triple, and returns matched weight over total weight.
func weightedOverlap(a, b map[string]struct{}) float64 {
	var total, matched float64
	for t := range a {
		weight := 1.0
		if _, ok := importantTerms[t]; ok {
			weight = 3.0
		}
		total += weight
		if _, ok := b[t]; ok {
			matched += weight
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

// fuzzyBonus sums dice*0.1 for every cross-set pair of tokens longer
// than three characters whose bigram Dice coefficient exceeds the
// threshold, capped at fuzzyCap. Identical sets score the full cap,
// so self-similarity saturates at 1.0 regardless of set size.
func fuzzyBonus(a, b map[string]struct{}) float64 {
	if setsEqual(a, b) {
		return fuzzyCap
	}

	var bonus float64
	for ta := range a {
		if len(ta) < minFuzzyLen {
			continue
		}
		for tb := range b {
			if len(tb) < minFuzzyLen {
				continue
			}
			if d := Dice(ta, tb); d > fuzzyThreshold {
				bonus += d * fuzzyPairBonus
				if bonus >= fuzzyCap {
					return fuzzyCap
				}
			}
		}
	}
	return bonus
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for t := range a {
		if _, ok := b[t]; !ok {
			return false
		}
	}
	return true
}

// Dice computes the bigram Dice coefficient between two strings:
// 2*|shared bigrams| / (|bigramsA| + |bigramsB|). Equal strings
// score 1, disjoint strings 0.
func Dice(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)

	var shared int
	for bg, countA := range bigramsA {
		if countB, ok := bigramsB[bg]; ok {
			shared += min(countA, countB)
		}
	}

	totalA := len(a) - 1
	totalB := len(b) - 1
	return 2 * float64(shared) / float64(totalA+totalB)
}

func bigrams(s string) map[string]int {
	out := make(map[string]int, len(s))
	for i := 0; i+2 <= len(s); i++ {
		out[s[i:i+2]]++
	}
	return out
}
