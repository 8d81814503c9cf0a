package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/studium-labs/studium-cli/internal/nlp/token"
)

// Keyword scoring bonuses and penalties.
const (
	keywordTechnicalBonus   = 3.0
	keywordCapitalisedBonus = 2.0
	keywordDomainBonus      = 4.0
	keywordCommonPenalty    = 5.0
)

// commonNearStopwords are frequent study-text words that crowd out
// real keywords.
var commonNearStopwords = map[string]struct{}{
	"also": {}, "very": {}, "much": {}, "many": {}, "most": {},
	"make": {}, "made": {}, "used": {}, "using": {}, "called": {},
	"known": {}, "often": {}, "usually": {}, "example": {},
	"different": {}, "important": {}, "within": {}, "between": {},
	"through": {}, "because": {}, "however": {}, "therefore": {},
}

var containsDigitOrSymbol = regexp.MustCompile(`[\d°/]`)

// capitalisedWord finds capitalised occurrences in the original text
// so keyword scoring can reward proper-noun-like terms.
var capitalisedWord = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

// Keywords extracts the top-n scoring keywords from text. Scoring is
// frequency plus shape bonuses (technical-looking, capitalised,
// domain term) minus a penalty for common near-stopwords. Empty or
// unusable input yields an empty slice.
func (e *Extractor) Keywords(text string, n int) []string {
	if strings.TrimSpace(text) == "" || n <= 0 {
		return []string{}
	}

	opts := token.DefaultOptions()
	opts.MinLength = 3
	words := token.Tokenize(text, opts)
	if len(words) == 0 {
		return []string{}
	}

	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}

	// Count capitalised occurrences from the original text.
	capCount := make(map[string]int)
	for _, m := range capitalisedWord.FindAllString(text, -1) {
		capCount[strings.ToLower(m)]++
	}

	domainName := detectDomain(text, e.rules)
	rules := domainByName(e.rules, domainName)

	type scored struct {
		word  string
		score float64
	}
	candidates := make([]scored, 0, len(freq))

	for w, f := range freq {
		score := float64(f)

		if containsDigitOrSymbol.MatchString(w) || len(w) > 8 {
			score += keywordTechnicalBonus
		}
		if capCount[w] > 0 {
			score += keywordCapitalisedBonus
		}
		if matchesDomain(rules, w) {
			score += keywordDomainBonus
		}
		if _, ok := commonNearStopwords[w]; ok {
			score -= keywordCommonPenalty
		}

		if score > 0 {
			candidates = append(candidates, scored{word: w, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		// Deterministic order for equal scores.
		return candidates[i].word < candidates[j].word
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = candidates[i].word
	}
	return out
}
