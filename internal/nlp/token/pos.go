package token

import (
	"regexp"
	"strings"
)

// POS is a coarse part-of-speech tag assigned by pattern priority,
// not by grammatical analysis.
type POS string

// Part-of-speech tags, checked in this priority order.
const (
	POSDeterminer POS = "determiner"
	POSVerb       POS = "verb"
	POSProperNoun POS = "proper_noun"
	POSNumber     POS = "number"
	POSNoun       POS = "noun"
	POSParticle   POS = "particle"
	POSUnknown    POS = "unknown"
)

// TaggedToken is a token with its coarse POS tag and technical-term
// flag.
type TaggedToken struct {
	// Word is the token text, case preserved.
	Word string

	// Tag is the coarse POS classification.
	Tag POS

	// IsTechnical marks acronyms and known domain terms.
	IsTechnical bool

	// Length is len(Word), carried for convenience.
	Length int
}

var determiners = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "each": {}, "every": {}, "some": {},
	"any": {}, "no": {},
}

var commonVerbs = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"has": {}, "have": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"make": {}, "makes": {}, "made": {}, "use": {}, "uses": {},
	"used": {}, "contain": {}, "contains": {}, "produce": {},
	"produces": {}, "create": {}, "creates": {}, "divide": {},
	"divides": {}, "occur": {}, "occurs": {}, "help": {}, "helps": {},
}

var properNouns = map[string]struct{}{
	"darwin": {}, "mendel": {}, "newton": {}, "einstein": {},
	"curie": {}, "pasteur": {}, "watson": {}, "crick": {},
}

// technicalTerms are lower-cased domain terms always flagged
// technical regardless of shape.
var technicalTerms = map[string]struct{}{
	"dna": {}, "rna": {}, "atp": {}, "mitochondria": {},
	"chloroplast": {}, "ribosome": {}, "enzyme": {}, "osmosis": {},
	"photosynthesis": {}, "mitosis": {}, "meiosis": {},
	"molecule": {}, "isotope": {}, "electron": {}, "neutron": {},
	"proton": {}, "velocity": {}, "momentum": {}, "theorem": {},
}

// acronym matches capitalised technical acronyms like "DNA" or "ATP".
var acronym = regexp.MustCompile(`^[A-Z]{2,6}$`)

var hasDigit = regexp.MustCompile(`\d`)

// TokenizeWithPOS tokenises text keeping stopwords and case, then
// classifies each token by a fixed priority of pattern checks.
func TokenizeWithPOS(text string) []TaggedToken {
	opts := DefaultOptions()
	opts.PreserveCase = true
	opts.RemoveStopwords = false

	words := Tokenize(text, opts)
	tagged := make([]TaggedToken, 0, len(words))

	for _, w := range words {
		tagged = append(tagged, TaggedToken{
			Word:        w,
			Tag:         classify(w),
			IsTechnical: isTechnical(w),
			Length:      len(w),
		})
	}

	return tagged
}

// classify assigns a coarse POS tag by pattern priority: determiner,
// verb, proper noun, number, particle, then noun as the default.
func classify(word string) POS {
	lower := strings.ToLower(word)

	if _, ok := determiners[lower]; ok {
		return POSDeterminer
	}
	if _, ok := commonVerbs[lower]; ok {
		return POSVerb
	}
	if _, ok := properNouns[lower]; ok {
		return POSProperNoun
	}
	if isCapitalised(word) && len(word) > 4 && !acronym.MatchString(word) {
		return POSProperNoun
	}
	if hasDigit.MatchString(word) {
		return POSNumber
	}
	if len(word) <= 2 {
		return POSParticle
	}
	return POSNoun
}

// isTechnical flags capitalised acronyms and known domain terms.
func isTechnical(word string) bool {
	if acronym.MatchString(word) {
		return true
	}
	_, ok := technicalTerms[strings.ToLower(word)]
	return ok
}

func isCapitalised(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	return 'A' <= c && c <= 'Z'
}
