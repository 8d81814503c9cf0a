package token

// stopwords is the fixed English stopword set. Lookup is
// case-insensitive; callers must lower-case first.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "for": {}, "from": {}, "had": {},
	"has": {}, "have": {}, "he": {}, "her": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"may": {}, "me": {}, "my": {}, "no": {}, "not": {}, "of": {},
	"on": {}, "or": {}, "our": {}, "she": {}, "should": {}, "so": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "who": {},
	"will": {}, "with": {}, "would": {}, "you": {}, "your": {},
	"over": {},
}

// IsStopword reports whether w (lower-cased by the caller) is in the
// fixed stopword set.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// contractions maps common English contractions to their expanded
// forms. Expansion runs before any other normalisation so the
// expanded words flow through the rest of the pipeline.
var contractions = map[string]string{
	"can't":     "cannot",
	"won't":     "will not",
	"shan't":    "shall not",
	"i'm":       "i am",
	"you're":    "you are",
	"we're":     "we are",
	"they're":   "they are",
	"it's":      "it is",
	"he's":      "he is",
	"she's":     "she is",
	"that's":    "that is",
	"what's":    "what is",
	"there's":   "there is",
	"here's":    "here is",
	"i've":      "i have",
	"you've":    "you have",
	"we've":     "we have",
	"they've":   "they have",
	"i'll":      "i will",
	"you'll":    "you will",
	"we'll":     "we will",
	"they'll":   "they will",
	"i'd":       "i would",
	"you'd":     "you would",
	"let's":     "let us",
	"who's":     "who is",
	"isn't":     "is not",
	"aren't":    "are not",
	"wasn't":    "was not",
	"weren't":   "were not",
	"doesn't":   "does not",
	"don't":     "do not",
	"didn't":    "did not",
	"couldn't":  "could not",
	"shouldn't": "should not",
	"wouldn't":  "would not",
}
