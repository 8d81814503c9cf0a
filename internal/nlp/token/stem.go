package token

import "strings"

// stemOverrides handles irregular forms the suffix rules get wrong.
var stemOverrides = map[string]string{
	"running": "run",
	"jumped":  "jump",
	"playing": "play",
	"studies": "study",
	"studied": "study",
}

// suffixRule strips a suffix when the remaining base is long enough.
type suffixRule struct {
	suffix  string
	minBase int
}

// suffixRules are applied in order; the first applicable rule wins.
var suffixRules = []suffixRule{
	{suffix: "ing", minBase: 3},
	{suffix: "ed", minBase: 3},
	{suffix: "est", minBase: 3},
	{suffix: "er", minBase: 3},
	{suffix: "ly", minBase: 3},
	{suffix: "s", minBase: 3},
}

// Stem reduces a word to a crude base form by stripping one suffix
// from the ordered rule list. It is intentionally lightweight: good
// enough to line up "plants"/"plant" and "dividing"/"divid", not a
// full Porter stemmer.
func Stem(word string) string {
	lower := strings.ToLower(word)
	if base, ok := stemOverrides[lower]; ok {
		return base
	}

	for _, rule := range suffixRules {
		if !strings.HasSuffix(lower, rule.suffix) {
			continue
		}
		base := word[:len(word)-len(rule.suffix)]
		if len(base) < rule.minBase {
			continue
		}
		// "ss", "is" and "us" endings ("process", "mitosis",
		// "nucleus") are not plurals.
		if rule.suffix == "s" && (strings.HasSuffix(lower, "ss") ||
			strings.HasSuffix(lower, "is") || strings.HasSuffix(lower, "us")) {
			continue
		}
		return base
	}

	return word
}
