package token

import (
	"regexp"
	"sort"
	"strings"
)

// Options configures tokenisation. The zero value is not useful;
// start from DefaultOptions and override fields as needed.
type Options struct {
	// HandleContractions expands common English contractions
	// ("can't" -> "cannot") before further processing. When enabled,
	// stopword removal is skipped: the expansion reintroduces
	// function words intentionally.
	HandleContractions bool

	// PreserveCase skips lower-casing.
	PreserveCase bool

	// IncludeHyphenated keeps intra-word hyphens so compounds like
	// "acid-base" survive punctuation stripping as one token.
	IncludeHyphenated bool

	// RemovePunctuation strips all characters except word characters,
	// whitespace, hyphen, apostrophe, underscore, the degree sign and
	// slash. Emails and dotted domains are protected and survive
	// intact.
	RemovePunctuation bool

	// IncludeNumbers keeps pure-numeric tokens and number+unit shapes
	// like "37°C" or "5kg". When false, pure-numeric tokens are
	// dropped.
	IncludeNumbers bool

	// MinLength drops tokens shorter than this after splitting.
	MinLength int

	// MaxLength drops tokens longer than this after splitting.
	MaxLength int

	// RemoveStopwords drops tokens in the fixed English stopword set.
	RemoveStopwords bool

	// StemWords applies the ordered suffix-stripping rule list.
	StemWords bool
}

// DefaultOptions returns the standard tokenisation settings: strip
// punctuation, drop stopwords and numbers, length 1..50, no stemming.
func DefaultOptions() Options {
	return Options{
		RemovePunctuation: true,
		RemoveStopwords:   true,
		MinLength:         1,
		MaxLength:         50,
	}
}

var (
	// pureNumber matches integer and decimal tokens.
	pureNumber = regexp.MustCompile(`^\d+(\.\d+)?$`)

	// numberUnit matches number+unit shapes such as "37°C", "10kg" or
	// "3.5mol/L".
	numberUnit = regexp.MustCompile(`^\d+(\.\d+)?[a-zA-Z°/%][a-zA-Z°/]*$`)

	// emailOrDomain matches emails and dotted domains so they can be
	// protected from punctuation stripping.
	emailOrDomain = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+|\b[\w-]+(\.[\w-]+)+\b`)

	// punctuation matches everything the punctuation strip removes.
	// Hyphens are stripped here; IncludeHyphenated protects them with
	// a placeholder beforehand.
	punctuation = regexp.MustCompile(`[^\w\s'°/]+`)

	// contractionPatterns are compiled once, longest contraction
	// first so "can't" wins over any shorter overlapping form.
	contractionPatterns = compileContractions()
)

// Placeholders used during the protection round-trips. Underscores
// are word characters, so the punctuation strip leaves them alone.
const (
	hyphenPlaceholder = "__hyph__"
	dotPlaceholder    = "__dot__"
	atPlaceholder     = "__at__"
)

type contractionPattern struct {
	re          *regexp.Regexp
	replacement string
}

func compileContractions() []contractionPattern {
	keys := make([]string, 0, len(contractions))
	for k := range contractions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	patterns := make([]contractionPattern, 0, len(keys))
	for _, k := range keys {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k))
		patterns = append(patterns, contractionPattern{re: re, replacement: contractions[k]})
	}
	return patterns
}

// Tokenize splits text into normalised word tokens according to opts.
// Empty input returns an empty slice; Tokenize never fails.
func Tokenize(text string, opts Options) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	if opts.HandleContractions {
		text = expandContractions(text)
	}

	if !opts.PreserveCase {
		text = strings.ToLower(text)
	}

	if opts.IncludeHyphenated {
		text = protectHyphens(text)
	}

	if opts.RemovePunctuation {
		text = stripPunctuation(text)
	}

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))

	for _, tok := range fields {
		tok = restoreProtected(tok)
		tok = strings.Trim(tok, "'-_")
		if tok == "" {
			continue
		}

		// Numeric tokens (pure numbers and number+unit shapes like
		// "37°C") are dropped unless numbers are requested. The
		// punctuation strip keeps ° and / so unit shapes arrive here
		// intact.
		if !opts.IncludeNumbers &&
			(pureNumber.MatchString(tok) || numberUnit.MatchString(tok)) {
			continue
		}

		if opts.MinLength > 0 && len(tok) < opts.MinLength {
			continue
		}
		if opts.MaxLength > 0 && len(tok) > opts.MaxLength {
			continue
		}

		// Contraction expansion reintroduces function words on
		// purpose, so stopword removal is skipped in that mode.
		if opts.RemoveStopwords && !opts.HandleContractions {
			if IsStopword(strings.ToLower(tok)) {
				continue
			}
		}

		if opts.StemWords {
			tok = Stem(tok)
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

// expandContractions replaces known contractions with their expanded
// forms, longest match first.
func expandContractions(text string) string {
	for _, p := range contractionPatterns {
		text = p.re.ReplaceAllStringFunc(text, func(m string) string {
			repl := p.replacement
			// Preserve a leading capital so PreserveCase mode keeps
			// sentence casing intact.
			if m[0] >= 'A' && m[0] <= 'Z' {
				repl = strings.ToUpper(repl[:1]) + repl[1:]
			}
			return repl
		})
	}
	return text
}

// protectHyphens swaps intra-word hyphens for a placeholder so they
// survive punctuation stripping; restoreProtected puts them back.
func protectHyphens(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i, r := range runes {
		if r == '-' && i > 0 && i < len(runes)-1 &&
			isWordRune(runes[i-1]) && isWordRune(runes[i+1]) {
			b.WriteString(hyphenPlaceholder)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripPunctuation removes punctuation while protecting emails and
// dotted domains via a placeholder round-trip.
func stripPunctuation(text string) string {
	text = emailOrDomain.ReplaceAllStringFunc(text, func(m string) string {
		m = strings.ReplaceAll(m, ".", dotPlaceholder)
		return strings.ReplaceAll(m, "@", atPlaceholder)
	})
	return punctuation.ReplaceAllString(text, " ")
}

// restoreProtected reverses the placeholder substitutions.
func restoreProtected(tok string) string {
	tok = strings.ReplaceAll(tok, hyphenPlaceholder, "-")
	tok = strings.ReplaceAll(tok, dotPlaceholder, ".")
	return strings.ReplaceAll(tok, atPlaceholder, "@")
}

func isWordRune(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}
