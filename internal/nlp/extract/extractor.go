// Package extract turns raw study text into ranked concepts. It runs
// a prioritised table of definition-shaped patterns over text lines,
// validates and de-duplicates candidate (term, definition) pairs, and
// scores each survivor by position, frequency, heading membership and
// domain relevance. Extraction never fails on non-empty text: when no
// pattern matches it falls back to sentence heuristics, then to
// keyword synthesis.
package extract

import (
	"sort"
	"strings"

	"github.com/studium-labs/studium-cli/internal/core/domain"
	"github.com/studium-labs/studium-cli/internal/logger"
	"github.com/studium-labs/studium-cli/internal/nlp/token"
)

// Importance score components. The composite is a rank, not a
// probability; only relative order matters.
const (
	positionBonusCap  = 25.0
	defLengthBonusCap = 10.0
	frequencyWeight   = 10.0
	headingBonus      = 30.0
	semanticWeight    = 15.0
	relationWeight    = 10.0
	confidenceWeight  = 20.0
	domainMatchBonus  = 25.0
	hierarchyWeight   = 8.0
	relationCountW    = 5.0
	offDomainPenalty  = 10.0
)

// Extractor runs the concept-extraction pipeline. The zero value is
// not usable; construct with New.
type Extractor struct {
	rules       []DomainRules
	maxConcepts int
}

// Option configures the extractor.
type Option func(*Extractor)

// WithDomainRules replaces the built-in domain-rules table.
func WithDomainRules(rules []DomainRules) Option {
	return func(e *Extractor) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithMaxConcepts caps the number of returned concepts.
func WithMaxConcepts(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxConcepts = n
		}
	}
}

// New creates an extractor with the default domain rules.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		rules:       DefaultDomainRules(),
		maxConcepts: domain.MaxConceptsPerTopic,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// candidate is an intermediate (term, definition) pair before
// validation and scoring.
type candidate struct {
	term       string
	definition string
	lineIdx    int
	confidence float64
	inHeading  bool
}

// Extract returns up to the configured maximum of concepts from text,
// sorted by descending importance. Empty or whitespace-only input
// yields an empty slice; Extract never returns an error.
func (e *Extractor) Extract(text string) []domain.Concept {
	if strings.TrimSpace(text) == "" {
		return []domain.Concept{}
	}
	text = domain.TruncateImport(text)

	logger.Section("Concept Extraction")

	domainName := detectDomain(text, e.rules)
	rules := domainByName(e.rules, domainName)
	logger.Debug("Detected domain: %q", domainName)

	relations := analyzeRelationships(text)

	candidates := e.collectCandidates(text, rules)
	logger.Debug("Pattern candidates: %d", len(candidates))

	accepted := e.validateAndDedupe(candidates)

	// Fallback cascade: sentence heuristic, then keyword synthesis.
	// Non-empty text always produces something.
	if len(accepted) == 0 {
		logger.Debug("No pattern matches, trying sentence heuristic")
		accepted = e.validateAndDedupe(sentenceCandidates(text))
	}
	if len(accepted) == 0 {
		logger.Debug("Sentence heuristic empty, synthesising from keywords")
		accepted = e.keywordCandidates(text)
	}

	lowerText := strings.ToLower(text)
	concepts := make([]domain.Concept, 0, len(accepted))
	for _, c := range accepted {
		concepts = append(concepts, e.score(c, lowerText, domainName, rules, relations))
	}

	concepts = e.applyForcedConcepts(concepts, text, rules)

	sort.SliceStable(concepts, func(i, j int) bool {
		return concepts[i].Importance > concepts[j].Importance
	})
	if len(concepts) > e.maxConcepts {
		concepts = concepts[:e.maxConcepts]
	}

	logger.Info("Extracted %d concepts", len(concepts))
	return concepts
}

// collectCandidates gathers (term, definition) pairs from headings,
// the definition-pattern table, and domain special terms.
func (e *Extractor) collectCandidates(text string, rules *DomainRules) []candidate {
	lines := strings.Split(text, "\n")
	var out []candidate

	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Heading followed by a paragraph: the paragraph is the
		// definition.
		if term, ok := headingTerm(line); ok {
			if def := nextParagraph(lines, i); def != "" {
				out = append(out, candidate{
					term:       term,
					definition: def,
					lineIdx:    i,
					confidence: 0.8,
					inHeading:  true,
				})
			}
			continue
		}

		// Patterns are anchored, so run them per sentence: a line
		// holding two definitions must yield two candidates.
		for _, sentence := range splitSentences(line) {
			sentence = strings.TrimSuffix(strings.TrimSpace(sentence), ".")
			for _, p := range defPatterns {
				for _, m := range p.re.FindAllStringSubmatch(sentence, -1) {
					out = append(out, candidate{
						term:       m[p.termGroup],
						definition: strings.TrimSpace(m[p.defGroup]),
						lineIdx:    i,
						confidence: p.confidence,
					})
				}
			}
		}
	}

	// Domain special terms pull a wider sentence window instead of a
	// regex capture.
	if rules != nil {
		out = append(out, specialTermCandidates(text, rules)...)
	}

	return out
}

// headingTerm extracts a term from an ALL-CAPS or markdown heading
// line.
func headingTerm(line string) (string, bool) {
	if m := headingLine.FindStringSubmatch(line); m != nil {
		return titleCase(strings.ToLower(m[1])), true
	}
	if m := markdownHeading.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// nextParagraph returns the first non-blank, non-heading line after
// index i, when it is long enough to be a definition.
func nextParagraph(lines []string, i int) string {
	for j := i + 1; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if line == "" {
			continue
		}
		if _, isHeading := headingTerm(line); isHeading {
			return ""
		}
		if len(line) > 10 {
			return line
		}
		return ""
	}
	return ""
}

// specialTermCandidates extracts hardcoded domain terms using the
// sentence containing the term plus the following sentence.
func specialTermCandidates(text string, rules *DomainRules) []candidate {
	sentences := splitSentences(text)
	lower := strings.ToLower(text)
	var out []candidate

	for _, term := range rules.SpecialTerms {
		if !strings.Contains(lower, term) {
			continue
		}
		for si, sentence := range sentences {
			if !strings.Contains(strings.ToLower(sentence), term) {
				continue
			}
			window := sentence
			if si+1 < len(sentences) {
				window += " " + sentences[si+1]
			}
			out = append(out, candidate{
				term:       titleCase(term),
				definition: strings.TrimSpace(window),
				lineIdx:    si,
				confidence: 0.85,
			})
			break
		}
	}

	return out
}

// validateAndDedupe cleans candidate terms, rejects malformed
// entries, and merges duplicates (keeping the longer definition).
func (e *Extractor) validateAndDedupe(candidates []candidate) []candidate {
	var accepted []candidate

	for _, c := range candidates {
		c.term = cleanTerm(c.term)
		c.definition = cleanDefinition(c.definition)

		if !termAcceptable(c.term) {
			continue
		}
		if !definitionAcceptable(c.term, c.definition) {
			continue
		}

		if idx := duplicateIndex(accepted, c.term); idx >= 0 {
			// Merge: keep the longer definition and the higher
			// confidence.
			if len(c.definition) > len(accepted[idx].definition) {
				accepted[idx].definition = c.definition
			}
			if c.confidence > accepted[idx].confidence {
				accepted[idx].confidence = c.confidence
			}
			accepted[idx].inHeading = accepted[idx].inHeading || c.inHeading
			continue
		}

		accepted = append(accepted, c)
	}

	return accepted
}

// cleanTerm normalises an extracted term: strips a leading article,
// markdown and list fragments, collapses whitespace, and capitalises
// the first letter.
func cleanTerm(term string) string {
	term = strings.TrimSpace(term)
	term = markdownArtifact.ReplaceAllString(term, "")
	term = strings.Trim(term, "-– \t")
	term = strings.Join(strings.Fields(term), " ")

	lower := strings.ToLower(term)
	if strings.HasPrefix(lower, "the ") {
		term = term[4:]
	}

	if term == "" {
		return term
	}
	return strings.ToUpper(term[:1]) + term[1:]
}

// cleanDefinition trims a definition and collapses whitespace.
func cleanDefinition(def string) string {
	def = strings.ReplaceAll(def, "\n", " ")
	return strings.Join(strings.Fields(def), " ")
}

// termAcceptable applies the malformed-term checks from the pattern
// table.
func termAcceptable(term string) bool {
	if len(term) < domain.MinTermLen || len(term) > domain.MaxTermLen {
		return false
	}
	if tooManyWords.MatchString(term + " ") {
		return false
	}
	if markdownArtifact.MatchString(term) {
		return false
	}
	if badTermPrefix.MatchString(term) {
		return false
	}
	if danglingSuffix.MatchString(term) {
		return false
	}

	lower := strings.ToLower(term)
	if _, generic := genericTerms[lower]; generic {
		if _, allowed := importantNouns[lower]; !allowed {
			return false
		}
	}
	if token.IsStopword(lower) {
		return false
	}

	c := domain.Concept{Term: term, Definition: strings.Repeat("x", 20)}
	return c.Validate() == nil
}

// definitionAcceptable runs the definition sanity checks.
func definitionAcceptable(term, def string) bool {
	if len(def) < domain.MinDefinitionLen || len(def) > domain.MaxDefinitionLen {
		return false
	}
	if len(strings.Fields(def)) < 2 {
		return false
	}
	if domain.IsSelfReferential(term, def) {
		return false
	}
	return !introspectionPattern.MatchString(def)
}

// duplicateIndex finds an accepted candidate that duplicates term:
// exact match, or substring containment within a length tolerance.
func duplicateIndex(accepted []candidate, term string) int {
	lower := strings.ToLower(term)
	for i := range accepted {
		existing := strings.ToLower(accepted[i].term)
		if existing == lower {
			return i
		}
		shorter, longer := existing, lower
		if len(shorter) > len(longer) {
			shorter, longer = longer, shorter
		}
		// Tight tolerance: "Cell"/"Cells" merge, but "Cells" and
		// "Animal cells" stay distinct concepts.
		if strings.Contains(longer, shorter) && len(longer)-len(shorter) <= 3 {
			return i
		}
	}
	return -1
}

// score computes the composite importance for one accepted candidate
// and assembles the final Concept.
func (e *Extractor) score(
	c candidate, lowerText, domainName string,
	rules *DomainRules, relations *relationshipIndex,
) domain.Concept {
	freq := strings.Count(lowerText, strings.ToLower(c.term))
	if freq < 1 {
		freq = 1
	}

	positionBonus := positionBonusCap - float64(c.lineIdx)
	if positionBonus < 0 {
		positionBonus = 0
	}

	defLenBonus := float64(len(c.definition)) / 20
	if defLenBonus > defLengthBonusCap {
		defLenBonus = defLengthBonusCap
	}

	hier := hierarchyLevel(c)
	semantic := e.semanticScore(c, rules, hier)
	relScore := relations.score(c.term)
	rels := relations.relationshipsFor(c.term)

	onDomain := matchesDomain(rules, c.term+" "+c.definition)

	importance := positionBonus +
		defLenBonus +
		float64(freq)*frequencyWeight +
		semantic*semanticWeight +
		relScore*relationWeight +
		c.confidence*confidenceWeight +
		float64(hier)*hierarchyWeight +
		float64(len(rels))*relationCountW

	if c.inHeading {
		importance += headingBonus
	}
	if onDomain {
		importance += domainMatchBonus
	} else if rules != nil {
		importance -= offDomainPenalty
	}

	return domain.Concept{
		Term:           c.term,
		Definition:     c.definition,
		Difficulty:     difficulty(c.definition),
		Importance:     importance,
		Domain:         domainName,
		HierarchyLevel: hier,
		Relationships:  rels,
	}
}

// semanticScore blends domain-keyword, theme-pattern,
// technical-density and hierarchy signals into [0,1].
func (e *Extractor) semanticScore(c candidate, rules *DomainRules, hier int) float64 {
	score := 0.0
	if matchesDomain(rules, c.term+" "+c.definition) {
		score += 0.4
	}
	if themePattern.MatchString(c.definition) {
		score += 0.2
	}

	tagged := token.TokenizeWithPOS(c.term + " " + c.definition)
	if len(tagged) > 0 {
		technical := 0
		for _, t := range tagged {
			if t.IsTechnical {
				technical++
			}
		}
		density := float64(technical) / float64(len(tagged))
		if density > 0.2 {
			density = 0.2
		}
		score += density
	}

	score += float64(hier) * 0.1
	if score > 1 {
		score = 1
	}
	return score
}

// hierarchyLevel derives a structural level from nearby text cues and
// heading membership.
func hierarchyLevel(c candidate) int {
	level := 0
	context := c.term + " " + c.definition
	for _, cue := range hierarchyCues {
		if cue.re.MatchString(context) {
			if cue.level > level {
				level = cue.level
			}
		}
	}
	if c.inHeading && level < 2 {
		level = 2
	}
	return level
}

// difficulty estimates 1..5 from definition length and technical
// density.
func difficulty(def string) int {
	d := 1 + len(def)/150
	for _, t := range token.TokenizeWithPOS(def) {
		if t.IsTechnical {
			d++
			break
		}
	}
	if len(strings.Fields(def)) > 25 {
		d++
	}
	if d > 5 {
		d = 5
	}
	return d
}

// applyForcedConcepts injects or boosts concepts pinned by the
// domain-rules table when their trigger phrase is present.
func (e *Extractor) applyForcedConcepts(
	concepts []domain.Concept, text string, rules *DomainRules,
) []domain.Concept {
	if rules == nil {
		return concepts
	}
	lower := strings.ToLower(text)

	for _, fc := range rules.ForcedConcepts {
		if !strings.Contains(lower, strings.ToLower(fc.Trigger)) {
			continue
		}

		boosted := false
		for i := range concepts {
			if strings.EqualFold(concepts[i].Term, fc.Term) {
				concepts[i].Importance = fc.Importance
				boosted = true
				break
			}
		}
		if boosted {
			continue
		}

		// Inject using the trigger sentence as the definition.
		def := ""
		for _, s := range splitSentences(text) {
			if strings.Contains(strings.ToLower(s), strings.ToLower(fc.Trigger)) {
				def = cleanDefinition(s)
				break
			}
		}
		if len(def) < domain.MinDefinitionLen {
			continue
		}
		concepts = append(concepts, domain.Concept{
			Term:       fc.Term,
			Definition: def,
			Difficulty: 1,
			Importance: fc.Importance,
			Domain:     rules.Name,
		})
	}

	return concepts
}

// sentenceCandidates is the first fallback tier: capitalised
// sentence-initial noun phrases become candidates with the sentence
// as the definition.
func sentenceCandidates(text string) []candidate {
	var out []candidate
	for i, sentence := range splitSentences(text) {
		words := strings.Fields(sentence)
		if len(words) < 4 {
			continue
		}
		phrase := nounPhrase(words)
		if phrase == "" {
			continue
		}
		out = append(out, candidate{
			term:       phrase,
			definition: strings.TrimSpace(sentence),
			lineIdx:    i,
			confidence: 0.4,
		})
	}
	return out
}

// nounPhrase takes the leading one or two non-determiner words of a
// sentence when the sentence starts capitalised.
func nounPhrase(words []string) string {
	first := words[0]
	if first == "" || first[0] < 'A' || first[0] > 'Z' {
		return ""
	}

	start := 0
	lower := strings.ToLower(first)
	if lower == "the" || lower == "a" || lower == "an" {
		start = 1
	}
	if start >= len(words) {
		return ""
	}

	phrase := words[start]
	if start+1 < len(words) && len(words[start+1]) > 3 && !token.IsStopword(strings.ToLower(words[start+1])) {
		// Two-word phrases only when the second word looks
		// substantive.
		if !strings.ContainsAny(words[start+1], ".,;:!?") {
			phrase += " " + words[start+1]
		}
	}
	return strings.Trim(phrase, ".,;:!?")
}

// keywordCandidates is the last fallback tier: synthesise one
// pseudo-concept per top keyword.
func (e *Extractor) keywordCandidates(text string) []candidate {
	keywords := e.Keywords(text, 5)
	sentences := splitSentences(text)
	var out []candidate

	for i, kw := range keywords {
		def := ""
		for _, s := range sentences {
			if strings.Contains(strings.ToLower(s), kw) {
				def = cleanDefinition(s)
				break
			}
		}
		if len(def) < domain.MinDefinitionLen {
			def = "Key term that appears throughout this material."
		}

		c := candidate{
			term:       titleCase(kw),
			definition: def,
			lineIdx:    i,
			confidence: 0.2,
		}
		if termAcceptable(cleanTerm(c.term)) {
			c.term = cleanTerm(c.term)
			out = append(out, c)
		}
	}

	return out
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
