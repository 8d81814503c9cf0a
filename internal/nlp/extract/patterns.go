package extract

import "regexp"

// defPattern is one definition-shaped pattern applied per line.
// Patterns run in table order; earlier entries are higher priority
// and carry higher confidence.
type defPattern struct {
	// name identifies the pattern in verbose logs.
	name string

	// re is the line pattern. termGroup and defGroup select the
	// capture groups for the term and definition.
	re        *regexp.Regexp
	termGroup int
	defGroup  int

	// confidence feeds the importance score, in [0,1].
	confidence float64
}

// defPatterns is the ordered definition pattern table. Keeping the
// matching loop declarative makes every pattern testable on its own.
var defPatterns = []defPattern{
	{
		name:       "term-is",
		re:         regexp.MustCompile(`^(?:[Tt]he |[Aa]n? )?([A-Za-z][A-Za-z0-9' -]{2,58}?) (?:is|are) ((?:the |a |an )?.{10,})$`),
		termGroup:  1,
		defGroup:   2,
		confidence: 0.9,
	},
	{
		name:       "term-defined-as",
		re:         regexp.MustCompile(`^(?:[Tt]he )?([A-Za-z][A-Za-z0-9' -]{2,58}?) (?:is defined as|is known as|is called|refers to|means|describes) (.{10,})$`),
		termGroup:  1,
		defGroup:   2,
		confidence: 0.95,
	},
	{
		name:       "term-colon",
		re:         regexp.MustCompile(`^([A-Za-z][A-Za-z0-9' -]{2,58}):\s+(.{10,})$`),
		termGroup:  1,
		defGroup:   2,
		confidence: 0.85,
	},
	{
		name:       "list-item-colon",
		re:         regexp.MustCompile(`^\s*[-*•]\s*([A-Za-z][A-Za-z0-9' -]{2,58}):\s*(.{10,})$`),
		termGroup:  1,
		defGroup:   2,
		confidence: 0.8,
	},
	{
		name:       "term-consists",
		re:         regexp.MustCompile(`^(?:[Tt]he )?([A-Z][A-Za-z0-9' -]{2,58}?) (?:consists of|involves|occurs when|happens when) (.{10,})$`),
		termGroup:  1,
		defGroup:   2,
		confidence: 0.75,
	},
	{
		name:       "process-verb",
		re:         regexp.MustCompile(`^(?:[Tt]he )?(?:process of )?([A-Z][A-Za-z0-9' -]{2,58}?) (?:produces|creates|converts|transforms|regulates|controls) (.{10,})$`),
		termGroup:  1,
		defGroup:   2,
		confidence: 0.7,
	},
}

// headingLine matches an ALL-CAPS or markdown heading; the following
// paragraph becomes the definition.
var headingLine = regexp.MustCompile(`^(?:#{1,4}\s+|)([A-Z][A-Z0-9 -]{3,58})$`)

// markdownHeading matches a markdown heading of any case.
var markdownHeading = regexp.MustCompile(`^#{1,4}\s+(.{3,60})$`)

// relationPattern captures a relationship verb between two
// capitalised terms within one sentence.
type relationPattern struct {
	re *regexp.Regexp
	// typ names the relation kind for the Relationship record.
	typ string
}

var relationPatterns = []relationPattern{
	{re: regexp.MustCompile(`([A-Z][a-z]+(?: [a-z]+)?) (?:causes|cause|leads to) ([A-Z]?[a-z]+(?: [a-z]+)?)`), typ: "causes"},
	{re: regexp.MustCompile(`([A-Z][a-z]+(?: [a-z]+)?) depends on ([A-Z]?[a-z]+(?: [a-z]+)?)`), typ: "depends_on"},
	{re: regexp.MustCompile(`([A-Z][a-z]+(?: [a-z]+)?) (?:is part of|are part of|belongs to) ([A-Z]?[a-z]+(?: [a-z]+)?)`), typ: "part_of"},
	{re: regexp.MustCompile(`([A-Z][a-z]+(?: [a-z]+)?) (?:is a type of|are types of|is a kind of) ([A-Z]?[a-z]+(?: [a-z]+)?)`), typ: "type_of"},
	{re: regexp.MustCompile(`([A-Z][a-z]+(?: [a-z]+)?) (?:produces|produce|generates) ([A-Z]?[a-z]+(?: [a-z]+)?)`), typ: "produces"},
}

// hierarchyCues map nearby wording to a structural level bonus.
// Fundamental concepts rank above advanced detail.
var hierarchyCues = []struct {
	re    *regexp.Regexp
	level int
}{
	{re: regexp.MustCompile(`(?i)\b(fundamental|basic|essential|core|primary)\b`), level: 3},
	{re: regexp.MustCompile(`(?i)\b(important|key|main|major)\b`), level: 2},
	{re: regexp.MustCompile(`(?i)\b(advanced|complex|specialised|specialized|detailed)\b`), level: 1},
}

// malformedTermChecks reject degenerate extraction candidates.
var (
	tooManyWords     = regexp.MustCompile(`^(\S+\s+){5,}`)
	markdownArtifact = regexp.MustCompile("[*_#`>\\[\\]|]")
	badTermPrefix    = regexp.MustCompile(`(?i)^(these|some|many|other|various|several|this|that|there|here|it|they|he|she|we|you)\b`)
	danglingSuffix   = regexp.MustCompile(`(?i)\b(is|are|was|were|the|a|an|of|and|or|to|which|that)$`)
)

// themePattern marks definitions that describe structure or process,
// a weak signal the candidate is a real concept.
var themePattern = regexp.MustCompile(`(?i)\b(process|system|structure|function|cycle|theory|principle|mechanism|reaction|method)\b`)

// introspectionPattern rejects definitions that are artefacts of
// generated tutoring text rather than study content.
var introspectionPattern = regexp.MustCompile(`(?i)(i am (teaching|learning|thinking)|as an (ai|assistant)|i cannot|my training)`)

// genericTerms are stopword-like terms rejected unless they appear on
// the important-noun allow-list.
var genericTerms = map[string]struct{}{
	"thing": {}, "things": {}, "stuff": {}, "example": {},
	"examples": {}, "way": {}, "ways": {}, "part": {}, "parts": {},
	"type": {}, "types": {}, "kind": {}, "form": {}, "chapter": {},
	"section": {}, "unit": {}, "topic": {}, "summary": {},
	"introduction": {}, "overview": {}, "note": {}, "notes": {},
}

// importantNouns is the allow-list of short domain nouns that survive
// the generic-term filter.
var importantNouns = map[string]struct{}{
	"cell": {}, "cells": {}, "gene": {}, "genes": {}, "atom": {},
	"atoms": {}, "acid": {}, "base": {}, "force": {}, "energy": {},
	"tissue": {}, "organ": {}, "wave": {}, "mass": {}, "heat": {},
	"light": {}, "bond": {}, "ion": {}, "mole": {},
}
