// Package token splits raw study text into normalised word tokens.
// It is the leaf of the NLP pipeline: extraction, similarity scoring
// and matching all consume its output.
//
// Tokenisation is a straight-line pipeline over the input string:
// contraction expansion, case folding, hyphen protection, punctuation
// stripping (with email/domain protection), whitespace splitting,
// numeric and length filtering, stopword removal, and optional
// suffix-stripping stemming. It is purely functional and
// deterministic; malformed or empty input yields an empty slice,
// never an error.
package token
