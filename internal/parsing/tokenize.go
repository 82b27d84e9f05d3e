// Package parsing turns raw resume and job-description text into the
// normalized tokens and labeled sections consumed by the scoring engine.
package parsing

import (
	"regexp"
	"strings"
)

// synonymFoldings rewrites multi-word and punctuated technology names into
// single tokens before the text is split, so "C++" and "Node.js" survive the
// non-alphanumeric split as "cplusplus" and "nodejs". Applied in order,
// case-insensitively. Hand-tuned data; extend rather than restructure.
var synonymFoldings = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)c\+\+`), "cplusplus"},
	{regexp.MustCompile(`(?i)\bc#`), "csharp"},
	{regexp.MustCompile(`(?i)\bf#`), "fsharp"},
	{regexp.MustCompile(`(?i)\b(node|react|vue|next|express)\.js\b`), "${1}js"},
	{regexp.MustCompile(`(?i)\.net\b`), "dotnet"},
	{regexp.MustCompile(`(?i)\bci\s*/\s*cd\b`), "cicd"},
	{regexp.MustCompile(`(?i)\bobjective[-\s]c\b`), "objectivec"},
	{regexp.MustCompile(`(?i)\bscikit[-\s]learn\b`), "scikitlearn"},
	{regexp.MustCompile(`(?i)\bmachine\s+learning\b`), "machinelearning"},
	{regexp.MustCompile(`(?i)\bdeep\s+learning\b`), "deeplearning"},
	{regexp.MustCompile(`(?i)\bdata\s+science\b`), "datascience"},
	{regexp.MustCompile(`(?i)\bpower\s+bi\b`), "powerbi"},
}

// stopwords is the fixed filler-word table shared by resumes and job
// descriptions. Hand-tuned data; changing it shifts every score.
var stopwords = map[string]bool{
	"able": true, "about": true, "all": true, "also": true, "and": true,
	"any": true, "are": true, "been": true, "but": true, "can": true,
	"each": true, "experience": true, "for": true, "from": true, "has": true,
	"have": true, "how": true, "including": true, "into": true, "job": true,
	"join": true, "knowledge": true, "may": true, "more": true, "must": true,
	"new": true, "not": true, "our": true, "per": true, "plus": true,
	"preferred": true, "qualifications": true, "required": true,
	"requirements": true, "responsibilities": true, "role": true,
	"skills": true, "strong": true, "such": true, "team": true, "than": true,
	"that": true, "the": true, "their": true, "they": true, "this": true,
	"use": true, "used": true, "using": true, "was": true, "were": true,
	"what": true, "which": true, "who": true, "will": true, "with": true,
	"work": true, "working": true, "years": true, "you": true, "your": true,
}

// tokenSplit matches any run of characters that cannot appear in a
// normalized token.
var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

const minTokenLength = 3

// TokenSet is a deduplicated view of a text's significant tokens.
type TokenSet map[string]bool

// Contains reports whether the set holds the given token.
func (s TokenSet) Contains(token string) bool {
	return s[token]
}

// Tokenize normalizes text into its ordered sequence of significant tokens.
// Duplicates are retained so callers can count frequencies. Empty or
// all-filler input yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	for _, f := range synonymFoldings {
		text = f.pattern.ReplaceAllString(text, f.repl)
	}
	text = strings.ToLower(text)

	raw := tokenSplit.Split(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < minTokenLength || stopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// NewTokenSet tokenizes text and deduplicates the result.
func NewTokenSet(text string) TokenSet {
	tokens := Tokenize(text)
	set := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
