package skills

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches maximal runs of characters that can appear inside a
// skill token, so "c++", "c#" and "node.js" survive as single tokens
var tokenPattern = regexp.MustCompile(`[a-z0-9+#/.]+`)

// stopWords are dropped before scoring; common JD filler that carries no skill
var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "to": {}, "with": {},
	"in": {}, "of": {}, "for": {}, "we": {}, "are": {}, "seeking": {},
	"nice": {}, "have": {}, "basics": {},
}

// Keywords tokenizes text and returns the deduplicated set of surviving
// tokens: lowercased, stop words removed, tokens of length <= 2 dropped
func Keywords(text string) map[string]struct{} {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	keys := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		keys[tok] = struct{}{}
	}
	return keys
}

// ScoreCandidate scores semicolon-delimited candidate skills against a job
// description by keyword overlap: |jd ∩ candidate| / |jd| * 100, rounded to
// 2 decimals. The job description alone is the denominator, so extra
// candidate skills never move the score. Returns 0 when the job description
// yields no keywords.
//
// This is a deliberate keyword-overlap placeholder, not semantic matching.
func ScoreCandidate(skillsText, jdText string) float64 {
	jdKeys := Keywords(jdText)
	if len(jdKeys) == 0 {
		return 0.0
	}

	cand := Keywords(strings.ReplaceAll(skillsText, ";", " "))
	overlap := 0
	for k := range jdKeys {
		if _, ok := cand[k]; ok {
			overlap++
		}
	}

	return math.Round(float64(overlap)/float64(len(jdKeys))*100*100) / 100
}
