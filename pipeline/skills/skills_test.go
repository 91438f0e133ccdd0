package skills

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Keywords_DropsStopWordsAndShortTokens(t *testing.T) {
	keys := Keywords("We are seeking a Python developer with SQL and Go experience")

	require.Contains(t, keys, "python")
	require.Contains(t, keys, "developer")
	require.Contains(t, keys, "sql")
	require.Contains(t, keys, "experience")

	// "go" is two characters, dropped with the rest of the short tokens
	require.NotContains(t, keys, "go")
	require.NotContains(t, keys, "we")
	require.NotContains(t, keys, "are")
	require.NotContains(t, keys, "seeking")
	require.NotContains(t, keys, "with")
	require.NotContains(t, keys, "and")
}

func Test_Keywords_KeepsCompoundSkillTokens(t *testing.T) {
	keys := Keywords("C++ and C# plus Node.js, CI/CD")

	require.Contains(t, keys, "c++")
	require.Contains(t, keys, "node.js")
	require.Contains(t, keys, "ci/cd")

	// "c#" is two characters and falls under the length cutoff
	require.NotContains(t, keys, "c#")
}

func Test_Keywords_Deduplicates(t *testing.T) {
	keys := Keywords("python python PYTHON")
	require.Len(t, keys, 1)
	require.Contains(t, keys, "python")
}

func Test_ScoreCandidate_PartialOverlap(t *testing.T) {
	jd := "We are seeking a Python developer with SQL and Kubernetes experience"
	// JD keywords: python, developer, sql, kubernetes, experience (5 total).
	// Candidate matches python and sql.
	score := ScoreCandidate("Python; SQL; Docker", jd)
	require.InDelta(t, 40.0, score, 1e-9)
}

func Test_ScoreCandidate_FullOverlap(t *testing.T) {
	jd := "python sql docker"
	score := ScoreCandidate("Python; SQL; Docker", jd)
	require.InDelta(t, 100.0, score, 1e-9)
}

func Test_ScoreCandidate_ExtraSkillsDoNotInflate(t *testing.T) {
	jd := "python sql"
	withExtras := ScoreCandidate("Python; SQL; Docker; Kubernetes; Terraform", jd)
	exact := ScoreCandidate("Python; SQL", jd)
	require.Equal(t, exact, withExtras)
}

func Test_ScoreCandidate_EmptyJD(t *testing.T) {
	require.Zero(t, ScoreCandidate("Python; SQL", ""))
	require.Zero(t, ScoreCandidate("Python; SQL", "we are a to of"))
}

func Test_ScoreCandidate_EmptySkills(t *testing.T) {
	require.Zero(t, ScoreCandidate("", "python sql docker"))
}

func Test_ScoreCandidate_Rounding(t *testing.T) {
	// 1 of 3 keywords: 33.333... rounds to 33.33
	score := ScoreCandidate("python", "python kubernetes terraform")
	require.InDelta(t, 33.33, score, 1e-9)
}
