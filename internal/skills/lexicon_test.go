package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLexicon(t *testing.T) *Lexicon {
	t.Helper()
	return NewLexicon(DefaultCanonicalSkills(), DefaultAliases())
}

func TestExtractCanonicalizesAliases(t *testing.T) {
	lex := defaultLexicon(t)

	got := lex.Extract("Experienced in JS, React and Docker. Some K8s on the side.")

	assert.Contains(t, got, "javascript")
	assert.Contains(t, got, "react")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "kubernetes")
	assert.NotContains(t, got, "js")
	assert.NotContains(t, got, "k8s")
}

func TestExtractMultiWordEntries(t *testing.T) {
	lex := defaultLexicon(t)

	got := lex.Extract("Built pipelines with machine learning and GitHub Actions.")

	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "github actions")
}

func TestExtractRespectsTokenBoundaries(t *testing.T) {
	lex := defaultLexicon(t)

	got := lex.Extract("Deep JavaScript expertise.")

	assert.Contains(t, got, "javascript")
	assert.NotContains(t, got, "java")
}

func TestExtractEmptyText(t *testing.T) {
	lex := defaultLexicon(t)

	assert.Empty(t, lex.Extract(""))
	assert.Empty(t, lex.Extract("   \n\t "))
}

func TestCanonicalSet(t *testing.T) {
	lex := defaultLexicon(t)

	got := lex.CanonicalSet([]string{"JS", "Postgres", "docker", "docker", ""})

	require.Len(t, got, 3)
	assert.Contains(t, got, "javascript")
	assert.Contains(t, got, "postgresql")
	assert.Contains(t, got, "docker")
}

func TestSynonymTableExpand(t *testing.T) {
	table := NewSynonymTable(DefaultSynonymGroups())

	expanded := table.Expand(map[string]struct{}{"js": {}})

	assert.Contains(t, expanded, "js")
	assert.Contains(t, expanded, "javascript")
}

func TestSynonymTableSymmetric(t *testing.T) {
	table := NewSynonymTable([][]string{{"a", "b", "c"}})

	assert.ElementsMatch(t, []string{"b", "c"}, table.Synonyms("a"))
	assert.ElementsMatch(t, []string{"a", "c"}, table.Synonyms("b"))
	assert.Empty(t, table.Synonyms("unknown"))
}

func TestContainsTokenWordBoundaries(t *testing.T) {
	assert.True(t, ContainsToken("go and postgresql required", "go"))
	assert.True(t, ContainsToken("Senior Java Developer", "java"))
	assert.False(t, ContainsToken("javascript developer", "java"))
	assert.False(t, ContainsToken("", "go"))
	assert.False(t, ContainsToken("go developer", ""))
}
