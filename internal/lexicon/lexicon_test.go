package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/analyzer"
)

func TestDefaultTable(t *testing.T) {
	lex := Default()

	assert.Len(t, lex, 10)
	assert.Contains(t, lex["غم"], "Sorrow")
	assert.Contains(t, lex["ہے"], "Existential")
}

func TestAnnotateKeepsRankingOrder(t *testing.T) {
	lex := Default()
	ranked := []analyzer.Entry{
		{Word: "ہے", Count: 4},
		{Word: "غم", Count: 2},
		{Word: "مسیحا", Count: 2}, // not in the table
		{Word: "دل", Count: 1},
	}

	annotations := lex.Annotate(ranked)

	require.Len(t, annotations, 3)
	assert.Equal(t, "ہے", annotations[0].Word)
	assert.Equal(t, 4, annotations[0].Count)
	assert.Equal(t, "غم", annotations[1].Word)
	assert.Equal(t, "دل", annotations[2].Word)
	assert.NotEmpty(t, annotations[2].Gloss)
}

func TestAnnotateNoMatches(t *testing.T) {
	annotations := Default().Annotate([]analyzer.Entry{{Word: "مسیحا", Count: 2}})
	assert.Empty(t, annotations)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := "غم: Sorrow and loss\nجام: The cup of wine\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, lex, 2)
	assert.Equal(t, "Sorrow and loss", lex["غم"])
	assert.Equal(t, "The cup of wine", lex["جام"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[not a mapping"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
