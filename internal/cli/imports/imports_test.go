package imports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/models"
	"github.com/thenoetrevino/keks/internal/testutil"
	cliutil "github.com/thenoetrevino/keks/internal/testutil/cli"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.StatusError
	require.True(t, errors.As(err, &exitErr), "expected StatusError, got %v", err)
	return exitErr.Code
}

func TestImportCmd_English(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)
	path := testutil.WriteTestFile(t, "fortunes.txt", "First quote\n%\nSecond quote\n%\n")

	output, err := cliutil.ExecuteCLICommand(t, testApp, ImportCmd(), []string{"-f", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 quotes (English)")

	count, err := store.CountQuotes(context.Background(), models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportCmd_GermanJSON(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)
	path := testutil.WriteTestFile(t, "sprueche.txt", "Eins\n%\n   \n%\nZwei")

	output, err := cliutil.ExecuteCLICommand(t, testApp, ImportCmd(),
		[]string{"--file", path, "--language", "de", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, models.LanguageGerman, data["language"])
	assert.Equal(t, float64(2), data["imported"])
	assert.Equal(t, float64(1), data["skipped"])
}

func TestImportCmd_Quiet(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)
	path := testutil.WriteTestFile(t, "fortunes.txt", "a\n%\nb\n%\nc")

	output, err := cliutil.ExecuteCLICommand(t, testApp, ImportCmd(), []string{"-f", path, "-q"})
	require.NoError(t, err)
	assert.Equal(t, "3\n", output)
}

func TestImportCmd_UnsupportedLanguage(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)
	path := testutil.WriteTestFile(t, "fortunes.txt", "a\n%\nb")

	output, err := cliutil.ExecuteCLICommand(t, testApp, ImportCmd(),
		[]string{"-f", path, "-l", "fr", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, exitCode(t, err))
	assert.Contains(t, output, "de, en")

	langs, err := store.ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, langs)
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, ImportCmd(),
		[]string{"-f", "/nonexistent/fortunes.txt", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, exitCode(t, err))
	assert.Contains(t, output, "READ_ERROR")
}

func TestImportCmd_RequiresFile(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testApp, ImportCmd(), []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}
