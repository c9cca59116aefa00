package quote

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/models"
	"github.com/thenoetrevino/keks/internal/testutil"
	cliutil "github.com/thenoetrevino/keks/internal/testutil/cli"
)

func TestQuoteCmd_PrefixesMascot(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)
	testutil.AddTestQuotes(t, store, models.LanguageEnglish, "Hello")

	output, err := cliutil.ExecuteCLICommand(t, testApp, QuoteCmd(), []string{"-l", models.LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, database.DefaultMascotName+" says:    Hello\n", output)
}

func TestQuoteCmd_Plain(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)
	testutil.AddTestQuotes(t, store, models.LanguageGerman, "Hallo")

	output, err := cliutil.ExecuteCLICommand(t, testApp, QuoteCmd(), []string{"-l", models.LanguageGerman, "--plain"})
	require.NoError(t, err)
	assert.Equal(t, "Hallo\n", output)
}

func TestQuoteCmd_DefaultsToGerman(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)
	testutil.AddTestQuotes(t, store, models.LanguageGerman, "Guten Tag")

	output, err := cliutil.ExecuteCLICommand(t, testApp, QuoteCmd(), []string{"--plain"})
	require.NoError(t, err)
	assert.Equal(t, "Guten Tag\n", output)
}

func TestQuoteCmd_NoQuotesJSON(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, QuoteCmd(), []string{"-l", "Klingon", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	data := result["data"].(map[string]any)
	assert.Equal(t, database.NoQuotesText, data["text"])
	assert.Equal(t, "Klingon", data["language"])
	// Non-primary languages never get the mascot prefix
	assert.Equal(t, database.NoQuotesText, data["display"])
}

func TestAddCmd(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, AddCmd(),
		[]string{"--text", "  spaced  ", "--language", models.LanguageEnglish})
	require.NoError(t, err)
	assert.Contains(t, output, "Quote added to English")

	text, err := store.GetQuote(context.Background(), models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", text)
}

func TestAddCmd_QuietPrintsID(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, AddCmd(), []string{"-t", "one", "-q"})
	require.NoError(t, err)
	assert.Equal(t, "1\n", output)
}

func TestAddCmd_RejectsBlankText(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testApp, AddCmd(), []string{"--text", "   ", "--json"})
	require.Error(t, err)
	var statusErr *cli.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, cli.ExitValidation, statusErr.Code)

	count, err := store.CountQuotes(context.Background(), models.LanguageGerman)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLanguagesCmd(t *testing.T) {
	store, testApp := cliutil.SetupCLITest(t)
	testutil.AddTestQuotes(t, store, models.LanguageEnglish, "a", "b")
	testutil.AddTestQuotes(t, store, models.LanguageGerman, "c")

	output, err := cliutil.ExecuteCLICommand(t, testApp, LanguagesCmd(), []string{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, output, "English")
	assert.Contains(t, output, "German")
}

func TestLanguagesCmd_Empty(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, LanguagesCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, []any{}, result["data"])
}
