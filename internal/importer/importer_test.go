package importer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/models"
	"github.com/thenoetrevino/keks/internal/testutil"
)

func TestSplitQuotes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		skipped int
	}{
		{"trim and skip blank", "  A  %B%   %C  ", []string{"A", "B", "C"}, 1},
		{"fortune file layout", "First line\nsecond line\n%\nAnother\n%\n", []string{"First line\nsecond line", "Another"}, 1},
		{"consecutive delimiters", "%%A%%", []string{"A"}, 4},
		{"no delimiter", "single", []string{"single"}, 0},
		{"empty", "", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := SplitQuotes(tt.content)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitQuotes mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.skipped, skipped)
		})
	}
}

func TestResolveLanguage(t *testing.T) {
	lang, err := ResolveLanguage("de")
	require.NoError(t, err)
	assert.Equal(t, models.LanguageGerman, lang)

	lang, err = ResolveLanguage("EN")
	require.NoError(t, err)
	assert.Equal(t, models.LanguageEnglish, lang)

	_, err = ResolveLanguage("xx")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "de, en")
}

func TestImportFromFile(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	path := testutil.WriteTestFile(t, "quotes.txt", "  A  %B%   %C  ")

	var calls []int
	res, err := ImportFromFile(ctx, store, path, "de", WithProgress(func(done, total int) {
		assert.Equal(t, 3, total)
		calls = append(calls, done)
	}))
	require.NoError(t, err)
	assert.Equal(t, &Result{Language: models.LanguageGerman, Imported: 3, Skipped: 1}, res)
	assert.Equal(t, []int{1, 2, 3}, calls)

	count, err := store.CountQuotes(ctx, models.LanguageGerman)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for range 50 {
		got, err := store.GetQuote(ctx, models.LanguageGerman)
		require.NoError(t, err)
		assert.Contains(t, []string{"A", "B", "C"}, got)
	}
}

func TestImportFromFile_UnsupportedLanguageInsertsNothing(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	path := testutil.WriteTestFile(t, "quotes.txt", "A%B")

	_, err := ImportFromFile(ctx, store, path, "xx")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	langs, err := store.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Empty(t, langs)
}

func TestImportFromFile_MissingFile(t *testing.T) {
	store := testutil.SetupTestStore(t)

	_, err := ImportFromFile(context.Background(), store, filepath.Join(t.TempDir(), "nope.txt"), "en")
	assert.ErrorIs(t, err, ErrReadSource)
}

type failingWriter struct{}

func (failingWriter) AddQuotes(context.Context, string, []string, func(int)) (int, error) {
	return 0, errors.New("disk full")
}

func TestImportFromFile_StoreError(t *testing.T) {
	path := testutil.WriteTestFile(t, "quotes.txt", "A")

	_, err := ImportFromFile(context.Background(), failingWriter{}, path, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// TestImportEndToEnd follows a fresh store through import, lookup and insert
func TestImportEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	path := testutil.WriteTestFile(t, "hello.txt", "Hello%World")

	_, err := ImportFromFile(ctx, store, path, "en")
	require.NoError(t, err)

	got, err := store.GetQuote(ctx, "English")
	require.NoError(t, err)
	assert.Contains(t, []string{"Hello", "World"}, got)

	_, err = store.AddQuote(ctx, "English", "New")
	require.NoError(t, err)

	count, err := store.CountQuotes(ctx, "English")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err = store.GetQuote(ctx, "French")
	require.NoError(t, err)
	assert.Equal(t, database.NoQuotesText, got)
}
