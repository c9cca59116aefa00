package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/cli/imports"
	"github.com/thenoetrevino/keks/internal/importer"
	"github.com/thenoetrevino/keks/internal/testutil"
)

func TestIsUsageError(t *testing.T) {
	assert.True(t, isUsageError(errors.New(`required flag(s) "file" not set`)))
	assert.True(t, isUsageError(errors.New("unknown flag: --nope")))
	assert.True(t, isUsageError(errors.New("accepts 2 arg(s), received 1")))
	assert.False(t, isUsageError(errors.New("database is locked")))
}

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KEKS_DB", filepath.Join(t.TempDir(), "fortunes.db"))

	tests := []struct {
		name string
		run  func(*cobra.Command, []string) error
		want int
	}{
		{"success", func(*cobra.Command, []string) error { return nil }, cli.ExitSuccess},
		{"status", func(*cobra.Command, []string) error {
			return &cli.StatusError{Code: cli.ExitValidation, Err: importer.ErrUnsupportedLanguage}
		}, cli.ExitValidation},
		{"plain", func(*cobra.Command, []string) error { return errors.New("boom") }, cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{Use: "probe", RunE: tt.run, SilenceErrors: true, SilenceUsage: true}
			c.SetArgs([]string{})
			assert.Equal(t, tt.want, Run(context.Background(), c))
		})
	}
}

func TestRun_ImportAgainstConfiguredDatabase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KEKS_DB", filepath.Join(t.TempDir(), "fortunes.db"))
	path := testutil.WriteTestFile(t, "fortunes.txt", "Hello%World")

	c := imports.ImportCmd()
	c.SilenceErrors = true
	c.SilenceUsage = true
	c.SetArgs([]string{"-f", path, "-q"})

	var code int
	output := testutil.CaptureOutput(t, func() {
		code = Run(context.Background(), c)
	})
	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "2\n", output)

	c = imports.ImportCmd()
	c.SilenceErrors = true
	c.SilenceUsage = true
	c.SetArgs([]string{"-f", path, "-l", "xx", "--json"})
	testutil.CaptureOutput(t, func() {
		code = Run(context.Background(), c)
	})
	assert.Equal(t, cli.ExitValidation, code)
}
