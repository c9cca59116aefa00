// Package imports implements the "keks import" command
package imports

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/importer"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import quotes from a %-delimited file",
		Long: `Import quotes from a fortune style text file. Quotes are separated by
lines containing a single '%'. Blank quotes are skipped.

Examples:
  # Import English quotes
  keks import -f fortunes.txt

  # Import German quotes
  keks import --file sprueche.txt --language de

  # Machine readable result
  keks import -f fortunes.txt --json`,
		RunE: runImport,
	}

	cmd.Flags().StringP("file", "f", "", "Path to the quote file (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "file", "error", err)
	}
	cmd.Flags().StringP("language", "l", importer.DefaultCode, "Language code of the file (de, en)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	path, _ := cmd.Flags().GetString("file")
	code, _ := cmd.Flags().GetString("language")

	// Reject the code before touching the database
	if _, err := importer.ResolveLanguage(code); err != nil {
		return cli.Fail(formatter, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	result, err := Run(cmd, cliInstance, path, code, formatter)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success(result)
	}
	if formatter.Quiet {
		fmt.Println(result.Imported)
		return nil
	}

	formatter.Done("Imported %d quotes (%s)", result.Imported, result.Language)
	if result.Skipped > 0 {
		fmt.Printf("  skipped %d empty entries\n", result.Skipped)
	}
	return nil
}

// Run imports path through the CLI's App, drawing a progress bar when stdout
// is an interactive terminal and the output mode is human-readable
func Run(cmd *cobra.Command, c *cli.CLI, path, code string, formatter *cli.OutputFormatter) (*importer.Result, error) {
	var opts []importer.Option
	if !formatter.JSON && !formatter.Quiet && isTerminal(os.Stdout) {
		var bar *progressbar.ProgressBar
		opts = append(opts, importer.WithProgress(func(done, total int) {
			if bar == nil {
				bar = newProgressBar(total)
			}
			_ = bar.Set(done)
			if done == total {
				_ = bar.Finish()
			}
		}))
	}

	return c.App.Import(cmd.Context(), path, code, opts...)
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("importing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
