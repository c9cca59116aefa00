// Package quote implements the commands that read and add fortunes
package quote

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/cli/styles"
)

// QuoteCmd returns the quote command
func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a random fortune",
		Long: `Print one random fortune for a language. German and English fortunes
are prefixed with the mascot name unless --plain is given.

Examples:
  keks quote
  keks quote -l English
  keks quote --plain`,
		RunE: runQuote,
	}

	cmd.Flags().StringP("language", "l", "", "Language tag (default: configured language)")
	cmd.Flags().Bool("plain", false, "Print the quote without the mascot prefix")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	language, _ := cmd.Flags().GetString("language")
	language = cli.ResolveLanguage(cliInstance, language)

	f, err := cliInstance.App.FortuneService.NextFortune(ctx, language)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success(f)
	}

	plain, _ := cmd.Flags().GetBool("plain")
	text := f.Display
	if plain || formatter.Quiet {
		fmt.Println(f.Text)
		return nil
	}

	mascot, err := cliInstance.App.FortuneService.Mascot(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	fmt.Println(styles.FortuneStyle(mascot.Color).Render(text))
	return nil
}
