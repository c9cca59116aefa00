package quote

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/keks/internal/cli"
	"github.com/thenoetrevino/keks/internal/services/fortune"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fortune",
		Long: `Add a single fortune. The text is stored exactly as given.

Examples:
  keks add --text "Wer A sagt, muss auch B sagen."
  keks add --text "Fortune favors the bold." --language English
  keks add --text "Quiet please" --quiet   # prints only the new ID`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("text", "t", "", "Quote text (required)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "text", "error", err)
	}
	cmd.Flags().StringP("language", "l", "", "Language tag (default: configured language)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	text, _ := cmd.Flags().GetString("text")
	language, _ := cmd.Flags().GetString("language")

	q, err := cliInstance.App.FortuneService.AddQuote(ctx, fortune.AddQuoteRequest{
		Language: cli.ResolveLanguage(cliInstance, language),
		Text:     text,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(q)
	}

	formatter.Done("Quote added to %s (ID: %d)", q.Language, q.ID)
	return nil
}
